package args

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is raised when a cursor is created without a function name.
	ErrEmptyName = errors.New("args: function name is required")

	// ErrInvalidType is raised when a pull is given a type tag it does not know.
	ErrInvalidType = errors.New("args: invalid data type")

	// ErrUnknownPolicy is returned when a policy name cannot be resolved.
	ErrUnknownPolicy = errors.New("args: policy must be silent, required or a log level name")

	// ErrArgCount is returned when the argument count is outside the declared bounds.
	ErrArgCount = errors.New("args: wrong number of arguments")

	// ErrInvalidArgument is returned by required pulls that could not be satisfied.
	ErrInvalidArgument = errors.New("args: invalid argument")

	// ErrInvalidSignature is returned when a signature declaration is malformed.
	ErrInvalidSignature = errors.New("args: invalid signature")
)

// CountError reports an argument list whose length is outside [Min, Max].
type CountError struct {
	Function string
	Min      int
	Max      int
	Received int
}

func (e *CountError) Error() string {
	var want string
	if e.Max > e.Min {
		want = fmt.Sprintf("%d to %d", e.Min, e.Max)
	} else {
		want = fmt.Sprintf("%d", e.Min)
	}
	return fmt.Sprintf("%s must be called with %s arguments, but received %d", e.Function, want, e.Received)
}

func (e *CountError) Is(target error) bool {
	return target == ErrArgCount
}

// ArgumentError describes a required pull that failed. TranslationKey names
// the failed constraint and TranslationValues its parameters, so callers can
// render the message themselves.
type ArgumentError struct {
	Function          string
	Position          int
	Constraint        string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e *ArgumentError) Error() string {
	return failureMessage(e.Function, e.Position, e.Constraint)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func failureMessage(fn string, pos int, constraint string) string {
	return fmt.Sprintf("%s: invalid argument at pos %d, %s", fn, pos, constraint)
}
