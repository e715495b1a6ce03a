package args

import (
	"fmt"
	"log/slog"
	"strings"
)

type policyMode uint8

const (
	modeSilent policyMode = iota
	modeLog
	modeRequired
)

// Policy decides what a pull does when the argument does not validate:
// return the default silently, log and return the default, or fail.
// The zero value is Silent.
type Policy struct {
	mode  policyMode
	level slog.Level
}

var (
	// Silent returns the default value without any diagnostic.
	Silent = Policy{mode: modeSilent}

	// Warn logs the failure at warn level and returns the default value.
	Warn = LogAt(slog.LevelWarn)

	// Required turns the failure into an *ArgumentError.
	Required = Policy{mode: modeRequired}
)

// LogAt returns a policy that logs failures at the given level and falls back
// to the default value.
func LogAt(level slog.Level) Policy {
	return Policy{mode: modeLog, level: level}
}

// ParsePolicy resolves a policy by name. Accepted names are "silent" (or ""
// and "false"), "required" (or "true") and any slog level name such as
// "warn" or "debug".
func ParsePolicy(name string) (Policy, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "", "silent", "false":
		return Silent, nil
	case "required", "true":
		return Required, nil
	case "debug", "info", "warn", "error":
		var level slog.Level
		if err := level.UnmarshalText([]byte(n)); err != nil {
			return Policy{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
		}
		return LogAt(level), nil
	default:
		return Policy{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// MustParsePolicy is like ParsePolicy but panics on unknown names.
func MustParsePolicy(name string) Policy {
	p, err := ParsePolicy(name)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Policy) IsSilent() bool   { return p.mode == modeSilent }
func (p Policy) IsRequired() bool { return p.mode == modeRequired }

// Level reports the log level of a logging policy.
func (p Policy) Level() (slog.Level, bool) {
	return p.level, p.mode == modeLog
}

func (p Policy) String() string {
	switch p.mode {
	case modeRequired:
		return "required"
	case modeLog:
		return strings.ToLower(p.level.String())
	default:
		return "silent"
	}
}
