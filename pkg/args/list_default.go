package args

// ListDefault is what a list pull returns when no valid choice was supplied.
type ListDefault struct {
	values []any
	all    bool
}

var (
	// NoDefault makes failed list pulls return nil.
	NoDefault = ListDefault{}

	// AllChoices makes failed list pulls return the full choice set.
	AllChoices = ListDefault{all: true}
)

// DefaultList makes failed list pulls return the given values.
func DefaultList(values ...any) ListDefault {
	return ListDefault{values: values}
}

func (d ListDefault) resolve(choices []any) []any {
	if d.all {
		return choices
	}
	return d.values
}
