package args

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Param declares a single positional argument. Exactly one of Types or
// Choices must be set; List turns a choice param into a list pull.
type Param struct {
	Name       string `yaml:"name"`
	Types      Types  `yaml:"types,omitempty"`
	Choices    []any  `yaml:"choices,omitempty"`
	List       bool   `yaml:"list,omitempty"`
	Default    any    `yaml:"default,omitempty"`
	AllChoices bool   `yaml:"all_choices,omitempty"`
	Policy     string `yaml:"policy,omitempty"`
}

// Signature is a declarative description of a function's positional
// arguments. Min and Max bound the argument count when set.
type Signature struct {
	Name   string  `yaml:"name"`
	Min    *int    `yaml:"min,omitempty"`
	Max    *int    `yaml:"max,omitempty"`
	Params []Param `yaml:"params"`
	Rest   bool    `yaml:"rest,omitempty"`
}

// ParseSignature decodes a YAML signature and validates it.
func ParseSignature(data []byte) (*Signature, error) {
	var s Signature
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Join(ErrInvalidSignature, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate reports every problem in the declaration at once.
func (s *Signature) Validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if s.Min != nil && s.Max != nil && *s.Min > *s.Max {
		errs = append(errs, fmt.Errorf("min %d is greater than max %d", *s.Min, *s.Max))
	}
	for i, p := range s.Params {
		label := fmt.Sprintf("param %d", i)
		if p.Name != "" {
			label = fmt.Sprintf("param %d (%s)", i, p.Name)
		}
		switch {
		case len(p.Types) > 0 && len(p.Choices) > 0:
			errs = append(errs, fmt.Errorf("%s: types and choices are mutually exclusive", label))
		case len(p.Types) == 0 && len(p.Choices) == 0:
			errs = append(errs, fmt.Errorf("%s: types or choices are required", label))
		}
		for _, t := range p.Types {
			if !t.Valid() {
				errs = append(errs, fmt.Errorf("%s: %w: %q", label, ErrInvalidType, string(t)))
			}
		}
		if p.List && len(p.Choices) == 0 {
			errs = append(errs, fmt.Errorf("%s: list requires choices", label))
		}
		if p.AllChoices && !p.List {
			errs = append(errs, fmt.Errorf("%s: all_choices only applies to lists", label))
		}
		if _, err := ParsePolicy(p.Policy); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", label, err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalidSignature}, errs...)...)
}

// Bind pulls one value per param from argv, in order. When Rest is set the
// unconsumed arguments are appended as a final []any value.
func (s *Signature) Bind(argv []any, opts ...Option) ([]any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var bounds []Option
	if s.Min != nil {
		bounds = append(bounds, WithMin(*s.Min))
	}
	if s.Max != nil {
		bounds = append(bounds, WithMax(*s.Max))
	}
	c, err := New(s.Name, argv, slices.Concat(opts, bounds)...)
	if err != nil {
		return nil, err
	}

	out := make([]any, 0, len(s.Params)+1)
	for _, p := range s.Params {
		v, err := p.pull(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if s.Rest {
		out = append(out, c.RestAsList())
	}
	return out, nil
}

func (p Param) pull(c *Cursor) (any, error) {
	policy := MustParsePolicy(p.Policy)
	if strings.EqualFold(strings.TrimSpace(p.Policy), "warn") {
		policy = c.warn
	}

	switch {
	case p.List:
		v, err := c.ListFromWith(policy, p.Choices, p.listDefault())
		if err != nil {
			return nil, err
		}
		return v, nil
	case len(p.Choices) > 0:
		return c.NextFromWith(policy, p.Choices, p.Default)
	default:
		return c.NextWith(policy, p.Types, p.Default)
	}
}

func (p Param) listDefault() ListDefault {
	switch {
	case p.AllChoices:
		return AllChoices
	case p.Default == nil:
		return NoDefault
	case kindOf(p.Default) == kindSequence:
		return DefaultList(toSlice(p.Default)...)
	default:
		return DefaultList(p.Default)
	}
}
