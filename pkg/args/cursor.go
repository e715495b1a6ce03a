package args

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"golang.org/x/text/cases"

	"github.com/dmitrymomot/argkit/pkg/logger"
)

// Cursor walks a positional argument list from the front. Every pull
// advances the position by one and consumes at most one argument.
// A Cursor belongs to a single call and is not safe for concurrent use.
type Cursor struct {
	name      string
	remaining []any
	pos       int

	min, max int
	maxSet   bool

	log  *slog.Logger
	ctx  context.Context
	warn Policy
	fold *cases.Caser
}

// New captures argv for the function called name. It panics when name is
// empty and returns a *CountError when len(argv) is outside the bounds set
// with WithMin, WithMax, WithRange or WithExact.
func New(name string, argv []any, opts ...Option) (*Cursor, error) {
	if name == "" {
		panic(ErrEmptyName)
	}

	c := &Cursor{
		name:      name,
		remaining: make([]any, len(argv)),
		pos:       -1,
		log:       slog.Default(),
		ctx:       context.Background(),
		warn:      Warn,
	}
	copy(c.remaining, argv)

	for _, opt := range opts {
		opt(c)
	}
	if !c.maxSet {
		c.max = len(argv)
	}

	if n := len(argv); n < c.min || n > c.max {
		return nil, &CountError{Function: name, Min: c.min, Max: c.max, Received: n}
	}
	return c, nil
}

func (c *Cursor) Name() string { return c.name }

// Position is the zero-based index of the last argument slot examined, or
// -1 before the first pull.
func (c *Cursor) Position() int { return c.pos }

// Len is the number of arguments not consumed yet.
func (c *Cursor) Len() int { return len(c.remaining) }

// RestAsList returns a copy of the arguments not consumed yet.
func (c *Cursor) RestAsList() []any {
	out := make([]any, len(c.remaining))
	copy(out, c.remaining)
	return out
}

// Next returns the next argument coerced to the first tag of types, or def.
func (c *Cursor) Next(types TypeSpec, def any) any {
	v, _ := c.NextWith(Silent, types, def)
	return v
}

// NextWarn is Next, logging through the cursor's warn policy on failure.
func (c *Cursor) NextWarn(types TypeSpec, def any) any {
	v, _ := c.NextWith(c.warn, types, def)
	return v
}

// NextRequired is Next that fails with an *ArgumentError instead of
// returning a default.
func (c *Cursor) NextRequired(types TypeSpec) (any, error) {
	return c.NextWith(Required, types, nil)
}

// NextWith pulls a typed argument under an explicit policy. It panics when
// types contains an unknown tag.
func (c *Cursor) NextWith(p Policy, types TypeSpec, def any) (any, error) {
	tags := checkTypes(types)
	c.pos++
	if len(c.remaining) > 0 && matchesAny(c.remaining[0], tags) {
		return coerce(c.shift(), tags[0]), nil
	}
	if err := c.fail(p, fmt.Sprintf("must be of type %s", Types(tags)), "args.must_be_type", map[string]any{"types": Types(tags).String()}); err != nil {
		return nil, err
	}
	return def, nil
}

// NextFrom returns the next argument when it is one of choices, or def.
func (c *Cursor) NextFrom(choices []any, def any) any {
	v, _ := c.NextFromWith(Silent, choices, def)
	return v
}

func (c *Cursor) NextFromWarn(choices []any, def any) any {
	v, _ := c.NextFromWith(c.warn, choices, def)
	return v
}

func (c *Cursor) NextFromRequired(choices []any) (any, error) {
	return c.NextFromWith(Required, choices, nil)
}

// NextFromWith pulls a choice argument under an explicit policy. The value
// is returned exactly as supplied.
func (c *Cursor) NextFromWith(p Policy, choices []any, def any) (any, error) {
	c.pos++
	if len(c.remaining) > 0 && c.contains(choices, c.remaining[0]) {
		return c.shift(), nil
	}
	if err := c.fail(p, fmt.Sprintf("must be one of %s", joinValues(choices)), "args.must_be_one_of", map[string]any{"choices": choices}); err != nil {
		return nil, err
	}
	return def, nil
}

// ListFrom pulls a list of choices. A sequence argument is filtered down to
// its members of choices; a scalar argument becomes a one element list.
// Rejected values are always logged at warn level.
func (c *Cursor) ListFrom(choices []any, def ListDefault) []any {
	v, _ := c.ListFromWith(Silent, choices, def)
	return v
}

func (c *Cursor) ListFromWarn(choices []any, def ListDefault) []any {
	v, _ := c.ListFromWith(c.warn, choices, def)
	return v
}

func (c *Cursor) ListFromRequired(choices []any) ([]any, error) {
	return c.ListFromWith(Required, choices, NoDefault)
}

func (c *Cursor) ListFromWith(p Policy, choices []any, def ListDefault) ([]any, error) {
	c.pos++
	var out []any
	if len(c.remaining) > 0 {
		head := c.remaining[0]
		if !isEmpty(head) && (kindOf(head) == kindSequence || !isObject(head)) {
			c.shift()
			if kindOf(head) == kindSequence {
				for _, v := range toSlice(head) {
					if c.contains(choices, v) {
						out = append(out, v)
					} else {
						c.badChoice(v, choices)
					}
				}
			} else if c.contains(choices, head) {
				out = []any{head}
			} else {
				c.badChoice(head, choices)
			}
		}
	}
	if len(out) > 0 {
		return out, nil
	}
	if err := c.fail(p, fmt.Sprintf("choices must be in [%s]", joinValues(choices)), "args.choices_must_be_in", map[string]any{"choices": choices}); err != nil {
		return nil, err
	}
	return def.resolve(choices), nil
}

func (c *Cursor) shift() any {
	v := c.remaining[0]
	c.remaining = c.remaining[1:]
	return v
}

func (c *Cursor) contains(choices []any, v any) bool {
	return slices.ContainsFunc(choices, func(choice any) bool {
		return c.equal(choice, v)
	})
}

func (c *Cursor) equal(a, b any) bool {
	if c.fold != nil {
		as, aok := a.(string)
		bs, bok := b.(string)
		if aok && bok {
			return c.fold.String(as) == c.fold.String(bs)
		}
	}
	return reflect.DeepEqual(a, b)
}

// fail applies p to a validation failure at the current position.
func (c *Cursor) fail(p Policy, constraint, key string, values map[string]any) error {
	switch p.mode {
	case modeRequired:
		tv := map[string]any{"function": c.name, "position": c.pos}
		for k, v := range values {
			tv[k] = v
		}
		return &ArgumentError{
			Function:          c.name,
			Position:          c.pos,
			Constraint:        constraint,
			TranslationKey:    key,
			TranslationValues: tv,
		}
	case modeLog:
		c.log.LogAttrs(c.ctx, p.level, failureMessage(c.name, c.pos, constraint),
			logger.Function(c.name),
			logger.Position(c.pos),
			logger.Constraint(constraint),
		)
	}
	return nil
}

func (c *Cursor) badChoice(v any, choices []any) {
	c.log.LogAttrs(c.ctx, slog.LevelWarn,
		fmt.Sprintf("%s: invalid choice %s, must be one of [%s]", c.name, stringify(v), joinValues(choices)),
		logger.Function(c.name),
		logger.Position(c.pos),
		logger.Choice(v),
	)
}
