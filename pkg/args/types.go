package args

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Type is a tag naming what an argument must look like.
type Type string

const (
	Array         Type = "array"
	String        Type = "string"
	Number        Type = "number"
	Int           Type = "int"
	Object        Type = "object"
	Function      Type = "function"
	Bool          Type = "bool"
	Boolean       Type = "boolean"
	StrictBoolean Type = "strict_boolean"
)

// TypeSpec is either a single Type or an ordered Types set.
type TypeSpec interface {
	tags() []Type
}

// Types is an ordered set of tags. A value matches when it satisfies any of
// them; coercion always follows the first tag.
type Types []Type

func (t Type) tags() []Type  { return []Type{t} }
func (t Types) tags() []Type { return t }

func (t Type) String() string { return string(t) }

func (t Types) String() string {
	parts := make([]string, len(t))
	for i, tag := range t {
		parts[i] = string(tag)
	}
	return strings.Join(parts, ",")
}

// Valid reports whether the tag is one of the recognized type tags.
func (t Type) Valid() bool {
	switch t {
	case Array, String, Number, Int, Object, Function, Bool, Boolean, StrictBoolean:
		return true
	}
	return false
}

// UnmarshalYAML accepts either a single tag or a sequence of tags.
func (t *Types) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*t = Types{Type(node.Value)}
		return nil
	}
	var tags []Type
	if err := node.Decode(&tags); err != nil {
		return err
	}
	*t = tags
	return nil
}

func checkTypes(spec TypeSpec) []Type {
	if spec == nil {
		panic(fmt.Errorf("%w: no type given", ErrInvalidType))
	}
	tags := spec.tags()
	if len(tags) == 0 {
		panic(fmt.Errorf("%w: no type given", ErrInvalidType))
	}
	for _, t := range tags {
		if !t.Valid() {
			panic(fmt.Errorf("%w: %q", ErrInvalidType, string(t)))
		}
	}
	return tags
}

func matches(v any, t Type) bool {
	switch t {
	case Array:
		return kindOf(v) == kindSequence
	case String:
		return true
	case Number:
		return hasFiniteInt(v)
	case Int:
		return hasFiniteFloat(v)
	case Object:
		return kindOf(v) == kindComposite
	case Function:
		return kindOf(v) == kindFunction
	case Bool, Boolean:
		return !isObject(v)
	case StrictBoolean:
		_, ok := v.(bool)
		return ok
	}
	return false
}

func matchesAny(v any, tags []Type) bool {
	for _, t := range tags {
		if matches(v, t) {
			return true
		}
	}
	return false
}

func coerce(v any, t Type) any {
	switch t {
	case Array:
		if kindOf(v) == kindSequence {
			return v
		}
		return []any{v}
	case String:
		return stringify(v)
	case Number:
		return toFloat(v)
	case Int:
		return toInt(v)
	case Bool, Boolean, StrictBoolean:
		return truthy(v)
	}
	return v
}
