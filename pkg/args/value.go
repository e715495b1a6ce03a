package args

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

// kind is the coarse shape of an argument value.
type kind uint8

const (
	kindNull kind = iota
	kindScalar
	kindSequence
	kindComposite
	kindFunction
)

func kindOf(v any) kind {
	if v == nil {
		return kindNull
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return kindNull
		}
		return kindSequence
	case reflect.Array:
		return kindSequence
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return kindNull
		}
		return kindComposite
	case reflect.Struct:
		return kindComposite
	case reflect.Func:
		if rv.IsNil() {
			return kindNull
		}
		return kindFunction
	default:
		return kindScalar
	}
}

// isObject mirrors the loose notion of "object": sequences and composites.
func isObject(v any) bool {
	k := kindOf(v)
	return k == kindSequence || k == kindComposite
}

func isEmpty(v any) bool {
	switch kindOf(v) {
	case kindNull:
		return true
	case kindSequence:
		return reflect.ValueOf(v).Len() == 0
	case kindComposite:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Map:
			return rv.Len() == 0
		case reflect.Struct:
			return rv.NumField() == 0
		}
		return false
	case kindScalar:
		s, ok := v.(string)
		return ok && s == ""
	}
	return false
}

// toSlice returns the elements of a sequence value.
func toSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// formatFloat renders f the way a JavaScript number prints: plain decimals
// between 1e-6 and 1e21, exponent form outside that range with an unpadded
// exponent ("1e+21", "1.5e-7").
func formatFloat(f float64, bitSize int) string {
	abs := math.Abs(f)
	if abs == 0 || math.IsInf(f, 0) || math.IsNaN(f) || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'e', -1, bitSize)
	i := strings.IndexByte(s, 'e')
	exp := strings.TrimLeft(s[i+2:], "0")
	return s[:i+2] + exp
}

// stringify renders a value the way it is compared against numeric prefixes
// and returned by the string tag. Sequences join their elements with commas.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return formatFloat(t, 64)
	case float32:
		return formatFloat(float64(t), 32)
	case fmt.Stringer:
		return t.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Slice, reflect.Array:
		if kindOf(v) == kindNull {
			return ""
		}
		return joinValues(toSlice(v))
	}
	return fmt.Sprint(v)
}

func joinValues(vs []any) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = stringify(v)
	}
	return strings.Join(parts, ",")
}

// truthy reports whether a value counts as true when coerced to a boolean.
func truthy(v any) bool {
	switch kindOf(v) {
	case kindNull:
		return false
	case kindSequence, kindComposite, kindFunction:
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

func trimLeadingSpace(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// intPrefix returns the leading base-10 integer of s, if any.
func intPrefix(s string) (string, bool) {
	s = trimLeadingSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return "", false
	}
	return s[:i], true
}

// floatPrefix returns the longest leading decimal literal of s, including
// the word Infinity.
func floatPrefix(s string) (string, bool) {
	s = trimLeadingSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return s[:i+len("Infinity")], true
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return "", false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := j
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j > exp {
			i = j
		}
	}
	return s[:i], true
}

func parseFloatPrefix(s string) (float64, bool) {
	p, ok := floatPrefix(s)
	if !ok {
		return math.NaN(), false
	}
	switch strings.TrimLeft(p, "+-") {
	case "Infinity":
		if strings.HasPrefix(p, "-") {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}
	// Out of range literals come back as ±Inf alongside the error.
	f, _ := strconv.ParseFloat(p, 64)
	return f, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// hasFiniteInt reports whether the value starts with a base-10 integer small
// enough to be represented as a finite float.
func hasFiniteInt(v any) bool {
	p, ok := intPrefix(stringify(v))
	if !ok {
		return false
	}
	f, _ := strconv.ParseFloat(p, 64)
	return isFinite(f)
}

func hasFiniteFloat(v any) bool {
	f, ok := parseFloatPrefix(stringify(v))
	return ok && isFinite(f)
}

func toFloat(v any) float64 {
	f, ok := parseFloatPrefix(stringify(v))
	if !ok {
		return math.NaN()
	}
	return f
}

// toInt parses the leading integer of the value. Values such as ".5" have a
// float prefix but no integer prefix; those are truncated instead.
func toInt(v any) int {
	s := stringify(v)
	if p, ok := intPrefix(s); ok {
		// ParseInt saturates on overflow.
		n, _ := strconv.ParseInt(p, 10, 64)
		return int(n)
	}
	f, ok := parseFloatPrefix(s)
	if !ok || !isFinite(f) {
		return 0
	}
	return int(math.Trunc(f))
}
