package luaargs

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/Shopify/go-lua"
)

// Values converts the arguments of the running Go function, stack slots
// 1 to Top, into Go values.
func Values(l *lua.State) []any {
	n := l.Top()
	out := make([]any, n)
	for i := 1; i <= n; i++ {
		out[i-1] = ToGo(l, i)
	}
	return out
}

// ToGo converts the Lua value at index. Integral numbers become int, other
// numbers float64. Tables with keys 1..n become []any, other tables
// map[string]any (non-string keys are dropped). Functions become a Go func
// that calls back into l and is only valid while the value stays on the stack.
// A table that contains itself, directly or through a descendant, converts
// to nil at the point where it recurs.
func ToGo(l *lua.State, index int) any {
	return toGo(l, index, map[any]bool{})
}

// toGo converts the value at index. open holds the tables currently being
// converted on the path from the root value.
func toGo(l *lua.State, index int, open map[any]bool) any {
	switch l.TypeOf(index) {
	case lua.TypeString:
		s, _ := l.ToString(index)
		return s
	case lua.TypeNumber:
		f, _ := l.ToNumber(index)
		return normalizeNumber(f)
	case lua.TypeBoolean:
		return l.ToBoolean(index)
	case lua.TypeTable:
		return tableToGo(l, index, open)
	case lua.TypeFunction:
		return callable(l, l.AbsIndex(index))
	case lua.TypeUserData, lua.TypeLightUserData:
		return l.ToUserData(index)
	default:
		return nil
	}
}

func normalizeNumber(f float64) any {
	if math.Mod(f, 1) == 0 && f >= math.MinInt64 && f < math.MaxInt64 {
		return int(f)
	}
	return f
}

func tableToGo(l *lua.State, index int, open map[any]bool) any {
	index = l.AbsIndex(index)

	id := l.ToValue(index)
	if open[id] {
		return nil
	}
	open[id] = true
	defer delete(open, id)

	if !l.CheckStack(3) {
		lua.Errorf(l, "table nesting too deep to convert")
	}

	isArray := true
	count, maxIndex := 0, 0
	l.PushNil()
	for l.Next(index) {
		if isArray {
			if l.TypeOf(-2) != lua.TypeNumber {
				isArray = false
			} else if i, ok := l.ToInteger(-2); ok && i > 0 {
				count++
				maxIndex = max(maxIndex, i)
			} else {
				isArray = false
			}
		}
		l.Pop(1)
	}

	if isArray && count > 0 && count == maxIndex {
		out := make([]any, 0, count)
		for i := 1; i <= count; i++ {
			l.RawGetInt(index, i)
			out = append(out, toGo(l, -1, open))
			l.Pop(1)
		}
		return out
	}

	out := map[string]any{}
	l.PushNil()
	for l.Next(index) {
		if l.TypeOf(-2) == lua.TypeString {
			key, _ := l.ToString(-2)
			out[key] = toGo(l, -1, open)
		}
		l.Pop(1)
	}
	return out
}

// callable wraps the Lua function at the absolute index abs.
func callable(l *lua.State, abs int) func(...any) ([]any, error) {
	return func(in ...any) ([]any, error) {
		top := l.Top()
		defer l.SetTop(top)

		l.PushValue(abs)
		for _, v := range in {
			Push(l, v)
		}
		if err := l.ProtectedCall(len(in), lua.MultipleReturns, 0); err != nil {
			return nil, err
		}
		out := make([]any, 0, l.Top()-top)
		for i := top + 1; i <= l.Top(); i++ {
			out = append(out, ToGo(l, i))
		}
		return out, nil
	}
}

// Push converts v to a Lua value and pushes it. Slices become sequences,
// maps with string keys become tables, and anything else is pushed as
// userdata.
func Push(l *lua.State, v any) {
	switch t := v.(type) {
	case nil:
		l.PushNil()
	case string:
		l.PushString(t)
	case bool:
		l.PushBoolean(t)
	case int:
		l.PushInteger(t)
	case float64:
		l.PushNumber(t)
	case []any:
		pushSequence(l, t)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		l.CreateTable(0, len(t))
		for _, k := range keys {
			Push(l, t[k])
			l.SetField(-2, k)
		}
	case lua.Function:
		l.PushGoFunction(t)
	default:
		pushReflect(l, v)
	}
}

func pushSequence(l *lua.State, vs []any) {
	l.CreateTable(len(vs), 0)
	for i, v := range vs {
		Push(l, v)
		l.RawSetInt(-2, i+1)
	}
}

func pushReflect(l *lua.State, v any) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		l.PushInteger(int(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		l.PushNumber(float64(rv.Uint()))
	case reflect.Float32:
		l.PushNumber(rv.Float())
	case reflect.String:
		l.PushString(rv.String())
	case reflect.Slice, reflect.Array:
		vs := make([]any, rv.Len())
		for i := range vs {
			vs[i] = rv.Index(i).Interface()
		}
		pushSequence(l, vs)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			l.PushUserData(v)
			return
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		Push(l, m)
	default:
		if s, ok := v.(fmt.Stringer); ok {
			l.PushString(s.String())
			return
		}
		l.PushUserData(v)
	}
}
