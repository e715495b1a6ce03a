package luaargs

import (
	"github.com/Shopify/go-lua"

	"github.com/dmitrymomot/argkit/pkg/args"
)

// Func implements a Lua function on top of a cursor over its arguments.
// The returned values are pushed back to Lua in order.
type Func func(c *args.Cursor) ([]any, error)

// Binding describes a Go function exposed to Lua. Min and Max bound the
// argument count; a negative Max leaves it unbounded.
type Binding struct {
	Name string
	Min  int
	Max  int
	Fn   Func
}

// Wrap turns b into a lua.Function. Count errors and errors returned by Fn
// are raised as Lua errors carrying the error message.
func Wrap(b Binding, opts ...args.Option) lua.Function {
	if b.Name == "" || b.Fn == nil {
		panic("luaargs: binding requires a name and a function")
	}
	return func(l *lua.State) int {
		bounds := []args.Option{args.WithMin(b.Min)}
		if b.Max >= 0 {
			bounds = append(bounds, args.WithMax(b.Max))
		}
		c, err := args.New(b.Name, Values(l), append(bounds, opts...)...)
		if err != nil {
			lua.Errorf(l, "%s", err.Error())
			return 0
		}
		out, err := b.Fn(c)
		if err != nil {
			lua.Errorf(l, "%s", err.Error())
			return 0
		}
		for _, v := range out {
			Push(l, v)
		}
		return len(out)
	}
}

// Register installs every binding as a global function.
func Register(l *lua.State, bindings []Binding, opts ...args.Option) {
	for _, b := range bindings {
		l.Register(b.Name, Wrap(b, opts...))
	}
}

// RegisterLib installs the bindings as fields of a global table called name.
func RegisterLib(l *lua.State, name string, bindings []Binding, opts ...args.Option) {
	l.CreateTable(0, len(bindings))
	for _, b := range bindings {
		l.PushGoFunction(Wrap(b, opts...))
		l.SetField(-2, b.Name)
	}
	l.SetGlobal(name)
}
