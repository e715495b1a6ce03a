// Package luaargs exposes Go functions to Lua scripts running on
// github.com/Shopify/go-lua and validates their arguments with args.Cursor.
//
// Lua passes every function a loosely-typed list of positional arguments.
// Values converts that list into Go values and Wrap feeds it through a
// cursor, so a binding only declares what it expects:
//
//	luaargs.Register(l, []luaargs.Binding{{
//	    Name: "repeat_str",
//	    Min:  1,
//	    Max:  2,
//	    Fn: func(c *args.Cursor) ([]any, error) {
//	        s, err := c.NextRequired(args.String)
//	        if err != nil {
//	            return nil, err
//	        }
//	        n := c.Next(args.Int, 1).(int)
//	        return []any{strings.Repeat(s.(string), n)}, nil
//	    },
//	}})
//
// Count and required failures surface in Lua as errors, so scripts can catch
// them with pcall.
package luaargs
