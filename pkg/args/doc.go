// Package args validates and coerces loosely-typed positional argument lists
// in a single declarative pass.
//
// A Cursor wraps a copy of the arguments a function received. The function
// then pulls its parameters in order, declaring for each one what it must be
// and what happens when it is not:
//
//	c, err := args.New("resize", argv, args.WithRange(1, 3))
//	if err != nil {
//	    return err
//	}
//	width, err := c.NextRequired(args.Int)
//	if err != nil {
//	    return err
//	}
//	height := c.Next(args.Int, width)
//	mode := c.NextFromWarn([]any{"fit", "fill"}, "fit")
//
// # Pulls
//
// Every pull advances Position by one and consumes at most one argument.
// There are three families:
//
//   - Next: the argument must match a Type tag (or any tag of a Types set)
//     and is coerced using the first tag.
//   - NextFrom: the argument must equal one of a choice set and is returned
//     unchanged.
//   - ListFrom: the argument is a sequence (or a single scalar) filtered down
//     to members of a choice set. Rejected elements are logged one by one.
//
// # Policies
//
// Each family comes in three flavours that differ only in what happens when
// validation fails: the bare form returns the default silently, the Warn form
// logs through slog and returns the default, and the Required form returns an
// *ArgumentError. The *With forms take an explicit Policy.
//
// Programming errors are not subject to policies: an empty function name or
// an unknown type tag panics.
//
// # Signatures
//
// Signature describes all params of a function as data, usually decoded from
// YAML with ParseSignature, and binds an argument list in one call.
package args
