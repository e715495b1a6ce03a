package args_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/argkit/pkg/args"
)

const resizeSignature = `
name: resize
min: 1
max: 5
params:
  - name: width
    types: int
    policy: required
  - name: height
    types: [int]
    default: 100
  - name: mode
    choices: [fit, fill]
    default: fit
    policy: warn
  - name: filters
    list: true
    choices: [crop, blur, sharpen]
    all_choices: true
rest: true
`

func TestParseSignature(t *testing.T) {
	sig, err := args.ParseSignature([]byte(resizeSignature))
	require.NoError(t, err)

	assert.Equal(t, "resize", sig.Name)
	require.NotNil(t, sig.Min)
	require.NotNil(t, sig.Max)
	assert.Equal(t, 1, *sig.Min)
	assert.Equal(t, 5, *sig.Max)
	require.Len(t, sig.Params, 4)
	assert.Equal(t, args.Types{args.Int}, sig.Params[0].Types)
	assert.Equal(t, args.Types{args.Int}, sig.Params[1].Types)
	assert.Equal(t, 100, sig.Params[1].Default)
	assert.Equal(t, []any{"fit", "fill"}, sig.Params[2].Choices)
	assert.True(t, sig.Params[3].List)
	assert.True(t, sig.Rest)

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := args.ParseSignature([]byte("name: [unterminated"))
		assert.ErrorIs(t, err, args.ErrInvalidSignature)
	})
}

func TestSignature_Validate(t *testing.T) {
	one, two := 1, 2

	tests := []struct {
		name    string
		sig     args.Signature
		wantErr []error
		wantMsg string
	}{
		{
			name:    "missing name",
			sig:     args.Signature{Params: []args.Param{{Types: args.Types{args.Int}}}},
			wantMsg: "name is required",
		},
		{
			name:    "min above max",
			sig:     args.Signature{Name: "fn", Min: &two, Max: &one},
			wantMsg: "min 2 is greater than max 1",
		},
		{
			name:    "types and choices",
			sig:     args.Signature{Name: "fn", Params: []args.Param{{Name: "x", Types: args.Types{args.Int}, Choices: []any{1}}}},
			wantMsg: "param 0 (x): types and choices are mutually exclusive",
		},
		{
			name:    "neither types nor choices",
			sig:     args.Signature{Name: "fn", Params: []args.Param{{}}},
			wantMsg: "param 0: types or choices are required",
		},
		{
			name:    "unknown type",
			sig:     args.Signature{Name: "fn", Params: []args.Param{{Types: args.Types{"float"}}}},
			wantErr: []error{args.ErrInvalidType},
		},
		{
			name:    "unknown policy",
			sig:     args.Signature{Name: "fn", Params: []args.Param{{Types: args.Types{args.Int}, Policy: "loud"}}},
			wantErr: []error{args.ErrUnknownPolicy},
		},
		{
			name:    "list without choices",
			sig:     args.Signature{Name: "fn", Params: []args.Param{{Types: args.Types{args.Int}, List: true}}},
			wantMsg: "param 0: list requires choices",
		},
		{
			name:    "all choices without list",
			sig:     args.Signature{Name: "fn", Params: []args.Param{{Choices: []any{1}, AllChoices: true}}},
			wantMsg: "param 0: all_choices only applies to lists",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sig.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, args.ErrInvalidSignature)
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}

	t.Run("valid", func(t *testing.T) {
		sig := args.Signature{Name: "fn", Params: []args.Param{{Types: args.Types{args.String}}}}
		assert.NoError(t, sig.Validate())
	})
}

func TestSignature_Bind(t *testing.T) {
	sig, err := args.ParseSignature([]byte(resizeSignature))
	require.NoError(t, err)

	t.Run("all params supplied", func(t *testing.T) {
		log, records := captureLog(t)
		out, err := sig.Bind([]any{"640", "480", "fill", []any{"crop", "x"}, "extra"}, args.WithLogger(log))
		require.NoError(t, err)
		assert.Equal(t, []any{640, 480, "fill", []any{"crop"}, []any{"extra"}}, out)

		recs := records()
		require.Len(t, recs, 1)
		assert.Equal(t, "resize: invalid choice x, must be one of [crop,blur,sharpen]", recs[0]["msg"])
	})

	t.Run("defaults fill missing params", func(t *testing.T) {
		log, records := captureLog(t)
		out, err := sig.Bind([]any{640}, args.WithLogger(log))
		require.NoError(t, err)
		assert.Equal(t, []any{640, 100, "fit", []any{"crop", "blur", "sharpen"}, []any{}}, out)

		// mode is the only param with a logging policy
		recs := records()
		require.Len(t, recs, 1)
		assert.Equal(t, "resize: invalid argument at pos 2, must be one of fit,fill", recs[0]["msg"])
	})

	t.Run("required param", func(t *testing.T) {
		_, err := sig.Bind([]any{"wide"})
		assert.EqualError(t, err, "resize: invalid argument at pos 0, must be of type int")
	})

	t.Run("argument count", func(t *testing.T) {
		_, err := sig.Bind(nil)
		assert.EqualError(t, err, "resize must be called with 1 to 5 arguments, but received 0")
		assert.ErrorIs(t, err, args.ErrArgCount)
	})

	t.Run("warn param follows cursor warn policy", func(t *testing.T) {
		log, records := captureLog(t)
		_, err := sig.Bind([]any{640}, args.WithLogger(log), args.WithWarnPolicy(args.Silent))
		require.NoError(t, err)
		assert.Empty(t, records())
	})

	t.Run("list default from scalar and sequence", func(t *testing.T) {
		s := args.Signature{
			Name: "tags",
			Params: []args.Param{
				{Choices: []any{"a", "b"}, List: true, Default: "a"},
				{Choices: []any{"a", "b"}, List: true, Default: []any{"b", "a"}},
				{Choices: []any{"a", "b"}, List: true},
			},
		}
		out, err := s.Bind(nil)
		require.NoError(t, err)
		require.Len(t, out, 3)
		assert.Equal(t, []any{"a"}, out[0])
		assert.Equal(t, []any{"b", "a"}, out[1])
		assert.Nil(t, out[2])
	})

	t.Run("invalid signature", func(t *testing.T) {
		s := args.Signature{Name: "fn", Params: []args.Param{{Types: args.Types{"float"}}}}
		_, err := s.Bind([]any{1})
		assert.ErrorIs(t, err, args.ErrInvalidType)
	})
}
