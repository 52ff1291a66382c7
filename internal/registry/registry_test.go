package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopAction struct{}

func (noopAction) Tick(context.Context) (bool, error) { return true, nil }

type goodInput struct {
	Count int    `tickseq:"count"`
	Label string `tickseq:"label,optional"`
	Extra func() // untagged fields are ignored
}

func newNoop(Env, any) (Action, error) { return noopAction{}, nil }

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := New()
	r.Register("zeta", &Definition{NewInput: func() any { return &goodInput{} }, New: newNoop})
	r.Register("alpha", &Definition{NewInput: func() any { return &goodInput{} }, New: newNoop})

	def, ok := r.Lookup("alpha")
	require.True(t, ok)
	action, err := def.New(Env{Name: "a"}, def.NewInput())
	require.NoError(t, err)
	done, err := action.Tick(context.Background())
	require.NoError(t, err)
	assert.True(t, done)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"alpha", "zeta"}, r.Kinds())
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := New()
	def := &Definition{NewInput: func() any { return &goodInput{} }, New: newNoop}
	r.Register("count", def)
	assert.Panics(t, func() { r.Register("count", def) })
}

func TestRegistry_Validate(t *testing.T) {
	type badField struct {
		Callback func() `tickseq:"callback"`
	}

	testCases := []struct {
		name    string
		def     *Definition
		wantErr string
	}{
		{
			name: "valid",
			def:  &Definition{NewInput: func() any { return &goodInput{} }, New: newNoop},
		},
		{
			name:    "missing factory",
			def:     &Definition{NewInput: func() any { return &goodInput{} }},
			wantErr: "needs both NewInput and New",
		},
		{
			name:    "input not a struct pointer",
			def:     &Definition{NewInput: func() any { return goodInput{} }, New: newNoop},
			wantErr: "must return a non-nil pointer to a struct",
		},
		{
			name:    "unsupported field type",
			def:     &Definition{NewInput: func() any { return &badField{} }, New: newNoop},
			wantErr: "argument 'callback': unsupported Go field type",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := New()
			r.Register("kind", tc.def)
			err := r.Validate(context.Background())
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
