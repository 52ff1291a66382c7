package print

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/tickseq/internal/registry"
)

func TestPrinter(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)
	require.NoError(t, r.Validate(context.Background()))

	def, ok := r.Lookup("print")
	require.True(t, ok)

	var out bytes.Buffer
	a, err := def.New(registry.Env{Name: "done", Out: &out}, &Input{Message: "Finished"})
	require.NoError(t, err)

	done, err := a.Tick(context.Background())
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "Finished\n", out.String())
}
