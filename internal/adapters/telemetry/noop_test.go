package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fractal/internal/adapters/telemetry"
	"go.trai.ch/fractal/internal/core/domain"
	"go.trai.ch/fractal/internal/core/ports"
)

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()
	ctx, v := tel.Record(context.Background(), "render mandelbrot")

	got, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, v, got)

	n, err := v.Stdout().Write([]byte("column 3/256\n"))
	require.NoError(t, err)
	assert.Equal(t, 13, n)

	v.Log(domain.LogLevelInfo, "ignored")
	v.Cached()
	v.Complete(nil)
	assert.NoError(t, tel.Close())
}
