package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fractal/cmd/fractal/commands"
	"go.trai.ch/fractal/internal/app"
	"go.trai.ch/fractal/internal/build"
	"go.trai.ch/fractal/internal/core/domain"
	"go.trai.ch/fractal/internal/expression"
)

type mockApp struct {
	renderFunc func(ctx context.Context, opts app.RenderOptions) (*app.RenderResult, error)
	serveFunc  func(ctx context.Context, addr string) error
}

func (m *mockApp) Render(ctx context.Context, opts app.RenderOptions) (*app.RenderResult, error) {
	if m.renderFunc != nil {
		return m.renderFunc(ctx, opts)
	}
	return &app.RenderResult{Grid: domain.NewGrid(1)}, nil
}

func (m *mockApp) Functions() []expression.Descriptor {
	return []expression.Descriptor{
		{Name: "+", Kind: "operator", Arity: 2, Signature: "a + b"},
		{Name: "sin", Kind: "function", Arity: 1, Signature: "sin(z)"},
	}
}

func (m *mockApp) Serve(ctx context.Context, addr string) error {
	if m.serveFunc != nil {
		return m.serveFunc(ctx, addr)
	}
	return nil
}

func TestCommands_Render(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.RenderOptions
		mock := &mockApp{
			renderFunc: func(_ context.Context, opts app.RenderOptions) (*app.RenderResult, error) {
				captured = opts
				p := domain.DefaultParams()
				opts.Override(&p)
				return &app.RenderResult{Fingerprint: "abc", Params: p, Status: domain.PassStatusCompleted, Grid: domain.NewGrid(p.AxisSize)}, nil
			},
		}

		cli := commands.New(mock)
		out := new(bytes.Buffer)
		cli.SetOutput(out, out)
		cli.SetArgs([]string{"render", "-c", "zoom.yaml", "-o", "out.png", "--no-snapshot", "--tui", "--kind", "julia", "--size", "32"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "zoom.yaml", captured.ConfigPath)
		assert.Equal(t, "out.png", captured.Output)
		assert.True(t, captured.NoSnapshot)
		assert.True(t, captured.TUI)
		assert.Equal(t, "julia 32x32 completed (abc)\n", out.String())
	})

	t.Run("only changed flags override the file", func(t *testing.T) {
		var p domain.Params
		mock := &mockApp{
			renderFunc: func(_ context.Context, opts app.RenderOptions) (*app.RenderResult, error) {
				p = domain.DefaultParams()
				p.OffsetX = 40
				p.HueShift = 0.5
				opts.Override(&p)
				return &app.RenderResult{Params: p, Grid: domain.NewGrid(1)}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"render", "--zoom", "4", "--offset-y=-3", "--hue-shift", "0", "--iterations", "500", "--iteration", "z^3 + c"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, 4.0, p.Magnification)
		assert.Equal(t, 40, p.OffsetX)
		assert.Equal(t, -3, p.OffsetY)
		assert.Zero(t, p.HueShift)
		assert.Equal(t, 500, p.MaxIterations)
		assert.Equal(t, "z^3 + c", p.CustomIteration)
		assert.Equal(t, domain.KindMandelbrot, p.Kind)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		mock := &mockApp{
			renderFunc: func(context.Context, app.RenderOptions) (*app.RenderResult, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"render", "--kind", "sierpinski"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownKind)
	})

	t.Run("returns error on render failure", func(t *testing.T) {
		mock := &mockApp{
			renderFunc: func(context.Context, app.RenderOptions) (*app.RenderResult, error) {
				return nil, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"render"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Serve(t *testing.T) {
	var addr string
	mock := &mockApp{
		serveFunc: func(_ context.Context, a string) error {
			addr = a
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"serve", "--addr", ":9000"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, ":9000", addr)
}

func TestCommands_Functions(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"functions"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "operator  +      a + b\nfunction  sin    sin(z)\n", buf.String())
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "fractal version "+build.Version)
}
