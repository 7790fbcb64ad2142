package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fractal/internal/core/domain"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.Kind
	}{
		{"mandelbrot", domain.KindMandelbrot},
		{"Burning_Ship", domain.KindBurningShip},
		{" julia ", domain.KindJulia},
		{"NEWTON", domain.KindNewton},
		{"buddhabrot", domain.KindBuddhabrot},
		{"custom", domain.KindCustom},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseKind(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := domain.ParseKind("sierpinski")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownKind))
}

func TestKindJSON(t *testing.T) {
	data, err := json.Marshal(domain.KindBurningShip)
	require.NoError(t, err)
	assert.JSONEq(t, `"burning-ship"`, string(data))

	var k domain.Kind
	require.NoError(t, json.Unmarshal([]byte(`"mandelbar"`), &k))
	assert.Equal(t, domain.KindMandelbar, k)

	_, err = json.Marshal(domain.Kind(42))
	require.Error(t, err)
}

func TestKinds(t *testing.T) {
	kinds := domain.Kinds()
	require.Len(t, kinds, 7)
	for _, k := range kinds {
		assert.True(t, k.Valid())
		assert.Equal(t, k == domain.KindBuddhabrot, k.PlaneSweep())
	}
	assert.Equal(t, "unknown", domain.Kind(-1).String())
}

func TestParams_Validate(t *testing.T) {
	assert.NoError(t, domain.DefaultParams().Validate())

	tests := []struct {
		name   string
		mutate func(*domain.Params)
		target error
	}{
		{"unknown kind", func(p *domain.Params) { p.Kind = 99 }, domain.ErrUnknownKind},
		{"zero size", func(p *domain.Params) { p.AxisSize = 0 }, domain.ErrInvalidParams},
		{"low magnification", func(p *domain.Params) { p.Magnification = 0.5 }, domain.ErrInvalidParams},
		{"no iterations", func(p *domain.Params) { p.MaxIterations = 0 }, domain.ErrInvalidParams},
		{"negative threshold", func(p *domain.Params) { p.Threshold = -1 }, domain.ErrInvalidParams},
		{"custom without formula", func(p *domain.Params) {
			p.Kind = domain.KindCustom
			p.CustomIteration = ""
		}, domain.ErrInvalidParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestRequiresInvalidation(t *testing.T) {
	base := domain.DefaultParams()

	preserving := []func(*domain.Params){
		func(p *domain.Params) { p.HueShift = 0.25 },
		func(p *domain.Params) { p.OffsetX, p.OffsetY = 10, -3 },
		func(p *domain.Params) { p.UsePivot, p.PivotX, p.PivotY = true, 4, 5 },
	}
	for _, mutate := range preserving {
		next := base
		mutate(&next)
		assert.False(t, domain.RequiresInvalidation(base, next))
	}

	invalidating := []func(*domain.Params){
		func(p *domain.Params) { p.Magnification = 2 },
		func(p *domain.Params) { p.MaxIterations = 50 },
		func(p *domain.Params) { p.Kind = domain.KindJulia },
		func(p *domain.Params) { p.JuliaReal = 0.3 },
		func(p *domain.Params) { p.CustomIteration = "z^3 + c" },
		func(p *domain.Params) { p.MirrorBurningShip = true },
	}
	for _, mutate := range invalidating {
		next := base
		mutate(&next)
		assert.True(t, domain.RequiresInvalidation(base, next))
	}

	sweep := base
	sweep.Kind = domain.KindBuddhabrot
	moved := sweep
	moved.OffsetX = 5
	assert.True(t, domain.RequiresInvalidation(sweep, moved))

	assert.Equal(t, []string{"offset_x", "offset_y", "hue_shift", "use_pivot", "pivot_x", "pivot_y"},
		domain.CachePreservingFields())
}

func TestReconcile(t *testing.T) {
	t.Run("leaves low magnification for validation", func(t *testing.T) {
		next := domain.DefaultParams()
		next.UsePivot = true
		next.PivotX, next.PivotY = 3, 5
		next.OffsetX = 11
		next.Magnification = 0.1
		got := domain.Reconcile(domain.DefaultParams(), next)
		assert.Equal(t, 0.1, got.Magnification)
		assert.Equal(t, 11, got.OffsetX)
		assert.ErrorIs(t, got.Validate(), domain.ErrInvalidParams)
	})

	t.Run("without pivot offsets are untouched", func(t *testing.T) {
		prev := domain.DefaultParams()
		prev.OffsetX = 7
		next := prev
		next.Magnification = 4
		got := domain.Reconcile(prev, next)
		assert.Equal(t, 7, got.OffsetX)
	})

	t.Run("pivot stays on the same plane point", func(t *testing.T) {
		prev := domain.DefaultParams()
		prev.AxisSize = 100
		prev.OffsetX, prev.OffsetY = 10, -20
		next := prev
		next.UsePivot = true
		next.PivotX, next.PivotY = 75, 25
		next.Magnification = 2

		got := domain.Reconcile(prev, next)

		// (75+10-50)*2 - 75 + 50 = 45; (25-20-50)*2 - 25 + 50 = -65
		assert.Equal(t, 45, got.OffsetX)
		assert.Equal(t, -65, got.OffsetY)

		planeBefore := float64(next.PivotX+prev.OffsetX-50) / prev.Magnification
		planeAfter := float64(next.PivotX+got.OffsetX-50) / got.Magnification
		assert.InDelta(t, planeBefore, planeAfter, 1e-9)
	})

	t.Run("pivot at centre keeps centred view centred", func(t *testing.T) {
		prev := domain.DefaultParams()
		next := prev
		next.UsePivot = true
		next.PivotX, next.PivotY = prev.AxisSize/2, prev.AxisSize/2
		next.Magnification = 8
		got := domain.Reconcile(prev, next)
		assert.Zero(t, got.OffsetX)
		assert.Zero(t, got.OffsetY)
	})
}

func TestGrid(t *testing.T) {
	g := domain.NewGrid(3)
	g.Set(1, 2, 0.5)
	assert.Equal(t, 0.5, g.At(1, 2))
	assert.Equal(t, []float64{0, 0, 0.5}, g.Column(1))
	assert.Len(t, g.Values, 9)
}

func TestShiftHue(t *testing.T) {
	assert.Equal(t, 0.0, domain.ShiftHue(0, 0.3))
	assert.InDelta(t, 0.7, domain.ShiftHue(0.4, 0.3), 1e-12)
	assert.InDelta(t, 0.1, domain.ShiftHue(0.8, 0.3), 1e-12)
	assert.InDelta(t, 0.9, domain.ShiftHue(0.2, -0.3), 1e-12)
	assert.Equal(t, 0.4, domain.ShiftHue(0.4, 0))
}

func TestShiftHue_EscapedCellsNeverBecomeZero(t *testing.T) {
	assert.Equal(t, 1.0, domain.ShiftHue(0.75, 0.25))
	assert.Equal(t, 1.0, domain.ShiftHue(0.5, -0.5))
	assert.Equal(t, 1.0, domain.ShiftHue(0.25, 1.75))
	assert.Equal(t, 1.0, domain.ShiftHue(1, 1))
}
