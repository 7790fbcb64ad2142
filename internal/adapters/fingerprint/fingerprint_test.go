package fingerprint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/fractal/internal/adapters/fingerprint"
	"go.trai.ch/fractal/internal/core/domain"
)

func TestFingerprint_Stable(t *testing.T) {
	h := fingerprint.NewHasher()
	p := domain.DefaultParams()

	fp := h.Fingerprint(p)
	assert.Len(t, fp, 16)
	assert.Equal(t, fp, h.Fingerprint(p))
}

func TestFingerprint_IgnoresCachePreservingFields(t *testing.T) {
	h := fingerprint.NewHasher()
	base := domain.DefaultParams()

	moved := base
	moved.OffsetX, moved.OffsetY = 40, -12
	moved.HueShift = 0.3
	moved.UsePivot, moved.PivotX, moved.PivotY = true, 1, 2
	assert.Equal(t, h.Fingerprint(base), h.Fingerprint(moved))

	// The Buddhabrot sweep traces the visible window, so offsets count there.
	sweep := base
	sweep.Kind = domain.KindBuddhabrot
	sweepMoved := sweep
	sweepMoved.OffsetX = 40
	assert.NotEqual(t, h.Fingerprint(sweep), h.Fingerprint(sweepMoved))
}

func TestFingerprint_DistinguishesComputedFields(t *testing.T) {
	h := fingerprint.NewHasher()
	base := domain.DefaultParams()

	mutations := map[string]func(*domain.Params){
		"kind":       func(p *domain.Params) { p.Kind = domain.KindMandelbar },
		"size":       func(p *domain.Params) { p.AxisSize = 128 },
		"iterations": func(p *domain.Params) { p.MaxIterations = 101 },
		"zoom":       func(p *domain.Params) { p.Magnification = 1.5 },
		"threshold":  func(p *domain.Params) { p.Threshold = 4 },
		"julia": func(p *domain.Params) {
			p.Kind = domain.KindJulia
			p.JuliaReal = 0.1
		},
		"custom": func(p *domain.Params) {
			p.Kind = domain.KindCustom
			p.CustomIteration = "z^3 + c"
		},
	}

	seen := map[string]string{h.Fingerprint(base): "base"}
	for name, mutate := range mutations {
		p := base
		mutate(&p)
		fp := h.Fingerprint(p)
		assert.NotContains(t, seen, fp, name)
		seen[fp] = name
	}
}
