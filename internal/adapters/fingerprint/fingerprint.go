// Package fingerprint derives stable keys from parameter records.
package fingerprint

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/fractal/internal/core/domain"
	"go.trai.ch/fractal/internal/core/ports"
)

var _ ports.Fingerprinter = (*Hasher)(nil)

// Hasher computes XXHash fingerprints of the cache-relevant part of a record.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint returns a 16 digit hex key. Cache-preserving fields do not contribute.
func (h *Hasher) Fingerprint(p domain.Params) string {
	k := p.CacheKey()
	hasher := xxhash.New()

	writeInt(hasher, int64(k.Kind))
	writeInt(hasher, int64(k.OffsetX))
	writeInt(hasher, int64(k.OffsetY))
	writeInt(hasher, int64(k.AxisSize))
	writeInt(hasher, int64(k.MaxIterations))
	writeFloat(hasher, k.Magnification)
	writeFloat(hasher, k.Threshold)
	_, _ = hasher.Write([]byte{0}) // Section separator

	switch k.Kind {
	case domain.KindJulia:
		writeFloat(hasher, k.JuliaReal)
		writeFloat(hasher, k.JuliaImag)
	case domain.KindNewton:
		writeString(hasher, k.NewtonFunction)
		writeFloat(hasher, k.NewtonCoefficientReal)
		writeFloat(hasher, k.NewtonCoefficientImag)
		writeBool(hasher, k.PreferRootBasis)
	case domain.KindBurningShip:
		writeBool(hasher, k.MirrorBurningShip)
	case domain.KindCustom:
		writeString(hasher, k.CustomInitial)
		writeString(hasher, k.CustomIteration)
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}

func writeInt(d *xxhash.Digest, v int64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v)) //nolint:gosec // Bit pattern only
	_, _ = d.Write(buf[:])
}

func writeFloat(d *xxhash.Digest, v float64) {
	writeInt(d, int64(math.Float64bits(v))) //nolint:gosec // Bit pattern only
}

func writeBool(d *xxhash.Digest, v bool) {
	if v {
		_, _ = d.Write([]byte{1})
		return
	}
	_, _ = d.Write([]byte{0})
}

func writeString(d *xxhash.Digest, s string) {
	_, _ = d.WriteString(s)
	_, _ = d.Write([]byte{0}) // Separator
}
