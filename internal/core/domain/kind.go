package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Kind enumerates the built-in fractal families.
type Kind int

const (
	// KindMandelbrot iterates z ← z² + c seeded at zero.
	KindMandelbrot Kind = iota
	// KindBurningShip folds the cross term to its absolute value each iteration.
	KindBurningShip
	// KindMandelbar iterates z ← conj(z)² + c.
	KindMandelbar
	// KindJulia iterates z ← z² + k for a fixed constant k, seeded from the pixel.
	KindJulia
	// KindNewton runs Newton-Raphson on a selected target function.
	KindNewton
	// KindBuddhabrot accumulates escaping Mandelbrot trajectories over the whole plane.
	KindBuddhabrot
	// KindCustom evaluates user-supplied formulas.
	KindCustom
)

var kindNames = [...]string{
	KindMandelbrot:  "mandelbrot",
	KindBurningShip: "burning-ship",
	KindMandelbar:   "mandelbar",
	KindJulia:       "julia",
	KindNewton:      "newton",
	KindBuddhabrot:  "buddhabrot",
	KindCustom:      "custom",
}

// Kinds returns every built-in kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Valid reports whether k names a built-in kind.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kindNames)
}

// PlaneSweep reports whether the kind is computed by a whole-plane sweep
// rather than independently per pixel.
func (k Kind) PlaneSweep() bool {
	return k == KindBuddhabrot
}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a kind from its canonical name. Underscores and case are ignored.
func ParseKind(s string) (Kind, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrUnknownKind, "failed to parse fractal kind"), "kind", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, zerr.With(zerr.Wrap(ErrUnknownKind, "failed to marshal fractal kind"), "kind", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
