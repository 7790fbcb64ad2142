package calculator

// Classify resolves set and reports the value at z and whether z short-circuits the iteration.
// This is exported for testing purposes only.
func Classify(set RootSet, rnd func() float64, zRe, zIm float64) (float64, bool) {
	v, state := classify(set, rnd)(zRe, zIm)
	return v, state == degenerate
}
