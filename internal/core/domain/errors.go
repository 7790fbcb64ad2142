package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

var (
	// ErrUnknownKind is returned when a fractal kind has no registered calculator.
	ErrUnknownKind = zerr.New("unknown fractal kind")

	// ErrMissingNewtonFunction is returned when the Newton target function is not registered.
	ErrMissingNewtonFunction = zerr.New("missing newton function data")

	// ErrNotPerPixel is returned when a per-pixel calculator is requested for a plane-sweep kind.
	ErrNotPerPixel = zerr.New("fractal kind is not computed per pixel")

	// ErrInvalidParams is returned when a parameter record fails validation.
	ErrInvalidParams = zerr.New("invalid fractal parameters")

	// ErrFormulaCompile is returned when a custom formula fails to compile.
	ErrFormulaCompile = zerr.New("failed to compile custom formula")

	// ErrNotPrepared is returned when a computation is stepped before parameters were accepted.
	ErrNotPrepared = zerr.New("scheduler has no parameters")

	// ErrStalePass is returned when a pass tries to write into a cache epoch it did not start in.
	ErrStalePass = zerr.New("computation pass is stale")

	// ErrConfigReadFailed is returned when the parameter file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read parameter file")

	// ErrConfigParseFailed is returned when the parameter file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse parameter file")

	// ErrSnapshotReadFailed is returned when a stored snapshot cannot be read.
	ErrSnapshotReadFailed = zerr.New("failed to read snapshot")

	// ErrSnapshotWriteFailed is returned when a snapshot cannot be written.
	ErrSnapshotWriteFailed = zerr.New("failed to write snapshot")

	// ErrUnknownImageFormat is returned when an output image format is not supported.
	ErrUnknownImageFormat = zerr.New("unknown image format")

	// ErrRenderFailed is returned when a render request cannot be completed.
	ErrRenderFailed = zerr.New("render failed")
)

// FormulaError reports a custom formula that failed to compile.
// It matches both ErrFormulaCompile and the underlying lex or parse error.
type FormulaError struct {
	// Formula names the offending formula: "initial" or "iteration".
	Formula string
	Source  string
	Err     error
}

func (e *FormulaError) Error() string {
	return "failed to compile " + e.Formula + " formula " + strconv.Quote(e.Source) + ": " + e.Err.Error()
}

// Unwrap exposes both the sentinel and the cause to errors.Is and errors.As.
func (e *FormulaError) Unwrap() []error {
	return []error{ErrFormulaCompile, e.Err}
}
