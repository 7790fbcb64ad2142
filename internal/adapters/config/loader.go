// Package config provides the parameter file loader for fractal.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/fractal/internal/core/domain"
	"go.trai.ch/fractal/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the parameter file looked up when none is given.
const DefaultFilename = "fractal.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the parameter file at path. A missing file yields the defaults.
func (l *Loader) Load(path string) (domain.Params, error) {
	if path == "" {
		path = DefaultFilename
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Info("no parameter file at " + path + ", using defaults")
		return domain.DefaultParams(), nil
	}
	if err != nil {
		return domain.Params{}, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	p, err := Parse(data)
	if err != nil {
		return domain.Params{}, zerr.With(zerr.Wrap(err, "invalid parameter file"), "path", path)
	}
	return p, nil
}

// Parse decodes a parameter file, fills omitted fields with defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (domain.Params, error) {
	file := fromParams(domain.DefaultParams())

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Params{}, zerr.Wrap(domain.ErrConfigParseFailed, err.Error())
	}

	p, err := file.toParams()
	if err != nil {
		return domain.Params{}, err
	}
	if err := p.Validate(); err != nil {
		return domain.Params{}, err
	}
	return p, nil
}

func fromParams(p domain.Params) Fractalfile {
	f := Fractalfile{
		Version: "1",
		Kind:    p.Kind.String(),
		View: ViewDTO{
			AxisSize:      p.AxisSize,
			Magnification: p.Magnification,
			OffsetX:       p.OffsetX,
			OffsetY:       p.OffsetY,
			HueShift:      p.HueShift,
		},
		Iteration: IterationDTO{Max: p.MaxIterations, Threshold: p.Threshold},
		Julia:     ComplexDTO{Real: p.JuliaReal, Imag: p.JuliaImag},
		Newton: NewtonDTO{
			Function:        p.NewtonFunction,
			Coefficient:     ComplexDTO{Real: p.NewtonCoefficientReal, Imag: p.NewtonCoefficientImag},
			PreferRootBasis: p.PreferRootBasis,
		},
		BurningShip: BurningShipDTO{Mirror: p.MirrorBurningShip},
		Custom:      CustomDTO{Initial: p.CustomInitial, Iteration: p.CustomIteration},
	}
	if p.UsePivot {
		f.View.Pivot = &PointDTO{X: p.PivotX, Y: p.PivotY}
	}
	return f
}

func (f *Fractalfile) toParams() (domain.Params, error) {
	kind, err := domain.ParseKind(f.Kind)
	if err != nil {
		return domain.Params{}, err
	}

	p := domain.Params{
		Kind:                  kind,
		OffsetX:               f.View.OffsetX,
		OffsetY:               f.View.OffsetY,
		Magnification:         f.View.Magnification,
		AxisSize:              f.View.AxisSize,
		MaxIterations:         f.Iteration.Max,
		Threshold:             f.Iteration.Threshold,
		JuliaReal:             f.Julia.Real,
		JuliaImag:             f.Julia.Imag,
		NewtonFunction:        f.Newton.Function,
		NewtonCoefficientReal: f.Newton.Coefficient.Real,
		NewtonCoefficientImag: f.Newton.Coefficient.Imag,
		PreferRootBasis:       f.Newton.PreferRootBasis,
		MirrorBurningShip:     f.BurningShip.Mirror,
		CustomInitial:         f.Custom.Initial,
		CustomIteration:       f.Custom.Iteration,
		HueShift:              f.View.HueShift,
	}
	if f.View.Pivot != nil {
		p.UsePivot = true
		p.PivotX, p.PivotY = f.View.Pivot.X, f.View.Pivot.Y
	}
	return p, nil
}

// Marshal renders p as a parameter file.
func Marshal(p domain.Params) ([]byte, error) {
	out, err := yaml.Marshal(fromParams(p))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to render parameter file")
	}
	return out, nil
}
