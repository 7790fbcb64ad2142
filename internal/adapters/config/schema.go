package config

// Fractalfile represents the structure of the fractal.yaml parameter file.
// Omitted fields keep their default values.
type Fractalfile struct {
	Version     string         `yaml:"version"`
	Kind        string         `yaml:"kind"`
	View        ViewDTO        `yaml:"view"`
	Iteration   IterationDTO   `yaml:"iteration"`
	Julia       ComplexDTO     `yaml:"julia"`
	Newton      NewtonDTO      `yaml:"newton"`
	BurningShip BurningShipDTO `yaml:"burning_ship"`
	Custom      CustomDTO      `yaml:"custom"`
}

// ViewDTO places the visible window on the plane.
type ViewDTO struct {
	AxisSize      int       `yaml:"axis_size"`
	Magnification float64   `yaml:"magnification"`
	OffsetX       int       `yaml:"offset_x"`
	OffsetY       int       `yaml:"offset_y"`
	HueShift      float64   `yaml:"hue_shift"`
	Pivot         *PointDTO `yaml:"pivot"`
}

// PointDTO is a screen pixel.
type PointDTO struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// IterationDTO bounds the escape-time loop.
type IterationDTO struct {
	Max       int     `yaml:"max"`
	Threshold float64 `yaml:"threshold"`
}

// ComplexDTO is a complex constant.
type ComplexDTO struct {
	Real float64 `yaml:"real"`
	Imag float64 `yaml:"imag"`
}

// NewtonDTO selects the Newton target.
type NewtonDTO struct {
	Function        string     `yaml:"function"`
	Coefficient     ComplexDTO `yaml:"coefficient"`
	PreferRootBasis bool       `yaml:"prefer_root_basis"`
}

// BurningShipDTO holds the Burning Ship options.
type BurningShipDTO struct {
	Mirror bool `yaml:"mirror"`
}

// CustomDTO holds the custom formulas.
type CustomDTO struct {
	Initial   string `yaml:"initial"`
	Iteration string `yaml:"iteration"`
}
