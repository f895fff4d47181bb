package density

type Constant struct {
	Above float64 `yaml:"above" json:"above"`
	Below float64 `yaml:"below" json:"below"`
}

func (c Constant) AboveGroundCarbonPerArea(_ int) float64 {
	return c.Above
}

func (c Constant) BelowGroundCarbonPerArea(_ int) float64 {
	return c.Below
}

type FNDensity func(year int) float64

// Funcs adapts a pair of functions to a Provider. A nil function reads as zero density.
type Funcs struct {
	Above FNDensity
	Below FNDensity
}

func (f Funcs) AboveGroundCarbonPerArea(year int) float64 {
	if f.Above == nil {
		return 0
	}

	return f.Above(year)
}

func (f Funcs) BelowGroundCarbonPerArea(year int) float64 {
	if f.Below == nil {
		return 0
	}

	return f.Below(year)
}

type Curves struct {
	Above *Curve
	Below *Curve
}

func (c Curves) AboveGroundCarbonPerArea(year int) float64 {
	return c.Above.At(year)
}

func (c Curves) BelowGroundCarbonPerArea(year int) float64 {
	return c.Below.At(year)
}
