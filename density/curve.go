package density

import (
	"fmt"
	"sort"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libcarbon/timeseries"
	"github.com/spf13/cast"
)

// Curve is a density that varies by year. It is linearly interpolated between
// its points and flat outside them.
type Curve struct {
	years  []int
	values []float64
}

func NewConstantCurve(v float64) *Curve {
	return &Curve{
		years:  []int{0},
		values: []float64{v},
	}
}

func NewCurve(points map[int]float64) *Curve {
	c := &Curve{
		years:  make([]int, 0, len(points)),
		values: make([]float64, 0, len(points)),
	}

	for year := range points {
		c.years = append(c.years, year)
	}

	sort.Ints(c.years)

	for _, year := range c.years {
		c.values = append(c.values, points[year])
	}

	return c
}

func (c *Curve) At(year int) float64 {
	if c == nil || len(c.years) == 0 {
		return 0
	}

	if year <= c.years[0] {
		return c.values[0]
	}

	last := len(c.years) - 1
	if year >= c.years[last] {
		return c.values[last]
	}

	idx := sort.SearchInts(c.years, year)
	if c.years[idx] == year {
		return c.values[idx]
	}

	return timeseries.LinearInterpolateY(float64(year), float64(c.years[idx-1]), float64(c.years[idx]),
		c.values[idx-1], c.values[idx])
}

type CurveConfig struct {
	Value float64 `yaml:"value" json:"value"`
	// Points maps a year to a density. Keys and values may be any scalar that reads as a number.
	Points map[interface{}]interface{} `yaml:"points,omitempty" json:"-"`
}

func (cfg *CurveConfig) Build() (*Curve, error) {
	if cfg == nil {
		return NewConstantCurve(0), nil
	}

	if len(cfg.Points) == 0 {
		return NewConstantCurve(cfg.Value), nil
	}

	points := make(map[int]float64, len(cfg.Points))

	for k, v := range cfg.Points {
		year, err := cast.ToIntE(k)
		if err != nil {
			return nil, fmt.Errorf("%w: curve year %v: %s", commerr.ErrInvalidArgument, k, err.Error())
		}

		d, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("%w: curve density at %d: %s", commerr.ErrInvalidArgument, year, err.Error())
		}

		points[year] = d
	}

	return NewCurve(points), nil
}
