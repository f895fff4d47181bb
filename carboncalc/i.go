package carboncalc

import (
	"math"

	"github.com/sgostarter/libcarbon/visitor"
)

// NotRepresentable is returned by queries the calculator has no model for.
// Callers must check for it with IsNotRepresentable rather than use it as a flux.
const NotRepresentable = math.MaxFloat64

func IsNotRepresentable(v float64) bool {
	return v == NotRepresentable
}

type Horizon struct {
	StartYear int `yaml:"startYear" json:"startYear"`
	EndYear   int `yaml:"endYear" json:"endYear"`
}

func (h Horizon) Contains(year int) bool {
	return year >= h.StartYear && year <= h.EndYear
}

var DefaultHorizon = Horizon{
	StartYear: 1960,
	EndYear:   2095,
}

const (
	DefaultSoilTimeScale = 40.0
	DefaultTolerance     = 1e-10
)

type CarbonCalc interface {
	visitor.CarbonCalc
	visitor.Acceptor

	SetTotalLandUse(landUse float64, period int)
	Calc(period int)

	GetPotentialAboveGroundCarbon(year int) float64
	GetPotentialBelowGroundCarbon(year int) float64
}
