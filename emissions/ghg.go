package emissions

import (
	"github.com/sgostarter/libcarbon/timeseries"
	"github.com/sgostarter/libcarbon/visitor"
)

const (
	CO2 = "CO2"
	CH4 = "CH4"
	N2O = "N2O"
)

// GHG holds the emissions of one gas by period for a source outside land use.
type GHG struct {
	name      string
	emissions *timeseries.PeriodVector[float64]
}

func NewGHG(name string, periodCount int) *GHG {
	return &GHG{
		name:      name,
		emissions: timeseries.NewPeriodVector[float64](periodCount),
	}
}

func (ghg *GHG) GetName() string {
	return ghg.name
}

func (ghg *GHG) SetEmission(period int, emission float64) bool {
	return ghg.emissions.Set(period, emission)
}

func (ghg *GHG) GetEmission(period int) float64 {
	if !ghg.emissions.Contains(period) {
		return 0
	}

	return ghg.emissions.At(period)
}

func (ghg *GHG) Accept(v visitor.Visitor, period int) {
	v.StartVisitGHG(ghg, period)
	v.EndVisitGHG(ghg, period)
}
