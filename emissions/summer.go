package emissions

import (
	"github.com/sgostarter/libcarbon/modeltime"
	"github.com/sgostarter/libcarbon/visitor"
)

type value struct {
	d   float64
	set bool
}

// Summer totals the emissions of one gas by period over every source it visits.
// Land-use change carbon calculators count towards CO2.
type Summer struct {
	visitor.DefaultVisitor

	gasName  string
	calendar modeltime.Calendar

	emissionsByPeriod []value
}

func NewSummer(gasName string, calendar modeltime.Calendar) *Summer {
	return &Summer{
		gasName:           gasName,
		calendar:          calendar,
		emissionsByPeriod: make([]value, calendar.GetPeriodCount()),
	}
}

func (s *Summer) GetGasName() string {
	return s.gasName
}

func (s *Summer) StartVisitGHG(ghg visitor.GHG, period int) {
	if ghg.GetName() != s.gasName {
		return
	}

	s.add(period, ghg.GetEmission(period))
}

func (s *Summer) StartVisitCarbonCalc(calc visitor.CarbonCalc, period int) {
	if s.gasName != CO2 || !s.calendar.IsValidPeriod(period) {
		return
	}

	s.add(period, calc.GetNetLandUseChangeEmission(s.calendar.PeriodToYear(period)))
}

func (s *Summer) GetEmissions(period int) float64 {
	if !s.calendar.IsValidPeriod(period) {
		return 0
	}

	return s.emissionsByPeriod[period].d
}

func (s *Summer) AreEmissionsSet(period int) bool {
	if !s.calendar.IsValidPeriod(period) {
		return false
	}

	return s.emissionsByPeriod[period].set
}

func (s *Summer) add(period int, emission float64) {
	if !s.calendar.IsValidPeriod(period) {
		return
	}

	s.emissionsByPeriod[period].d += emission
	s.emissionsByPeriod[period].set = true
}
