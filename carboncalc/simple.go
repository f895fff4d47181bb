package carboncalc

import (
	"fmt"
	"math"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libcarbon/density"
	"github.com/sgostarter/libcarbon/modeltime"
	"github.com/sgostarter/libcarbon/timeseries"
	"github.com/sgostarter/libcarbon/visitor"
)

const noActivePeriod = -1

// SimpleCarbonCalc computes the annual net land-use change carbon flux of one
// land unit. Above ground carbon is released as a pulse in the year of the
// change, below ground carbon relaxes exponentially towards the new level over
// the rest of the horizon.
//
// The calculator keeps every year of the horizon in one of two states:
// settled, once the simulation has moved past it, or active, while its period
// may still be re-solved. Only active contributions are tracked separately so
// they can be taken back on the next evaluation of the same period.
type SimpleCarbonCalc struct {
	logger   l.Wrapper
	calendar modeltime.Calendar
	density  density.Provider

	horizon       Horizon
	soilTimeScale float64
	tolerance     float64

	landUse *timeseries.PeriodVector[float64]

	currentEmissions *timeseries.YearVector[float64]
	totalEmissions   *timeseries.YearVector[float64]
	calculated       *timeseries.YearVector[bool]

	evaluated    []bool
	activePeriod int
}

func NewSimpleCarbonCalc(calendar modeltime.Calendar, provider density.Provider, logger l.Wrapper,
	options ...Option) *SimpleCarbonCalc {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "simpleCarbonCalc"))

	if calendar == nil || provider == nil {
		logger.Fatal("no dependency objects")
	}

	opts := optionNew(options...)

	return &SimpleCarbonCalc{
		logger:           logger,
		calendar:         calendar,
		density:          provider,
		horizon:          opts.horizon,
		soilTimeScale:    opts.soilTimeScale,
		tolerance:        opts.tolerance,
		landUse:          timeseries.NewPeriodVector[float64](calendar.GetPeriodCount()),
		currentEmissions: timeseries.NewYearVector[float64](opts.horizon.StartYear, opts.horizon.EndYear),
		totalEmissions:   timeseries.NewYearVector[float64](opts.horizon.StartYear, opts.horizon.EndYear),
		calculated:       timeseries.NewYearVector[bool](opts.horizon.StartYear, opts.horizon.EndYear),
		evaluated:        make([]bool, calendar.GetPeriodCount()),
		activePeriod:     noActivePeriod,
	}
}

func (impl *SimpleCarbonCalc) GetHorizon() Horizon {
	return impl.horizon
}

func (impl *SimpleCarbonCalc) GetSoilTimeScale() float64 {
	return impl.soilTimeScale
}

// SetTotalLandUse records the land area of the unit at the end of a period.
// Periods outside the calendar are ignored.
func (impl *SimpleCarbonCalc) SetTotalLandUse(landUse float64, period int) {
	if !impl.landUse.Set(period, landUse) {
		impl.logger.WithFields(l.IntField("period", period)).Debug("land use period out of range")
	}
}

// Calc brings the flux series up to date for the period. Years before the
// period that were never calculated are settled first; the years of the period
// itself are (re)applied as the active period, replacing whatever an earlier
// evaluation of the same period contributed.
func (impl *SimpleCarbonCalc) Calc(period int) {
	if !impl.calendar.IsValidPeriod(period) {
		panic(fmt.Sprintf("carboncalc: period %d is not a model period", period))
	}

	timeStep := impl.calendar.GetTimeStep(period)
	calcYear := impl.calendar.PeriodToYear(period)

	for year := impl.horizon.StartYear; year <= calcYear-timeStep && year <= impl.horizon.EndYear; year++ {
		if impl.calculated.At(year) {
			continue
		}

		impl.calculated.Set(year, true)
		impl.calcAboveGroundCarbonEmission(year, false)
		impl.calcBelowGroundCarbonEmission(year, false)
	}

	if impl.evaluated[period] {
		if impl.activePeriod != period {
			impl.logger.WithFields(l.IntField("period", period), l.IntField("activePeriod", impl.activePeriod)).
				Error("period evaluated out of order")
		}

		for year := impl.horizon.StartYear; year <= impl.horizon.EndYear; year++ {
			timeseries.AddAt(impl.totalEmissions, year, -impl.currentEmissions.At(year))
		}
	} else {
		impl.evaluated[period] = true
	}

	impl.currentEmissions.Fill(0)
	impl.activePeriod = period

	firstYear := calcYear - timeStep + 1
	if firstYear < impl.horizon.StartYear {
		firstYear = impl.horizon.StartYear
	}

	for year := firstYear; year <= calcYear && year <= impl.horizon.EndYear; year++ {
		impl.calculated.Set(year, true)
		impl.calcAboveGroundCarbonEmission(year, true)
		impl.calcBelowGroundCarbonEmission(year, true)
	}
}

// GetNetLandUseChangeEmission returns the net flux of the year, positive for
// emission. The year must already have been calculated.
func (impl *SimpleCarbonCalc) GetNetLandUseChangeEmission(year int) float64 {
	if !impl.IsCalculated(year) {
		panic(fmt.Sprintf("carboncalc: net land use change emission of year %d requested before it was calculated", year))
	}

	return impl.totalEmissions.At(year)
}

// GetNetTerrestrial always returns NotRepresentable: there is no atmosphere
// exchange term in this model.
func (impl *SimpleCarbonCalc) GetNetTerrestrial(_ int) float64 {
	return NotRepresentable
}

func (impl *SimpleCarbonCalc) IsCalculated(year int) bool {
	return impl.calculated.Contains(year) && impl.calculated.At(year)
}

// GetCurrentEmission returns the part of the year's flux owed to the active period.
func (impl *SimpleCarbonCalc) GetCurrentEmission(year int) float64 {
	if !impl.currentEmissions.Contains(year) {
		return 0
	}

	return impl.currentEmissions.At(year)
}

func (impl *SimpleCarbonCalc) GetLandUse(year int) float64 {
	return timeseries.InterpYear(impl.landUse, impl.calendar, year)
}

func (impl *SimpleCarbonCalc) GetPotentialAboveGroundCarbon(year int) float64 {
	return impl.density.AboveGroundCarbonPerArea(year) * impl.GetLandUse(year)
}

func (impl *SimpleCarbonCalc) GetPotentialBelowGroundCarbon(year int) float64 {
	return impl.density.BelowGroundCarbonPerArea(year) * impl.GetLandUse(year)
}

func (impl *SimpleCarbonCalc) Accept(v visitor.Visitor, period int) {
	v.StartVisitCarbonCalc(impl, period)
	v.EndVisitCarbonCalc(impl, period)
}

// calcAboveGroundCarbonEmission applies the pulse of the year: a loss of above
// ground carbon since the previous year is an emission, a gain is an uptake.
func (impl *SimpleCarbonCalc) calcAboveGroundCarbonEmission(year int, isCurrentYear bool) {
	if year <= impl.horizon.StartYear {
		return
	}

	emission := impl.GetPotentialAboveGroundCarbon(year-1) - impl.GetPotentialAboveGroundCarbon(year)

	timeseries.AddAt(impl.totalEmissions, year, emission)

	if isCurrentYear {
		timeseries.AddAt(impl.currentEmissions, year, emission)
	}
}

// calcBelowGroundCarbonEmission spreads the change of below ground carbon in
// the year over every year up to the end of the horizon:
//
//	E(y) = dC/tau * (1 - e^(-(y-year)/tau))
func (impl *SimpleCarbonCalc) calcBelowGroundCarbonEmission(year int, isCurrentYear bool) {
	if year <= impl.horizon.StartYear {
		return
	}

	carbonDifference := impl.GetPotentialBelowGroundCarbon(year) - impl.GetPotentialBelowGroundCarbon(year-1)
	if math.Abs(carbonDifference) <= impl.tolerance {
		return
	}

	for futureYear := year; futureYear <= impl.horizon.EndYear; futureYear++ {
		emission := DecayEmission(carbonDifference, impl.soilTimeScale, futureYear-year)

		if isCurrentYear {
			timeseries.AddAt(impl.currentEmissions, futureYear, emission)
		}

		timeseries.AddAt(impl.totalEmissions, futureYear, emission)
	}
}

// DecayEmission is the below ground flux t years after a carbon change of dC
// for the soil time scale tau.
func DecayEmission(dC, tau float64, t int) float64 {
	return dC / tau * (1 - math.Exp(-float64(t)/tau))
}
