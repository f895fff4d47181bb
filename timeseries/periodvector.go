package timeseries

import (
	"fmt"

	"github.com/sgostarter/libcarbon/modeltime"
)

// PeriodVector holds one sample per model period.
type PeriodVector[T any] struct {
	ds []T
}

func NewPeriodVector[T any](periodCount int) *PeriodVector[T] {
	if periodCount <= 0 {
		panic(fmt.Sprintf("timeseries: bad period count %d", periodCount))
	}

	return &PeriodVector[T]{
		ds: make([]T, periodCount),
	}
}

func (v *PeriodVector[T]) Len() int {
	return len(v.ds)
}

func (v *PeriodVector[T]) Contains(period int) bool {
	return period >= 0 && period < len(v.ds)
}

func (v *PeriodVector[T]) At(period int) T {
	return v.ds[period]
}

func (v *PeriodVector[T]) Set(period int, d T) bool {
	if !v.Contains(period) {
		return false
	}

	v.ds[period] = d

	return true
}

func (v *PeriodVector[T]) First() T {
	return v.ds[0]
}

func (v *PeriodVector[T]) Last() T {
	return v.ds[len(v.ds)-1]
}

// InterpYear returns the value of a period series at a calendar year. Years at
// or before the first period take the first sample, years after the last
// period take the last sample, anything else is linearly interpolated between
// the two bounding periods.
func InterpYear(v *PeriodVector[float64], calendar modeltime.Calendar, year int) float64 {
	if year <= calendar.GetStartYear() {
		return v.First()
	}

	if year > calendar.GetEndYear() {
		return v.Last()
	}

	// never 0, the start year was handled above
	period := calendar.YearToPeriod(year)

	lastYear := calendar.PeriodToYear(period)
	firstYear := calendar.PeriodToYear(period - 1)

	return LinearInterpolateY(float64(year), float64(firstYear), float64(lastYear), v.At(period-1), v.At(period))
}

func LinearInterpolateY(x, x1, x2, y1, y2 float64) float64 {
	if x2 == x1 {
		return y1
	}

	return (x-x1)*(y2-y1)/(x2-x1) + y1
}
