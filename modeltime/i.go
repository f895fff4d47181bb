package modeltime

// Calendar maps the coarse model periods onto calendar years. Implementations
// must be read-only and consistent for the lifetime of a run.
type Calendar interface {
	GetStartYear() int
	GetEndYear() int
	GetPeriodCount() int

	// PeriodToYear returns the last calendar year of the period.
	PeriodToYear(period int) int
	// YearToPeriod returns the period that contains the year. Years before the
	// first period map to period 0, years after the last one to the last period.
	YearToPeriod(year int) int
	// GetTimeStep returns the number of years covered by the period.
	GetTimeStep(period int) int

	IsValidPeriod(period int) bool
}
