package modeltime

import (
	"fmt"
	"sort"
)

type Config struct {
	// Years holds the last calendar year of each period, in period order.
	Years []int `yaml:"years" json:"years"`
	// BaseTimeStep is the length of period 0. Defaults to the length of period 1.
	BaseTimeStep int `yaml:"baseTimeStep" json:"baseTimeStep"`
}

func NewModeltime(cfg *Config) (*Modeltime, error) {
	if cfg == nil || len(cfg.Years) == 0 {
		return nil, ErrNoPeriods
	}

	for idx := 1; idx < len(cfg.Years); idx++ {
		if cfg.Years[idx] <= cfg.Years[idx-1] {
			return nil, fmt.Errorf("%w: period %d year %d", ErrYearsNotAscending, idx, cfg.Years[idx])
		}
	}

	baseTimeStep := cfg.BaseTimeStep
	if baseTimeStep < 0 {
		return nil, ErrInvalidTimeStep
	}

	if baseTimeStep == 0 {
		baseTimeStep = 1

		if len(cfg.Years) > 1 {
			baseTimeStep = cfg.Years[1] - cfg.Years[0]
		}
	}

	years := make([]int, len(cfg.Years))
	copy(years, cfg.Years)

	return &Modeltime{
		years:        years,
		baseTimeStep: baseTimeStep,
	}, nil
}

type Modeltime struct {
	years        []int
	baseTimeStep int
}

func (mt *Modeltime) GetStartYear() int {
	return mt.years[0]
}

func (mt *Modeltime) GetEndYear() int {
	return mt.years[len(mt.years)-1]
}

func (mt *Modeltime) GetPeriodCount() int {
	return len(mt.years)
}

func (mt *Modeltime) IsValidPeriod(period int) bool {
	return period >= 0 && period < len(mt.years)
}

func (mt *Modeltime) PeriodToYear(period int) int {
	mt.mustPeriod(period)

	return mt.years[period]
}

func (mt *Modeltime) YearToPeriod(year int) int {
	period := sort.SearchInts(mt.years, year)
	if period >= len(mt.years) {
		period = len(mt.years) - 1
	}

	return period
}

func (mt *Modeltime) GetTimeStep(period int) int {
	mt.mustPeriod(period)

	if period == 0 {
		return mt.baseTimeStep
	}

	return mt.years[period] - mt.years[period-1]
}

func (mt *Modeltime) mustPeriod(period int) {
	if !mt.IsValidPeriod(period) {
		panic(fmt.Sprintf("modeltime: period %d out of range [0, %d)", period, len(mt.years)))
	}
}
