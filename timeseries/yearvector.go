package timeseries

import "fmt"

type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// YearVector is a dense series indexed by calendar year over [startYear, endYear].
type YearVector[T any] struct {
	startYear int
	endYear   int
	ds        []T
}

func NewYearVector[T any](startYear, endYear int) *YearVector[T] {
	if endYear < startYear {
		panic(fmt.Sprintf("timeseries: bad year range [%d, %d]", startYear, endYear))
	}

	return &YearVector[T]{
		startYear: startYear,
		endYear:   endYear,
		ds:        make([]T, endYear-startYear+1),
	}
}

func (v *YearVector[T]) GetStartYear() int {
	return v.startYear
}

func (v *YearVector[T]) GetEndYear() int {
	return v.endYear
}

func (v *YearVector[T]) Len() int {
	return len(v.ds)
}

func (v *YearVector[T]) Contains(year int) bool {
	return year >= v.startYear && year <= v.endYear
}

func (v *YearVector[T]) At(year int) T {
	return v.ds[v.index(year)]
}

func (v *YearVector[T]) Set(year int, d T) {
	v.ds[v.index(year)] = d
}

func (v *YearVector[T]) Fill(d T) {
	for idx := range v.ds {
		v.ds[idx] = d
	}
}

// Values returns a copy of the series in year order.
func (v *YearVector[T]) Values() []T {
	ds := make([]T, len(v.ds))
	copy(ds, v.ds)

	return ds
}

func (v *YearVector[T]) index(year int) int {
	if !v.Contains(year) {
		panic(fmt.Sprintf("timeseries: year %d out of range [%d, %d]", year, v.startYear, v.endYear))
	}

	return year - v.startYear
}

func AddAt[T Number](v *YearVector[T], year int, d T) {
	v.ds[v.index(year)] += d
}
