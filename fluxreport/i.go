package fluxreport

// Report is the net land-use change flux of every calculator of a landscape at
// the last year of a period. Positive values are emissions.
type Report struct {
	ID       uint64             `json:"id" yaml:"id"`
	Scenario string             `json:"scenario" yaml:"scenario"`
	Period   int                `json:"period" yaml:"period"`
	Year     int                `json:"year" yaml:"year"`
	Leaves   map[string]float64 `json:"leaves,omitempty" yaml:"leaves,omitempty"`
	Total    float64            `json:"total" yaml:"total"`
	CreateAt int64              `json:"createAt" yaml:"createAt"`
}

type Storage interface {
	// AddReport stores the report. A zero report ID is replaced by a new one.
	AddReport(report *Report) (id uint64, err error)
	GetReport(scenario string, id uint64) (*Report, error)
	// GetReports returns the reports of the scenario ordered by period, then by ID.
	GetReports(scenario string) ([]*Report, error)
	DelReport(scenario string, id uint64) error
}

type Reporter interface {
	Report(period int) (*Report, error)
	GetStorage() Storage
}
