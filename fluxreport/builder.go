package fluxreport

import (
	"fmt"
	"sort"
	"time"

	"github.com/sgostarter/libcarbon/modeltime"
	"github.com/sgostarter/libcarbon/visitor"
)

// reportBuilder collects calculator fluxes under the name of the leaf being
// visited. Leaves may nest, so names are kept on a stack.
type reportBuilder struct {
	visitor.DefaultVisitor

	year      int
	leafNames []string
	unnamed   int

	report *Report
}

func (b *reportBuilder) StartVisitLandLeaf(leaf visitor.LandLeaf, _ int) {
	b.leafNames = append(b.leafNames, leaf.GetName())
}

func (b *reportBuilder) EndVisitLandLeaf(_ visitor.LandLeaf, _ int) {
	if len(b.leafNames) > 0 {
		b.leafNames = b.leafNames[:len(b.leafNames)-1]
	}
}

func (b *reportBuilder) StartVisitCarbonCalc(calc visitor.CarbonCalc, _ int) {
	if !calc.IsCalculated(b.year) {
		return
	}

	var name string

	if len(b.leafNames) > 0 {
		name = b.leafNames[len(b.leafNames)-1]
	} else {
		b.unnamed++
		name = fmt.Sprintf("calc-%d", b.unnamed)
	}

	flux := calc.GetNetLandUseChangeEmission(b.year)

	b.report.Leaves[name] += flux
	b.report.Total += flux
}

// BuildReport visits the nodes for the period and reports the flux of every
// calculator that has reached the period's last year.
func BuildReport(scenario string, calendar modeltime.Calendar, period int, nodes ...visitor.Acceptor) *Report {
	b := &reportBuilder{
		year: calendar.PeriodToYear(period),
		report: &Report{
			Scenario: scenario,
			Period:   period,
			Year:     calendar.PeriodToYear(period),
			Leaves:   make(map[string]float64),
			CreateAt: time.Now().Unix(),
		},
	}

	visitor.Visit(b, period, nodes...)

	return b.report
}

// SortReports orders reports by period, then by ID.
func SortReports(reports []*Report) {
	sort.Slice(reports, func(i, j int) bool {
		if reports[i].Period != reports[j].Period {
			return reports[i].Period < reports[j].Period
		}

		return reports[i].ID < reports[j].ID
	})
}
