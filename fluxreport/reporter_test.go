package fluxreport_test

import (
	"errors"
	"os"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libcarbon/carboncalc"
	"github.com/sgostarter/libcarbon/density"
	"github.com/sgostarter/libcarbon/fluxreport"
	"github.com/sgostarter/libcarbon/fluxreport/impls/fmstorage"
	"github.com/sgostarter/libcarbon/landscape"
	"github.com/sgostarter/libcarbon/modeltime"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/stretchr/testify/assert"
)

const utRoot = "ut-data"

func utLandscape(t *testing.T) *landscape.Landscape {
	mt, err := modeltime.NewModeltime(&modeltime.Config{
		Years: []int{1975, 1990, 2005},
	})
	assert.Nil(t, err)

	ls := landscape.NewLandscape(mt, l.NewNopLoggerWrapper())

	_, err = ls.AddLeaf("forest", density.Constant{Above: 10, Below: 4})
	assert.Nil(t, err)

	_, err = ls.AddLeaf("crop", density.Constant{Above: 1, Below: 2})
	assert.Nil(t, err)

	for period, landUse := range []float64{100, 85, 70} {
		assert.Nil(t, ls.SetLandAllocation("forest", period, landUse))
		assert.Nil(t, ls.SetLandAllocation("crop", period, 200-landUse))
	}

	return ls
}

func TestBuildReport(t *testing.T) {
	ls := utLandscape(t)
	assert.Nil(t, ls.Calc(1))

	report := fluxreport.BuildReport("ref", ls.GetCalendar(), 1, ls)
	assert.EqualValues(t, "ref", report.Scenario)
	assert.EqualValues(t, 1, report.Period)
	assert.EqualValues(t, 1990, report.Year)
	assert.EqualValues(t, 2, len(report.Leaves))

	forest, _ := ls.GetLeaf("forest")
	assert.InDelta(t, forest.GetCarbonCalc().GetNetLandUseChangeEmission(1990), report.Leaves["forest"], 1e-9)
	assert.InDelta(t, ls.GetNetLandUseChangeEmission(1990), report.Total, 1e-9)

	// 2005 is not reached yet
	report = fluxreport.BuildReport("ref", ls.GetCalendar(), 2, ls)
	assert.EqualValues(t, 0, len(report.Leaves))
	assert.EqualValues(t, 0, report.Total)
}

func TestBuildReportUnnamedCalc(t *testing.T) {
	mt, err := modeltime.NewModeltime(&modeltime.Config{
		Years:        []int{1999, 2000},
		BaseTimeStep: 1,
	})
	assert.Nil(t, err)

	calc := carboncalc.NewSimpleCarbonCalc(mt, density.Constant{Above: 10}, nil)
	calc.SetTotalLandUse(100, 0)
	calc.SetTotalLandUse(80, 1)
	calc.Calc(1)

	report := fluxreport.BuildReport("ref", mt, 1, calc, calc)
	assert.InDelta(t, 200, report.Leaves["calc-1"], 1e-9)
	assert.InDelta(t, 200, report.Leaves["calc-2"], 1e-9)
	assert.InDelta(t, 400, report.Total, 1e-9)
}

func TestReporter(t *testing.T) {
	_ = os.RemoveAll(utRoot)
	_ = pathutils.MustDirExists(utRoot)

	defer func() {
		_ = os.RemoveAll(utRoot)
	}()

	ls := utLandscape(t)

	reporter := fluxreport.NewReporter("ref", ls.GetCalendar(), ls, fmstorage.NewFMStorage(utRoot, nil),
		l.NewNopLoggerWrapper())

	_, err := reporter.Report(3)
	assert.True(t, errors.Is(err, commerr.ErrOutOfRange))

	for period := 0; period < 3; period++ {
		assert.Nil(t, ls.Calc(period))

		report, err := reporter.Report(period)
		assert.Nil(t, err)
		assert.True(t, report.ID > 0)
	}

	reports, err := reporter.GetStorage().GetReports("ref")
	assert.Nil(t, err)
	assert.EqualValues(t, 3, len(reports))

	for period, report := range reports {
		assert.EqualValues(t, period, report.Period)
		assert.InDelta(t, ls.GetNetLandUseChangeEmission(report.Year), report.Total, 1e-9)
	}
}
