// nolint
package fmstorage

import (
	"errors"
	"os"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libcarbon/fluxreport"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/stretchr/testify/assert"
)

const (
	utRoot = "ut-data"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(utRoot)
	_ = pathutils.MustDirExists(utRoot)

	code := m.Run()

	_ = os.RemoveAll(utRoot)

	os.Exit(code)
}

func TestFMStorage(t *testing.T) {
	stg := NewFMStorage(utRoot, nil)

	_, err := stg.AddReport(nil)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	leaves := map[string]float64{"forest": 3}

	id1, err := stg.AddReport(&fluxreport.Report{
		Scenario: "ref",
		Period:   3,
		Year:     2020,
		Leaves:   leaves,
		Total:    3,
	})
	assert.Nil(t, err)
	assert.True(t, id1 > 0)

	leaves["forest"] = 100

	id2, err := stg.AddReport(&fluxreport.Report{
		ID:       7,
		Scenario: "ref",
		Period:   1,
		Year:     1990,
	})
	assert.Nil(t, err)
	assert.EqualValues(t, 7, id2)

	_, err = stg.AddReport(&fluxreport.Report{ID: 7, Scenario: "ref"})
	assert.True(t, errors.Is(err, commerr.ErrAlreadyExists))

	report, err := stg.GetReport("ref", id1)
	assert.Nil(t, err)
	assert.EqualValues(t, id1, report.ID)
	assert.EqualValues(t, 3, report.Leaves["forest"])

	report.Leaves["forest"] = 9

	report, err = stg.GetReport("ref", id1)
	assert.Nil(t, err)
	assert.EqualValues(t, 3, report.Leaves["forest"])

	_, err = stg.GetReport("other", id1)
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	reports, err := stg.GetReports("ref")
	assert.Nil(t, err)
	assert.EqualValues(t, 2, len(reports))
	assert.EqualValues(t, 1, reports[0].Period)
	assert.EqualValues(t, 3, reports[1].Period)

	reports, err = stg.GetReports("other")
	assert.Nil(t, err)
	assert.EqualValues(t, 0, len(reports))

	assert.Nil(t, stg.DelReport("ref", id2))
	assert.True(t, errors.Is(stg.DelReport("ref", id2), commerr.ErrNotFound))

	reports, err = stg.GetReports("ref")
	assert.Nil(t, err)
	assert.EqualValues(t, 1, len(reports))

	_, err = os.Stat(utRoot + "/flux_reports.json")
	assert.Nil(t, err)
}
