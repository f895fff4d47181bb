package fluxreport

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libcarbon/modeltime"
	"github.com/sgostarter/libcarbon/visitor"
)

func NewReporter(scenario string, calendar modeltime.Calendar, root visitor.Acceptor, storage Storage,
	logger l.Wrapper) Reporter {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "reporterImpl"), l.StringField("scenario", scenario))

	if calendar == nil || root == nil || storage == nil {
		logger.Fatal("no dependency objects")
	}

	return &reporterImpl{
		logger:   logger,
		scenario: scenario,
		calendar: calendar,
		root:     root,
		storage:  storage,
	}
}

type reporterImpl struct {
	logger   l.Wrapper
	scenario string
	calendar modeltime.Calendar
	root     visitor.Acceptor
	storage  Storage
}

func (impl *reporterImpl) GetStorage() Storage {
	return impl.storage
}

func (impl *reporterImpl) Report(period int) (report *Report, err error) {
	if !impl.calendar.IsValidPeriod(period) {
		err = fmt.Errorf("%w: period %d", commerr.ErrOutOfRange, period)

		return
	}

	report = BuildReport(impl.scenario, impl.calendar, period, impl.root)

	report.ID, err = impl.storage.AddReport(report)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.IntField("period", period)).Error("add report failed")

		return nil, err
	}

	impl.logger.WithFields(l.IntField("period", period), l.UInt64Field("id", report.ID)).Debug("report added")

	return
}
