package fmstorage

import (
	"path/filepath"
	"sync"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libcarbon/fluxreport"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
)

type reportsD = map[string]map[uint64]*fluxreport.Report

func NewFMStorage(root string, storage stg.FileStorage) fluxreport.Storage {
	return NewFMStorageEx(root, storage, "flux_reports.json", false)
}

func NewFMStorageEx(root string, storage stg.FileStorage, fileName string, prettySerial bool) fluxreport.Storage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fmStorageImpl{
		reportStorage: mwf.NewMemWithFile[reportsD, mwf.Serial, mwf.Lock](
			make(reportsD), &mwf.JSONSerial{
				MarshalIndent: prettySerial,
			}, &sync.RWMutex{}, filepath.Join(root, fileName), storage),
	}
}

type fmStorageImpl struct {
	reportStorage *mwf.MemWithFile[reportsD, mwf.Serial, mwf.Lock]
}

func (impl *fmStorageImpl) AddReport(report *fluxreport.Report) (id uint64, err error) {
	if report == nil {
		err = commerr.ErrInvalidArgument

		return
	}

	id = report.ID
	if id == 0 {
		id = snowflake.ID()
	}

	err = impl.reportStorage.Change(func(oldD reportsD) (reportsD, error) {
		if oldD == nil {
			oldD = make(reportsD)
		}

		if _, ok := oldD[report.Scenario]; !ok {
			oldD[report.Scenario] = make(map[uint64]*fluxreport.Report)
		}

		if _, ok := oldD[report.Scenario][id]; ok {
			return nil, commerr.ErrAlreadyExists
		}

		r := cloneReport(report)
		r.ID = id

		oldD[report.Scenario][id] = r

		return oldD, nil
	})

	return
}

func (impl *fmStorageImpl) GetReport(scenario string, id uint64) (report *fluxreport.Report, err error) {
	impl.reportStorage.Read(func(d reportsD) {
		r, ok := d[scenario][id]
		if !ok {
			err = commerr.ErrNotFound

			return
		}

		report = cloneReport(r)
	})

	return
}

func (impl *fmStorageImpl) GetReports(scenario string) (reports []*fluxreport.Report, err error) {
	impl.reportStorage.Read(func(d reportsD) {
		for _, r := range d[scenario] {
			reports = append(reports, cloneReport(r))
		}
	})

	fluxreport.SortReports(reports)

	return
}

func (impl *fmStorageImpl) DelReport(scenario string, id uint64) error {
	return impl.reportStorage.Change(func(oldD reportsD) (reportsD, error) {
		if _, ok := oldD[scenario][id]; !ok {
			return nil, commerr.ErrNotFound
		}

		delete(oldD[scenario], id)

		if len(oldD[scenario]) == 0 {
			delete(oldD, scenario)
		}

		return oldD, nil
	})
}

func cloneReport(r *fluxreport.Report) *fluxreport.Report {
	n := *r

	n.Leaves = make(map[string]float64, len(r.Leaves))
	for name, flux := range r.Leaves {
		n.Leaves[name] = flux
	}

	return &n
}
