package redisstorage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libcarbon/fluxreport"
	"github.com/spf13/cast"
)

func NewRedisStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) fluxreport.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "redisReportStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &redisStorageImpl{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type redisStorageImpl struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *redisStorageImpl) AddReport(report *fluxreport.Report) (id uint64, err error) {
	if report == nil {
		err = commerr.ErrInvalidArgument

		return
	}

	id = report.ID
	if id == 0 {
		id = snowflake.ID()
	}

	r := *report
	r.ID = id

	d, err := json.Marshal(&r)
	if err != nil {
		return
	}

	ok, err := impl.redisCli.HSetNX(context.Background(), impl.reportsKey(report.Scenario),
		strconv.FormatUint(id, 10), d).Result()
	if err != nil {
		return
	}

	if !ok {
		err = commerr.ErrAlreadyExists
	}

	return
}

func (impl *redisStorageImpl) GetReport(scenario string, id uint64) (report *fluxreport.Report, err error) {
	d, err := impl.redisCli.HGet(context.Background(), impl.reportsKey(scenario), strconv.FormatUint(id, 10)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = commerr.ErrNotFound
		}

		return
	}

	report = &fluxreport.Report{}

	err = json.Unmarshal(d, report)
	if err != nil {
		report = nil
	}

	return
}

func (impl *redisStorageImpl) GetReports(scenario string) (reports []*fluxreport.Report, err error) {
	m, err := impl.redisCli.HGetAll(context.Background(), impl.reportsKey(scenario)).Result()
	if err != nil {
		return
	}

	for field, d := range m {
		var report fluxreport.Report

		if err = json.Unmarshal([]byte(d), &report); err != nil {
			impl.logger.WithFields(l.ErrorField(err), l.StringField("field", field)).Error("bad report data")

			return nil, err
		}

		if report.ID == 0 {
			report.ID = cast.ToUint64(field)
		}

		reports = append(reports, &report)
	}

	fluxreport.SortReports(reports)

	return
}

func (impl *redisStorageImpl) DelReport(scenario string, id uint64) error {
	n, err := impl.redisCli.HDel(context.Background(), impl.reportsKey(scenario), strconv.FormatUint(id, 10)).Result()
	if err != nil {
		return err
	}

	if n == 0 {
		return commerr.ErrNotFound
	}

	return nil
}

func (impl *redisStorageImpl) reportsKey(scenario string) string {
	if impl.preKey == "" {
		return "fluxReports:" + scenario
	}

	return impl.preKey + ":fluxReports:" + scenario
}
