package config

import (
	"fmt"
	"time"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libcarbon/carboncalc"
	"github.com/sgostarter/libcarbon/density"
	"github.com/sgostarter/libcarbon/landscape"
	"github.com/sgostarter/libcarbon/modeltime"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"gopkg.in/yaml.v3"
)

type LeafConfig struct {
	Name     string `yaml:"name" json:"name"`
	LandType string `yaml:"landType" json:"landType"`
	// LandAllocation is the land area of the leaf by period.
	LandAllocation []float64 `yaml:"landAllocation" json:"landAllocation"`
}

type Config struct {
	Scenario  string            `yaml:"scenario" json:"scenario"`
	Modeltime modeltime.Config  `yaml:"modeltime" json:"modeltime"`
	Carbon    carboncalc.Config `yaml:"carbon" json:"carbon"`

	density.TableConfig `yaml:",inline"`

	// DensityCacheExpiration enables per-year density caching; -1 caches forever.
	DensityCacheExpiration time.Duration `yaml:"densityCacheExpiration" json:"densityCacheExpiration"`

	Leaves []LeafConfig `yaml:"leaves" json:"leaves"`
}

func Load(fileName string, storage stg.FileStorage) (*Config, error) {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	d, err := storage.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	return Parse(d)
}

func Parse(d []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(d, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// BuildLandscape creates the calendar, the density table and one leaf per
// configured leaf with its land allocation set.
func BuildLandscape(cfg *Config, logger l.Wrapper) (*landscape.Landscape, error) {
	if cfg == nil {
		return nil, commerr.ErrInvalidArgument
	}

	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	mt, err := modeltime.NewModeltime(&cfg.Modeltime)
	if err != nil {
		return nil, err
	}

	table, err := density.NewTable(&cfg.TableConfig)
	if err != nil {
		return nil, err
	}

	ls := landscape.NewLandscape(mt, logger, carboncalc.WithConfig(&cfg.Carbon))

	for _, leafCfg := range cfg.Leaves {
		provider, err := table.Get(leafCfg.LandType)
		if err != nil {
			return nil, fmt.Errorf("leaf %s: %w", leafCfg.Name, err)
		}

		if cfg.DensityCacheExpiration != 0 {
			provider = density.NewCachedProvider(provider, cfg.DensityCacheExpiration)
		}

		if _, err = ls.AddLeaf(leafCfg.Name, provider); err != nil {
			return nil, err
		}

		for period, landAllocation := range leafCfg.LandAllocation {
			if err = ls.SetLandAllocation(leafCfg.Name, period, landAllocation); err != nil {
				return nil, fmt.Errorf("leaf %s: %w", leafCfg.Name, err)
			}
		}
	}

	logger.WithFields(l.StringField("scenario", cfg.Scenario), l.IntField("leaves", len(cfg.Leaves))).
		Debug("landscape built")

	return ls, nil
}
