package carboncalc

type Config struct {
	Horizon       Horizon `yaml:"horizon" json:"horizon"`
	SoilTimeScale float64 `yaml:"soilTimeScale" json:"soilTimeScale"`
	Tolerance     float64 `yaml:"tolerance" json:"tolerance"`
}

type Options struct {
	horizon       Horizon
	soilTimeScale float64
	tolerance     float64
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		horizon:       DefaultHorizon,
		soilTimeScale: DefaultSoilTimeScale,
		tolerance:     DefaultTolerance,
	}

	for _, o := range option {
		o(opts)
	}

	return opts
}

func WithHorizon(startYear, endYear int) Option {
	return func(o *Options) {
		if endYear >= startYear {
			o.horizon = Horizon{
				StartYear: startYear,
				EndYear:   endYear,
			}
		}
	}
}

func WithSoilTimeScale(tau float64) Option {
	return func(o *Options) {
		if tau > 0 {
			o.soilTimeScale = tau
		}
	}
}

func WithTolerance(eps float64) Option {
	return func(o *Options) {
		if eps >= 0 {
			o.tolerance = eps
		}
	}
}

// WithConfig applies every field of cfg that is set.
func WithConfig(cfg *Config) Option {
	return func(o *Options) {
		if cfg == nil {
			return
		}

		if cfg.Horizon.StartYear != 0 || cfg.Horizon.EndYear != 0 {
			WithHorizon(cfg.Horizon.StartYear, cfg.Horizon.EndYear)(o)
		}

		WithSoilTimeScale(cfg.SoilTimeScale)(o)

		if cfg.Tolerance > 0 {
			o.tolerance = cfg.Tolerance
		}
	}
}
