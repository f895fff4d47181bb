package density

import (
	"errors"
	"testing"
	"time"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestConstantAndFuncs(t *testing.T) {
	var p Provider = Constant{Above: 10, Below: 5}
	assert.EqualValues(t, 10, p.AboveGroundCarbonPerArea(1990))
	assert.EqualValues(t, 5, p.BelowGroundCarbonPerArea(2050))

	p = Funcs{
		Above: func(year int) float64 {
			return float64(year - 2000)
		},
	}
	assert.EqualValues(t, 5, p.AboveGroundCarbonPerArea(2005))
	assert.EqualValues(t, 0, p.BelowGroundCarbonPerArea(2005))
}

func TestCurve(t *testing.T) {
	c := NewCurve(map[int]float64{
		2000: 10,
		1990: 20,
		2010: 10,
	})

	assert.EqualValues(t, 20, c.At(1960))
	assert.EqualValues(t, 20, c.At(1990))
	assert.InDelta(t, 15, c.At(1995), 1e-12)
	assert.EqualValues(t, 10, c.At(2000))
	assert.EqualValues(t, 10, c.At(2005))
	assert.EqualValues(t, 10, c.At(2095))

	var nilCurve *Curve
	assert.EqualValues(t, 0, nilCurve.At(2000))

	assert.EqualValues(t, 3, NewConstantCurve(3).At(1800))
}

func TestTableFromYAML(t *testing.T) {
	const d = `
landTypes:
  - name: forest
    above:
      value: 10
    below:
      points:
        1975: 6
        2025: 4
  - name: crop
    above:
      value: 1
    below:
      value: 3
`

	var cfg TableConfig

	err := yaml.Unmarshal([]byte(d), &cfg)
	assert.Nil(t, err)

	table, err := NewTable(&cfg)
	assert.Nil(t, err)
	assert.EqualValues(t, []string{"forest", "crop"}, table.Names())

	forest, err := table.Get("forest")
	assert.Nil(t, err)
	assert.EqualValues(t, 10, forest.AboveGroundCarbonPerArea(2000))
	assert.InDelta(t, 5, forest.BelowGroundCarbonPerArea(2000), 1e-12)
	assert.EqualValues(t, 4, forest.BelowGroundCarbonPerArea(2095))

	crop, err := table.Get("crop")
	assert.Nil(t, err)
	assert.EqualValues(t, 3, crop.BelowGroundCarbonPerArea(1960))

	_, err = table.Get("pasture")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))
}

func TestTableBadConfig(t *testing.T) {
	_, err := NewTable(&TableConfig{
		LandTypes: []LandTypeConfig{{Name: "a"}, {Name: "a"}},
	})
	assert.True(t, errors.Is(err, commerr.ErrAlreadyExists))

	_, err = NewTable(&TableConfig{
		LandTypes: []LandTypeConfig{{}},
	})
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	_, err = NewTable(&TableConfig{
		LandTypes: []LandTypeConfig{{
			Name: "a",
			Above: CurveConfig{
				Points: map[interface{}]interface{}{"not a year": 1},
			},
		}},
	})
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}

type countingProvider struct {
	aboveCalls int
	belowCalls int
}

func (p *countingProvider) AboveGroundCarbonPerArea(year int) float64 {
	p.aboveCalls++

	return float64(year)
}

func (p *countingProvider) BelowGroundCarbonPerArea(year int) float64 {
	p.belowCalls++

	return float64(year) / 2
}

func TestCachedProvider(t *testing.T) {
	cp := &countingProvider{}

	p := NewCachedProvider(cp, 0)

	for idx := 0; idx < 3; idx++ {
		assert.EqualValues(t, 2000, p.AboveGroundCarbonPerArea(2000))
		assert.EqualValues(t, 1000, p.BelowGroundCarbonPerArea(2000))
	}

	assert.EqualValues(t, 1, cp.aboveCalls)
	assert.EqualValues(t, 1, cp.belowCalls)

	assert.EqualValues(t, 2001, p.AboveGroundCarbonPerArea(2001))
	assert.EqualValues(t, 2, cp.aboveCalls)

	assert.Nil(t, NewCachedProvider(nil, time.Minute))
}
