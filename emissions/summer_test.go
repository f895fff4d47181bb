package emissions

import (
	"testing"

	"github.com/sgostarter/libcarbon/carboncalc"
	"github.com/sgostarter/libcarbon/density"
	"github.com/sgostarter/libcarbon/modeltime"
	"github.com/sgostarter/libcarbon/visitor"
	"github.com/stretchr/testify/assert"
)

func utModeltime(t *testing.T) *modeltime.Modeltime {
	mt, err := modeltime.NewModeltime(&modeltime.Config{
		Years:        []int{1999, 2000},
		BaseTimeStep: 1,
	})
	assert.Nil(t, err)

	return mt
}

func TestGHG(t *testing.T) {
	ghg := NewGHG(CH4, 2)
	assert.EqualValues(t, CH4, ghg.GetName())
	assert.True(t, ghg.SetEmission(1, 3.5))
	assert.False(t, ghg.SetEmission(2, 1))
	assert.EqualValues(t, 3.5, ghg.GetEmission(1))
	assert.EqualValues(t, 0, ghg.GetEmission(0))
	assert.EqualValues(t, 0, ghg.GetEmission(7))
}

func TestSummerGHG(t *testing.T) {
	mt := utModeltime(t)

	ch4a := NewGHG(CH4, mt.GetPeriodCount())
	ch4a.SetEmission(1, 2)

	ch4b := NewGHG(CH4, mt.GetPeriodCount())
	ch4b.SetEmission(1, 3)

	n2o := NewGHG(N2O, mt.GetPeriodCount())
	n2o.SetEmission(1, 100)

	summer := NewSummer(CH4, mt)
	assert.EqualValues(t, CH4, summer.GetGasName())
	assert.False(t, summer.AreEmissionsSet(1))

	visitor.Visit(summer, 1, ch4a, n2o, ch4b)

	assert.True(t, summer.AreEmissionsSet(1))
	assert.False(t, summer.AreEmissionsSet(0))
	assert.False(t, summer.AreEmissionsSet(5))
	assert.EqualValues(t, 5, summer.GetEmissions(1))
	assert.EqualValues(t, 0, summer.GetEmissions(5))
}

func TestSummerCarbonCalc(t *testing.T) {
	mt := utModeltime(t)

	calcA := carboncalc.NewSimpleCarbonCalc(mt, density.Constant{Above: 10, Below: 5}, nil)
	calcA.SetTotalLandUse(100, 0)
	calcA.SetTotalLandUse(80, 1)
	calcA.Calc(1)

	calcB := carboncalc.NewSimpleCarbonCalc(mt, density.Constant{Above: 1}, nil)
	calcB.SetTotalLandUse(10, 0)
	calcB.SetTotalLandUse(40, 1)
	calcB.Calc(1)

	co2 := NewGHG(CO2, mt.GetPeriodCount())
	co2.SetEmission(1, 7)

	summer := NewSummer(CO2, mt)
	visitor.Visit(summer, 1, calcA, calcB, co2)

	assert.True(t, summer.AreEmissionsSet(1))
	assert.InDelta(t, 200-30+7, summer.GetEmissions(1), 1e-9)

	ch4Summer := NewSummer(CH4, mt)
	visitor.Visit(ch4Summer, 1, calcA, calcB, co2)
	assert.False(t, ch4Summer.AreEmissionsSet(1))
}
