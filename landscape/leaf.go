package landscape

import (
	"github.com/sgostarter/libcarbon/carboncalc"
	"github.com/sgostarter/libcarbon/timeseries"
	"github.com/sgostarter/libcarbon/visitor"
)

// Leaf is one land unit of a single land type and the carbon calculator that tracks it.
type Leaf struct {
	name           string
	landAllocation *timeseries.PeriodVector[float64]
	calc           *carboncalc.SimpleCarbonCalc
}

func (leaf *Leaf) GetName() string {
	return leaf.name
}

func (leaf *Leaf) GetLandAllocation(period int) float64 {
	if !leaf.landAllocation.Contains(period) {
		return 0
	}

	return leaf.landAllocation.At(period)
}

func (leaf *Leaf) GetCarbonCalc() *carboncalc.SimpleCarbonCalc {
	return leaf.calc
}

func (leaf *Leaf) setLandAllocation(period int, landAllocation float64) bool {
	if !leaf.landAllocation.Set(period, landAllocation) {
		return false
	}

	leaf.calc.SetTotalLandUse(landAllocation, period)

	return true
}

func (leaf *Leaf) Accept(v visitor.Visitor, period int) {
	v.StartVisitLandLeaf(leaf, period)
	leaf.calc.Accept(v, period)
	v.EndVisitLandLeaf(leaf, period)
}
