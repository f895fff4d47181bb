package visitor

// CarbonCalc is the read side of a land-use change carbon calculator.
type CarbonCalc interface {
	GetNetLandUseChangeEmission(year int) float64
	GetNetTerrestrial(year int) float64
	IsCalculated(year int) bool
}

// GHG is a non land-use emission source for a single gas.
type GHG interface {
	GetName() string
	GetEmission(period int) float64
}

// LandLeaf is a land unit that owns a carbon calculator.
type LandLeaf interface {
	GetName() string
	GetLandAllocation(period int) float64
}

// Visitor receives one bracket of calls per visited source. Start and End are
// always called in pairs, even when the source has nothing to report.
type Visitor interface {
	StartVisitLandLeaf(leaf LandLeaf, period int)
	EndVisitLandLeaf(leaf LandLeaf, period int)

	StartVisitGHG(ghg GHG, period int)
	EndVisitGHG(ghg GHG, period int)

	StartVisitCarbonCalc(calc CarbonCalc, period int)
	EndVisitCarbonCalc(calc CarbonCalc, period int)
}

type Acceptor interface {
	Accept(v Visitor, period int)
}
