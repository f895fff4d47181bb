package visitor

// DefaultVisitor ignores every call. Embed it and override what is needed.
type DefaultVisitor struct {
}

func (DefaultVisitor) StartVisitLandLeaf(LandLeaf, int) {}

func (DefaultVisitor) EndVisitLandLeaf(LandLeaf, int) {}

func (DefaultVisitor) StartVisitGHG(GHG, int) {}

func (DefaultVisitor) EndVisitGHG(GHG, int) {}

func (DefaultVisitor) StartVisitCarbonCalc(CarbonCalc, int) {}

func (DefaultVisitor) EndVisitCarbonCalc(CarbonCalc, int) {}

// Visit walks the nodes in order for the period. Nil nodes are skipped.
func Visit(v Visitor, period int, nodes ...Acceptor) {
	if v == nil {
		return
	}

	for _, node := range nodes {
		if node == nil {
			continue
		}

		node.Accept(v, period)
	}
}
