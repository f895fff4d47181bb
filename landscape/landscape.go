package landscape

import (
	"context"
	"fmt"
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libcarbon/carboncalc"
	"github.com/sgostarter/libcarbon/density"
	"github.com/sgostarter/libcarbon/emissions"
	"github.com/sgostarter/libcarbon/modeltime"
	"github.com/sgostarter/libcarbon/timeseries"
	"github.com/sgostarter/libcarbon/visitor"
	"github.com/sgostarter/libeasygo/routineman"
)

// Landscape owns the land leaves of a region and the other emission sources
// that are reported along with them.
type Landscape struct {
	logger   l.Wrapper
	calendar modeltime.Calendar
	options  []carboncalc.Option

	lock      sync.RWMutex
	leafNames []string
	leaves    map[string]*Leaf
	ghgs      []*emissions.GHG
}

func NewLandscape(calendar modeltime.Calendar, logger l.Wrapper, options ...carboncalc.Option) *Landscape {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "landscape"))

	if calendar == nil {
		logger.Fatal("no calendar")
	}

	return &Landscape{
		logger:   logger,
		calendar: calendar,
		options:  options,
		leaves:   make(map[string]*Leaf),
	}
}

func (ls *Landscape) GetCalendar() modeltime.Calendar {
	return ls.calendar
}

func (ls *Landscape) AddLeaf(name string, provider density.Provider) (*Leaf, error) {
	if name == "" || provider == nil {
		return nil, commerr.ErrInvalidArgument
	}

	ls.lock.Lock()
	defer ls.lock.Unlock()

	if _, ok := ls.leaves[name]; ok {
		return nil, fmt.Errorf("%w: leaf %s", commerr.ErrAlreadyExists, name)
	}

	leaf := &Leaf{
		name:           name,
		landAllocation: timeseries.NewPeriodVector[float64](ls.calendar.GetPeriodCount()),
		calc:           carboncalc.NewSimpleCarbonCalc(ls.calendar, provider, ls.logger, ls.options...),
	}

	ls.leafNames = append(ls.leafNames, name)
	ls.leaves[name] = leaf

	return leaf, nil
}

func (ls *Landscape) GetLeaf(name string) (*Leaf, error) {
	ls.lock.RLock()
	defer ls.lock.RUnlock()

	leaf, ok := ls.leaves[name]
	if !ok {
		return nil, fmt.Errorf("%w: leaf %s", commerr.ErrNotFound, name)
	}

	return leaf, nil
}

func (ls *Landscape) GetLeafNames() []string {
	ls.lock.RLock()
	defer ls.lock.RUnlock()

	return append([]string{}, ls.leafNames...)
}

func (ls *Landscape) SetLandAllocation(name string, period int, landAllocation float64) error {
	leaf, err := ls.GetLeaf(name)
	if err != nil {
		return err
	}

	if !leaf.setLandAllocation(period, landAllocation) {
		return fmt.Errorf("%w: period %d", commerr.ErrOutOfRange, period)
	}

	return nil
}

func (ls *Landscape) AddGHG(ghg *emissions.GHG) {
	if ghg == nil {
		return
	}

	ls.lock.Lock()
	defer ls.lock.Unlock()

	ls.ghgs = append(ls.ghgs, ghg)
}

// Calc evaluates the period on every leaf. Leaves share no state, so each
// calculator runs on its own routine.
func (ls *Landscape) Calc(period int) error {
	if !ls.calendar.IsValidPeriod(period) {
		return fmt.Errorf("%w: period %d", commerr.ErrOutOfRange, period)
	}

	leaves := ls.getLeaves()

	routineMan := routineman.NewRoutineMan(context.Background(), ls.logger)

	for _, leaf := range leaves {
		calc := leaf.calc

		routineMan.StartRoutine(func(_ context.Context, _ func() bool) {
			calc.Calc(period)
		}, "calc:"+leaf.name)
	}

	routineMan.Wait()

	ls.logger.WithFields(l.IntField("period", period), l.IntField("leaves", len(leaves))).Debug("calc done")

	return nil
}

// GetNetLandUseChangeEmission sums the net flux of every leaf for the year.
func (ls *Landscape) GetNetLandUseChangeEmission(year int) float64 {
	var total float64

	for _, leaf := range ls.getLeaves() {
		total += leaf.calc.GetNetLandUseChangeEmission(year)
	}

	return total
}

// Accept visits the leaves in the order they were added, then the other sources.
func (ls *Landscape) Accept(v visitor.Visitor, period int) {
	ls.lock.RLock()
	nodes := make([]visitor.Acceptor, 0, len(ls.leafNames)+len(ls.ghgs))

	for _, name := range ls.leafNames {
		nodes = append(nodes, ls.leaves[name])
	}

	for _, ghg := range ls.ghgs {
		nodes = append(nodes, ghg)
	}
	ls.lock.RUnlock()

	visitor.Visit(v, period, nodes...)
}

func (ls *Landscape) getLeaves() []*Leaf {
	ls.lock.RLock()
	defer ls.lock.RUnlock()

	leaves := make([]*Leaf, 0, len(ls.leafNames))
	for _, name := range ls.leafNames {
		leaves = append(leaves, ls.leaves[name])
	}

	return leaves
}
