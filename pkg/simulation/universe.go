package simulation

import (
	"fmt"
	"time"

	"github.com/lao-tseu-is-alive/go-barnes-hut/internal/scenario"
	"github.com/lao-tseu-is-alive/go-barnes-hut/pkg/barneshut"
	golog "github.com/tochemey/goakt/v3/log"
)

// Cell is one occupied quadtree node kept for drawing.
type Cell struct {
	X, Y      float64
	HalfWidth float64
	Mass      float64
}

// StepReport describes one Universe.Step.
type StepReport struct {
	Step      uint64
	Stats     barneshut.Stats
	TotalMass float64
	Nodes     int
	Depth     int
	Overflows int
	Duration  time.Duration
}

// Universe owns the live particle list and drives the per-step cycle:
// new tree, insert a copy of every particle, aggregate, evaluate in place.
// The tree is dropped after each step; only its occupied cells are kept
// for rendering. A Universe is not safe for concurrent use; WorldActor
// serialises access to it.
type Universe struct {
	cfg       *Config
	params    barneshut.Params
	dt        float64
	particles []barneshut.Particle
	cells     []Cell
	step      uint64
	logger    golog.Logger
}

// NewUniverse validates cfg and generates its scenario.
func NewUniverse(cfg *Config, logger golog.Logger) (*Universe, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = golog.DiscardLogger
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	params, _ := cfg.Params()
	u := &Universe{
		cfg:    cfg,
		params: params,
		dt:     cfg.DeltaTime,
		logger: logger,
	}
	if err := u.Reset(); err != nil {
		return nil, err
	}
	return u, nil
}

// Reset regenerates the configured scenario and rewinds the step counter.
func (u *Universe) Reset() error {
	ps, err := scenario.Generate(u.cfg.ScenarioSetup())
	if err != nil {
		return fmt.Errorf("failed to generate scenario: %w", err)
	}
	u.particles = ps
	u.cells = nil
	u.step = 0
	u.logger.Infof("universe reset: %d bodies, scenario %s, solver %s, opening %s",
		len(ps), u.cfg.Scenario.Kind, u.cfg.Solver, u.params.Opening)
	return nil
}

// Step advances every particle by one time step.
func (u *Universe) Step() (StepReport, error) {
	start := time.Now()
	report := StepReport{Step: u.step + 1}

	if u.cfg.Solver == SolverDirect {
		report.Stats = barneshut.DirectSum(u.particles, u.params.G, u.dt)
		report.TotalMass = TotalMass(u.particles)
		u.cells = nil
	} else {
		tree, stats, err := barneshut.Step(u.particles, u.params, u.dt, barneshut.WithLogger(u.logger))
		if err != nil {
			return report, fmt.Errorf("step %d: %w", report.Step, err)
		}
		report.Stats = stats
		report.TotalMass = tree.TotalMass()
		report.Nodes = tree.Len()
		report.Depth = tree.Depth()
		report.Overflows = tree.Overflows()
		u.cells = collectCells(tree, u.cells[:0])
	}

	if report.Stats.Degenerate > 0 {
		u.logger.Debugf("step %d: %d degenerate interactions dropped", report.Step, report.Stats.Degenerate)
	}
	u.step = report.Step
	report.Duration = time.Since(start)
	return report, nil
}

// collectCells keeps the non-empty nodes of tree, reusing buf.
func collectCells(tree *barneshut.Tree, buf []Cell) []Cell {
	tree.Walk(func(n barneshut.Node) bool {
		if n.Kind == barneshut.KindEmpty {
			return false
		}
		buf = append(buf, Cell{X: n.Center.X, Y: n.Center.Y, HalfWidth: n.HalfWidth, Mass: n.TotalMass})
		return true
	})
	return buf
}

// SetTheta changes the opening threshold from the next step on.
func (u *Universe) SetTheta(theta float64) error {
	p := u.params
	p.Theta = theta
	return u.setParams(p)
}

// SetGravity changes G from the next step on.
func (u *Universe) SetGravity(g float64) error {
	p := u.params
	p.G = g
	return u.setParams(p)
}

func (u *Universe) setParams(p barneshut.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	u.params = p
	return nil
}

// SetDeltaTime changes the step size; non-positive values are rejected.
func (u *Universe) SetDeltaTime(dt float64) error {
	if !(dt > 0) {
		return fmt.Errorf("delta time must be > 0, got %v", dt)
	}
	u.dt = dt
	return nil
}

// DeltaTime returns the current step size.
func (u *Universe) DeltaTime() float64 { return u.dt }

// Params returns the tree parameters in effect.
func (u *Universe) Params() barneshut.Params { return u.params }

// StepCount returns the number of completed steps since the last Reset.
func (u *Universe) StepCount() uint64 { return u.step }

// Len returns the number of particles.
func (u *Universe) Len() int { return len(u.particles) }

// Particles returns a copy of the live particle list.
func (u *Universe) Particles() []barneshut.Particle {
	return append([]barneshut.Particle(nil), u.particles...)
}

// Cells returns the occupied nodes of the last tree, nil with the direct
// solver or before the first step.
func (u *Universe) Cells() []Cell {
	return append([]Cell(nil), u.cells...)
}
