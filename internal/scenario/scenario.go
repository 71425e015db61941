// Package scenario builds the initial particle sets the simulation starts from.
package scenario

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-barnes-hut/pkg/barneshut"
	"github.com/lao-tseu-is-alive/go-barnes-hut/pkg/geometry"
)

// Kind names a generator.
type Kind string

const (
	KindUniform  Kind = "uniform"
	KindDisk     Kind = "disk"
	KindBinary   Kind = "binary"
	KindExplicit Kind = "explicit"
)

var (
	ErrUnknownKind  = errors.New("unknown scenario kind")
	ErrInvalidSetup = errors.New("invalid scenario")
)

// Body is a particle as written in a config file.
type Body struct {
	Position [2]float64 `json:"pos"`
	Velocity [2]float64 `json:"vel"`
	Mass     float64    `json:"mass"`
}

// Setup describes an initial condition. Fields a kind does not use are ignored.
type Setup struct {
	Kind  Kind   `json:"kind"`
	Count int    `json:"count"`
	Seed  uint64 `json:"seed"`
	// Radius is the half-width of the uniform square or the outer disk radius.
	Radius      float64 `json:"radius"`
	MinMass     float64 `json:"minMass"`
	MaxMass     float64 `json:"maxMass"`
	CentralMass float64 `json:"centralMass"`
	// MaxSpeed bounds the random velocity components of the uniform kind.
	MaxSpeed float64 `json:"maxSpeed"`
	// G is only used to derive orbital speeds.
	G float64 `json:"-"`
	// AutoOrbit gives every resting explicit body after the first a circular
	// orbit around the first one.
	AutoOrbit bool   `json:"autoOrbit"`
	Bodies    []Body `json:"bodies,omitempty"`
}

// Generate returns a fresh particle slice for setup. The same setup, seed
// included, always yields the same particles.
func Generate(setup Setup) ([]barneshut.Particle, error) {
	var (
		ps  []barneshut.Particle
		err error
	)
	switch setup.Kind {
	case KindUniform:
		ps, err = uniform(setup)
	case KindDisk:
		ps, err = disk(setup)
	case KindBinary:
		ps = Binary()
	case KindExplicit:
		ps, err = explicit(setup)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, setup.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", setup.Kind, err)
	}
	for i, p := range ps {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %s body %d: %w", setup.Kind, i, err)
		}
	}
	return ps, nil
}

// Binary is the two-body check case: mass 50 at (1,1) and mass 100 at
// (-1,-1), both moving at (1,1).
func Binary() []barneshut.Particle {
	return []barneshut.Particle{
		{Position: geometry.NewVector(1, 1), Velocity: geometry.NewVector(1, 1), Mass: 50},
		{Position: geometry.NewVector(-1, -1), Velocity: geometry.NewVector(1, 1), Mass: 100},
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))
}

func checkCommon(setup Setup) error {
	switch {
	case setup.Count < 1:
		return fmt.Errorf("%w: count must be >= 1, got %d", ErrInvalidSetup, setup.Count)
	case !(setup.Radius > 0):
		return fmt.Errorf("%w: radius must be > 0, got %v", ErrInvalidSetup, setup.Radius)
	case !(setup.MinMass > 0) || setup.MaxMass < setup.MinMass:
		return fmt.Errorf("%w: need 0 < minMass <= maxMass, got [%v, %v]", ErrInvalidSetup, setup.MinMass, setup.MaxMass)
	}
	return nil
}

func mass(rng *rand.Rand, setup Setup) float64 {
	return setup.MinMass + rng.Float64()*(setup.MaxMass-setup.MinMass)
}

func uniform(setup Setup) ([]barneshut.Particle, error) {
	if err := checkCommon(setup); err != nil {
		return nil, err
	}
	rng := newRand(setup.Seed)
	ps := make([]barneshut.Particle, setup.Count)
	for i := range ps {
		ps[i] = barneshut.Particle{
			Position: geometry.NewVector(
				(rng.Float64()*2-1)*setup.Radius,
				(rng.Float64()*2-1)*setup.Radius,
			),
			Velocity: geometry.NewVector(
				(rng.Float64()*2-1)*setup.MaxSpeed,
				(rng.Float64()*2-1)*setup.MaxSpeed,
			),
			Mass: mass(rng, setup),
		}
	}
	return ps, nil
}

// disk puts a central mass at the origin and Count-1 satellites on circular
// orbits between Radius/10 and Radius.
func disk(setup Setup) ([]barneshut.Particle, error) {
	if err := checkCommon(setup); err != nil {
		return nil, err
	}
	if !(setup.CentralMass > 0) {
		return nil, fmt.Errorf("%w: centralMass must be > 0, got %v", ErrInvalidSetup, setup.CentralMass)
	}
	rng := newRand(setup.Seed)
	central := barneshut.Particle{Mass: setup.CentralMass}
	ps := make([]barneshut.Particle, 0, setup.Count)
	ps = append(ps, central)

	inner := setup.Radius / 10
	for len(ps) < setup.Count {
		r := inner + rng.Float64()*(setup.Radius-inner)
		p := barneshut.Particle{
			Position: geometry.NewVectorPolar(r, rng.Float64()*2*math.Pi),
			Mass:     mass(rng, setup),
		}
		p.Velocity = OrbitalVelocity(central, p, setup.G)
		ps = append(ps, p)
	}
	return ps, nil
}

func explicit(setup Setup) ([]barneshut.Particle, error) {
	if len(setup.Bodies) == 0 {
		return nil, fmt.Errorf("%w: explicit scenario without bodies", ErrInvalidSetup)
	}
	ps := make([]barneshut.Particle, len(setup.Bodies))
	for i, b := range setup.Bodies {
		ps[i] = barneshut.Particle{
			Position: geometry.NewVector(b.Position[0], b.Position[1]),
			Velocity: geometry.NewVector(b.Velocity[0], b.Velocity[1]),
			Mass:     b.Mass,
		}
	}
	if setup.AutoOrbit {
		for i := 1; i < len(ps); i++ {
			if ps[i].Velocity.LenSqr() == 0 {
				ps[i].Velocity = OrbitalVelocity(ps[0], ps[i], setup.G)
			}
		}
	}
	return ps, nil
}

// OrbitalVelocity returns the velocity, relative to central, that keeps p on
// a counter-clockwise circle around it. The simulated pull on p scales with
// p.Mass, so the speed is sqrt(g*m*M/r) rather than the textbook sqrt(g*M/r).
// A body sitting on central gets central's velocity.
func OrbitalVelocity(central, p barneshut.Particle, g float64) geometry.Vector2D {
	rel := p.Position.Sub(central.Position)
	dir, err := rel.Normalize()
	if err != nil {
		return central.Velocity
	}
	speed := math.Sqrt(g * p.Mass * central.Mass / rel.Len())
	return central.Velocity.Add(dir.Perp().Mul(speed))
}
