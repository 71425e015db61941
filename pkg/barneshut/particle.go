package barneshut

import (
	"fmt"
	"math"

	"github.com/lao-tseu-is-alive/go-barnes-hut/pkg/geometry"
)

// Particle is a point mass. The tree stores copies of particles, never
// pointers into the caller's slice.
type Particle struct {
	Position geometry.Vector2D `json:"position" msgpack:"position"`
	Velocity geometry.Vector2D `json:"velocity" msgpack:"velocity"`
	Mass     float64           `json:"mass" msgpack:"mass"`
}

// Validate checks that the particle can be inserted into a tree.
func (p Particle) Validate() error {
	if !(p.Mass > 0) || math.IsInf(p.Mass, 0) {
		return fmt.Errorf("%w: mass must be positive and finite, got %v", ErrInvalidParticle, p.Mass)
	}
	if !p.Position.IsFinite() {
		return fmt.Errorf("%w: position %v is not finite", ErrInvalidParticle, p.Position)
	}
	return nil
}

// ApplyForce pulls p toward other: the magnitude g*m1*m2/d² along the unit
// direction, multiplied by dt, is added straight into p.Velocity.
// The result is not divided by p.Mass; heavier particles are pulled harder.
//
// Points closer than geometry.Epsilon return ErrCoincident and leave p as is.
func (p *Particle) ApplyForce(other Particle, g, dt float64) error {
	dir, err := other.Position.Sub(p.Position).Normalize()
	if err != nil {
		return ErrCoincident
	}
	d2 := p.Position.DistanceSquaredTo(other.Position)
	magnitude := g * p.Mass * other.Mass / d2
	p.Velocity = p.Velocity.Add(dir.Mul(magnitude * dt))
	return nil
}

// UpdatePosition advances the position by Velocity*dt.
func (p *Particle) UpdatePosition(dt float64) {
	p.Position = p.Position.Add(p.Velocity.Mul(dt))
}
