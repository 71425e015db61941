package simulation

import (
	"github.com/lao-tseu-is-alive/go-barnes-hut/pkg/barneshut"
	"github.com/lao-tseu-is-alive/go-barnes-hut/pkg/geometry"
)

// TotalMass sums the particle masses.
func TotalMass(ps []barneshut.Particle) float64 {
	var m float64
	for _, p := range ps {
		m += p.Mass
	}
	return m
}

// KineticEnergy is Σ ½·m·v².
func KineticEnergy(ps []barneshut.Particle) float64 {
	var e float64
	for _, p := range ps {
		e += 0.5 * p.Mass * p.Velocity.LenSqr()
	}
	return e
}

// PotentialEnergy is -Σ G·mi·mj/rij over distinct pairs. Pairs closer than
// geometry.Epsilon are left out.
func PotentialEnergy(ps []barneshut.Particle, g float64) float64 {
	var e float64
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			d := ps[i].Position.DistanceTo(ps[j].Position)
			if d < geometry.Epsilon {
				continue
			}
			e -= g * ps[i].Mass * ps[j].Mass / d
		}
	}
	return e
}

// Momentum is Σ m·v.
func Momentum(ps []barneshut.Particle) geometry.Vector2D {
	var p geometry.Vector2D
	for _, b := range ps {
		p = p.Add(b.Velocity.Mul(b.Mass))
	}
	return p
}

// CenterOfMass is Σ m·x / Σ m, the origin for an empty list.
func CenterOfMass(ps []barneshut.Particle) geometry.Vector2D {
	var c geometry.Vector2D
	m := TotalMass(ps)
	if m == 0 {
		return c
	}
	for _, p := range ps {
		c = c.Add(p.Position.Mul(p.Mass))
	}
	return c.Mul(1 / m)
}
