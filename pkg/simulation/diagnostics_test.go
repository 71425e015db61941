package simulation

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-barnes-hut/pkg/barneshut"
	"github.com/lao-tseu-is-alive/go-barnes-hut/pkg/geometry"
)

func TestDiagnostics(t *testing.T) {
	ps := []barneshut.Particle{
		{Position: geometry.Vector2D{X: 0, Y: 0}, Velocity: geometry.Vector2D{X: 1, Y: 0}, Mass: 2},
		{Position: geometry.Vector2D{X: 3, Y: 4}, Velocity: geometry.Vector2D{X: 0, Y: -2}, Mass: 1},
	}

	if got := TotalMass(ps); got != 3 {
		t.Errorf("TotalMass = %v; want 3", got)
	}
	// ½·2·1 + ½·1·4
	if got := KineticEnergy(ps); got != 3 {
		t.Errorf("KineticEnergy = %v; want 3", got)
	}
	// -G·2·1/5
	if got := PotentialEnergy(ps, 10); math.Abs(got+4) > 1e-12 {
		t.Errorf("PotentialEnergy = %v; want -4", got)
	}
	if got := Momentum(ps); !got.Eq(geometry.Vector2D{X: 2, Y: -2}) {
		t.Errorf("Momentum = %v; want (2, -2)", got)
	}
	if got := CenterOfMass(ps); !got.Eq(geometry.Vector2D{X: 1, Y: 4.0 / 3}) {
		t.Errorf("CenterOfMass = %v; want (1, 1.33)", got)
	}
}

func TestDiagnostics_Degenerate(t *testing.T) {
	if got := CenterOfMass(nil); !got.Same(geometry.Vector2D{}) {
		t.Errorf("CenterOfMass(nil) = %v; want origin", got)
	}
	same := []barneshut.Particle{
		{Position: geometry.Vector2D{X: 1, Y: 1}, Mass: 1},
		{Position: geometry.Vector2D{X: 1, Y: 1}, Mass: 1},
	}
	if got := PotentialEnergy(same, 1); got != 0 {
		t.Errorf("PotentialEnergy of coincident pair = %v; want 0", got)
	}
}
