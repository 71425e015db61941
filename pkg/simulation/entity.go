package simulation

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-barnes-hut/pb"
	"github.com/lao-tseu-is-alive/go-barnes-hut/pkg/barneshut"
	"github.com/lao-tseu-is-alive/go-barnes-hut/pkg/geometry"
)

// BodyID is the stable name of the i-th body in snapshots.
func BodyID(i int) string {
	return fmt.Sprintf("body-%04d", i)
}

func vecToProto(v geometry.Vector2D) *pb.Vec2 {
	return &pb.Vec2{X: v.X, Y: v.Y}
}

func vecFromProto(v *pb.Vec2) geometry.Vector2D {
	return geometry.Vector2D{X: v.GetX(), Y: v.GetY()}
}

// BodyToProto converts a particle into its protobuf envelope.
func BodyToProto(i int, p barneshut.Particle) *pb.Body {
	return &pb.Body{
		Id:       BodyID(i),
		Position: vecToProto(p.Position),
		Velocity: vecToProto(p.Velocity),
		Mass:     p.Mass,
	}
}

// ParticleFromProto converts a body back; missing vectors read as zero.
func ParticleFromProto(b *pb.Body) barneshut.Particle {
	return barneshut.Particle{
		Position: vecFromProto(b.GetPosition()),
		Velocity: vecFromProto(b.GetVelocity()),
		Mass:     b.GetMass(),
	}
}

// CellToProto converts a drawn quadtree cell.
func CellToProto(c Cell) *pb.Cell {
	return &pb.Cell{X: c.X, Y: c.Y, HalfWidth: c.HalfWidth, Mass: c.Mass}
}
