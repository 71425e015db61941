package simulation

import "math"

// viewport maps world coordinates, y up and centred at the origin, onto
// screen pixels, y down. The square of half-width boxSize fills the
// shorter side of the screen.
type viewport struct {
	cx, cy float64 // screen centre
	scale  float64 // pixels per world unit
}

func newViewport(width, height, boxSize float64) viewport {
	return viewport{
		cx:    width / 2,
		cy:    height / 2,
		scale: math.Min(width, height) / 2 / boxSize,
	}
}

func (v viewport) toScreen(x, y float64) (float32, float32) {
	return float32(v.cx + x*v.scale), float32(v.cy - y*v.scale)
}

func (v viewport) length(d float64) float32 {
	return float32(d * v.scale)
}

// bodyRadius grows with the square root of the mass relative to the heaviest
// body, so a dominant central mass does not swallow the screen.
func bodyRadius(mass, maxMass float64) float32 {
	if maxMass <= 0 {
		return 1.5
	}
	return float32(1.5 + 5*math.Sqrt(mass/maxMass))
}
