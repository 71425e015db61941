package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a horizontal value picker. With Log set the track is
// logarithmic, which suits values spanning several decades like G.
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64
	Log      bool
	// Format is the fmt verb used to print Value next to the track.
	Format string
}

// NewSlider creates a linear slider, Value is clamped to [min, max].
func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	s := &Slider{
		Label:  label,
		Min:    min,
		Max:    max,
		X:      x,
		Y:      y,
		W:      w,
		H:      10,
		Format: "%.3g",
	}
	s.Value = s.clamp(value)
	return s
}

// Ratio is the position of Value along the track, in [0, 1].
func (s *Slider) Ratio() float64 {
	if s.Max == s.Min {
		return 0
	}
	if s.Log && s.Min > 0 {
		return math.Log(s.Value/s.Min) / math.Log(s.Max/s.Min)
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// SetRatio moves the knob to ratio p of the track.
func (s *Slider) SetRatio(p float64) {
	p = math.Max(0, math.Min(1, p))
	if s.Log && s.Min > 0 {
		s.Value = s.clamp(s.Min * math.Pow(s.Max/s.Min, p))
		return
	}
	s.Value = s.clamp(s.Min + p*(s.Max-s.Min))
}

func (s *Slider) clamp(v float64) float64 {
	return math.Max(s.Min, math.Min(s.Max, v))
}

// Update checks for mouse interaction
func (s *Slider) Update() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if float64(mx) >= s.X && float64(mx) <= s.X+s.W &&
		float64(my) >= s.Y && float64(my) <= s.Y+s.H {
		s.SetRatio((float64(mx) - s.X) / s.W)
	}
}

// Draw renders the track, the filled part and the current value.
func (s *Slider) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*s.Ratio()), float32(s.H), color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)

	txt := fmt.Sprintf(s.Format, s.Value)
	ebitenutil.DebugPrintAt(screen, txt, int(s.X+s.W)-len(txt)*6, int(s.Y)-15)
}
