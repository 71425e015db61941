package ui

import (
	"math"
	"testing"
)

func TestSlider_RatioRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		log   bool
		min   float64
		max   float64
		ratio float64
		want  float64
	}{
		{"linear middle", false, 0, 2, 0.5, 1},
		{"linear start", false, 0.1, 1, 0, 0.1},
		{"log middle", true, 1e-3, 10, 0.5, 0.1},
		{"log end", true, 1e-3, 10, 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlider(0, 0, 100, tt.name, tt.min, tt.max, tt.min)
			s.Log = tt.log
			s.SetRatio(tt.ratio)
			if math.Abs(s.Value-tt.want) > 1e-12 {
				t.Errorf("SetRatio(%v) value = %v; want %v", tt.ratio, s.Value, tt.want)
			}
			if got := s.Ratio(); math.Abs(got-tt.ratio) > 1e-12 {
				t.Errorf("Ratio() = %v; want %v", got, tt.ratio)
			}
		})
	}
}

func TestSlider_Clamps(t *testing.T) {
	s := NewSlider(0, 0, 100, "theta", 0, 2, 5)
	if s.Value != 2 {
		t.Errorf("NewSlider value = %v; want clamped to 2", s.Value)
	}
	s.SetRatio(-3)
	if s.Value != 0 {
		t.Errorf("SetRatio(-3) value = %v; want 0", s.Value)
	}
}

func TestCheckbox_TogglesOncePerPress(t *testing.T) {
	c := NewCheckbox(0, 0, "show", false)
	c.press(true, true)
	c.press(true, true)
	if !c.Value {
		t.Fatal("a held press must toggle exactly once")
	}
	c.press(true, false)
	c.press(true, true)
	if c.Value {
		t.Error("second press should toggle back")
	}
	c.press(false, false)
	c.press(false, true)
	if c.Value {
		t.Error("press outside the box must not toggle")
	}
}

func TestButton_FiresOncePerPress(t *testing.T) {
	var n int
	b := NewButton(0, 0, 10, 10, "Reset", func() { n++ })
	b.press(true, true)
	b.press(true, true)
	b.press(false, false)
	b.press(true, true)
	if n != 2 {
		t.Errorf("OnClick ran %d times; want 2", n)
	}
}

func TestPanel_LayoutAndScroll(t *testing.T) {
	p := NewUIPanel(10, 10, 200, 120)
	p.AddSection("Solver")
	theta := p.AddSlider("Theta", 0, 2, 0.5)
	dt := p.AddSlider("dt", 0, 1, 0.1)
	p.EndSection()
	p.AddSection("View")
	show := p.AddCheckbox("Show tree", true)
	reset := p.AddButton("Reset", nil)
	p.EndSection()

	if !(theta.Y < dt.Y && dt.Y < show.Y && show.Y < reset.Y) {
		t.Fatalf("widgets not stacked top to bottom: %v %v %v %v", theta.Y, dt.Y, show.Y, reset.Y)
	}
	wantTheta := 10 + titleHeight + sectionHeight + labelHeight
	if theta.Y != wantTheta {
		t.Errorf("first slider y = %v; want %v", theta.Y, wantTheta)
	}

	before := theta.Y
	p.Scroll(40)
	if theta.Y != before-40 {
		t.Errorf("after scrolling 40, slider y = %v; want %v", theta.Y, before-40)
	}
	p.Scroll(-1000)
	if p.ScrollOffset != 0 || theta.Y != before {
		t.Errorf("scroll must clamp at 0, got offset %v y %v", p.ScrollOffset, theta.Y)
	}
	p.Scroll(1e6)
	if limit := p.contentHeight() - p.Height + 10; p.ScrollOffset != limit {
		t.Errorf("scroll offset = %v; want clamped to %v", p.ScrollOffset, limit)
	}
}
