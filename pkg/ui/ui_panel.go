package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight   = 30.0
	sectionHeight = 25.0
	labelHeight   = 15.0
)

// UIWidget is an interface for all UI widgets
type UIWidget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
	// moveTo places the widget's top edge at y, the panel scrolls this way.
	moveTo(y float64)
}

// SliderWrapper adapts Slider to UIWidget
type SliderWrapper struct {
	*Slider
}

func (s *SliderWrapper) GetHeight() float64 { return labelHeight + s.H + 10 }
func (s *SliderWrapper) moveTo(y float64) { s.Y = y + labelHeight }

// CheckboxWrapper adapts Checkbox to UIWidget
type CheckboxWrapper struct {
	*Checkbox
}

func (c *CheckboxWrapper) GetHeight() float64 { return labelHeight + c.Size + 5 }
func (c *CheckboxWrapper) moveTo(y float64) { c.Y = y + labelHeight }

// ButtonWrapper adapts Button to UIWidget. Buttons carry their label inside.
type ButtonWrapper struct {
	*Button
}

func (b *ButtonWrapper) GetHeight() float64 { return b.Height + 8 }
func (b *ButtonWrapper) moveTo(y float64) { b.Y = y }

// PanelSection groups the widgets [StartIndex, EndIndex) under a title.
type PanelSection struct {
	Title      string
	StartIndex int
	EndIndex   int
}

// UIPanel is a scrollable column of widgets grouped in sections.
type UIPanel struct {
	X, Y          float64
	Width, Height float64
	Title         string
	Widgets       []UIWidget
	Labels        []string // parallel to Widgets, empty for buttons
	ScrollOffset  float64

	BGColor     color.RGBA
	BorderColor color.RGBA

	sections []PanelSection
}

// NewUIPanel creates a new UI panel
func NewUIPanel(x, y, width, height float64) *UIPanel {
	return &UIPanel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Title:       "Configuration",
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection opens a section; widgets added until EndSection belong to it.
func (p *UIPanel) AddSection(title string) {
	p.sections = append(p.sections, PanelSection{
		Title:      title,
		StartIndex: len(p.Widgets),
		EndIndex:   len(p.Widgets),
	})
}

// EndSection closes the current section
func (p *UIPanel) EndSection() {
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].EndIndex = len(p.Widgets)
	}
}

// AddSlider adds a slider widget to the panel
func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	slider := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	p.add(&SliderWrapper{slider}, label)
	return slider
}

// AddLogSlider adds a slider with a logarithmic track; min must be > 0.
func (p *UIPanel) AddLogSlider(label string, min, max, value float64) *Slider {
	slider := p.AddSlider(label, min, max, value)
	slider.Log = true
	return slider
}

// AddCheckbox adds a checkbox widget to the panel
func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	checkbox := NewCheckbox(p.X+10, 0, label, value)
	p.add(&CheckboxWrapper{checkbox}, label)
	return checkbox
}

// AddButton adds a full-width button to the panel
func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	button := NewButton(p.X+10, 0, p.Width-20, 22, label, onClick)
	p.add(&ButtonWrapper{button}, "")
	return button
}

func (p *UIPanel) add(w UIWidget, label string) {
	p.Widgets = append(p.Widgets, w)
	p.Labels = append(p.Labels, label)
	p.layout()
}

// layout assigns every widget its on-screen y for the current scroll offset.
// It returns the content height.
func (p *UIPanel) layout() float64 {
	y := p.Y + titleHeight - p.ScrollOffset
	next := 0
	for _, s := range p.sections {
		y += sectionHeight
		for ; next < s.EndIndex && next < len(p.Widgets); next++ {
			p.Widgets[next].moveTo(y)
			y += p.Widgets[next].GetHeight()
		}
	}
	// widgets added outside any section
	for ; next < len(p.Widgets); next++ {
		p.Widgets[next].moveTo(y)
		y += p.Widgets[next].GetHeight()
	}
	return y + p.ScrollOffset - p.Y
}

// Scroll moves the content by dy pixels, clamped to the content height.
func (p *UIPanel) Scroll(dy float64) {
	p.ScrollOffset += dy
	maxScroll := p.contentHeight() - p.Height + 10
	if p.ScrollOffset > maxScroll {
		p.ScrollOffset = maxScroll
	}
	if p.ScrollOffset < 0 {
		p.ScrollOffset = 0
	}
	p.layout()
}

func (p *UIPanel) contentHeight() float64 {
	h := titleHeight + float64(len(p.sections))*sectionHeight
	for _, w := range p.Widgets {
		h += w.GetHeight()
	}
	return h
}

// Update handles input for all widgets
func (p *UIPanel) Update() {
	if _, dy := ebiten.Wheel(); dy != 0 {
		p.Scroll(-dy * 20)
	}
	for _, w := range p.Widgets {
		if p.visible(widgetTop(w)) {
			w.Update()
		}
	}
}

func (p *UIPanel) visible(y float64) bool {
	return y >= p.Y+titleHeight-labelHeight && y <= p.Y+p.Height-labelHeight
}

func widgetTop(w UIWidget) float64 {
	switch w := w.(type) {
	case *SliderWrapper:
		return w.Y - labelHeight
	case *CheckboxWrapper:
		return w.Y - labelHeight
	case *ButtonWrapper:
		return w.Y
	}
	return 0
}

// Draw renders the panel and all widgets
func (p *UIPanel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	for _, s := range p.sections {
		y := p.sectionTop(s)
		if p.visible(y + sectionHeight) {
			vector.FillRect(screen,
				float32(p.X+5), float32(y),
				float32(p.Width-10), 20,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, s.Title, int(p.X+10), int(y+3))
		}
	}

	for i, w := range p.Widgets {
		top := widgetTop(w)
		if !p.visible(top) {
			continue
		}
		if p.Labels[i] != "" {
			ebitenutil.DebugPrintAt(screen, p.Labels[i], int(p.X+10), int(top))
		}
		w.Draw(screen)
	}
}

// sectionTop is the y of a section header, just above its first widget.
func (p *UIPanel) sectionTop(s PanelSection) float64 {
	if s.StartIndex < len(p.Widgets) && s.StartIndex < s.EndIndex {
		return widgetTop(p.Widgets[s.StartIndex]) - sectionHeight
	}
	return p.Y + titleHeight - p.ScrollOffset
}
