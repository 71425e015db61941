package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lao-tseu-is-alive/go-barnes-hut/pkg/barneshut"
	"github.com/lao-tseu-is-alive/go-barnes-hut/pkg/simulation"
	golog "github.com/tochemey/goakt/v3/log"
)

const frameInterval = 33 * time.Millisecond // ~30 FPS

var (
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleHeavy  = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	styleBox    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// Viewer renders a Universe onto a terminal screen.
type Viewer struct {
	screen   tcell.Screen
	universe *simulation.Universe
	boxSize  float64

	width, height int
	paused        bool
	last          simulation.StepReport
	err           error
}

func NewViewer(u *simulation.Universe) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	v := &Viewer{
		screen:   screen,
		universe: u,
		boxSize:  u.Params().BoxSize,
	}
	v.width, v.height = screen.Size()
	return v, nil
}

// toCell maps world coordinates to a terminal cell. Terminal cells are about
// twice as tall as wide, so x is stretched to keep the box square.
func (v *Viewer) toCell(x, y float64) (int, int, bool) {
	rows := v.height - 1 // last row holds the status line
	if rows <= 0 || v.width <= 0 {
		return 0, 0, false
	}
	half := float64(rows) / 2
	scale := half / v.boxSize
	cx := float64(v.width) / 2
	col := int(cx + x*scale*2)
	row := int(half - y*scale)
	if col < 0 || col >= v.width || row < 0 || row >= rows {
		return 0, 0, false
	}
	return col, row, true
}

func (v *Viewer) draw() {
	v.screen.Clear()

	// Corners of the nominal domain
	b := v.boxSize
	for _, c := range [][2]float64{{-b, b}, {b, b}, {b, -b}, {-b, -b}} {
		if col, row, ok := v.toCell(c[0], c[1]); ok {
			v.screen.SetContent(col, row, '+', nil, styleBox)
		}
	}

	particles := v.universe.Particles()
	maxMass := 0.0
	for _, p := range particles {
		if p.Mass > maxMass {
			maxMass = p.Mass
		}
	}
	for _, p := range particles {
		col, row, ok := v.toCell(p.Position.X, p.Position.Y)
		if !ok {
			continue
		}
		if p.Mass >= maxMass/2 {
			v.screen.SetContent(col, row, '@', nil, styleHeavy)
		} else {
			v.screen.SetContent(col, row, '.', nil, styleBody)
		}
	}

	v.drawStatus(particles)
	v.screen.Show()
}

func (v *Viewer) drawStatus(particles []barneshut.Particle) {
	st := v.last.Stats
	status := fmt.Sprintf(" step %d  bodies %d  nodes %d  depth %d  direct %d  approx %d  E %.4g  %s  [space] pause [r] reset [q] quit ",
		v.last.Step, len(particles), v.last.Nodes, v.last.Depth, st.Direct, st.Approximated,
		simulation.KineticEnergy(particles)+simulation.PotentialEnergy(particles, v.universe.Params().G),
		v.last.Duration.Round(time.Microsecond))
	if v.paused {
		status = " PAUSED" + status
	}
	if v.err != nil {
		status = fmt.Sprintf(" error: %v ", v.err)
	}
	row := v.height - 1
	col := 0
	for _, r := range status {
		if col >= v.width {
			break
		}
		v.screen.SetContent(col, row, r, nil, styleStatus)
		col++
	}
	for ; col < v.width; col++ {
		v.screen.SetContent(col, row, ' ', nil, styleStatus)
	}
}

// handleInput returns false when the viewer should exit.
func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.paused = !v.paused
			case 'r':
				v.err = v.universe.Reset()
				v.last = simulation.StepReport{}
			}
		}
	case *tcell.EventResize:
		v.width, v.height = v.screen.Size()
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}
		case <-ticker.C:
			if !v.paused && v.err == nil {
				v.last, v.err = v.universe.Step()
			}
			v.draw()
		}
	}
}

func main() {
	configFile := flag.String("config", "", "JSON configuration file (defaults are used when empty)")
	schemaFile := flag.String("schema", "", "JSON schema file (the embedded schema is used when empty)")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		loaded, err := simulation.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// The screen owns stdout, so the universe logs nowhere.
	universe, err := simulation.NewUniverse(cfg, golog.DiscardLogger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	viewer, err := NewViewer(universe)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer viewer.screen.Fini()

	viewer.run()
}
