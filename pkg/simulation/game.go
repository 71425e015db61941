package simulation

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-barnes-hut/pb"
	"github.com/lao-tseu-is-alive/go-barnes-hut/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
)

var (
	backgroundColor = color.RGBA{R: 10, G: 10, B: 30, A: 255}
	bodyColor       = color.RGBA{R: 255, G: 230, B: 160, A: 255}
	heavyBodyColor  = color.RGBA{R: 255, G: 120, B: 60, A: 255}
	cellColor       = color.RGBA{R: 60, G: 140, B: 255, A: 90}
	boxColor        = color.RGBA{R: 120, G: 120, B: 140, A: 255}
)

type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *pb.WorldSnapshot
	lastState  *pb.WorldSnapshot

	// UI Controls
	panel           *ui.UIPanel
	widgetTheta     *ui.Slider
	widgetGravity   *ui.Slider
	widgetDeltaTime *ui.Slider
	widgetShowTree  *ui.Checkbox
	widgetPaused    *ui.Checkbox
	resetRequested  bool

	cfg  *Config
	view viewport

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// GetNewGame spawns the world actor on system and builds the control panel.
func GetNewGame(ctx context.Context, cfg *Config, system actor.ActorSystem, opts ...WorldOption) (*Game, error) {
	// 1. Channel the world pushes snapshots into, buffered to avoid blocking
	snapshotCh := make(chan *pb.WorldSnapshot, 10)

	// 2. Spawn World Actor
	worldPID, err := system.Spawn(ctx, "world", NewWorldActor(snapshotCh, cfg, opts...))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}

	g := &Game{
		ctx:        ctx,
		System:     system,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		lastState:  &pb.WorldSnapshot{}, // Avoid nil pointer
		cfg:        cfg,
		view:       newViewport(cfg.WorldWidth, cfg.WorldHeight, cfg.BoxSize),
	}

	// 3. Control panel
	panel := ui.NewUIPanel(10, 10, 220, 260)
	panel.AddSection("Solver")
	g.widgetTheta = panel.AddSlider("Theta", 0, 2, cfg.Theta)
	gMin, gMax, gValue := gravityRange(cfg.Gravity)
	g.widgetGravity = panel.AddLogSlider("Gravity", gMin, gMax, gValue)
	g.widgetDeltaTime = panel.AddLogSlider("Delta time", cfg.DeltaTime/100, cfg.DeltaTime*100, cfg.DeltaTime)
	panel.EndSection()

	panel.AddSection("View")
	g.widgetShowTree = panel.AddCheckbox("Show tree", cfg.ShowTree)
	g.widgetPaused = panel.AddCheckbox("Paused", false)
	panel.AddButton("Reset", func() { g.resetRequested = true })
	panel.EndSection()
	g.panel = panel

	return g, nil
}

// gravityRange spans four decades on each side of g.
func gravityRange(g float64) (lo, hi, value float64) {
	if !(g > 0) {
		return 1e-6, 1, 1e-3
	}
	return g / 1e4, g * 1e4, g
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	// 1. Update UI Panel and keys
	g.panel.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.widgetPaused.Value = !g.widgetPaused.Value
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetRequested = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.widgetShowTree.Value = !g.widgetShowTree.Value
	}

	// 2. Retrieve Latest State (Non-blocking)
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
		// Use previous state if new one isn't ready
	}

	// 3. Push the panel values, then step
	actor.Tell(g.ctx, g.worldPID, &pb.UpdateParams{
		Theta:     g.widgetTheta.Value,
		Gravity:   g.widgetGravity.Value,
		DeltaTime: g.widgetDeltaTime.Value,
		ShowTree:  g.widgetShowTree.Value,
	})
	if g.resetRequested {
		g.resetRequested = false
		actor.Tell(g.ctx, g.worldPID, &pb.Reset{})
	}
	if !g.widgetPaused.Value {
		actor.Tell(g.ctx, g.worldPID, &pb.Tick{})
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	screen.Fill(backgroundColor)

	// 1. Nominal domain
	x0, y0 := g.view.toScreen(-g.cfg.BoxSize, g.cfg.BoxSize)
	side := g.view.length(2 * g.cfg.BoxSize)
	vector.StrokeRect(screen, x0, y0, side, side, 1, boxColor, true)

	// 2. Quadtree cells, only sent by the world when "Show tree" is on
	if g.widgetShowTree.Value {
		for _, c := range g.lastState.Cells {
			cx, cy := g.view.toScreen(c.X-c.HalfWidth, c.Y+c.HalfWidth)
			w := g.view.length(2 * c.HalfWidth)
			vector.StrokeRect(screen, cx, cy, w, w, 1, cellColor, false)
		}
	}

	// 3. Bodies
	maxMass := 0.0
	for _, b := range g.lastState.Bodies {
		if b.Mass > maxMass {
			maxMass = b.Mass
		}
	}
	for _, b := range g.lastState.Bodies {
		x, y := g.view.toScreen(b.GetPosition().GetX(), b.GetPosition().GetY())
		clr := bodyColor
		if b.Mass == maxMass && len(g.lastState.Bodies) > 1 {
			clr = heavyBodyColor
		}
		vector.FillCircle(screen, x, y, bodyRadius(b.Mass, maxMass), clr, true)
	}

	// 4. Control panel
	g.panel.Draw(screen)

	// 5. Stats, right side to avoid the panel
	s := g.lastState
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\n\nStep:   %d\nBodies: %d\nNodes:  %d\nDepth:  %d\nTheta:  %.2f\nStep:   %.2fms\nMass:   %.4g\nKE:     %.4g\nDegen:  %d\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		s.Step,
		len(s.Bodies),
		s.TreeNodes,
		s.TreeDepth,
		s.Theta,
		float64(s.StepMicros)/1000.0,
		s.TotalMass,
		s.KineticEnergy,
		s.Degenerate,
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)-160, 10)

	if g.widgetPaused.Value {
		ebitenutil.DebugPrintAt(screen, "PAUSED (space)", int(g.cfg.WorldWidth/2)-40, 10)
	}
}

func (g *Game) Layout(w, h int) (int, int) { return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight) }
