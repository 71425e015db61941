package simulation

import (
	"time"

	"github.com/lao-tseu-is-alive/go-barnes-hut/pb"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// WorldActor owns the Universe. Every message is handled on the actor's
// goroutine, so the particle list is never touched concurrently.
type WorldActor struct {
	cfg      *Config
	universe *Universe
	last     StepReport
	showTree bool

	// Communication with UI
	snapshotCh chan<- *pb.WorldSnapshot

	metrics  *Metrics
	recorder *Recorder

	// --- Benchmark Stats ---
	stepsSinceLog int
	stepTime      time.Duration
	lastLogTime   time.Time
}

// WorldOption configures a WorldActor.
type WorldOption func(*WorldActor)

// WithMetrics publishes every step to m.
func WithMetrics(m *Metrics) WorldOption {
	return func(w *WorldActor) { w.metrics = m }
}

// WithRecorder writes a frame after every step.
func WithRecorder(r *Recorder) WorldOption {
	return func(w *WorldActor) { w.recorder = r }
}

// NewWorldActor creates the world logic unit. snapshotCh may be nil when
// snapshots are only read with GetSnapshot.
func NewWorldActor(snapshotCh chan<- *pb.WorldSnapshot, cfg *Config, opts ...WorldOption) *WorldActor {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	w := &WorldActor{
		cfg:         cfg,
		showTree:    cfg.ShowTree,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	u, err := NewUniverse(w.cfg, ctx.ActorSystem().Logger())
	if err != nil {
		return err
	}
	w.universe = u
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Infof("World started with %d bodies", w.universe.Len())

	// The main simulation step, driven by the game loop or a ticker
	case *pb.Tick:
		if msg.GetDeltaTime() > 0 {
			_ = w.universe.SetDeltaTime(msg.GetDeltaTime())
		}
		report, err := w.universe.Step()
		if err != nil {
			ctx.Logger().Errorf("step failed: %v", err)
			return
		}
		w.last = report
		w.metrics.Observe(report)
		w.record(ctx, report)
		w.logBenchmarks(ctx, report)
		w.pushSnapshot()

	case *pb.GetSnapshot:
		ctx.Response(w.buildSnapshot())

	// Slider updates from the UI
	case *pb.UpdateParams:
		if err := w.universe.SetTheta(msg.GetTheta()); err != nil {
			ctx.Logger().Warnf("ignoring theta: %v", err)
		}
		if err := w.universe.SetGravity(msg.GetGravity()); err != nil {
			ctx.Logger().Warnf("ignoring gravity: %v", err)
		}
		if msg.GetDeltaTime() > 0 {
			_ = w.universe.SetDeltaTime(msg.GetDeltaTime())
		}
		w.showTree = msg.GetShowTree()

	case *pb.Reset:
		if err := w.universe.Reset(); err != nil {
			ctx.Logger().Errorf("reset failed: %v", err)
			return
		}
		w.last = StepReport{}
		w.pushSnapshot()

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) record(ctx *actor.ReceiveContext, report StepReport) {
	if w.recorder == nil {
		return
	}
	if err := w.recorder.Record(report.Step, w.universe.particles); err != nil {
		ctx.Logger().Errorf("recording stopped: %v", err)
		w.recorder = nil
	}
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext, report StepReport) {
	w.stepsSinceLog++
	w.stepTime += report.Duration
	if time.Since(w.lastLogTime) >= time.Second {
		avg := w.stepTime / time.Duration(w.stepsSinceLog)
		ctx.Logger().Infof("📊 STEP RATE: %d/sec (avg %v) | Bodies: %d | Nodes: %d | Depth: %d | Approx: %d | Direct: %d | Degenerate: %d",
			w.stepsSinceLog, avg, report.Stats.Integrated, report.Nodes, report.Depth,
			report.Stats.Approximated, report.Stats.Direct, report.Stats.Degenerate)
		w.stepsSinceLog = 0
		w.stepTime = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) pushSnapshot() {
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- w.buildSnapshot():
	default:
		// UI busy, skip frame
	}
}

func (w *WorldActor) buildSnapshot() *pb.WorldSnapshot {
	ps := w.universe.particles
	snapshot := &pb.WorldSnapshot{
		Bodies:        make([]*pb.Body, len(ps)),
		Step:          w.universe.StepCount(),
		TotalMass:     TotalMass(ps),
		KineticEnergy: KineticEnergy(ps),
		TreeNodes:     int32(w.last.Nodes),
		TreeDepth:     int32(w.last.Depth),
		Degenerate:    int32(w.last.Stats.Degenerate),
		StepMicros:    w.last.Duration.Microseconds(),
		Theta:         w.universe.Params().Theta,
	}
	for i, p := range ps {
		snapshot.Bodies[i] = BodyToProto(i, p)
	}
	if w.showTree {
		for _, c := range w.universe.cells {
			snapshot.Cells = append(snapshot.Cells, CellToProto(c))
		}
	}
	return snapshot
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	if w.universe != nil {
		ctx.ActorSystem().Logger().Infof("World is shutdown after %d steps", w.universe.StepCount())
	}
	return nil
}
