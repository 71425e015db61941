package simulation

import (
	"errors"
	"fmt"
	"io"

	"github.com/lao-tseu-is-alive/go-barnes-hut/pkg/barneshut"
	"github.com/vmihailenco/msgpack/v5"
)

// FrameBody is one body in a recorded frame.
type FrameBody struct {
	X    float64 `msgpack:"x"`
	Y    float64 `msgpack:"y"`
	VX   float64 `msgpack:"vx"`
	VY   float64 `msgpack:"vy"`
	Mass float64 `msgpack:"m"`
}

// Frame is the state of every body after one step.
type Frame struct {
	Step   uint64      `msgpack:"step"`
	Bodies []FrameBody `msgpack:"bodies"`
}

// Recorder writes a stream of msgpack-encoded frames.
type Recorder struct {
	w      io.Writer
	enc    *msgpack.Encoder
	frames int
	closed bool
}

// NewRecorder writes frames to w. If w is an io.Closer, Close closes it.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w, enc: msgpack.NewEncoder(w)}
}

// Record appends the frame for step.
func (r *Recorder) Record(step uint64, particles []barneshut.Particle) error {
	if r.closed {
		return errors.New("recorder is closed")
	}
	f := Frame{Step: step, Bodies: make([]FrameBody, len(particles))}
	for i, p := range particles {
		f.Bodies[i] = FrameBody{
			X: p.Position.X, Y: p.Position.Y,
			VX: p.Velocity.X, VY: p.Velocity.Y,
			Mass: p.Mass,
		}
	}
	if err := r.enc.Encode(&f); err != nil {
		return fmt.Errorf("failed to encode frame %d: %w", step, err)
	}
	r.frames++
	return nil
}

// Frames returns the number of frames written so far.
func (r *Recorder) Frames() int { return r.frames }

// Close ends the recording. Calling it twice is harmless.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if c, ok := r.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ReadFrames decodes every frame of a recording.
func ReadFrames(rd io.Reader) ([]Frame, error) {
	dec := msgpack.NewDecoder(rd)
	var frames []Frame
	for {
		var f Frame
		err := dec.Decode(&f)
		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return frames, fmt.Errorf("failed to decode frame %d: %w", len(frames), err)
		}
		frames = append(frames, f)
	}
}
