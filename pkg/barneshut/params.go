package barneshut

import (
	"fmt"
	"math"
	"strings"
)

// Defaults taken from the reference simulation: SI gravitational constant,
// a 2x2 nominal box, and the usual 0.5 opening angle.
const (
	DefaultG        = 6.6743e-11
	DefaultBoxSize  = 2.0
	DefaultTheta    = 0.5
	DefaultMaxDepth = 32
)

// Opening selects how the opening-angle ratio is computed.
type Opening int

const (
	// OpeningLocal uses the node's own cell width: a node is far enough to be
	// approximated when width/distance < Theta. Theta = 0 never approximates.
	OpeningLocal Opening = iota
	// OpeningGlobal keeps the legacy rule: the ratio always uses BoxSize and a
	// node is approximated when BoxSize/distance > Theta.
	OpeningGlobal
)

func (o Opening) String() string {
	switch o {
	case OpeningLocal:
		return "local"
	case OpeningGlobal:
		return "global"
	default:
		return fmt.Sprintf("Opening(%d)", int(o))
	}
}

// ParseOpening maps "local" or "global" (case-insensitive) to an Opening.
// The empty string selects OpeningLocal.
func ParseOpening(s string) (Opening, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "local":
		return OpeningLocal, nil
	case "global":
		return OpeningGlobal, nil
	default:
		return OpeningLocal, fmt.Errorf("%w: unknown opening rule %q", ErrInvalidParams, s)
	}
}

// Params holds the tunables of one tree evaluation.
type Params struct {
	// G is the gravitational constant.
	G float64
	// BoxSize is the half-extent of the nominal square domain centred at the
	// origin. It sizes the root cell; particles outside it are still inserted.
	BoxSize float64
	// Theta is the opening-angle threshold.
	Theta float64
	// MaxDepth bounds subdivision. A leaf at MaxDepth keeps every further
	// particle routed to it in one bucket.
	MaxDepth int
	Opening  Opening
}

// DefaultParams returns the reference constants with the local opening rule.
func DefaultParams() Params {
	return Params{
		G:        DefaultG,
		BoxSize:  DefaultBoxSize,
		Theta:    DefaultTheta,
		MaxDepth: DefaultMaxDepth,
		Opening:  OpeningLocal,
	}
}

// Validate reports the first parameter that cannot be used.
func (p Params) Validate() error {
	switch {
	case math.IsNaN(p.G) || math.IsInf(p.G, 0):
		return fmt.Errorf("%w: G must be finite, got %v", ErrInvalidParams, p.G)
	case !(p.BoxSize > 0) || math.IsInf(p.BoxSize, 0):
		return fmt.Errorf("%w: BoxSize must be positive and finite, got %v", ErrInvalidParams, p.BoxSize)
	case !(p.Theta >= 0) || math.IsInf(p.Theta, 0):
		return fmt.Errorf("%w: Theta must be >= 0 and finite, got %v", ErrInvalidParams, p.Theta)
	case p.MaxDepth < 1:
		return fmt.Errorf("%w: MaxDepth must be >= 1, got %d", ErrInvalidParams, p.MaxDepth)
	case p.Opening != OpeningLocal && p.Opening != OpeningGlobal:
		return fmt.Errorf("%w: unknown opening rule %v", ErrInvalidParams, p.Opening)
	}
	return nil
}

// far decides whether a cell of the given half-width, whose centre is at
// distance d from the target, can stand in for its whole subtree.
func (p Params) far(halfWidth, d float64) bool {
	if p.Opening == OpeningGlobal {
		return p.BoxSize/d > p.Theta
	}
	return 2*halfWidth/d < p.Theta
}
