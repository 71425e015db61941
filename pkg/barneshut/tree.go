// Package barneshut approximates pairwise gravity among point masses with a
// quadtree rebuilt from scratch on every step.
//
// The flow for one step is: NewTree, Insert every particle (copies), Aggregate,
// Evaluate on the live particle slice, then drop the tree.
package barneshut

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-barnes-hut/pkg/geometry"
	golog "github.com/tochemey/goakt/v3/log"
)

// NodeID addresses a node inside the arena of one Tree.
type NodeID int32

// NoNode is the child slot value of nodes that are not internal.
const NoNode NodeID = -1

const rootID NodeID = 0

// Kind is the state of a node. A node is in exactly one state.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindLeaf
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindLeaf:
		return "leaf"
	case KindInternal:
		return "internal"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Quadrant indices, counter-clockwise from the upper-right.
const (
	UpperRight = iota
	LowerRight
	LowerLeft
	UpperLeft
)

var noChildren = [4]NodeID{NoNode, NoNode, NoNode, NoNode}

// node is one arena slot. bucket is only set for leaves, children only for
// internal nodes; the transitions in insert.go keep it that way.
type node struct {
	kind      Kind
	center    geometry.Vector2D
	halfWidth float64
	depth     int
	totalMass float64
	bucket    []Particle
	children  [4]NodeID
}

// Node is a read-only view of a tree node.
type Node struct {
	ID        NodeID
	Kind      Kind
	Center    geometry.Vector2D
	HalfWidth float64
	Depth     int
	// TotalMass is only meaningful after Aggregate.
	TotalMass float64
	// Particles holds the leaf content: one particle, or several when the
	// leaf sits at MaxDepth. Nil for other kinds.
	Particles []Particle
	// Children is NoNode everywhere unless Kind is KindInternal.
	Children [4]NodeID
}

// Option configures a Tree.
type Option func(*Tree)

// WithLogger sets the logger used for depth-overflow diagnostics.
func WithLogger(logger golog.Logger) Option {
	return func(t *Tree) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithCapacity pre-sizes the arena for roughly n particles.
func WithCapacity(n int) Option {
	return func(t *Tree) {
		if n > 0 {
			t.nodes = make([]node, 0, 2*n+1)
		}
	}
}

// Tree is an arena-backed quadtree. It is built, queried and dropped within
// one step and is not safe for concurrent use.
type Tree struct {
	params     Params
	nodes      []node
	aggregated bool
	depth      int
	overflows  int
	logger     golog.Logger
}

// NewTree returns an empty tree whose root is centred at the origin with
// half-width params.BoxSize.
func NewTree(params Params, opts ...Option) (*Tree, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	t := &Tree{
		params: params,
		logger: golog.DiscardLogger,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.nodes = append(t.nodes, node{
		kind:      KindEmpty,
		halfWidth: params.BoxSize,
		children:  noChildren,
	})
	return t, nil
}

// Build creates a tree, inserts a copy of every particle and aggregates it.
func Build(particles []Particle, params Params, opts ...Option) (*Tree, error) {
	opts = append([]Option{WithCapacity(len(particles))}, opts...)
	t, err := NewTree(params, opts...)
	if err != nil {
		return nil, err
	}
	for i, p := range particles {
		if err := t.Insert(p); err != nil {
			return nil, fmt.Errorf("particle %d: %w", i, err)
		}
	}
	t.Aggregate()
	return t, nil
}

// Params returns the parameters the tree was built with.
func (t *Tree) Params() Params { return t.params }

// Root returns the ID of the root node.
func (t *Tree) Root() NodeID { return rootID }

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int { return len(t.nodes) }

// Depth returns the depth of the deepest node, the root being 0.
func (t *Tree) Depth() int { return t.depth }

// Overflows counts the particles that were bucketed into a leaf at MaxDepth
// instead of splitting it.
func (t *Tree) Overflows() int { return t.overflows }

// Aggregated reports whether masses are up to date.
func (t *Tree) Aggregated() bool { return t.aggregated }

// TotalMass returns the aggregated root mass, 0 before Aggregate.
func (t *Tree) TotalMass() float64 {
	if !t.aggregated {
		return 0
	}
	return t.nodes[rootID].totalMass
}

// Node returns a view of the node with the given id. It panics on an id that
// does not belong to this tree, like an out of range slice index.
func (t *Tree) Node(id NodeID) Node {
	n := &t.nodes[id]
	view := Node{
		ID:        id,
		Kind:      n.kind,
		Center:    n.center,
		HalfWidth: n.halfWidth,
		Depth:     n.depth,
		TotalMass: n.totalMass,
		Children:  n.children,
	}
	if n.kind == KindLeaf {
		view.Particles = append([]Particle(nil), n.bucket...)
	}
	return view
}

// Walk visits nodes in pre-order starting at the root. Returning false from
// fn skips the children of that node.
func (t *Tree) Walk(fn func(Node) bool) {
	stack := []NodeID{rootID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(t.Node(id)) {
			continue
		}
		n := &t.nodes[id]
		if n.kind != KindInternal {
			continue
		}
		for q := len(n.children) - 1; q >= 0; q-- {
			stack = append(stack, n.children[q])
		}
	}
}

// Quadrant returns which of the four cells around center holds p.
// Points on a dividing line go to the right (x) and upper (y) side.
func Quadrant(center, p geometry.Vector2D) int {
	switch {
	case p.X >= center.X && p.Y >= center.Y:
		return UpperRight
	case p.X >= center.X && p.Y < center.Y:
		return LowerRight
	case p.X < center.X && p.Y < center.Y:
		return LowerLeft
	default:
		return UpperLeft
	}
}

// childCenter places child q of a cell at a quarter of the cell width from
// its centre, so child q lies geometrically in quadrant q.
func childCenter(center geometry.Vector2D, halfWidth float64, q int) geometry.Vector2D {
	off := halfWidth / 2
	switch q {
	case UpperRight:
		return geometry.Vector2D{X: center.X + off, Y: center.Y + off}
	case LowerRight:
		return geometry.Vector2D{X: center.X + off, Y: center.Y - off}
	case LowerLeft:
		return geometry.Vector2D{X: center.X - off, Y: center.Y - off}
	default:
		return geometry.Vector2D{X: center.X - off, Y: center.Y + off}
	}
}
