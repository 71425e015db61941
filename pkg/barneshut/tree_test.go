package barneshut

import (
	"errors"
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-barnes-hut/pkg/geometry"
)

func pt(x, y, m float64) Particle {
	return Particle{Position: geometry.Vector2D{X: x, Y: y}, Mass: m}
}

func mustTree(t testing.TB, params Params) *Tree {
	t.Helper()
	tree, err := NewTree(params)
	if err != nil {
		t.Fatalf("NewTree(%+v) error = %v", params, err)
	}
	return tree
}

func mustInsert(t testing.TB, tree *Tree, ps ...Particle) {
	t.Helper()
	for _, p := range ps {
		if err := tree.Insert(p); err != nil {
			t.Fatalf("Insert(%+v) error = %v", p, err)
		}
	}
}

func TestQuadrant(t *testing.T) {
	c := geometry.Vector2D{X: 0, Y: 0}
	tests := []struct {
		name string
		p    geometry.Vector2D
		want int
	}{
		{"upper right", geometry.Vector2D{X: 1, Y: 1}, UpperRight},
		{"lower right", geometry.Vector2D{X: 1, Y: -1}, LowerRight},
		{"lower left", geometry.Vector2D{X: -1, Y: -1}, LowerLeft},
		{"upper left", geometry.Vector2D{X: -1, Y: 1}, UpperLeft},
		{"on center", geometry.Vector2D{X: 0, Y: 0}, UpperRight},
		{"on vertical line below", geometry.Vector2D{X: 0, Y: -1}, LowerRight},
		{"on horizontal line left", geometry.Vector2D{X: -1, Y: 0}, UpperLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quadrant(c, tt.p); got != tt.want {
				t.Errorf("Quadrant(%v, %v) = %d; want %d", c, tt.p, got, tt.want)
			}
		})
	}
}

func TestChildCenterLiesInItsQuadrant(t *testing.T) {
	center := geometry.Vector2D{X: 3, Y: -2}
	for q := 0; q < 4; q++ {
		cc := childCenter(center, 4, q)
		if got := Quadrant(center, cc); got != q {
			t.Errorf("child %d centre %v falls in quadrant %d", q, cc, got)
		}
		if d := math.Abs(cc.X - center.X); d != 2 {
			t.Errorf("child %d x offset = %v; want 2", q, d)
		}
	}
}

func TestNewTree_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero box", func(p *Params) { p.BoxSize = 0 }},
		{"negative theta", func(p *Params) { p.Theta = -1 }},
		{"nan G", func(p *Params) { p.G = math.NaN() }},
		{"zero depth", func(p *Params) { p.MaxDepth = 0 }},
		{"unknown opening", func(p *Params) { p.Opening = Opening(7) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			if _, err := NewTree(p); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("NewTree error = %v; want ErrInvalidParams", err)
			}
		})
	}
}

func TestParseOpening(t *testing.T) {
	for in, want := range map[string]Opening{"": OpeningLocal, "local": OpeningLocal, " Global ": OpeningGlobal} {
		got, err := ParseOpening(in)
		if err != nil || got != want {
			t.Errorf("ParseOpening(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseOpening("centroid"); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("ParseOpening(centroid) error = %v; want ErrInvalidParams", err)
	}
}

func TestInsert_InvalidParticle(t *testing.T) {
	tree := mustTree(t, DefaultParams())
	bad := []Particle{
		pt(0, 0, 0),
		pt(0, 0, -1),
		pt(math.NaN(), 0, 1),
		pt(0, math.Inf(1), 1),
	}
	for _, p := range bad {
		if err := tree.Insert(p); !errors.Is(err, ErrInvalidParticle) {
			t.Errorf("Insert(%+v) error = %v; want ErrInvalidParticle", p, err)
		}
	}
	if tree.Node(tree.Root()).Kind != KindEmpty {
		t.Error("rejected particles must not change the tree")
	}
}

func TestSingleParticleTree(t *testing.T) {
	tree := mustTree(t, DefaultParams())
	mustInsert(t, tree, pt(0.5, -0.25, 42))

	if tree.Len() != 1 {
		t.Errorf("Len() = %d; want 1 (no children created)", tree.Len())
	}
	root := tree.Node(tree.Root())
	if root.Kind != KindLeaf {
		t.Fatalf("root kind = %v; want leaf", root.Kind)
	}
	for q, c := range root.Children {
		if c != NoNode {
			t.Errorf("leaf child %d = %d; want NoNode", q, c)
		}
	}
	if got := tree.Aggregate(); got != 42 {
		t.Errorf("Aggregate() = %v; want 42", got)
	}
}

func TestInsert_QuadrantPlacement(t *testing.T) {
	tree := mustTree(t, DefaultParams())
	mustInsert(t, tree, pt(1, 1, 50), pt(-1, -1, 100))

	root := tree.Node(tree.Root())
	if root.Kind != KindInternal {
		t.Fatalf("root kind = %v; want internal", root.Kind)
	}
	if len(root.Particles) != 0 {
		t.Error("internal node must not hold particles")
	}

	wantCenters := [4]geometry.Vector2D{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: -1}, {X: -1, Y: 1}}
	for q, id := range root.Children {
		child := tree.Node(id)
		if !child.Center.Same(wantCenters[q]) {
			t.Errorf("child %d centre = %v; want %v", q, child.Center, wantCenters[q])
		}
		if child.HalfWidth != DefaultBoxSize/2 {
			t.Errorf("child %d half-width = %v; want %v", q, child.HalfWidth, DefaultBoxSize/2)
		}
		if child.Depth != 1 {
			t.Errorf("child %d depth = %d; want 1", q, child.Depth)
		}
	}

	ur := tree.Node(root.Children[UpperRight])
	if ur.Kind != KindLeaf || ur.Particles[0].Mass != 50 {
		t.Errorf("upper-right child = %+v; want leaf holding mass 50", ur)
	}
	ll := tree.Node(root.Children[LowerLeft])
	if ll.Kind != KindLeaf || ll.Particles[0].Mass != 100 {
		t.Errorf("lower-left child = %+v; want leaf holding mass 100", ll)
	}
	for _, q := range []int{LowerRight, UpperLeft} {
		if k := tree.Node(root.Children[q]).Kind; k != KindEmpty {
			t.Errorf("child %d kind = %v; want empty", q, k)
		}
	}
}

func TestInsert_NodeStatesAreExclusive(t *testing.T) {
	tree := mustTree(t, DefaultParams())
	mustInsert(t, tree,
		pt(0.1, 0.1, 1), pt(0.2, 0.15, 1), pt(-1.5, 0.3, 2), pt(1.9, -1.9, 3), pt(0.11, 0.1, 1),
	)
	tree.Walk(func(n Node) bool {
		switch n.Kind {
		case KindEmpty:
			if len(n.Particles) != 0 || n.Children != noChildren {
				t.Errorf("empty node %d carries content: %+v", n.ID, n)
			}
		case KindLeaf:
			if len(n.Particles) != 1 || n.Children != noChildren {
				t.Errorf("leaf %d must hold one particle and no children: %+v", n.ID, n)
			}
		case KindInternal:
			if len(n.Particles) != 0 {
				t.Errorf("internal node %d holds particles", n.ID)
			}
			for q, c := range n.Children {
				if c == NoNode {
					t.Errorf("internal node %d missing child %d", n.ID, q)
				}
			}
		}
		return true
	})
}

func TestInsert_CoincidentPointsStopAtMaxDepth(t *testing.T) {
	params := DefaultParams()
	params.MaxDepth = 6
	tree := mustTree(t, params)
	mustInsert(t, tree, pt(0.3, 0.3, 1), pt(0.3, 0.3, 2), pt(0.3, 0.3, 3))

	if tree.Depth() != params.MaxDepth {
		t.Errorf("Depth() = %d; want %d", tree.Depth(), params.MaxDepth)
	}
	if tree.Overflows() != 2 {
		t.Errorf("Overflows() = %d; want 2", tree.Overflows())
	}
	if got := tree.Aggregate(); got != 6 {
		t.Errorf("Aggregate() = %v; want 6", got)
	}

	var buckets int
	tree.Walk(func(n Node) bool {
		if n.Kind == KindLeaf {
			buckets++
			if len(n.Particles) != 3 || n.Depth != params.MaxDepth {
				t.Errorf("leaf %d holds %d particles at depth %d; want 3 at %d",
					n.ID, len(n.Particles), n.Depth, params.MaxDepth)
			}
		}
		return true
	})
	if buckets != 1 {
		t.Errorf("found %d leaves; want 1", buckets)
	}
}

func TestInsert_OutsideDomainIsAccepted(t *testing.T) {
	tree := mustTree(t, DefaultParams())
	mustInsert(t, tree, pt(100, 100, 1), pt(-300, 5, 2), pt(1e6, 1e6+1, 3))
	if got := tree.Aggregate(); got != 6 {
		t.Errorf("Aggregate() = %v; want 6", got)
	}
}

func TestInsert_CopiesParticles(t *testing.T) {
	ps := []Particle{pt(1, 1, 1), pt(-1, -1, 1)}
	tree, err := Build(ps, DefaultParams())
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}
	ps[0].Position = geometry.Vector2D{X: -1.5, Y: 1.5}
	ps[0].Mass = 99

	ur := tree.Node(tree.Node(tree.Root()).Children[UpperRight])
	if ur.Kind != KindLeaf || ur.Particles[0].Mass != 1 || !ur.Particles[0].Position.Same(geometry.Vector2D{X: 1, Y: 1}) {
		t.Errorf("tree copy changed with the caller's slice: %+v", ur)
	}
}

func TestAggregate_MassConservation(t *testing.T) {
	ps := []Particle{
		pt(0.1, 0.2, 3.5), pt(-0.7, 0.4, 1.25), pt(1.8, -1.1, 7), pt(-1.9, -1.9, 0.5),
		pt(0.1, 0.21, 2), pt(5, 5, 10), pt(0.3, -0.3, 0.75),
	}
	var want float64
	for _, p := range ps {
		want += p.Mass
	}
	tree, err := Build(ps, DefaultParams())
	if err != nil {
		t.Fatalf("Build error = %v", err)
	}
	if got := tree.TotalMass(); math.Abs(got-want) > 1e-12 {
		t.Errorf("root mass = %v; want %v", got, want)
	}

	// every internal node holds the sum of its children
	tree.Walk(func(n Node) bool {
		if n.Kind == KindInternal {
			var sum float64
			for _, c := range n.Children {
				sum += tree.Node(c).TotalMass
			}
			if math.Abs(sum-n.TotalMass) > 1e-12 {
				t.Errorf("node %d mass = %v; children sum to %v", n.ID, n.TotalMass, sum)
			}
		}
		return true
	})
}

func TestAggregate_Idempotent(t *testing.T) {
	tree := mustTree(t, DefaultParams())
	mustInsert(t, tree, pt(1, 1, 50), pt(-1, -1, 100), pt(0.5, -0.5, 7))
	first := tree.Aggregate()
	second := tree.Aggregate()
	if first != second {
		t.Errorf("Aggregate() = %v then %v; want identical values", first, second)
	}
	if first != 157 {
		t.Errorf("Aggregate() = %v; want 157", first)
	}
}

func TestAggregate_EmptyTree(t *testing.T) {
	tree := mustTree(t, DefaultParams())
	if got := tree.Aggregate(); got != 0 {
		t.Errorf("Aggregate() on empty tree = %v; want 0", got)
	}
}

func TestInsert_ResetsAggregation(t *testing.T) {
	tree := mustTree(t, DefaultParams())
	mustInsert(t, tree, pt(1, 1, 1))
	tree.Aggregate()
	mustInsert(t, tree, pt(-1, 1, 1))
	if tree.Aggregated() {
		t.Error("Insert must invalidate aggregated masses")
	}
	if _, err := tree.Evaluate(nil, 1); !errors.Is(err, ErrNotAggregated) {
		t.Errorf("Evaluate error = %v; want ErrNotAggregated", err)
	}
}

func TestWalk_SkipsSubtree(t *testing.T) {
	tree := mustTree(t, DefaultParams())
	mustInsert(t, tree, pt(1, 1, 1), pt(-1, -1, 1))
	var visited int
	tree.Walk(func(n Node) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Errorf("Walk visited %d nodes after returning false at the root; want 1", visited)
	}
}
