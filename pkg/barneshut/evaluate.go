package barneshut

import "errors"

// Stats counts what one Evaluate or DirectSum call did.
type Stats struct {
	// Integrated is the number of particles whose position was advanced.
	Integrated int
	// Direct counts particle-to-particle interactions.
	Direct int
	// Approximated counts interactions with a whole cell standing in as one
	// pseudo-particle at its geometric centre.
	Approximated int
	// Skipped counts interactions dropped because the target sat exactly on
	// the source position.
	Skipped int
	// Degenerate counts interactions dropped with ErrCoincident.
	Degenerate int
}

// Add returns the field-wise sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Integrated:   s.Integrated + o.Integrated,
		Direct:       s.Direct + o.Direct,
		Approximated: s.Approximated + o.Approximated,
		Skipped:      s.Skipped + o.Skipped,
		Degenerate:   s.Degenerate + o.Degenerate,
	}
}

// Evaluate accumulates the tree's pull into the velocity of every particle,
// then advances its position by dt. particles is the live slice the tree was
// built from; the tree only ever reads its own copies.
//
// A root that is empty or a single leaf exerts no force, but every particle
// is still integrated.
func (t *Tree) Evaluate(particles []Particle, dt float64) (Stats, error) {
	var stats Stats
	if !t.aggregated {
		return stats, ErrNotAggregated
	}

	root := &t.nodes[rootID]
	for i := range particles {
		target := &particles[i]
		if root.kind == KindInternal {
			for _, c := range root.children {
				t.accumulate(c, target, dt, &stats)
			}
		}
		target.UpdatePosition(dt)
		stats.Integrated++
	}
	return stats, nil
}

func (t *Tree) accumulate(id NodeID, target *Particle, dt float64, stats *Stats) {
	n := &t.nodes[id]
	if n.totalMass == 0 {
		return
	}

	d := n.center.DistanceTo(target.Position)
	if t.params.far(n.halfWidth, d) {
		if target.Position.Same(n.center) {
			stats.Skipped++
			return
		}
		pseudo := Particle{Position: n.center, Mass: n.totalMass}
		if t.interact(target, pseudo, dt, stats) {
			stats.Approximated++
		}
		return
	}

	switch n.kind {
	case KindLeaf:
		for _, src := range n.bucket {
			if target.Position.Same(src.Position) {
				stats.Skipped++
				continue
			}
			if t.interact(target, src, dt, stats) {
				stats.Direct++
			}
		}
	case KindInternal:
		for _, c := range n.children {
			t.accumulate(c, target, dt, stats)
		}
	}
}

// interact applies src to target and reports whether the force was applied.
func (t *Tree) interact(target *Particle, src Particle, dt float64, stats *Stats) bool {
	if err := target.ApplyForce(src, t.params.G, dt); err != nil {
		if errors.Is(err, ErrCoincident) {
			stats.Degenerate++
		}
		return false
	}
	return true
}
