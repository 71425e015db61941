package barneshut

// Aggregate computes the total enclosed mass of every node and returns the
// root total. It is a sum, not an average, and running it again on an
// unchanged tree returns the same value.
//
// Children are always appended after their parent, so a reverse sweep over
// the arena visits every child before its parent.
func (t *Tree) Aggregate() float64 {
	for id := len(t.nodes) - 1; id >= 0; id-- {
		n := &t.nodes[id]
		switch n.kind {
		case KindEmpty:
			n.totalMass = 0
		case KindLeaf:
			m := 0.0
			for _, p := range n.bucket {
				m += p.Mass
			}
			n.totalMass = m
		case KindInternal:
			m := 0.0
			for _, c := range n.children {
				m += t.nodes[c].totalMass
			}
			n.totalMass = m
		}
	}
	t.aggregated = true
	return t.nodes[rootID].totalMass
}
