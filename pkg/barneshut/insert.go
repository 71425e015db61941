package barneshut

// Insert stores a copy of p. An empty node takes it as a leaf; an occupied
// leaf splits into four children, pushes its particle down and routes p;
// an internal node routes p to the matching child.
//
// Positions outside the nominal box are routed by sign like any other and
// are never rejected. A leaf at MaxDepth does not split: p joins its bucket,
// which is how coincident points terminate.
func (t *Tree) Insert(p Particle) error {
	if err := p.Validate(); err != nil {
		return err
	}
	t.aggregated = false

	id := rootID
	for {
		// Re-read on every iteration: subdivide grows the arena.
		n := &t.nodes[id]
		switch n.kind {
		case KindEmpty:
			n.kind = KindLeaf
			n.bucket = []Particle{p}
			return nil

		case KindLeaf:
			if n.depth >= t.params.MaxDepth {
				n.bucket = append(n.bucket, p)
				t.overflows++
				t.logger.Debugf("barneshut: depth %d reached at %s, bucket now holds %d particles",
					n.depth, n.center, len(n.bucket))
				return nil
			}
			t.subdivide(id)

		case KindInternal:
			id = n.children[Quadrant(n.center, p.Position)]
		}
	}
}

// subdivide turns the leaf id into an internal node with four empty children
// and moves its particle into the child that contains it.
func (t *Tree) subdivide(id NodeID) {
	parent := t.nodes[id]
	first := NodeID(len(t.nodes))

	for q := 0; q < 4; q++ {
		t.nodes = append(t.nodes, node{
			kind:      KindEmpty,
			center:    childCenter(parent.center, parent.halfWidth, q),
			halfWidth: parent.halfWidth / 2,
			depth:     parent.depth + 1,
			children:  noChildren,
		})
	}
	if parent.depth+1 > t.depth {
		t.depth = parent.depth + 1
	}

	n := &t.nodes[id]
	n.kind = KindInternal
	n.bucket = nil
	for q := range n.children {
		n.children[q] = first + NodeID(q)
	}

	// Below MaxDepth a leaf holds exactly one particle, and the child it
	// lands in is still empty.
	for _, old := range parent.bucket {
		c := &t.nodes[first+NodeID(Quadrant(parent.center, old.Position))]
		c.kind = KindLeaf
		c.bucket = append(c.bucket, old)
	}
}
