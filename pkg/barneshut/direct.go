package barneshut

import "errors"

// DirectSum is the O(N²) reference for Evaluate: every particle is pulled by
// every other one, read from a snapshot taken before any velocity changes,
// then every particle is integrated. Sources at exactly the target position
// are skipped, which also excludes the target itself.
func DirectSum(particles []Particle, g, dt float64) Stats {
	var stats Stats
	snapshot := append([]Particle(nil), particles...)

	for i := range particles {
		target := &particles[i]
		for j, src := range snapshot {
			if i == j {
				continue
			}
			if target.Position.Same(src.Position) {
				stats.Skipped++
				continue
			}
			if err := target.ApplyForce(src, g, dt); err != nil {
				if errors.Is(err, ErrCoincident) {
					stats.Degenerate++
				}
				continue
			}
			stats.Direct++
		}
		target.UpdatePosition(dt)
		stats.Integrated++
	}
	return stats
}

// Step runs one full rebuild-and-evaluate cycle on particles: build a fresh
// tree from copies, aggregate it, evaluate and drop it. The tree is returned
// for callers that want to inspect or draw it.
func Step(particles []Particle, params Params, dt float64, opts ...Option) (*Tree, Stats, error) {
	tree, err := Build(particles, params, opts...)
	if err != nil {
		return nil, Stats{}, err
	}
	stats, err := tree.Evaluate(particles, dt)
	if err != nil {
		return nil, Stats{}, err
	}
	return tree, stats, nil
}
