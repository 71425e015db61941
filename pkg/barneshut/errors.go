package barneshut

import "errors"

var (
	// ErrCoincident marks an interaction between two points closer than
	// geometry.Epsilon. The interaction is dropped, velocities are untouched.
	ErrCoincident = errors.New("barneshut: coincident points, interaction is degenerate")
	// ErrInvalidParticle is returned by Insert for a particle with a
	// non-positive mass or a non-finite position.
	ErrInvalidParticle = errors.New("barneshut: invalid particle")
	// ErrInvalidParams is returned when Params cannot describe a usable tree.
	ErrInvalidParams = errors.New("barneshut: invalid parameters")
	// ErrNotAggregated is returned by Evaluate when Aggregate was not run
	// after the last Insert.
	ErrNotAggregated = errors.New("barneshut: tree must be aggregated before evaluation")
)
