package relevance

// PhaseAll is the phase criterion that disables phase filtering.
const PhaseAll = "all"

// Criteria narrows a scored list. The zero value keeps everything.
type Criteria struct {
	// Phase keeps only projects of this phase unless empty or PhaseAll.
	Phase string
	// MaxDistanceKm drops projects known to be farther, unless nil.
	// Projects with an unknown distance are kept, as are remote projects
	// when RemoteOnly is set.
	MaxDistanceKm *float64
	// RemoteOnly keeps only remote-friendly projects.
	RemoteOnly bool
	// MinScore drops projects scoring below it when positive.
	MinScore int
}

// Filter returns the projects of scored matching every criterion, in their
// original order. The input is not modified.
func Filter(scored []ScoredProject, criteria Criteria) []ScoredProject {
	out := make([]ScoredProject, 0, len(scored))
	for i := range scored {
		if criteria.Match(scored[i]) {
			out = append(out, scored[i])
		}
	}

	return out
}

// Match reports whether a single scored project satisfies the criteria.
func (c Criteria) Match(p ScoredProject) bool {
	if c.Phase != "" && c.Phase != PhaseAll && string(p.Phase) != c.Phase {
		return false
	}

	if c.MaxDistanceKm != nil && !(c.RemoteOnly && p.RemotePossible) {
		// A NaN bound compares false and keeps nothing with a known distance.
		if d, ok := p.Distance(); ok && !(d <= *c.MaxDistanceKm) {
			return false
		}
	}

	if c.RemoteOnly && !p.RemotePossible {
		return false
	}

	return c.MinScore <= 0 || p.Score >= c.MinScore
}
