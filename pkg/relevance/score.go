package relevance

import (
	"math"
	"sort"
	"time"

	"marketplace/pkg/domain"
)

const (
	// MinScore is the lowest possible score.
	MinScore = 0
	// MaxScore is the highest possible score.
	MaxScore = 100
)

// Weights configures the points of each term.
type Weights struct {
	// Distance is the maximum distance points, awarded at 0 km.
	Distance float64
	// DistanceDecayPerKm is the number of points lost per km.
	DistanceDecayPerKm float64
	// Skills is awarded when the talent holds every required skill.
	Skills float64
	// Remote is the flat bonus of remote-friendly projects.
	Remote float64
	// Fresh is the bonus of projects younger than FreshWindow.
	Fresh float64
	// Recent is the bonus of projects younger than RecentWindow.
	Recent float64
	// FreshWindow is the age limit of the Fresh bonus.
	FreshWindow time.Duration
	// RecentWindow is the age limit of the Recent bonus.
	RecentWindow time.Duration
}

// DefaultWeights returns the marketplace weights: 40 points of distance
// decaying by 0.5 per km (0 beyond 80 km), 40 points of skill match, 10 points
// for remote work and 10/5 points for projects younger than 7/30 days.
func DefaultWeights() Weights {
	return Weights{
		Distance:           40,
		DistanceDecayPerKm: 0.5,
		Skills:             40,
		Remote:             10,
		Fresh:              10,
		Recent:             5,
		FreshWindow:        7 * 24 * time.Hour,
		RecentWindow:       30 * 24 * time.Hour,
	}
}

// Option applies a configuration option to a Scorer.
type Option func(*Scorer)

// WithWeights replaces the default weights.
func WithWeights(w Weights) Option {
	return func(s *Scorer) {
		s.weights = w
	}
}

// WithClock sets the clock used to compute the age of projects.
func WithClock(now func() time.Time) Option {
	return func(s *Scorer) {
		if now != nil {
			s.now = now
		}
	}
}

// Scorer computes relevance scores. The zero value is not usable; use NewScorer.
// A Scorer is immutable and safe for concurrent use.
type Scorer struct {
	weights Weights
	now     func() time.Time
}

// NewScorer creates a Scorer with the default weights and the wall clock.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		weights: DefaultWeights(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Score computes the score of every project for the talent and returns them
// sorted by Sort. An empty input yields an empty, non-nil result.
func Score(talent TalentProfile, projects []ProjectCandidate) []ScoredProject {
	return NewScorer().Score(talent, projects)
}

// Score computes the score of every project for the talent and returns them
// sorted by Sort. The clock is read once so every project is aged against
// the same instant.
func (s *Scorer) Score(talent TalentProfile, projects []ProjectCandidate) []ScoredProject {
	now := s.now()
	held := skillSet(talent.SkillIDs)

	out := make([]ScoredProject, 0, len(projects))
	for i := range projects {
		out = append(out, s.score(now, talent, held, projects[i]))
	}
	Sort(out)

	return out
}

// ScoreOne computes the score of a single project without sorting.
func (s *Scorer) ScoreOne(talent TalentProfile, project ProjectCandidate) ScoredProject {
	return s.score(s.now(), talent, skillSet(talent.SkillIDs), project)
}

func (s *Scorer) score(
	now time.Time,
	talent TalentProfile,
	held map[domain.SkillID]struct{},
	p ProjectCandidate) ScoredProject {
	var b Breakdown

	if d, ok := p.Distance(); ok && talent.Location != nil {
		b.Distance = math.Max(0, s.weights.Distance-d*s.weights.DistanceDecayPerKm)
	}

	overlap, required := overlapCount(held, p.RequiredSkillIDs)
	if required > 0 {
		b.Skills = math.Min(s.weights.Skills, float64(overlap)/float64(required)*s.weights.Skills)
	}

	if p.RemotePossible {
		b.Remote = s.weights.Remote
	}

	b.Recency = s.recency(now, p.CreatedAt)

	return ScoredProject{
		ProjectCandidate: p,
		Score:            clamp(b.Total()),
		Overlap:          overlap,
		Breakdown:        b,
	}
}

// recency awards the freshness bonus. Projects dated in the future (clock
// skew between hosts) count as posted now.
func (s *Scorer) recency(now, createdAt time.Time) float64 {
	if createdAt.IsZero() {
		return 0
	}
	age := now.Sub(createdAt)
	if age < 0 {
		age = 0
	}

	switch {
	case age < s.weights.FreshWindow:
		return s.weights.Fresh
	case age < s.weights.RecentWindow:
		return s.weights.Recent
	default:
		return 0
	}
}

// clamp rounds half away from zero and bounds the result to [MinScore, MaxScore].
func clamp(total float64) int {
	if math.IsNaN(total) {
		return MinScore
	}

	return int(math.Max(MinScore, math.Min(MaxScore, math.Round(total))))
}

func skillSet(ids []domain.SkillID) map[domain.SkillID]struct{} {
	set := make(map[domain.SkillID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

// overlapCount returns how many distinct required skills are held and how
// many distinct skills are required.
func overlapCount(held map[domain.SkillID]struct{}, required []domain.SkillID) (int, int) {
	seen := make(map[domain.SkillID]struct{}, len(required))
	overlap := 0
	for _, id := range required {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := held[id]; ok {
			overlap++
		}
	}

	return overlap, len(seen)
}

// Sort orders scored projects by score descending. Ties go to the closest
// project (unknown distances last), then to the most recently posted one;
// remaining ties keep their input order.
func Sort(scored []ScoredProject) {
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}

		da, okA := a.Distance()
		db, okB := b.Distance()
		switch {
		case okA && okB && da != db:
			return da < db
		case okA != okB:
			return okA
		}

		return a.CreatedAt.After(b.CreatedAt)
	})
}
