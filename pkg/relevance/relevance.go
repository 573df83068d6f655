// Package relevance ranks projects for a talent.
//
// Score computes a 0-100 relevance score per project as the sum of four
// capped terms (distance, skill overlap, remote possibility, recency) and
// sorts the result. Filter narrows a scored list with the interactive
// criteria of the match listing. Both are pure functions of their inputs:
// they never perform I/O, never mutate their arguments and keep no state
// between calls, so the same inputs (and clock) always yield the same output.
//
// Malformed data never aborts a pass. A missing creation time, or a distance
// that is negative, NaN or infinite, only zeroes the matching term of that
// one project.
package relevance

import (
	"math"
	"time"

	"marketplace/pkg/domain"
)

// TalentProfile is the scoring view of a talent.
type TalentProfile struct {
	// ID identifies the talent.
	ID domain.UserID
	// Location is nil when the talent was not geocoded; distance then scores 0.
	Location *domain.Coordinates
	// MaxDistanceKm is the travel radius accepted by the talent.
	MaxDistanceKm float64
	// SkillIDs are the skills held by the talent.
	SkillIDs []domain.SkillID
}

// ProjectCandidate is the scoring view of a project, already annotated with
// its distance from the talent by the storage layer.
type ProjectCandidate struct {
	// ID identifies the project.
	ID domain.ProjectID
	// Phase is the project maturity, used by Filter.
	Phase domain.ProjectPhase
	// CreatedAt is when the project was posted. Zero means unknown.
	CreatedAt time.Time
	// DistanceKm is the distance from the talent, nil when unknown.
	DistanceKm *float64
	// RemotePossible tells whether the work can be done remotely.
	RemotePossible bool
	// RequiredSkillIDs are the skills the project asks for.
	RequiredSkillIDs []domain.SkillID
}

// Distance returns the distance from the talent and whether it is usable.
// Negative, NaN and infinite values are reported as unknown.
func (p ProjectCandidate) Distance() (float64, bool) {
	if p.DistanceKm == nil {
		return 0, false
	}
	d := *p.DistanceKm
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return 0, false
	}

	return d, true
}

// Breakdown holds the points awarded by each term before rounding.
type Breakdown struct {
	Distance float64 `json:"distance"`
	Skills   float64 `json:"skills"`
	Remote   float64 `json:"remote"`
	Recency  float64 `json:"recency"`
}

// Total is the unrounded, unclamped sum of the terms.
func (b Breakdown) Total() float64 {
	return b.Distance + b.Skills + b.Remote + b.Recency
}

// ScoredProject is a candidate with its relevance score.
type ScoredProject struct {
	ProjectCandidate

	// Score is the rounded total clamped into [0, 100].
	Score int
	// Overlap is the number of required skills the talent holds.
	Overlap int
	// Breakdown details the points of each term.
	Breakdown Breakdown
}
