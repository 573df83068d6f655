package matcher

import (
	"context"

	"marketplace/pkg/domain"
	"marketplace/pkg/relevance"
)

// MatchQuery narrows and bounds a match listing.
type MatchQuery struct {
	// Criteria filters the scored projects. When MaxDistanceKm is nil the
	// talent's own travel radius applies.
	Criteria relevance.Criteria
	// Limit bounds the number of matches returned. Zero means the default.
	Limit uint
}

// Match is a scored project together with the project it was computed for.
type Match struct {
	relevance.ScoredProject

	Project domain.Project
}

//go:generate mockgen -package mockmatcher -source=interface.go -destination=mock/mockmatcher.go *
type Matcher interface {
	// Matches ranks the published projects around a talent, best first.
	Matches(ctx context.Context, userID domain.UserID, query MatchQuery) ([]Match, error)
	// NotifyTalents scores the available talents around a published project
	// and notifies those scoring high enough. Returns how many were notified.
	NotifyTalents(ctx context.Context, projectID domain.ProjectID) (int, error)
}
