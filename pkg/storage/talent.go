package storage

import (
	"context"

	"marketplace/pkg/domain"
)

// TalentQuery selects the available talents around an origin.
type TalentQuery struct {
	// Origin is the point distances are measured from. When nil, no distance
	// is computed and every available talent is returned.
	Origin *domain.Coordinates
	// RadiusKm caps the distance on top of each talent's own travel radius.
	// A value <= 0 disables the cap.
	RadiusKm float64
	// IncludeOutOfRange keeps talents beyond reach and talents without
	// coordinates, still annotated with their distance when known. Used for
	// projects that can be done remotely.
	IncludeOutOfRange bool
	// Limit bounds the number of talents returned. Zero means no limit.
	Limit uint
}

// NearbyTalent is a talent annotated with its distance from the query origin.
type NearbyTalent struct {
	domain.Talent

	// DistanceKm is nil when either side has no coordinates.
	DistanceKm *float64
}

// TalentStorage defines the operations on talent profiles.
type TalentStorage interface {
	// UpsertTalent creates or replaces the profile of talent.UserID and returns
	// the stored row without skills. Coordinates are kept only while the postal
	// code is unchanged.
	UpsertTalent(ctx context.Context, talent domain.Talent) (*domain.Talent, error)
	// SetTalentSkills replaces the skills held by a talent.
	SetTalentSkills(ctx context.Context, userID domain.UserID, skillIDs ...domain.SkillID) error
	// TalentByUserID fetches a talent with its skills. Returns nil when not found.
	TalentByUserID(ctx context.Context, userID domain.UserID) (*domain.Talent, error)
	// UpdateTalentLocation stores the coordinates of a talent as long as its
	// postal code still equals postalCode. Reports whether a row was updated.
	UpdateTalentLocation(ctx context.Context,
		userID domain.UserID,
		postalCode string,
		location domain.Coordinates) (bool, error)
	// TalentsNear returns available talents (with skills) around the query
	// origin, closest first.
	TalentsNear(ctx context.Context, query TalentQuery) ([]NearbyTalent, error)
}
