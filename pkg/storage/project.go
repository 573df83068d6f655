package storage

import (
	"context"
	"time"

	"marketplace/pkg/domain"
)

// NearbyQuery selects the published projects a talent can be matched with.
type NearbyQuery struct {
	// Origin is the point distances are measured from. When nil, no distance
	// is computed.
	Origin *domain.Coordinates
	// RadiusKm drops located, non-remote projects farther than this. Remote
	// projects and projects without coordinates are always kept. A value <= 0
	// disables the radius.
	RadiusKm float64
	// ExcludeOwner drops the projects posted by this user, if set.
	ExcludeOwner *domain.UserID
	// Limit bounds the number of projects returned. Zero means no limit.
	Limit uint
}

// NearbyProject is a project annotated with its distance from the query origin.
type NearbyProject struct {
	domain.Project

	// DistanceKm is nil when either side has no coordinates.
	DistanceKm *float64
}

// OwnerProjects groups a page of projects of an owner together with an
// optional NextCursor used for pagination.
type OwnerProjects struct {
	// Projects contains the current page.
	Projects []domain.Project
	// NextCursor is the created_at to pass to fetch the next page. It is nil
	// when there is no next page.
	NextCursor *time.Time
}

// ProjectStorage defines the operations on projects. Soft-deleted projects
// are invisible to every operation.
type ProjectStorage interface {
	// StoreProject inserts a project with its skills and returns the stored row.
	StoreProject(ctx context.Context, project domain.Project) (*domain.Project, error)
	// ProjectByID fetches a project with its skills. Returns nil when not found.
	ProjectByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error)
	// UpdateProjectStatus moves a project to status when its current status is
	// one of from (any status when from is empty). Returns nil when no project
	// matched.
	UpdateProjectStatus(ctx context.Context,
		id domain.ProjectID,
		status domain.ProjectStatus,
		from ...domain.ProjectStatus) (*domain.Project, error)
	// UpdateProjectLocation stores the coordinates of a project as long as its
	// postal code still equals postalCode. Reports whether a row was updated.
	UpdateProjectLocation(ctx context.Context,
		id domain.ProjectID,
		postalCode string,
		location domain.Coordinates) (bool, error)
	// OwnerProjects returns a page of projects of owner created before the
	// optional cursor, newest first.
	OwnerProjects(ctx context.Context, owner domain.UserID, cursor time.Time, limit uint) (OwnerProjects, error)
	// NearbyProjects returns published projects annotated with their distance,
	// ordered by distance (unknown last) then newest first.
	NearbyProjects(ctx context.Context, query NearbyQuery) ([]NearbyProject, error)
}
