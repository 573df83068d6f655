package storage

import (
	"context"

	"marketplace/pkg/domain"
)

// ApplicationStorage defines the operations on applications.
type ApplicationStorage interface {
	// StoreApplication inserts an application. Returns ErrDuplicate when the
	// talent already applied to the project.
	StoreApplication(ctx context.Context, application domain.Application) (*domain.Application, error)
	// ApplicationByID fetches an application. Returns nil when not found.
	ApplicationByID(ctx context.Context, id domain.ApplicationID) (*domain.Application, error)
	// ProjectApplications lists the applications of a project, oldest first.
	ProjectApplications(ctx context.Context, projectID domain.ProjectID) ([]domain.Application, error)
	// UpdateApplicationStatus moves an application from one status to another.
	// Returns nil when the application does not exist or is not in from.
	UpdateApplicationStatus(ctx context.Context,
		id domain.ApplicationID,
		from, to domain.ApplicationStatus) (*domain.Application, error)
}
