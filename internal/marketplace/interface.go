package marketplace

import (
	"context"

	"marketplace/pkg/domain"
)

//go:generate mockgen -package mockmarketplace -source=interface.go -destination=mock/mockmarketplace.go *
type Marketplace interface {
	Skills(ctx context.Context) ([]domain.Skill, error)

	SaveTalentProfile(ctx context.Context, userID domain.UserID, input TalentInput) (*domain.Talent, error)
	TalentProfile(ctx context.Context, userID domain.UserID) (*domain.Talent, error)

	CreateProject(ctx context.Context, ownerID domain.UserID, input ProjectInput) (*domain.Project, error)
	Project(ctx context.Context, userID domain.UserID, projectID domain.ProjectID) (*domain.Project, error)
	OwnerProjects(ctx context.Context,
		ownerID domain.UserID,
		cursor string,
		limit uint) ([]domain.Project, string, error)
	PublishProject(ctx context.Context, ownerID domain.UserID, projectID domain.ProjectID) (*domain.Project, error)
	CloseProject(ctx context.Context, ownerID domain.UserID, projectID domain.ProjectID) (*domain.Project, error)

	Apply(ctx context.Context,
		talentID domain.UserID,
		projectID domain.ProjectID,
		message string) (*domain.Application, error)
	ProjectApplications(ctx context.Context,
		ownerID domain.UserID,
		projectID domain.ProjectID) ([]domain.Application, error)
	DecideApplication(ctx context.Context,
		ownerID domain.UserID,
		applicationID domain.ApplicationID,
		status domain.ApplicationStatus) (*domain.Application, error)

	Notifications(ctx context.Context,
		userID domain.UserID,
		unreadOnly bool,
		cursor string,
		limit uint) ([]domain.Notification, string, error)
	MarkNotificationsRead(ctx context.Context, userID domain.UserID, ids ...domain.NotificationID) (int64, error)
}
