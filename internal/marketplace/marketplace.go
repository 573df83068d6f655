// Package marketplace implements the use-cases around talent profiles,
// projects, applications and notifications. Background work (geocoding,
// notifying talents) is enqueued in the same transaction as the change that
// triggers it.
package marketplace

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"marketplace/internal/config"
	"marketplace/internal/locator"
	"marketplace/internal/matcher"
	"marketplace/pkg/domain"
	"marketplace/pkg/metrics"
	"marketplace/pkg/serrors"
	"marketplace/pkg/storage"
)

// Options configure job enqueueing and pagination.
type Options struct {
	// MaxAttempts is the maximum number of attempts of the background jobs.
	MaxAttempts int
	// DefaultPageSize is used when a listing sets no limit.
	DefaultPageSize uint
	// MaxPageSize caps the limit of a listing.
	MaxPageSize uint
	// Metrics records business metrics. Optional.
	Metrics *metrics.Recorder
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:     cfg.Worker.MaxAttempts,
		DefaultPageSize: cfg.Matching.DefaultLimit,
		MaxPageSize:     cfg.Matching.MaxLimit,
	}
}

type marketplace struct {
	options Options
	storage storage.Storage
}

func (m *marketplace) Skills(ctx context.Context) ([]domain.Skill, error) {
	skills, err := m.storage.Skills(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get skills: %w", err)
	}

	return skills, nil
}

// SaveTalentProfile creates or replaces the profile of userID. A geocoding
// job is queued whenever the stored profile has no coordinates, which is the
// case for a new profile and after a postal code change.
func (m *marketplace) SaveTalentProfile(ctx context.Context,
	userID domain.UserID,
	input TalentInput) (*domain.Talent, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := m.checkSkills(ctx, input.SkillIDs); err != nil {
		return nil, err
	}

	var talent *domain.Talent
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		saved, err := tx.UpsertTalent(ctx, domain.Talent{
			UserID:        userID,
			DisplayName:   input.DisplayName,
			Bio:           input.Bio,
			PostalCode:    input.PostalCode,
			City:          input.City,
			MaxDistanceKm: input.MaxDistanceKm,
			Available:     input.Available,
		})
		if err != nil {
			return fmt.Errorf("could not upsert talent: %w", err)
		}

		if err := tx.SetTalentSkills(ctx, userID, input.SkillIDs...); err != nil {
			return fmt.Errorf("could not set talent skills: %w", err)
		}
		saved.SkillIDs = nonNil(input.SkillIDs)

		if saved.Location == nil {
			if _, err := tx.AddJob(ctx, locator.JobArgs{
				Target:      locator.TargetTalent,
				ID:          uuid.UUID(userID),
				PostalCode:  saved.PostalCode,
				City:        saved.City,
				MaxAttempts: m.options.MaxAttempts,
			}, nil); err != nil {
				return fmt.Errorf("could not add geocoding job: %w", err)
			}
		}
		talent = saved

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not save talent profile: %w", err)
	}

	return talent, nil
}

func (m *marketplace) TalentProfile(ctx context.Context, userID domain.UserID) (*domain.Talent, error) {
	talent, err := m.storage.TalentByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get talent: %w", err)
	}
	if talent == nil {
		return nil, serrors.With(serrors.ErrNotFound, "talent profile not found")
	}

	return talent, nil
}

// CreateProject stores a draft project and queues its geocoding.
func (m *marketplace) CreateProject(ctx context.Context,
	ownerID domain.UserID,
	input ProjectInput) (*domain.Project, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := m.checkSkills(ctx, input.SkillIDs); err != nil {
		return nil, err
	}

	var project *domain.Project
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreProject(ctx, domain.Project{
			OwnerID:        ownerID,
			Title:          input.Title,
			Description:    input.Description,
			Phase:          input.Phase,
			Status:         domain.ProjectStatusDraft,
			PostalCode:     input.PostalCode,
			City:           input.City,
			RemotePossible: input.RemotePossible,
			SkillIDs:       nonNil(input.SkillIDs),
		})
		if err != nil {
			return fmt.Errorf("could not store project: %w", err)
		}

		if _, err := tx.AddJob(ctx, locator.JobArgs{
			Target:      locator.TargetProject,
			ID:          uuid.UUID(stored.ID),
			PostalCode:  stored.PostalCode,
			City:        stored.City,
			MaxAttempts: m.options.MaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add geocoding job: %w", err)
		}
		project = stored

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create project: %w", err)
	}

	return project, nil
}

// Project returns a project visible to userID: drafts are only visible to
// their owner.
func (m *marketplace) Project(ctx context.Context,
	userID domain.UserID,
	projectID domain.ProjectID) (*domain.Project, error) {
	project, err := m.storage.ProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not get project: %w", err)
	}
	if project == nil || (project.Status == domain.ProjectStatusDraft && project.OwnerID != userID) {
		return nil, serrors.With(serrors.ErrNotFound, "project not found")
	}

	return project, nil
}

// OwnerProjects returns a page of the projects of ownerID, newest first. The
// cursor is the RFC3339 timestamp returned with the previous page.
func (m *marketplace) OwnerProjects(ctx context.Context,
	ownerID domain.UserID,
	cursor string,
	limit uint) ([]domain.Project, string, error) {
	cursorTime, err := parseCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	page, err := m.storage.OwnerProjects(ctx, ownerID, cursorTime, m.pageSize(limit))
	if err != nil {
		return nil, "", fmt.Errorf("could not get owner projects: %w", err)
	}

	return page.Projects, formatCursor(page.NextCursor), nil
}

// PublishProject makes a draft visible to talents and queues the
// notification of the talents it matches.
func (m *marketplace) PublishProject(ctx context.Context,
	ownerID domain.UserID,
	projectID domain.ProjectID) (*domain.Project, error) {
	var project *domain.Project
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updated, err := m.transition(ctx, tx, ownerID, projectID,
			domain.ProjectStatusPublished, domain.ProjectStatusDraft)
		if err != nil {
			return err
		}

		if _, err := tx.AddJob(ctx, matcher.NotifyJobArgs{
			ProjectID:   uuid.UUID(projectID),
			MaxAttempts: m.options.MaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add notification job: %w", err)
		}
		project = updated

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not publish project: %w", err)
	}

	return project, nil
}

// CloseProject stops a draft or published project from being listed.
func (m *marketplace) CloseProject(ctx context.Context,
	ownerID domain.UserID,
	projectID domain.ProjectID) (*domain.Project, error) {
	var project *domain.Project
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updated, err := m.transition(ctx, tx, ownerID, projectID,
			domain.ProjectStatusClosed, domain.ProjectStatusDraft, domain.ProjectStatusPublished)
		project = updated

		return err
	}); err != nil {
		return nil, fmt.Errorf("could not close project: %w", err)
	}

	return project, nil
}

// transition moves a project of ownerID to status when its current status is
// one of from.
func (m *marketplace) transition(ctx context.Context,
	tx storage.AllStorage,
	ownerID domain.UserID,
	projectID domain.ProjectID,
	status domain.ProjectStatus,
	from ...domain.ProjectStatus) (*domain.Project, error) {
	project, err := tx.ProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not get project: %w", err)
	}
	if project == nil {
		return nil, serrors.With(serrors.ErrNotFound, "project not found")
	}
	if project.OwnerID != ownerID {
		return nil, serrors.With(serrors.ErrForbidden, "only the owner can change the project")
	}

	updated, err := tx.UpdateProjectStatus(ctx, projectID, status, from...)
	if err != nil {
		return nil, fmt.Errorf("could not update project status: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrConflict, "project is already %s", project.Status)
	}

	return updated, nil
}

// Apply records the candidacy of talentID and notifies the project owner.
func (m *marketplace) Apply(ctx context.Context,
	talentID domain.UserID,
	projectID domain.ProjectID,
	message string) (*domain.Application, error) {
	if err := validateInput(applicationInput{Message: message}); err != nil {
		return nil, err
	}

	talent, err := m.storage.TalentByUserID(ctx, talentID)
	if err != nil {
		return nil, fmt.Errorf("could not get talent: %w", err)
	}
	if talent == nil {
		return nil, serrors.With(serrors.ErrNotFound, "a talent profile is required to apply")
	}

	project, err := m.storage.ProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not get project: %w", err)
	}
	switch {
	case project == nil || project.Status == domain.ProjectStatusDraft:
		return nil, serrors.With(serrors.ErrNotFound, "project not found")
	case project.OwnerID == talentID:
		return nil, serrors.With(serrors.ErrForbidden, "cannot apply to your own project")
	case project.Status != domain.ProjectStatusPublished:
		return nil, serrors.With(serrors.ErrConflict, "project is %s", project.Status)
	}

	var application *domain.Application
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreApplication(ctx, domain.Application{
			ProjectID: projectID,
			TalentID:  talentID,
			Message:   message,
			Status:    domain.ApplicationStatusPending,
		})
		if errors.Is(err, storage.ErrDuplicate) {
			return serrors.Wrap(serrors.ErrConflict, err, "already applied to this project")
		}
		if err != nil {
			return fmt.Errorf("could not store application: %w", err)
		}

		applicationID := stored.ID
		if _, err := tx.StoreNotifications(ctx, domain.Notification{
			UserID:        project.OwnerID,
			Kind:          domain.NotificationKindApplicationReceived,
			ProjectID:     projectID,
			ApplicationID: &applicationID,
			Message:       fmt.Sprintf("%s applied to %q", talent.DisplayName, project.Title),
		}); err != nil {
			return fmt.Errorf("could not store notification: %w", err)
		}
		application = stored

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not apply: %w", err)
	}

	m.options.Metrics.Application(string(domain.ApplicationStatusPending))
	m.options.Metrics.NotificationsStored(string(domain.NotificationKindApplicationReceived), 1)

	return application, nil
}

// ProjectApplications lists the applications to a project of ownerID.
func (m *marketplace) ProjectApplications(ctx context.Context,
	ownerID domain.UserID,
	projectID domain.ProjectID) ([]domain.Application, error) {
	project, err := m.storage.ProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not get project: %w", err)
	}
	if project == nil {
		return nil, serrors.With(serrors.ErrNotFound, "project not found")
	}
	if project.OwnerID != ownerID {
		return nil, serrors.With(serrors.ErrForbidden, "only the owner can list applications")
	}

	applications, err := m.storage.ProjectApplications(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not get applications: %w", err)
	}

	return applications, nil
}

// DecideApplication accepts or rejects a pending application and notifies
// the talent.
func (m *marketplace) DecideApplication(ctx context.Context,
	ownerID domain.UserID,
	applicationID domain.ApplicationID,
	status domain.ApplicationStatus) (*domain.Application, error) {
	if status != domain.ApplicationStatusAccepted && status != domain.ApplicationStatusRejected {
		return nil, serrors.With(serrors.ErrBadRequest, "status must be accepted or rejected")
	}

	var application *domain.Application
	if err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.ApplicationByID(ctx, applicationID)
		if err != nil {
			return fmt.Errorf("could not get application: %w", err)
		}
		if current == nil {
			return serrors.With(serrors.ErrNotFound, "application not found")
		}

		project, err := tx.ProjectByID(ctx, current.ProjectID)
		if err != nil {
			return fmt.Errorf("could not get project: %w", err)
		}
		if project == nil || project.OwnerID != ownerID {
			return serrors.With(serrors.ErrForbidden, "only the project owner can decide")
		}

		updated, err := tx.UpdateApplicationStatus(ctx, applicationID, domain.ApplicationStatusPending, status)
		if err != nil {
			return fmt.Errorf("could not update application: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrConflict, "application is already %s", current.Status)
		}

		if _, err := tx.StoreNotifications(ctx, domain.Notification{
			UserID:        updated.TalentID,
			Kind:          domain.NotificationKindApplicationDecided,
			ProjectID:     updated.ProjectID,
			ApplicationID: &applicationID,
			Message:       fmt.Sprintf("Your application to %q was %s", project.Title, status),
		}); err != nil {
			return fmt.Errorf("could not store notification: %w", err)
		}
		application = updated

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not decide application: %w", err)
	}

	m.options.Metrics.Application(string(status))
	m.options.Metrics.NotificationsStored(string(domain.NotificationKindApplicationDecided), 1)

	return application, nil
}

// Notifications returns a page of the notifications of userID, newest first.
func (m *marketplace) Notifications(ctx context.Context,
	userID domain.UserID,
	unreadOnly bool,
	cursor string,
	limit uint) ([]domain.Notification, string, error) {
	cursorTime, err := parseCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	page, err := m.storage.UserNotifications(ctx, userID, unreadOnly, cursorTime, m.pageSize(limit))
	if err != nil {
		return nil, "", fmt.Errorf("could not get notifications: %w", err)
	}

	return page.Notifications, formatCursor(page.NextCursor), nil
}

// MarkNotificationsRead marks notifications of userID as read, all of them
// when ids is empty.
func (m *marketplace) MarkNotificationsRead(ctx context.Context,
	userID domain.UserID,
	ids ...domain.NotificationID) (int64, error) {
	n, err := m.storage.MarkNotificationsRead(ctx, userID, ids...)
	if err != nil {
		return 0, fmt.Errorf("could not mark notifications read: %w", err)
	}

	return n, nil
}

func (m *marketplace) checkSkills(ctx context.Context, ids []domain.SkillID) error {
	if len(ids) == 0 {
		return nil
	}

	known, err := m.storage.SkillsByIDs(ctx, ids...)
	if err != nil {
		return fmt.Errorf("could not get skills: %w", err)
	}
	if len(known) != len(ids) {
		return serrors.With(serrors.ErrBadRequest, "unknown skill")
	}

	return nil
}

func (m *marketplace) pageSize(limit uint) uint {
	if limit == 0 {
		limit = m.options.DefaultPageSize
	}
	if m.options.MaxPageSize > 0 && limit > m.options.MaxPageSize {
		limit = m.options.MaxPageSize
	}

	return max(limit, 1)
}

func parseCursor(cursor string) (time.Time, error) {
	if cursor == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.RFC3339Nano, cursor)
	if err != nil {
		return time.Time{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	return t, nil
}

func formatCursor(cursor *time.Time) string {
	if cursor == nil {
		return ""
	}

	return cursor.Format(time.RFC3339Nano)
}

func nonNil(ids []domain.SkillID) []domain.SkillID {
	if ids == nil {
		return []domain.SkillID{}
	}

	return ids
}

// New creates a Marketplace backed by the provided storage.
func New(storage storage.Storage, options Options) Marketplace {
	return &marketplace{
		options: options,
		storage: storage,
	}
}
