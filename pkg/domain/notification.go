package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationID uniquely identifies a notification.
type NotificationID uuid.UUID

// String returns the canonical UUID representation of the notification ID.
func (id NotificationID) String() string { return uuid.UUID(id).String() }

// NotificationKind tells what event a notification reports.
type NotificationKind string

const (
	// NotificationKindProjectMatch tells a talent a newly published project matches the profile.
	NotificationKindProjectMatch NotificationKind = "project_match"
	// NotificationKindApplicationReceived tells an owner a talent applied to a project.
	NotificationKindApplicationReceived NotificationKind = "application_received"
	// NotificationKindApplicationDecided tells a talent the owner decided on an application.
	NotificationKindApplicationDecided NotificationKind = "application_decided"
)

// Notification is an in-app message addressed to a user.
type Notification struct {
	ID     NotificationID   `json:"id"`
	UserID UserID           `json:"userId"`
	Kind   NotificationKind `json:"kind"`
	// ProjectID is the project the notification is about.
	ProjectID ProjectID `json:"projectId"`
	// ApplicationID is set for application notifications only.
	ApplicationID *ApplicationID `json:"applicationId,omitempty"`
	// Score is the relevance score for project_match notifications.
	Score   int    `json:"score"`
	Message string `json:"message"`
	// ReadAt is zero while the notification is unread.
	ReadAt    time.Time `json:"readAt"`
	CreatedAt time.Time `json:"createdAt"`
}
