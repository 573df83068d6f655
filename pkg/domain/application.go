package domain

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationID uniquely identifies an application.
type ApplicationID uuid.UUID

// String returns the canonical UUID representation of the application ID.
func (id ApplicationID) String() string { return uuid.UUID(id).String() }

// ApplicationStatus is the decision state of an application.
type ApplicationStatus string

const (
	// ApplicationStatusPending is an application waiting for the owner's decision.
	ApplicationStatusPending ApplicationStatus = "pending"
	// ApplicationStatusAccepted is an application accepted by the project owner.
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	// ApplicationStatusRejected is an application declined by the project owner.
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Application is a talent's candidacy to a project.
type Application struct {
	ID        ApplicationID     `json:"id"`
	ProjectID ProjectID         `json:"projectId"`
	TalentID  UserID            `json:"talentId"`
	Message   string            `json:"message"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
