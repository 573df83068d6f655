package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectID uniquely identifies a project.
type ProjectID uuid.UUID

// String returns the canonical UUID representation of the project ID.
func (id ProjectID) String() string { return uuid.UUID(id).String() }

// ProjectPhase is the maturity of the entrepreneurial project.
type ProjectPhase string

const (
	// ProjectPhaseIdea is a project still at the idea stage.
	ProjectPhaseIdea ProjectPhase = "idea"
	// ProjectPhasePrototype is a project building its first version.
	ProjectPhasePrototype ProjectPhase = "prototype"
	// ProjectPhaseLaunch is a project about to launch or just launched.
	ProjectPhaseLaunch ProjectPhase = "launch"
	// ProjectPhaseGrowth is an established project looking to grow.
	ProjectPhaseGrowth ProjectPhase = "growth"
)

// Valid reports whether p is one of the known phases.
func (p ProjectPhase) Valid() bool {
	switch p {
	case ProjectPhaseIdea, ProjectPhasePrototype, ProjectPhaseLaunch, ProjectPhaseGrowth:
		return true
	}

	return false
}

// ProjectStatus represents the lifecycle state of a project posting.
type ProjectStatus string

const (
	// ProjectStatusDraft is a project only visible to its owner.
	ProjectStatusDraft ProjectStatus = "draft"
	// ProjectStatusPublished is a project visible to talents and open to applications.
	ProjectStatusPublished ProjectStatus = "published"
	// ProjectStatusClosed is a project no longer accepting applications.
	ProjectStatusClosed ProjectStatus = "closed"
)

// Project is an entrepreneurial initiative looking for skills.
type Project struct {
	// ID is the unique identifier of the project.
	ID ProjectID `json:"id"`
	// OwnerID is the entrepreneur who posted the project.
	OwnerID UserID `json:"ownerId"`
	// Title is a short headline.
	Title string `json:"title"`
	// Description details the needs.
	Description string `json:"description"`
	// Phase is the maturity of the project.
	Phase ProjectPhase `json:"phase"`
	// Status is the current lifecycle state.
	Status ProjectStatus `json:"status"`
	// PostalCode is where the project takes place.
	PostalCode string `json:"postalCode"`
	// City is the municipality matching PostalCode.
	City string `json:"city"`
	// Location is filled asynchronously by geocoding PostalCode; nil until then.
	Location *Coordinates `json:"location,omitempty"`
	// RemotePossible tells whether the work can be done remotely.
	RemotePossible bool `json:"remotePossible"`
	// SkillIDs are the skills the project requires.
	SkillIDs []SkillID `json:"skillIds"`
	// CreatedAt is the time the project was posted.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the project was last changed.
	UpdatedAt time.Time `json:"updatedAt"`
}
