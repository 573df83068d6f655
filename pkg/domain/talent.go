package domain

import "time"

// Talent is the profile of a freelancer offering skills in a territory.
type Talent struct {
	// UserID is the owner of the profile.
	UserID UserID `json:"userId"`
	// DisplayName is the public name shown to entrepreneurs.
	DisplayName string `json:"displayName"`
	// Bio is a free-form presentation.
	Bio string `json:"bio"`
	// PostalCode is the French postal code the talent works from.
	PostalCode string `json:"postalCode"`
	// City is the municipality name matching PostalCode.
	City string `json:"city"`
	// Location is filled asynchronously by geocoding PostalCode; nil until then.
	Location *Coordinates `json:"location,omitempty"`
	// MaxDistanceKm is how far the talent accepts to travel.
	MaxDistanceKm float64 `json:"maxDistanceKm"`
	// Available is false when the talent does not want to be matched.
	Available bool `json:"available"`
	// SkillIDs are the skills held by the talent.
	SkillIDs []SkillID `json:"skillIds"`
	// CreatedAt is the time the profile was first saved.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the profile was last changed.
	UpdatedAt time.Time `json:"updatedAt"`
}
