package domain

import "github.com/google/uuid"

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
// Users are authenticated by an external identity provider; the ID is the
// subject of the bearer token.
type UserID uuid.UUID

// String returns the canonical UUID representation of the user ID.
func (id UserID) String() string { return uuid.UUID(id).String() }
