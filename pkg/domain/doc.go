// Package domain contains the core domain entities and types used by the
// marketplace. These types represent the business concepts (talents, projects,
// applications, notifications) and are intentionally free of infrastructure
// concerns so they can be shared across packages.
package domain
