// Package marketplace is the root of the territorial talent marketplace service.
// It only exposes the embedded SQL migrations applied by the migrate command.
package marketplace

import "embed"

// Migrations holds the goose SQL migrations for the service tables.
//
//go:embed migrations/*.sql
var Migrations embed.FS
