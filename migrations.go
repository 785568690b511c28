// Package urlintel exposes the embedded database migrations so the migrate
// command and integration tests can run them from the compiled binary.
package urlintel

import "embed"

// Migrations contains the goose SQL migrations for the record store schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
