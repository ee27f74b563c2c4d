// Package catalog exposes embedded assets shared by the binaries and tests.
package catalog

import "embed"

// Migrations holds the goose SQL migrations applied by the migrate command.
//
//go:embed migrations
var Migrations embed.FS
