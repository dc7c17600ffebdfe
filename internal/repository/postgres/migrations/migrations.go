// Package migrations holds the embedded goose migrations for the postgres
// backend.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
