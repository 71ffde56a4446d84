// Package migrations bundles the PostgreSQL schema for the messaging service.
package migrations

import "embed"

// FS holds the versioned golang-migrate files.
//
//go:embed *.sql
var FS embed.FS
