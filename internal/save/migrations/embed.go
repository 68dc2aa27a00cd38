package migrations

import "embed"

// FS contains the embedded SQLite schema for saves.
//
//go:embed *.sql
var FS embed.FS
