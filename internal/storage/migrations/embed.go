package migrations

import "embed"

// FS embeds all SQL migration files for the session history database.
//
//go:embed *.sql
var FS embed.FS
