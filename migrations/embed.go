package migrations

import "embed"

// Files holds the numbered schema scripts that db.OpenSQLite applies in order.
//
//go:embed *.sql
var Files embed.FS
