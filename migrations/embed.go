// Package migrations embeds the schema for each storage backend. Files are applied in name order.
package migrations

import "embed"

//go:embed postgres/*.up.sql
var Postgres embed.FS

//go:embed sqlite/*.up.sql
var SQLite embed.FS
