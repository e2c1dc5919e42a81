package migrations

import "github.com/uptrace/bun/migrate"

// Migrations is the ordered set of schema changes, registered by the numbered files in this package.
var Migrations = migrate.NewMigrations()
