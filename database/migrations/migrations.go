// Package migrations contains all database migration files.
// Each migration file uses init() to call migration.Register().
// This package is imported for side effects by the CLI and the server
// so every migration is registered at startup.
package migrations
