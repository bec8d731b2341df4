// Package lock persists relic locks in the relic_locks table.
//
// A lock row records that a relic token has been seen and whether the user
// chose to protect it (save). Rows with save=false are created by scan passes
// that record new tokens; the HTTP API flips the flag.
//
// The package also adapts its Service to reconcile.Store so a scan pass can be
// planned and applied against the database.
package lock
