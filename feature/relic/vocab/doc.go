// Package vocab holds the static game vocabulary: localized stat names and the
// relic piece display names with the set and slot each one belongs to.
//
// The tables are built once at package initialisation and never mutated, so
// they are safe to read from any goroutine. A broken table (empty, duplicate
// names, incomplete set families) is a programming error and panics at init.
//
// Adding pieces for a new game version is a data change: append the entries to
// pieces.go and bump Version.
package vocab
