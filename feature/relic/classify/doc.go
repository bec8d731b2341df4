// Package classify maps relic piece display names to their set and slot.
//
// Exact lookups go straight to the vocabulary. For OCR-damaged names the
// package offers a nearest-name search by Levenshtein distance over the known
// piece names; a tie at the minimum distance is reported as no match rather
// than a guess.
//
// # Fuzzy modes
//
//   - off: exact lookup only.
//   - always: every name is corrected to its nearest known name first.
//   - fallback: correction only runs when the exact lookup misses (default).
package classify
