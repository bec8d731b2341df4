// Package identity computes relic tokens and merges them with stored locks.
//
// A token is an xxhash64 over the relic's set, slot, star, level and stats,
// with stat values quantized to thousandths so float noise below the third
// decimal never changes a relic's identity.
package identity
