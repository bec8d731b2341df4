// Package models defines the relic data model shared by the parser, classifier
// and identity packages.
//
// StatName, Slot and SetName are closed enumerations encoded as ints and
// marshalled to JSON by their canonical English names. Stat values are kept at
// full precision; equality goes through Stat.Quantized, which truncates
// Value*1000 toward zero so float noise below one-thousandth does not change
// identity.
package models
