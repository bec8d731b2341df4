// Package icons keeps the catalogue of character equip icons.
//
// Icons live in object storage as <prefix>/<name>.png or <prefix>/<name>.webp.
// The catalogue decodes them into *image.RGBA once and caches the result; the
// pixel matching that uses them lives outside this module.
package icons
