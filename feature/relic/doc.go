// Package relic assembles OCR scans into relics and runs scan passes.
//
// A scan pass takes the raw OCR output of a whole inventory, classifies each
// piece name, parses its stat lines, computes its token, merges the stored
// locks and plans the lock store changes. Pieces that fail to assemble are
// reported and skipped; they never abort the pass.
//
// # Routes
//
//   - POST /relics/scan: scan pass, optionally applied
//   - POST /relics/export: scan pass rendered as an xlsx workbook
//   - POST /relics/parse-stat: parse one stat line
//   - GET /relics/classify/{name}: resolve one piece name
package relic
