// Package parse turns OCR stat lines into typed relic stats.
package parse

import (
	"strconv"
	"strings"

	"relic-manager/feature/relic/models"
	"relic-manager/feature/relic/vocab"

	"go.uber.org/zap"
	"golang.org/x/text/width"
)

// numberCleaner drops the percent sign and thousands separators.
var numberCleaner = strings.NewReplacer("%", "", ",", "")

// ParseStat converts one OCR stat line such as "生命值+4,123" or "暴击率+10%"
// into a Stat. It returns false when the line is not a recognisable stat;
// callers are expected to skip such lines.
func ParseStat(line string) (models.Stat, bool) {
	normalized := Normalize(line)

	parts := strings.Split(normalized, "+")
	if len(parts) != 2 {
		return models.Stat{}, false
	}
	name := strings.TrimSpace(parts[0])
	raw := strings.TrimSpace(parts[1])

	isPercentage := strings.Contains(raw, "%")
	statName, ok := vocab.StatByName(name, isPercentage)
	if !ok {
		zap.L().Debug("Unrecognized stat name", zap.String("line", line), zap.String("name", name))
		return models.Stat{}, false
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(numberCleaner.Replace(raw)), 64)
	if err != nil {
		zap.L().Error("Stat value parse error", zap.String("line", line), zap.Error(err))
		return models.Stat{}, false
	}
	if isPercentage {
		value /= 100
	}
	if !models.Quantizable(value) {
		zap.L().Error("Stat value out of range", zap.String("line", line), zap.Float64("value", value))
		return models.Stat{}, false
	}

	return models.Stat{Name: statName, Value: value}, true
}

// Normalize folds full-width OCR output (＋, ％, ，, full-width digits) to
// its narrow form. Everything else passes through unchanged.
func Normalize(line string) string {
	return width.Fold.String(line)
}
