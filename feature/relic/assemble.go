package relic

import (
	"errors"
	"fmt"
	"strings"

	"relic-manager/feature/relic/classify"
	"relic-manager/feature/relic/models"
	"relic-manager/feature/relic/parse"

	"go.uber.org/zap"
)

const maxSubStats = 4

var (
	// ErrUnknownPiece is returned when a piece name resolves to no set and slot.
	ErrUnknownPiece = errors.New("unknown relic piece")
	// ErrMainStat is returned when the main stat line cannot be parsed.
	ErrMainStat = errors.New("unparseable main stat")
)

// RawScan is the OCR output for one relic piece.
type RawScan struct {
	Name     string   `json:"name"`
	MainStat string   `json:"main_stat"`
	SubStats []string `json:"sub_stats"`
	Star     uint32   `json:"star"`
	Level    uint32   `json:"level"`
	Equip    string   `json:"equip,omitempty"`
}

// Assembler turns raw scans into relics.
type Assembler struct {
	classifier *classify.Classifier
	logger     *zap.Logger
}

// NewAssembler creates an assembler resolving names with classifier.
func NewAssembler(classifier *classify.Classifier, logger *zap.Logger) *Assembler {
	return &Assembler{classifier: classifier, logger: logger}
}

// Assemble builds a relic from raw. Sub-stat lines keep their position: a line
// that fails to parse leaves its slot empty. Star and level are copied as
// reported. Token and Locked are not set.
func (a *Assembler) Assemble(raw RawScan) (*models.Relic, error) {
	class, ok := a.classifier.Resolve(raw.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPiece, raw.Name)
	}

	main, ok := parse.ParseStat(raw.MainStat)
	if !ok {
		return nil, fmt.Errorf("%w: %q for %q", ErrMainStat, raw.MainStat, raw.Name)
	}

	r := &models.Relic{
		SetName:  class.Set,
		Slot:     class.Slot,
		Star:     raw.Star,
		Level:    raw.Level,
		MainStat: main,
	}

	if len(raw.SubStats) > maxSubStats {
		a.logger.Warn("Extra sub-stat lines ignored",
			zap.String("name", raw.Name),
			zap.Strings("extra", raw.SubStats[maxSubStats:]),
		)
	}
	for i, line := range raw.SubStats {
		if i >= maxSubStats {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		stat, ok := parse.ParseStat(line)
		if !ok {
			a.logger.Warn("Sub-stat line skipped",
				zap.String("name", raw.Name),
				zap.Int("position", i+1),
				zap.String("line", line),
			)
			continue
		}
		r.SetSubStat(i, &stat)
	}

	if equip := strings.TrimSpace(raw.Equip); equip != "" {
		r.Equip = &equip
	}

	return r, nil
}
