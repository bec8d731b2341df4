package classify

import (
	"fmt"
	"strings"

	"relic-manager/feature/relic/models"
	"relic-manager/feature/relic/vocab"

	"go.uber.org/zap"
)

// FuzzyMode controls when OCR names are corrected to the nearest known piece name.
type FuzzyMode string

const (
	// FuzzyOff only accepts exact piece names.
	FuzzyOff FuzzyMode = "off"
	// FuzzyAlways corrects every name before the exact lookup.
	FuzzyAlways FuzzyMode = "always"
	// FuzzyFallback corrects a name only when the exact lookup misses.
	FuzzyFallback FuzzyMode = "fallback"
)

// Config holds classifier settings.
type Config struct {
	// FuzzyMode is one of off, always, fallback.
	FuzzyMode string `mapstructure:"fuzzy_mode" default:"fallback"`
}

// IsValidFuzzyMode checks if the configured fuzzy mode is known.
func (c Config) IsValidFuzzyMode() bool {
	switch FuzzyMode(c.FuzzyMode) {
	case FuzzyOff, FuzzyAlways, FuzzyFallback:
		return true
	default:
		return false
	}
}

// SlotOf returns the slot of an exact piece name.
func SlotOf(name string) (models.Slot, bool) {
	return vocab.SlotByPiece(name)
}

// SetOf returns the set of an exact piece name.
func SetOf(name string) (models.SetName, bool) {
	return vocab.SetByPiece(name)
}

// NearestKnownName returns the known piece name closest to raw, or false
// when the nearest match is ambiguous.
func NearestKnownName(raw string) (string, bool) {
	return NearestIn(raw, vocab.PieceNames())
}

// Classification is the resolved identity of a scanned piece name.
type Classification struct {
	Raw       string         `json:"raw"`
	Name      string         `json:"name"`
	Set       models.SetName `json:"set"`
	Slot      models.Slot    `json:"slot"`
	Corrected bool           `json:"corrected"`
}

// Classifier resolves raw OCR piece names according to a FuzzyMode.
type Classifier struct {
	mode   FuzzyMode
	logger *zap.Logger
}

// NewClassifier creates a classifier. An unknown mode is rejected.
func NewClassifier(cfg Config, logger *zap.Logger) (*Classifier, error) {
	if cfg.FuzzyMode == "" {
		cfg.FuzzyMode = string(FuzzyFallback)
	}
	if !cfg.IsValidFuzzyMode() {
		return nil, fmt.Errorf("invalid fuzzy mode %q", cfg.FuzzyMode)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{mode: FuzzyMode(cfg.FuzzyMode), logger: logger}, nil
}

// Mode returns the configured fuzzy mode.
func (c *Classifier) Mode() FuzzyMode {
	return c.mode
}

// Resolve maps a raw piece name to its set and slot.
func (c *Classifier) Resolve(raw string) (Classification, bool) {
	name := strings.TrimSpace(raw)
	result := Classification{Raw: raw, Name: name}

	if c.mode == FuzzyAlways {
		corrected, ok := NearestKnownName(name)
		if !ok {
			c.logger.Info("Ambiguous piece name", zap.String("raw", raw))
			return result, false
		}
		result.Name = corrected
	}

	if c.lookup(&result) {
		return c.finish(result), true
	}
	if c.mode != FuzzyFallback {
		return result, false
	}

	corrected, ok := NearestKnownName(name)
	if !ok {
		c.logger.Info("Ambiguous piece name", zap.String("raw", raw))
		return result, false
	}
	result.Name = corrected
	if !c.lookup(&result) {
		return result, false
	}
	return c.finish(result), true
}

func (c *Classifier) lookup(result *Classification) bool {
	set, setOK := SetOf(result.Name)
	slot, slotOK := SlotOf(result.Name)
	if !setOK || !slotOK {
		return false
	}
	result.Set = set
	result.Slot = slot
	return true
}

func (c *Classifier) finish(result Classification) Classification {
	result.Corrected = result.Name != strings.TrimSpace(result.Raw)
	if result.Corrected {
		c.logger.Info("Corrected piece name",
			zap.String("raw", result.Raw),
			zap.String("name", result.Name),
		)
	}
	return result
}
