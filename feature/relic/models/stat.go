package models

import (
	"fmt"
	"math"
)

// StatName identifies a kind of relic stat.
type StatName int

const (
	HP StatName = iota
	HPPercentage
	ATK
	ATKPercentage
	DEF
	DEFPercentage
	SPD
	CRITRate
	CRITDMG
	BreakEffect
	OutgoingHealingBoost
	EnergyRegenerationRate
	EffectHitRate
	EffectRES
	PhysicalDMGBoost
	FireDMGBoost
	IceDMGBoost
	LightningDMGBoost
	WindDMGBoost
	QuantumDMGBoost
	ImaginaryDMGBoost
)

var statNames = [...]string{
	HP:                     "HP",
	HPPercentage:           "HPPercentage",
	ATK:                    "ATK",
	ATKPercentage:          "ATKPercentage",
	DEF:                    "DEF",
	DEFPercentage:          "DEFPercentage",
	SPD:                    "SPD",
	CRITRate:               "CRITRate",
	CRITDMG:                "CRITDMG",
	BreakEffect:            "BreakEffect",
	OutgoingHealingBoost:   "OutgoingHealingBoost",
	EnergyRegenerationRate: "EnergyRegenerationRate",
	EffectHitRate:          "EffectHitRate",
	EffectRES:              "EffectRES",
	PhysicalDMGBoost:       "PhysicalDMGBoost",
	FireDMGBoost:           "FireDMGBoost",
	IceDMGBoost:            "IceDMGBoost",
	LightningDMGBoost:      "LightningDMGBoost",
	WindDMGBoost:           "WindDMGBoost",
	QuantumDMGBoost:        "QuantumDMGBoost",
	ImaginaryDMGBoost:      "ImaginaryDMGBoost",
}

// AllStatNames returns every stat kind in declaration order.
func AllStatNames() []StatName {
	out := make([]StatName, len(statNames))
	for i := range statNames {
		out[i] = StatName(i)
	}
	return out
}

func (n StatName) String() string {
	if n < 0 || int(n) >= len(statNames) {
		return fmt.Sprintf("StatName(%d)", int(n))
	}
	return statNames[n]
}

// IsValid reports whether n is one of the declared stat kinds.
func (n StatName) IsValid() bool {
	return n >= 0 && int(n) < len(statNames)
}

// IsPercentage reports whether values of this stat are stored as a fraction.
// Flat HP/ATK/DEF and SPD are the only absolute stats.
func (n StatName) IsPercentage() bool {
	switch n {
	case HP, ATK, DEF, SPD:
		return false
	default:
		return n.IsValid()
	}
}

// MarshalText encodes the stat kind by its canonical name.
func (n StatName) MarshalText() ([]byte, error) {
	if !n.IsValid() {
		return nil, fmt.Errorf("invalid stat name %d", int(n))
	}
	return []byte(statNames[n]), nil
}

// UnmarshalText decodes a canonical stat name.
func (n *StatName) UnmarshalText(text []byte) error {
	s := string(text)
	for i, name := range statNames {
		if name == s {
			*n = StatName(i)
			return nil
		}
	}
	return fmt.Errorf("unknown stat name %q", s)
}

// Stat is a single main or sub stat of a relic.
//
// Value holds full float precision. Percentage stats are fractions
// (0.10 for 10%). Comparison and hashing go through Quantized.
type Stat struct {
	Name  StatName `json:"name"`
	Value float64  `json:"value"`
}

// quantLimit is 2^63, the first magnitude int64 cannot hold.
const quantLimit = float64(1 << 63)

// Quantizable reports whether v*1000 is finite and fits in an int64.
func Quantizable(v float64) bool {
	q := math.Trunc(v * 1000)
	return !math.IsNaN(q) && q >= -quantLimit && q < quantLimit
}

// Quantized returns Value*1000 truncated toward zero. Values outside the
// int64 range saturate and NaN maps to zero, so the result is the same on
// every architecture.
func (s Stat) Quantized() int64 {
	q := math.Trunc(s.Value * 1000)
	switch {
	case math.IsNaN(q):
		return 0
	case q >= quantLimit:
		return math.MaxInt64
	case q < -quantLimit:
		return math.MinInt64
	}
	return int64(q)
}

// Equal compares two stats on name and quantized value.
func (s Stat) Equal(o Stat) bool {
	return s.Name == o.Name && s.Quantized() == o.Quantized()
}

func (s Stat) String() string {
	if s.Name.IsPercentage() {
		return fmt.Sprintf("%s+%.1f%%", s.Name, s.Value*100)
	}
	return fmt.Sprintf("%s+%g", s.Name, s.Value)
}
