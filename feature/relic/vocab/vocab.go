package vocab

import (
	"fmt"

	"relic-manager/feature/relic/models"
)

// Version is the game content version these tables describe.
const Version = "2.3"

// statVariant maps a display name to its flat and percentage variants.
// Names that only exist in one form use the same value for both.
type statVariant struct {
	flat    models.StatName
	percent models.StatName
}

func single(n models.StatName) statVariant {
	return statVariant{flat: n, percent: n}
}

var statsZhCN = map[string]statVariant{
	"生命值":      {flat: models.HP, percent: models.HPPercentage},
	"攻击力":      {flat: models.ATK, percent: models.ATKPercentage},
	"防御力":      {flat: models.DEF, percent: models.DEFPercentage},
	"速度":       single(models.SPD),
	"暴击率":      single(models.CRITRate),
	"暴击伤害":     single(models.CRITDMG),
	"击破特攻":     single(models.BreakEffect),
	"治疗量加成":    single(models.OutgoingHealingBoost),
	"能量恢复效率":   single(models.EnergyRegenerationRate),
	"效果命中":     single(models.EffectHitRate),
	"效果抵抗":     single(models.EffectRES),
	"物理属性伤害提高": single(models.PhysicalDMGBoost),
	"火属性伤害提高":  single(models.FireDMGBoost),
	"冰属性伤害提高":  single(models.IceDMGBoost),
	"雷属性伤害提高":  single(models.LightningDMGBoost),
	"风属性伤害提高":  single(models.WindDMGBoost),
	"量子属性伤害提高": single(models.QuantumDMGBoost),
	"虚数属性伤害提高": single(models.ImaginaryDMGBoost),
}

var (
	pieceIndex map[string]Piece
	pieceNames []string
	setPieces  map[models.SetName][]Piece
)

func init() {
	if err := buildIndex(); err != nil {
		panic(err)
	}
}

// buildIndex derives the lookup maps from the piece list and checks the
// table invariants: unique names, one family per set, 4 cavern pieces
// (head/hands/body/feet) or 2 planar pieces (sphere/rope).
func buildIndex() error {
	if len(pieces) == 0 || len(statsZhCN) == 0 {
		return fmt.Errorf("vocab: empty vocabulary table")
	}

	pieceIndex = make(map[string]Piece, len(pieces))
	pieceNames = make([]string, 0, len(pieces))
	setPieces = make(map[models.SetName][]Piece)

	for _, p := range pieces {
		if p.Name == "" {
			return fmt.Errorf("vocab: empty piece name in set %s", p.Set)
		}
		if _, dup := pieceIndex[p.Name]; dup {
			return fmt.Errorf("vocab: duplicate piece name %q", p.Name)
		}
		if !p.Set.IsValid() || !p.Slot.IsValid() {
			return fmt.Errorf("vocab: piece %q has invalid set or slot", p.Name)
		}
		pieceIndex[p.Name] = p
		pieceNames = append(pieceNames, p.Name)
		setPieces[p.Set] = append(setPieces[p.Set], p)
	}

	for _, set := range models.AllSetNames() {
		family := setPieces[set]
		if len(family) == 0 {
			return fmt.Errorf("vocab: set %s has no pieces", set)
		}
		planar := family[0].Slot.IsPlanar()
		want := 4
		if planar {
			want = 2
		}
		if len(family) != want {
			return fmt.Errorf("vocab: set %s has %d pieces, want %d", set, len(family), want)
		}
		seen := make(map[models.Slot]bool, want)
		for _, p := range family {
			if p.Slot.IsPlanar() != planar {
				return fmt.Errorf("vocab: set %s mixes planar and cavern slots", set)
			}
			if seen[p.Slot] {
				return fmt.Errorf("vocab: set %s has two %s pieces", set, p.Slot)
			}
			seen[p.Slot] = true
		}
	}
	return nil
}

// StatByName resolves a zh-CN stat display name. isPercentage selects the
// percentage variant for HP, ATK and DEF.
func StatByName(name string, isPercentage bool) (models.StatName, bool) {
	v, ok := statsZhCN[name]
	if !ok {
		return 0, false
	}
	if isPercentage {
		return v.percent, true
	}
	return v.flat, true
}

// PieceByName returns the piece with the exact display name.
func PieceByName(name string) (Piece, bool) {
	p, ok := pieceIndex[name]
	return p, ok
}

// SetByPiece returns the set owning the piece.
func SetByPiece(name string) (models.SetName, bool) {
	p, ok := pieceIndex[name]
	return p.Set, ok
}

// SlotByPiece returns the slot the piece occupies.
func SlotByPiece(name string) (models.Slot, bool) {
	p, ok := pieceIndex[name]
	return p.Slot, ok
}

// PieceNames returns all known piece display names in table order.
// The returned slice is a copy.
func PieceNames() []string {
	out := make([]string, len(pieceNames))
	copy(out, pieceNames)
	return out
}

// PiecesOf returns the piece family of a set.
func PiecesOf(set models.SetName) []Piece {
	family := setPieces[set]
	out := make([]Piece, len(family))
	copy(out, family)
	return out
}
