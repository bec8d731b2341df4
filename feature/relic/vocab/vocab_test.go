package vocab_test

import (
	"testing"

	"relic-manager/feature/relic/models"
	"relic-manager/feature/relic/vocab"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatByName(t *testing.T) {
	tests := []struct {
		name    string
		display string
		percent bool
		want    models.StatName
		ok      bool
	}{
		{"FlatHP", "生命值", false, models.HP, true},
		{"PercentHP", "生命值", true, models.HPPercentage, true},
		{"FlatATK", "攻击力", false, models.ATK, true},
		{"PercentATK", "攻击力", true, models.ATKPercentage, true},
		{"FlatDEF", "防御力", false, models.DEF, true},
		{"PercentDEF", "防御力", true, models.DEFPercentage, true},
		{"CritRate", "暴击率", true, models.CRITRate, true},
		{"SpeedIgnoresPercent", "速度", true, models.SPD, true},
		{"Quantum", "量子属性伤害提高", true, models.QuantumDMGBoost, true},
		{"EffectRES", "效果抵抗", true, models.EffectRES, true},
		{"Unknown", "幸运", false, 0, false},
		{"Empty", "", false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := vocab.StatByName(tt.display, tt.percent)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestPieceTablesShareKeyUniverse(t *testing.T) {
	names := vocab.PieceNames()
	require.Len(t, names, 112)

	for _, name := range names {
		_, setOK := vocab.SetByPiece(name)
		_, slotOK := vocab.SlotByPiece(name)
		assert.True(t, setOK, "set lookup for %s", name)
		assert.True(t, slotOK, "slot lookup for %s", name)
	}
}

func TestEverySetHasCompleteFamily(t *testing.T) {
	for _, set := range models.AllSetNames() {
		family := vocab.PiecesOf(set)
		slots := make(map[models.Slot]bool)
		for _, p := range family {
			slots[p.Slot] = true
		}
		if family[0].Slot.IsPlanar() {
			assert.Equal(t, map[models.Slot]bool{models.PlanarSphere: true, models.LinkRope: true}, slots, set.String())
		} else {
			assert.Equal(t, map[models.Slot]bool{models.Head: true, models.Hands: true, models.Body: true, models.Feet: true}, slots, set.String())
		}
	}
}

func TestPieceByName(t *testing.T) {
	p, ok := vocab.PieceByName("雪猎的巨蜥手套")
	require.True(t, ok)
	assert.Equal(t, models.HunterofGlacialForest, p.Set)
	assert.Equal(t, models.Hands, p.Slot)

	p, ok = vocab.PieceByName("「黑塔」的漫历轨迹")
	require.True(t, ok)
	assert.Equal(t, models.SpaceSealingStation, p.Set)
	assert.Equal(t, models.LinkRope, p.Slot)

	_, ok = vocab.PieceByName("雪猎的巨蜥手")
	assert.False(t, ok)
}

func TestPieceNamesIsCopy(t *testing.T) {
	names := vocab.PieceNames()
	names[0] = "changed"
	assert.NotEqual(t, "changed", vocab.PieceNames()[0])
}
