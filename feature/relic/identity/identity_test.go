package identity_test

import (
	"encoding/binary"
	"fmt"
	"regexp"
	"testing"

	"relic-manager/feature/relic/classify"
	"relic-manager/feature/relic/identity"
	"relic-manager/feature/relic/models"
	"relic-manager/feature/relic/parse"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func sampleRelic() *models.Relic {
	equip := "希儿"
	return &models.Relic{
		SetName:  models.HunterofGlacialForest,
		Slot:     models.Hands,
		Star:     5,
		Level:    15,
		MainStat: models.Stat{Name: models.ATK, Value: 352},
		SubStat1: &models.Stat{Name: models.CRITRate, Value: 0.10},
		SubStat2: &models.Stat{Name: models.HP, Value: 4123},
		SubStat3: &models.Stat{Name: models.SPD, Value: 2.3},
		Equip:    &equip,
	}
}

func TestToken_Deterministic(t *testing.T) {
	r := sampleRelic()
	first := identity.Token(r)
	assert.Equal(t, first, identity.Token(r))
	assert.Equal(t, first, identity.Token(sampleRelic()))
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), first)
}

func TestToken_IdentityFieldsChangeToken(t *testing.T) {
	base := identity.Token(sampleRelic())

	tests := []struct {
		name   string
		mutate func(r *models.Relic)
	}{
		{"Set", func(r *models.Relic) { r.SetName = models.KnightofPurityPalace }},
		{"Slot", func(r *models.Relic) { r.Slot = models.Head }},
		{"Star", func(r *models.Relic) { r.Star = 4 }},
		{"Level", func(r *models.Relic) { r.Level = 12 }},
		{"MainStatName", func(r *models.Relic) { r.MainStat.Name = models.ATKPercentage }},
		{"MainStatValue", func(r *models.Relic) { r.MainStat.Value = 353 }},
		{"SubStatValue", func(r *models.Relic) { r.SubStat1.Value = 0.11 }},
		{"SubStatRemoved", func(r *models.Relic) { r.SubStat3 = nil }},
		{"SubStatAdded", func(r *models.Relic) { r.SubStat4 = &models.Stat{Name: models.EffectRES, Value: 0.04} }},
		{"SubStatsSwapped", func(r *models.Relic) { r.SubStat1, r.SubStat2 = r.SubStat2, r.SubStat1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := sampleRelic()
			tt.mutate(r)
			assert.NotEqual(t, base, identity.Token(r))
		})
	}
}

func TestToken_IgnoresNonIdentityFields(t *testing.T) {
	base := identity.Token(sampleRelic())

	r := sampleRelic()
	other := "布洛妮娅"
	r.Equip = &other
	r.Locked = true
	r.Token = "stale"
	assert.Equal(t, base, identity.Token(r))

	r.Equip = nil
	assert.Equal(t, base, identity.Token(r))
}

func TestToken_QuantizesValues(t *testing.T) {
	a := sampleRelic()
	b := sampleRelic()
	b.SubStat1.Value = 0.1000004
	assert.Equal(t, identity.Token(a), identity.Token(b))
}

// layoutToken rebuilds the hash input by hand so the token stays pinned to
// set, slot and stat names rather than enum positions.
func layoutToken(r *models.Relic) string {
	var buf []byte
	str := func(v string) { buf = append(append(buf, v...), 0) }
	u32 := func(v uint32) { buf = append(binary.LittleEndian.AppendUint32(buf, v), 0) }
	stat := func(s models.Stat) {
		str(s.Name.String())
		buf = append(binary.LittleEndian.AppendUint64(buf, uint64(s.Quantized())), 0)
	}

	str("relic-token-v2")
	str(r.SetName.String())
	str(r.Slot.String())
	u32(r.Star)
	u32(r.Level)
	stat(r.MainStat)
	for _, sub := range r.SubStats() {
		if sub == nil {
			buf = append(buf, 0, 0)
			continue
		}
		buf = append(buf, 1, 0)
		stat(*sub)
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(buf))
}

func TestToken_HashesNamesNotOrdinals(t *testing.T) {
	r := sampleRelic()
	assert.Equal(t, layoutToken(r), identity.Token(r))

	r.SetName = models.BandofSizzlingThunder
	r.Slot = models.Feet
	r.SubStat4 = &models.Stat{Name: models.EffectRES, Value: 0.04}
	assert.Equal(t, layoutToken(r), identity.Token(r))
}

func TestAssignTokenAndLock(t *testing.T) {
	token := identity.Token(sampleRelic())

	t.Run("SavedLockLocks", func(t *testing.T) {
		r := sampleRelic()
		identity.AssignTokenAndLock(r, map[string]models.Lock{token: {Token: token, Save: true}}, zap.NewNop())
		assert.Equal(t, token, r.Token)
		assert.True(t, r.Locked)
	})

	t.Run("UnsavedLockLeavesValue", func(t *testing.T) {
		r := sampleRelic()
		identity.AssignTokenAndLock(r, map[string]models.Lock{token: {Token: token, Save: false}}, zap.NewNop())
		assert.False(t, r.Locked)

		r.Locked = true
		identity.AssignTokenAndLock(r, map[string]models.Lock{token: {Token: token, Save: false}}, zap.NewNop())
		assert.True(t, r.Locked)
	})

	t.Run("AbsentLeavesValue", func(t *testing.T) {
		r := sampleRelic()
		r.Locked = true
		identity.AssignTokenAndLock(r, map[string]models.Lock{"0000000000000000": {Save: true}}, zap.NewNop())
		assert.True(t, r.Locked)
		assert.Equal(t, token, r.Token)
	})

	t.Run("LocksNotModified", func(t *testing.T) {
		locks := map[string]models.Lock{"other": {Token: "other", Save: true}}
		identity.AssignTokenAndLock(sampleRelic(), locks, zap.NewNop())
		assert.Equal(t, map[string]models.Lock{"other": {Token: "other", Save: true}}, locks)
	})
}

func TestAssignTokenAndLock_Warnings(t *testing.T) {
	t.Run("UnmatchedWithHistory", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		r := sampleRelic()
		identity.AssignTokenAndLock(r, map[string]models.Lock{"other": {Token: "other", Save: true}}, zap.New(core))

		warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
		require.Len(t, warns, 1)
		ctx := warns[0].ContextMap()
		assert.Equal(t, r.Token, ctx["token"])
		assert.Contains(t, ctx, "relic")
	})

	t.Run("ColdStart", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		identity.AssignTokenAndLock(sampleRelic(), map[string]models.Lock{}, zap.New(core))
		identity.AssignTokenAndLock(sampleRelic(), nil, zap.New(core))
		assert.Zero(t, logs.Len())
	})

	t.Run("Matched", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		token := identity.Token(sampleRelic())
		identity.AssignTokenAndLock(sampleRelic(), map[string]models.Lock{token: {Token: token}}, zap.New(core))
		assert.Zero(t, logs.Len())
	})
}

func TestEndToEnd_FirstScan(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	undo := zap.ReplaceGlobals(zap.New(core))
	defer undo()

	slot, ok := classify.SlotOf("雪猎的巨蜥手套")
	require.True(t, ok)
	set, ok := classify.SetOf("雪猎的巨蜥手套")
	require.True(t, ok)
	assert.Equal(t, models.Hands, slot)
	assert.Equal(t, models.HunterofGlacialForest, set)

	crit, ok := parse.ParseStat("暴击率+10%")
	require.True(t, ok)
	assert.Equal(t, models.CRITRate, crit.Name)
	assert.InDelta(t, 0.10, crit.Value, 1e-12)

	hp, ok := parse.ParseStat("生命值+4,123")
	require.True(t, ok)
	assert.Equal(t, models.HP, hp.Name)
	assert.InDelta(t, 4123.0, hp.Value, 1e-12)

	r := &models.Relic{
		SetName:  set,
		Slot:     slot,
		Star:     5,
		Level:    15,
		MainStat: hp,
		SubStat1: &crit,
	}
	identity.AssignTokenAndLock(r, map[string]models.Lock{}, nil)

	assert.Len(t, r.Token, 16)
	assert.False(t, r.Locked)
	assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}
