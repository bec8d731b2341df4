package relic_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"relic-manager/feature/relic"
	"relic-manager/feature/relic/identity"
	"relic-manager/feature/relic/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestExportXLSX(t *testing.T) {
	r, err := newAssembler(t, zap.NewNop()).Assemble(gloves())
	require.NoError(t, err)
	identity.AssignTokenAndLock(r, nil, zap.NewNop())
	r.SubStat3 = nil

	path := filepath.Join(t.TempDir(), "out", "relics.xlsx")
	require.NoError(t, relic.ExportXLSX(path, []*models.Relic{r}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Relics")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Token", rows[0][0])
	assert.Equal(t, "Locked", rows[0][11])

	assert.Equal(t, r.Token, rows[1][0])
	assert.Equal(t, "HunterofGlacialForest", rows[1][1])
	assert.Equal(t, "Hands", rows[1][2])
	assert.Equal(t, "5", rows[1][3])
	assert.Equal(t, "15", rows[1][4])
	assert.Equal(t, "", rows[1][8])
	assert.Equal(t, "希儿", rows[1][10])
	assert.Equal(t, "FALSE", rows[1][11])
}

func TestWriteXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, relic.WriteXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Relics")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
