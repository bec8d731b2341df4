package relic

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"relic-manager/feature/relic/models"

	"github.com/xuri/excelize/v2"
)

const inventorySheet = "Relics"

var inventoryHeaders = []string{
	"Token", "Set", "Slot", "Star", "Level", "Main Stat",
	"Sub Stat 1", "Sub Stat 2", "Sub Stat 3", "Sub Stat 4",
	"Equip", "Locked",
}

// ExportXLSX writes relics as an inventory sheet to path, creating parent
// directories as needed.
func ExportXLSX(path string, relics []*models.Relic) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	f, err := buildInventory(relics)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// WriteXLSX writes relics as an inventory workbook to w.
func WriteXLSX(w io.Writer, relics []*models.Relic) error {
	f, err := buildInventory(relics)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func buildInventory(relics []*models.Relic) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", inventorySheet); err != nil {
		f.Close()
		return nil, err
	}

	for i, h := range inventoryHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(inventorySheet, cell, h); err != nil {
			f.Close()
			return nil, err
		}
	}

	headerStyleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(inventoryHeaders), 1)
	if err := f.SetCellStyle(inventorySheet, "A1", lastHeader, headerStyleID); err != nil {
		f.Close()
		return nil, err
	}

	for i, r := range relics {
		row := []any{
			r.Token,
			r.SetName.String(),
			r.Slot.String(),
			r.Star,
			r.Level,
			r.MainStat.String(),
		}
		for _, sub := range r.SubStats() {
			if sub == nil {
				row = append(row, "")
				continue
			}
			row = append(row, sub.String())
		}
		row = append(row, r.EquipName(), r.Locked)

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(inventorySheet, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := f.SetPanes(inventorySheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}
