package relic

import "relic-manager/feature/relic/classify"

// Config holds relic scanning settings.
type Config struct {
	// Classify configures piece name correction.
	Classify classify.Config `mapstructure:"classify"`
	// ExportDir is where the scan command writes spreadsheets by default.
	ExportDir string `mapstructure:"export_dir" default:"exports"`
}
