package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"relic-manager/core/reconcile"
	"relic-manager/feature/lock"
	"relic-manager/feature/relic"
	"relic-manager/feature/relic/classify"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	scanInput  string
	scanOut    string
	scanXLSX   string
	scanRecord bool
	scanPrune  bool
	scanDryRun bool
	yesConfirm bool
)

// scanCmd parses a file of raw OCR scans and reconciles it with the lock store.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Parse raw relic scans and reconcile them with stored locks",
	Long: `Parse a JSON file of raw OCR relic scans into relics, assign tokens and
lock state, and report how the scan differs from the lock store.

The input is either an array of scans or an object with a "scans" array:
  [{"name": "雪猎的巨蜥手套", "main_stat": "攻击力+352", "sub_stats": ["暴击率+3.24%"], "star": 5, "level": 15}]

Examples:
  # Report only
  scan --input scans.json

  # Write parsed relics and a spreadsheet
  scan --input scans.json --out relics.json --xlsx

  # Record new relics in the lock store (interactive confirmation)
  scan --input scans.json --record

  # Record new relics and prune stale locks without prompting
  scan --input scans.json --record --prune --yes`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanInput, "input", "i", "", "JSON file of raw scans (required)")
	scanCmd.Flags().StringVarP(&scanOut, "out", "o", "", "Write the parsed relics as JSON to this file")
	scanCmd.Flags().StringVar(&scanXLSX, "xlsx", "", "Write the inventory spreadsheet to this file")
	scanCmd.Flags().Lookup("xlsx").NoOptDefVal = "auto"
	scanCmd.Flags().BoolVar(&scanRecord, "record", false, "Record locks for relics not in the lock store")
	scanCmd.Flags().BoolVar(&scanPrune, "prune", false, "Delete locks for relics missing from this scan")
	scanCmd.Flags().BoolVar(&scanDryRun, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	scanCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm lock store changes (non-interactive)")
	_ = scanCmd.MarkFlagRequired("input")

	RootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	scans, err := readScans(scanInput)
	if err != nil {
		return err
	}
	l.Info("Scans loaded", zap.String("input", scanInput), zap.Int("count", len(scans)))

	classifier, err := classify.NewClassifier(cfg.Relic.Classify, l)
	if err != nil {
		return err
	}

	locks, err := openLocks(cfg.Database, l)
	if err != nil {
		return err
	}
	svc := relic.NewService(
		relic.NewAssembler(classifier, l),
		locks.Service(),
		lock.NewReconcileStore(locks.Service()),
		l,
	)

	opts := reconcile.ReconcileOptions{
		DoRecord: scanRecord,
		DoPrune:  scanPrune,
		DryRun:   scanDryRun,
	}

	report, err := svc.Scan(ctx, scans, opts)
	if err != nil {
		return fmt.Errorf("failed to scan: %w", err)
	}

	for _, s := range report.Skipped {
		l.Warn("Scan skipped", zap.Int("index", s.Index), zap.String("name", s.Name), zap.String("reason", s.Reason))
	}
	printScanReport(l, report.Plan)

	if err := writeOutputs(cfg.Relic.ExportDir, report); err != nil {
		return err
	}
	l.Info("Relics written", zap.Int("relics", len(report.Relics)))

	if !scanRecord && !scanPrune {
		l.Info("No actions requested. Use --record to store new relics or --prune to drop stale locks.")
		return nil
	}
	if scanDryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if len(report.Plan.Actions) == 0 {
		l.Info("No actions required based on current flags.")
		return nil
	}

	if !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}
	opts.Confirmed = true

	l.Info("Applying actions...")
	executed, err := svc.Apply(ctx, report, opts)
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}
	l.Info("Successfully executed actions", zap.Int("count", executed))
	return nil
}

// readScans decodes a scan file holding either a bare array or {"scans": [...]}.
func readScans(path string) ([]relic.RawScan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scans: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var wrapped relic.ScanRequest
		if err := sonic.UnmarshalString(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		return wrapped.Scans, nil
	}

	var scans []relic.RawScan
	if err := sonic.UnmarshalString(trimmed, &scans); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return scans, nil
}

// writeOutputs writes the JSON and spreadsheet outputs requested by flags.
func writeOutputs(exportDir string, report *relic.ScanReport) error {
	if scanOut != "" {
		data, err := sonic.ConfigStd.MarshalIndent(report.Relics, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode relics: %w", err)
		}
		if err := os.WriteFile(scanOut, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", scanOut, err)
		}
	}

	if scanXLSX != "" {
		path := scanXLSX
		if path == "auto" {
			path = filepath.Join(exportDir, "relics-"+time.Now().Format("20060102-150405")+".xlsx")
		}
		if err := relic.ExportXLSX(path, report.Relics); err != nil {
			return err
		}
	}
	return nil
}

// printScanReport prints the reconciliation summary using logger.
func printScanReport(l *zap.Logger, plan *reconcile.ReconcilePlan) {
	if plan == nil {
		return
	}
	s := plan.Summary

	l.Info("Reconciliation report",
		zap.Int("total_items", s.TotalItems),
		zap.Int("new_relics", s.NewRelics),
		zap.Int("stale_locks", s.StaleLocks),
		zap.Int("locked_relics", s.LockedRelics),
		zap.Int("duplicate_tokens", s.DuplicateTokens),
	)
	if len(plan.Actions) == 0 {
		return
	}

	l.Info("Planned actions",
		zap.Int("record_actions", s.RecordActions),
		zap.Int("prune_actions", s.PruneActions),
		zap.Int("total_actions", len(plan.Actions)),
	)

	maxShow := min(5, len(plan.Actions))
	for _, action := range plan.Actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm lock store changes: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
