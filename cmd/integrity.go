package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"relic-manager/core/storage"
	"relic-manager/feature/icons"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the lock store and the icon catalogue",
	Long:  `Checks that the lock table has the expected schema and that every catalogue character has an icon in storage.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		if err := runLockIntegrity(cmd.Context(), false); err != nil {
			return err
		}
		return runIconIntegrity(cmd.Context())
	},
}

// locksIntegrityCmd represents the integrity locks command
var locksIntegrityCmd = &cobra.Command{
	Use:   "locks",
	Short: "Check the lock table schema and contents",
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return runLockIntegrity(cmd.Context(), jsonOutput)
	},
}

// iconsIntegrityCmd represents the integrity icons command
var iconsIntegrityCmd = &cobra.Command{
	Use:   "icons",
	Short: "Check equip icons in storage",
	Long:  `Lists catalogue characters without an icon and stored objects that match no character. With --fix, orphan objects are deleted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIconIntegrity(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(locksIntegrityCmd, iconsIntegrityCmd)

	locksIntegrityCmd.Flags().Bool("json", false, "Save the lock records as JSON")
	iconsIntegrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "Delete orphan icon objects")
}

func runLockIntegrity(ctx context.Context, jsonOutput bool) error {
	startTime := time.Now()

	cfg, logg, err := setup()
	if err != nil {
		return err
	}

	// openLocks migrates and verifies the schema.
	feat, err := openLocks(cfg.Database, logg)
	if err != nil {
		return fmt.Errorf("lock store check failed: %w", err)
	}

	records, err := feat.Service().List(ctx)
	if err != nil {
		return err
	}

	saved := 0
	for _, r := range records {
		if r.Save {
			saved++
		}
	}

	if jsonOutput {
		filename := fmt.Sprintf("integrity_locks_%d.json", time.Now().Unix())
		data, err := sonic.ConfigStd.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(filename, data, 0o644); err != nil {
			return fmt.Errorf("failed to save JSON file: %w", err)
		}
		logg.Info("Lock records saved", zap.String("file", filename))
	}

	fmt.Println("\n=== Lock Store Metrics ===")
	fmt.Printf("Total Locks: %d\n", len(records))
	fmt.Printf("Saved: %d\n", saved)
	fmt.Printf("Unsaved: %d\n", len(records)-saved)
	fmt.Printf("Execution Time: %s\n", time.Since(startTime).String())

	logg.Info("Lock integrity check completed",
		zap.Int("total", len(records)),
		zap.Int("saved", saved),
		zap.Duration("execution_time", time.Since(startTime)),
	)
	return nil
}

func runIconIntegrity(ctx context.Context) error {

	cfg, logg, err := setup()
	if err != nil {
		return err
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}
	cat := icons.NewCatalogue(client, cfg.Storage.Bucket, cfg.Icons, logg)

	logg.Info("Checking equip icons...", zap.String("bucket", cfg.Storage.Bucket), zap.String("prefix", cfg.Icons.Prefix))

	missing, err := cat.Missing(ctx)
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		logg.Info("Every character has an icon.")
	} else {
		logg.Warn("Missing icons detected", zap.Strings("missing", missing))
	}

	orphans, err := cat.Orphans(ctx)
	if err != nil {
		return err
	}
	if len(orphans) == 0 {
		logg.Info("No orphan icon objects.")
		return nil
	}

	logg.Warn("Orphan icon objects detected", zap.Strings("orphans", orphans))
	if !fixFlag {
		logg.Info("Run with --fix to delete orphan objects.")
		return nil
	}

	removed, err := cat.RemoveOrphans(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove orphans: %w", err)
	}
	logg.Info("Orphan icon objects removed", zap.Int("count", len(removed)))
	return nil
}
