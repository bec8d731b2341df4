package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"relic-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "relic-manager",
	Short: "Relic Manager Service",
	Long: `Relic Manager turns OCR'd relic scans into structured relics,
keeps their lock state across scans and exports the inventory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Commands receive a context cancelled on
// interrupt, so long storage and database calls stop with the process.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	// Console encoding at debug level gives readable CLI errors.
	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	l.Error("command failed", zap.Error(err))
	_ = l.Sync()
	os.Exit(1)
}
