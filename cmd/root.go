package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"collection-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir is where config.yaml and .env are looked up.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "collection-manager",
	Short: "Card collection manager",
	Long: `Collection Manager keeps card collection sheets in step with a Scryfall catalog snapshot.
It resolves legacy sheet rows to printings, follows retired identifiers, and merges,
diffs and stores collections.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Console format at debug level gives readable timestamps for a CLI
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "Directory holding config.yaml and .env")
}
