package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"similar_groups/internal/application"
	"similar_groups/internal/config"
	"similar_groups/pkg/contextx"
	"similar_groups/pkg/logx"
)

var (
	filePath    string //nolint:gochecknoglobals
	storeDriver string //nolint:gochecknoglobals
)

//nolint:gochecknoglobals
var rootCmd = &cobra.Command{
	Use:   "importer",
	Short: "Import the similar group reference table into a persistent store",
	Long: `Reads a CSV or XLSX reference file and inserts its rows into the
configured store. Rows already present are skipped, so the import can be
repeated safely.

Connection settings come from the same environment variables as the server.`,
	SilenceUsage: true,
	RunE:         runImport,
}

//nolint:gochecknoinits
func init() {
	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "reference file, defaults to REFDATA_PATH")
	rootCmd.Flags().StringVarP(&storeDriver, "store", "s", "", "store driver (postgres|sqlite), defaults to STORE_DRIVER")
}

func runImport(cmd *cobra.Command, _ []string) error {
	if filePath != "" {
		if err := os.Setenv("REFDATA_PATH", filePath); err != nil {
			return fmt.Errorf("os.Setenv: %w", err)
		}
	}

	if storeDriver != "" {
		if err := os.Setenv("STORE_DRIVER", storeDriver); err != nil {
			return fmt.Errorf("os.Setenv: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	if cfg.Store.Driver == config.StoreMemory {
		return fmt.Errorf("store driver %q does not persist, use postgres or sqlite", cfg.Store.Driver)
	}

	log := logx.NewLogger(cmd.ErrOrStderr(), cfg.App.LogLevel)
	ctx := contextx.WithLogger(cmd.Context(), log)

	result, err := application.ImportReference(ctx, cfg, cfg.RefData.Path)
	if err != nil {
		return fmt.Errorf("application.ImportReference: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "rows: %d, inserted: %d, skipped: %d, total: %d\n",
		result.Rows, result.Inserted, result.Skipped, result.Total)

	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("import failed", logx.Error(err))
		cancel()
		os.Exit(1) //nolint:gocritic
	}
}
