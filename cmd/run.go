package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"gtasync/internal/bootstrap/logging"
	"gtasync/internal/errs"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one synchronization against the remote API",
	RunE: withApp(func(cmd *cobra.Command, deps appDeps) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		pageSize, _ := cmd.Flags().GetInt("page-size")

		summary, err := deps.Sync.RunSync(ctx, pageSize)
		if err != nil {
			return errs.Wrap(err, "run sync")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(),
			"sync completed: processed=%d inserted=%d updated=%d skipped=%d failed=%d elapsed=%.2fs\n",
			summary.RecordsProcessed, summary.Inserted, summary.Updated,
			summary.Skipped, summary.Failed, summary.ElapsedSeconds); err != nil {
			return errs.Wrap(err, "write run output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Int("page-size", 0, "Records to fetch (0 uses the PageSize setting, out-of-range values fall back to 50)")
}
