package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gtasync/internal/errs"
	"gtasync/internal/ports"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Print recent sync audit log entries",
	RunE: withApp(func(cmd *cobra.Command, deps appDeps) error {
		limit, _ := cmd.Flags().GetInt("limit")
		session, _ := cmd.Flags().GetString("session")

		entries, err := deps.SyncLog.ListRecent(cmd.Context(), ports.SyncLogFilter{
			SessionID: session,
			Limit:     limit,
		})
		if err != nil {
			return errs.Wrap(err, "list sync log entries")
		}

		for _, entry := range entries {
			id := "-"
			if entry.InterventionID != nil {
				id = fmt.Sprintf("%d", *entry.InterventionID)
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s %-7s %-13s %s id=%s\n",
				entry.Timestamp.UTC().Format(time.RFC3339),
				entry.SessionID, entry.Level, entry.SourceFunction, entry.Message, id); err != nil {
				return errs.Wrap(err, "write log output")
			}
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.Flags().Int("limit", 50, "Maximum entries to print")
	logCmd.Flags().String("session", "", "Only entries of this session")
}
