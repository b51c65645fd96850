package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"gtasync/internal/errs"
)

// The settings commands are the external configuration surface of the
// engine: the sync run itself only ever reads these keys.
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and change engine settings (APIKey, PageSize, SyncEnabled, LastSyncDate)",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting value",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, deps appDeps) error {
		key := cmd.Flags().Args()[0]

		value, found, err := deps.Settings.Get(cmd.Context(), key)
		if err != nil {
			return errs.Wrap(err, "get setting")
		}
		if !found {
			return fmt.Errorf("setting %q is not set", key)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
		return errs.Wrap(err, "write setting value")
	}),
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one setting value",
	Args:  cobra.ExactArgs(2),
	RunE: withApp(func(cmd *cobra.Command, deps appDeps) error {
		key, value := cmd.Flags().Args()[0], cmd.Flags().Args()[1]
		if err := deps.Settings.Set(cmd.Context(), key, value); err != nil {
			return errs.Wrap(err, "set setting")
		}

		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, value)
		return errs.Wrap(err, "write settings output")
	}),
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all settings",
	RunE: withApp(func(cmd *cobra.Command, deps appDeps) error {
		all, err := deps.Settings.All(cmd.Context())
		if err != nil {
			return errs.Wrap(err, "list settings")
		}

		keys := make([]string, 0, len(all))
		for key := range all {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, all[key]); err != nil {
				return errs.Wrap(err, "write settings output")
			}
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsListCmd)
}
