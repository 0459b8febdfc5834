// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/locgraft/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded apply runs",
	Long: `History lists apply runs recorded in the SQLite database named by --history,
LOCGRAFT_HISTORY_DB_PATH, or history.db_path in the config file. Newest runs
come first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		hc := historyConfig()
		if !hc.Enabled() {
			return fmt.Errorf("no history database: set --history or history.db_path")
		}

		store, err := history.Open(hc)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.List(context.Background(), viper.GetInt("history.limit"))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, "No runs recorded.")
			return nil
		}
		renderRuns(out, runs)
		return nil
	},
}

func renderRuns(w io.Writer, runs []history.Run) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Applied", "Target", "Lines", "Considered", "Converted", "Dry Run"})
	table.SetBorder(true)
	for _, r := range runs {
		dry := ""
		if r.DryRun {
			dry = "yes"
		}
		table.Append([]string{
			strconv.FormatInt(r.ID, 10),
			r.AppliedAt.Local().Format(time.DateTime),
			r.Target,
			fmt.Sprintf("%d-%d", r.Start, r.End),
			strconv.Itoa(r.Considered),
			strconv.Itoa(r.Converted),
			dry,
		})
	}
	table.Render()
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	_ = viper.BindPFlag("history.limit", historyCmd.Flags().Lookup("limit"))

	rootCmd.AddCommand(historyCmd)
}
