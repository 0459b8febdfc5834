// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/locgraft/internal/apply"
	"github.com/pdiddy/locgraft/internal/history"
	"github.com/pdiddy/locgraft/pkg/types"
)

const applyUsage = "Usage: locgraft apply <backup_file> <target_file> <start_line> <end_line>"

var errUsage = errors.New("expected 4 arguments")

var applyCmd = &cobra.Command{
	Use:   "apply <backup_file> <target_file> <start_line> <end_line>",
	Short: "Graft converted lines from a backup dump into a target dump",
	Long: `Apply reads every line of backup_file and target_file. For each line in the
1-based inclusive range [start_line, end_line], a backup line that holds a
string value not yet in doubled-quote form is converted (bracket glyphs
removed, action markup kept, value wrapped in "") and replaces the target
line at the same position. Other target lines are left alone.

end_line may exceed the file length. The target file is overwritten in full;
keep a separate backup.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 4 {
			fmt.Fprintln(cmd.OutOrStdout(), applyUsage)
			return errUsage
		}
		return nil
	},
	RunE: runApply,
}

func runApply(cmd *cobra.Command, args []string) error {
	r, err := parseRange(args[2], args[3])
	if err != nil {
		return err
	}

	cfg := types.ApplyConfig{
		SourcePath: args[0],
		TargetPath: args[1],
		Range:      r,
		DryRun:     viper.GetBool("apply.dry_run"),
		Verbose:    viper.GetBool("apply.verbose"),
	}

	ctx := context.Background()
	sum, err := apply.Files(ctx, cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	recordRun(ctx, cfg, sum)
	return nil
}

// parseRange converts the positional line arguments into a LineRange.
func parseRange(start, end string) (types.LineRange, error) {
	s, err := strconv.Atoi(start)
	if err != nil {
		return types.LineRange{}, fmt.Errorf("invalid start_line %q: %w", start, err)
	}
	e, err := strconv.Atoi(end)
	if err != nil {
		return types.LineRange{}, fmt.Errorf("invalid end_line %q: %w", end, err)
	}
	return types.LineRange{Start: s, End: e}, nil
}

// recordRun appends the run to the history database when one is
// configured. The target has already been written, so failures only warn.
func recordRun(ctx context.Context, cfg types.ApplyConfig, sum apply.Summary) {
	hc := historyConfig()
	if !hc.Enabled() {
		return
	}
	store, err := history.Open(hc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open history: %v\n", err)
		return
	}
	defer store.Close()

	_, err = store.Record(ctx, history.Run{
		Source:     cfg.SourcePath,
		Target:     cfg.TargetPath,
		Start:      cfg.Range.Start,
		End:        cfg.Range.End,
		Considered: sum.Considered,
		Converted:  sum.Converted,
		DryRun:     cfg.DryRun,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
	}
}

func init() {
	applyCmd.Flags().Bool("dry-run", false, "print the changes without writing the target file")
	applyCmd.Flags().BoolP("verbose", "v", false, "print a status line for every line in the range")
	_ = viper.BindPFlag("apply.dry_run", applyCmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("apply.verbose", applyCmd.Flags().Lookup("verbose"))

	rootCmd.AddCommand(applyCmd)
}
