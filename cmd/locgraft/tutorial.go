// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/pdiddy/locgraft/internal/tutorial"
)

var tutorialCmd = &cobra.Command{
	Use:   "tutorial",
	Short: "Reference translations for the tutorial section",
	Long: `Tutorial loads the fixed English to Japanese dictionary for the tutorial
entries and reports how many entries it holds. Use subcommands to print,
look up, or export the entries.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, tutorial.Summary())
		fmt.Fprintln(out, "Run with actual translation logic if needed")
	},
}

var tutorialListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all tutorial entries as a table",
	Run: func(cmd *cobra.Command, args []string) {
		renderEntries(cmd.OutOrStdout(), tutorial.Entries())
	},
}

var tutorialShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one tutorial entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid entry id %q: %w", args[0], err)
		}
		e, ok := tutorial.Lookup(id)
		if !ok {
			lo, hi := tutorial.Bounds()
			return fmt.Errorf("no tutorial entry %d (entries are %d-%d)", id, lo, hi)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Entry %d\n", e.ID)
		fmt.Fprintf(out, "  en: %s\n", e.English)
		fmt.Fprintf(out, "  ja: %s\n", e.Japanese)
		return nil
	},
}

var tutorialExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the tutorial dictionary to YAML or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		if output == "" {
			return tutorial.Export(cmd.OutOrStdout(), tutorial.Format(format))
		}

		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", output, err)
		}
		if err := tutorial.Export(f, tutorial.Format(format)); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", tutorial.Count(), output)
		return nil
	},
}

func renderEntries(w io.Writer, entries []tutorial.Entry) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "English", "Japanese"})
	table.SetBorder(true)
	table.SetAutoWrapText(true)
	table.SetRowLine(true)
	for _, e := range entries {
		table.Append([]string{strconv.Itoa(e.ID), e.English, e.Japanese})
	}
	table.Render()
}

func init() {
	tutorialExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	tutorialExportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")

	tutorialCmd.AddCommand(tutorialListCmd)
	tutorialCmd.AddCommand(tutorialShowCmd)
	tutorialCmd.AddCommand(tutorialExportCmd)

	rootCmd.AddCommand(tutorialCmd)
}
