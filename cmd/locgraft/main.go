// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the locgraft CLI.
//
// locgraft grafts Japanese dialogue from a backup text dump into a
// structurally correct target dump, and prints the tutorial reference
// dictionary.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/locgraft/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the locgraft CLI.
var rootCmd = &cobra.Command{
	Use:   "locgraft",
	Short: "Graft Japanese dialogue into a game text dump",
	Long: `locgraft supports manual localization of a game's dialogue and tutorial
text export.

apply converts Japanese-bracketed strings from a backup dump into the engine's
doubled-quote form and writes them into the matching lines of a target dump.
tutorial prints the reference dictionary of tutorial translations.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./locgraft.yaml or ~/.config/locgraft/locgraft.yaml)")
	rootCmd.PersistentFlags().String("history", "", "SQLite file recording apply runs (empty disables history)")
	_ = viper.BindPFlag("history.db_path", rootCmd.PersistentFlags().Lookup("history"))

	viper.SetDefault("history.limit", 20)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("locgraft")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "locgraft"))
		}
	}

	viper.SetEnvPrefix("LOCGRAFT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// historyConfig returns the history settings resolved from flags, env and
// the config file.
func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		DBPath: viper.GetString("history.db_path"),
		Limit:  viper.GetInt("history.limit"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
