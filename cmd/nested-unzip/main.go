// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the nested-unzip CLI. It extracts
// password-protected zip archives nested anywhere under a folder (such as
// Defender quarantine files pulled from an EDR system) or scaffolds an empty
// Quarantine folder layout.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the nested-unzip CLI.
var rootCmd = &cobra.Command{
	Use:   "nested-unzip [-f folder] [-p password] [-r] | -c [name ...]",
	Short: "Recursively unzip files in a directory",
	Long: `nested-unzip finds every .zip file beneath --folder and extracts each one
into its own directory using a single password (default "infected").

With --remove, archives that extracted successfully are deleted after you
confirm. With --create, nothing is extracted: a Quarantine folder is created
with Entries, Resources, and ResourceData subfolders, and any names given as
arguments are created under Resources and ResourceData.`,
	Example: `  nested-unzip -f Quarantine
  nested-unzip -f Quarantine -p superSecretPassw0rd -r
  nested-unzip -c 2E 57 61 97`,
	Version:      version,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Positional arguments are subfolder names for --create, so the root
	// command must not gain subcommands (cobra's help and completion included)
	// that would claim a name like "help" or "version".
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./nested-unzip.yaml or ~/.config/nested-unzip/config.yaml)")

	f := rootCmd.Flags()
	f.StringP("folder", "f", "", "target folder for zip extraction")
	f.StringP("password", "p", "", `password for zip files (default "infected")`)
	f.BoolP("remove", "r", false, "remove zip files after extraction (asks for confirmation)")
	f.BoolP("create", "c", false, "create a Quarantine folder; arguments name subfolders of Resources and ResourceData")
	f.BoolP("yes", "y", false, "answer yes to the removal question")
	f.String("strategy", "auto", "extraction strategy: auto, native, or library")
	f.String("unzip-bin", "unzip", "unzip executable used by the native strategy")
	f.String("report", "", "write a YAML run report to this file")

	for _, key := range []string{"strategy", "unzip-bin", "report"} {
		if err := viper.BindPFlag(key, f.Lookup(key)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("nested-unzip")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "nested-unzip"))
		}
	}

	viper.SetEnvPrefix("NESTED_UNZIP")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
