// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf-2-png CLI, which renders each
// page of a PDF to a PNG image using poppler's pdftoppm.
//
// pdftoppm must be installed: `brew install poppler` on macOS,
// `apt-get install poppler-utils` on Debian and Ubuntu.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/quarantine-tools/internal/pdfpng"
	"github.com/pdiddy/quarantine-tools/internal/toolexec"
	"github.com/pdiddy/quarantine-tools/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "pdf-2-png -i file.pdf -o folder [-r dpi]",
	Short: "Convert a PDF into PNG images",
	Long: `pdf-2-png renders every page of the input PDF into the output folder as
a PNG image, named by page number (1.png, 2.png, ... or 01.png, 02.png, ...
depending on the page count). The output folder is created if needed.`,
	Example: `  pdf-2-png -i filename.pdf -o pdf_images
  pdf-2-png -i filename.pdf -o pdf_images -r 800`,
	Version:      version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf-2-png.yaml or ~/.config/pdf-2-png/config.yaml)")

	f := rootCmd.Flags()
	f.StringP("input", "i", "", "input PDF file")
	f.StringP("output", "o", "", "output folder for PNGs")
	f.IntP("dpi", "r", types.DefaultDPI, "resolution of the output images")
	f.String("pdftoppm-bin", pdfpng.DefaultBin, "pdftoppm executable")
	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("output")

	for _, key := range []string{"dpi", "pdftoppm-bin"} {
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
		viper.SetConfigName("pdf-2-png")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf-2-png"))
		}
	}

	viper.SetEnvPrefix("PDF_2_PNG")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")

	cfg := types.RasterConfig{
		Input:       input,
		OutputDir:   output,
		DPI:         viper.GetInt("dpi"),
		PdftoppmBin: viper.GetString("pdftoppm-bin"),
	}

	r := pdfpng.New(cfg.PdftoppmBin, toolexec.Default, afero.NewOsFs())
	_, err := r.Convert(cmd.Context(), cfg, cmd.OutOrStdout())
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
