// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/quarantine-tools/internal/confirm"
	"github.com/pdiddy/quarantine-tools/internal/extract"
	"github.com/pdiddy/quarantine-tools/internal/scaffold"
	"github.com/pdiddy/quarantine-tools/internal/secrets"
	"github.com/pdiddy/quarantine-tools/pkg/types"
)

// envKeyReplacer maps flag-style keys (unzip-bin) to env names (NESTED_UNZIP_UNZIP_BIN).
var envKeyReplacer = strings.NewReplacer("-", "_")

var errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()

// options is everything one invocation needs, gathered from flags, env,
// config, and secrets.
type options struct {
	create    bool
	assumeYes bool
	scaffold  types.ScaffoldConfig
	unzip     types.UnzipConfig
}

func runRoot(cmd *cobra.Command, args []string) error {
	fs := afero.NewOsFs()
	opts, err := optionsFromFlags(cmd, args, fs)
	if err != nil {
		return err
	}
	return run(cmd.Context(), opts, fs, runtime.GOOS, os.Stdin, cmd.OutOrStdout())
}

func optionsFromFlags(cmd *cobra.Command, args []string, fs afero.Fs) (options, error) {
	create, _ := cmd.Flags().GetBool("create")
	folder, _ := cmd.Flags().GetString("folder")
	remove, _ := cmd.Flags().GetBool("remove")
	assumeYes, _ := cmd.Flags().GetBool("yes")

	password, err := resolvePassword(cmd, fs)
	if err != nil {
		return options{}, err
	}

	return options{
		create:    create,
		assumeYes: assumeYes,
		scaffold: types.ScaffoldConfig{
			Base:  scaffold.DefaultBase,
			Names: args,
		},
		unzip: types.UnzipConfig{
			Folder:     folder,
			Password:   password,
			Remove:     remove,
			Strategy:   types.StrategyKind(viper.GetString("strategy")),
			UnzipBin:   viper.GetString("unzip-bin"),
			ReportPath: viper.GetString("report"),
		},
	}, nil
}

// resolvePassword picks the archive password: --password, then
// NESTED_UNZIP_PASSWORD or the config file, then .secrets/zip-password, then
// the built-in default.
func resolvePassword(cmd *cobra.Command, fs afero.Fs) (string, error) {
	if cmd.Flags().Changed("password") {
		return cmd.Flags().GetString("password")
	}
	if viper.IsSet("password") {
		return viper.GetString("password"), nil
	}
	v, ok, err := secrets.Lookup(fs, secrets.DefaultDir, secrets.KeyZipPassword)
	if err != nil {
		return "", err
	}
	if ok {
		return v, nil
	}
	return types.DefaultPassword, nil
}

// run dispatches to scaffolding or extraction. --create wins over every
// other flag.
func run(ctx context.Context, opts options, fs afero.Fs, goos string, in io.Reader, out io.Writer) error {
	if opts.create {
		return scaffold.Create(fs, opts.scaffold, out)
	}
	if len(opts.scaffold.Names) > 0 {
		return fmt.Errorf("unexpected arguments %v: subfolder names are only accepted with --create", opts.scaffold.Names)
	}
	if opts.unzip.Folder == "" {
		fmt.Fprintln(out, errorLabel("Error:"), "Please specify a folder with -f or use -c to create a Quarantine folder.")
		return nil
	}

	strategy, err := extract.Select(opts.unzip.Strategy, goos, fs, opts.unzip.UnzipBin)
	if err != nil {
		return err
	}

	var c confirm.Confirmer = confirm.NewPrompt(in, out)
	if opts.assumeYes {
		c = confirm.Fixed(true)
	}

	r := &extract.Runner{Fs: fs, Strategy: strategy, Confirm: c, Out: out}
	_, err = r.Run(ctx, opts.unzip)
	return err
}
