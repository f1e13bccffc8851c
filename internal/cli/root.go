// Package cli implements the reqline command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/shapestone/shape-reqline/internal/config"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

type options struct {
	configPath string
	format     string
	noColor    bool
	trace      bool
	curl       bool
}

// NewRootCommand builds the reqline command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "reqline",
		Short: "Parse HTTP-style request lines.",
		Long: `reqline parses request lines such as "GET /home/ HTTP/1.1" into
method, target, protocol and version, and explains why a line is rejected.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: .reqline.yaml in the working directory)")
	flags.StringVarP(&opts.format, "format", "f", "", "output format: text, json or yaml")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newParseCmd(opts))
	rootCmd.AddCommand(newValidateCmd(opts))
	rootCmd.AddCommand(newTokensCmd(opts))
	rootCmd.AddCommand(newBenchCmd(opts))
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(v, bt string, args []string, stdout, stderr io.Writer) int {
	version = v
	buildTime = bt

	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.msg != "" {
			fmt.Fprintln(stderr, "Error:", ee.msg)
		}
		return ee.code
	}
	fmt.Fprintln(stderr, "Error:", err)
	return ExitUsageError
}

// resolveConfig merges the config file with command-line flags. Flags win.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, &exitError{code: ExitConfigError, msg: err.Error()}
	}

	if cmd.Flags().Changed("format") {
		cfg.Format = opts.format
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = config.BoolPtr(opts.noColor)
	}
	if f := cmd.Flags().Lookup("trace"); f != nil && f.Changed {
		cfg.Trace = config.BoolPtr(opts.trace)
	}
	if err := cfg.Validate(); err != nil {
		return nil, &exitError{code: ExitUsageError, msg: err.Error()}
	}

	if cfg.GetNoColor() {
		color.NoColor = true
	}
	return cfg, nil
}
