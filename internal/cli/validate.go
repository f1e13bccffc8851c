package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/shapestone/shape-reqline/pkg/reqline"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [request-line...]",
		Short: "Check request lines for syntax errors",
		Long: `Check request lines for syntax errors without printing their fields.

Examples:
  reqline validate "GET /home/ HTTP/1.1"
  reqline validate < lines.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := resolveConfig(cmd, opts); err != nil {
				return err
			}
			lines, err := collectLines(cmd, args)
			if err != nil {
				return err
			}

			hasErrors := false
			for _, line := range lines {
				if err := reqline.Validate(line); err != nil {
					color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "Error: %q: %v\n", line, err)
					hasErrors = true
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "Valid: %q\n", line)
				}
			}

			if hasErrors {
				return &exitError{code: ExitParseError, msg: "validation failed"}
			}
			return nil
		},
	}
}
