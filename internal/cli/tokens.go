package cli

import (
	"fmt"

	"github.com/shapestone/shape-reqline/pkg/reqline"
	"github.com/spf13/cobra"
)

func newTokensCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <request-line>",
		Short: "Print the token stream of a request line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := resolveConfig(cmd, opts); err != nil {
				return err
			}
			tokens, err := reqline.Tokenize(args[0])
			for _, t := range tokens {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-8s %q\n", t.Offset, t.Kind, t.Value)
			}
			if err != nil {
				return &exitError{code: ExitParseError, msg: err.Error()}
			}
			return nil
		},
	}
}
