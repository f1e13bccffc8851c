package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/shapestone/shape-reqline/internal/fastparser"
	"github.com/spf13/cobra"
)

func newParseCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [request-line...]",
		Short: "Parse request lines and print their fields",
		Long: `Parse each argument as a request line. With no arguments, each non-empty
line of stdin is parsed with CRLF appended.

Examples:
  reqline parse "GET /home/ HTTP/1.1"
  printf 'GET / HTTP/1.1\nPOST /x HTTP/1.0\n' | reqline parse -f json
  reqline parse --curl "curl -X POST https://example.com/update/"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, opts, args)
		},
	}
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "print the parser states visited for each line")
	cmd.Flags().BoolVar(&opts.curl, "curl", false, "treat each input as a curl command and parse its request line")
	return cmd
}

func runParse(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	lines, err := collectLines(cmd, args)
	if err != nil {
		return err
	}
	if opts.curl {
		if lines, err = curlLines(cmd, lines); err != nil {
			return err
		}
	}

	results := make([]lineResult, 0, len(lines))
	failed := 0
	for _, line := range lines {
		r := parseLine(line, cfg.GetTrace())
		if !r.OK {
			failed++
		}
		results = append(results, r)
	}

	if err := writeResults(cmd.OutOrStdout(), cfg.Format, results); err != nil {
		return err
	}
	if failed > 0 {
		return &exitError{code: ExitParseError, msg: fmt.Sprintf("%d of %d lines rejected", failed, len(lines))}
	}
	return nil
}

// curlLines replaces each curl command with the request line it would send.
func curlLines(cmd *cobra.Command, cmds []string) ([]string, error) {
	warn := color.New(color.FgYellow)
	lines := make([]string, 0, len(cmds))
	for _, c := range cmds {
		cl, err := fastparser.FromCurl(strings.TrimRight(c, "\r\n"))
		if err != nil {
			return nil, &exitError{code: ExitParseError, msg: err.Error()}
		}
		for _, w := range cl.Warnings {
			warn.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
		}
		lines = append(lines, cl.Line)
	}
	return lines, nil
}
