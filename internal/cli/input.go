package cli

import (
	"bufio"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// collectLines returns the request lines to process: the arguments verbatim,
// or each non-empty stdin line with its line ending normalized to CRLF.
func collectLines(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return nil, &exitError{code: ExitUsageError, msg: "no request lines given (pass arguments or pipe lines on stdin)"}
	}

	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line+"\r\n")
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, &exitError{code: ExitUsageError, msg: "no request lines given (pass arguments or pipe lines on stdin)"}
	}
	return lines, nil
}
