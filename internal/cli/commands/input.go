// Package commands implements vvsql's CLI subcommands: parse, exec, run,
// validate, version, and serve. One file per subcommand, grounded on the
// teacher's internal/cli/commands/*.go layout.
package commands

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// resolveQuery returns the query text from args[0], or from stdin when
// piped, matching the teacher's query.go input-resolution order (explicit
// argument, then stdin) minus its interactive REPL fallback — vvsql has no
// REPL.
func resolveQuery(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if !isTerminal(os.Stdin) {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		return string(content), nil
	}
	return "", errNoQuery
}

var errNoQuery = errors.New("no query given: pass it as an argument or pipe it on stdin")

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
