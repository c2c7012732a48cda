package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvsql/vvsql/pkg/vizql"
)

// NewValidateCommand builds "vvsql validate", which reports whether a query
// splits and compiles cleanly without executing anything.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [query]",
		Short: "Check a query's visualization portion for errors",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := resolveQuery(cmd, args)
			if err != nil {
				return err
			}

			result, err := vizql.Parse(query)
			if err != nil {
				return err
			}

			cc := FromContext(cmd.Context())
			if len(result.Specs) == 0 {
				fmt.Fprintln(cc.Renderer.Out, "OK (no VISUALISE clause)")
				return nil
			}
			fmt.Fprintf(cc.Renderer.Out, "OK (%d visualization spec(s))\n", len(result.Specs))
			return nil
		},
	}
}
