package commands

import (
	"github.com/spf13/cobra"

	"github.com/vvsql/vvsql/pkg/vizql"
)

// NewRunCommand builds "vvsql run", which executes a query end to end and
// prints the emitted Vega-Lite document.
func NewRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run [query]",
		Short: "Run a query end to end and print its Vega-Lite document",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := resolveQuery(cmd, args)
			if err != nil {
				return err
			}

			cc := FromContext(cmd.Context())
			reader := cc.Reader(cmd.Flag("reader").Value.String())

			result, err := vizql.Run(cmd.Context(), cc.Registry, query, reader)
			if err != nil {
				return err
			}

			return cc.Renderer.Document(result.Result.Document)
		},
	}
}
