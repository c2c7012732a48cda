package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvsql/vvsql/pkg/split"
	"github.com/vvsql/vvsql/pkg/token"
	"github.com/vvsql/vvsql/pkg/vzerr"
)

// NewExecCommand builds "vvsql exec", which runs only a query's SQL data
// portion and prints the resulting table, ignoring any VISUALISE clause.
func NewExecCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec [query]",
		Short: "Execute a query's SQL portion and print the result table",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := resolveQuery(cmd, args)
			if err != nil {
				return err
			}

			res, err := split.Split(query)
			if err != nil {
				return err
			}
			if res.SQL == "" {
				return vzerr.Model(token.Position{}, "", "query has no SQL portion to execute")
			}

			cc := FromContext(cmd.Context())
			reader := cc.Reader(cmd.Flag("reader").Value.String())

			adapter := cc.Registry.Resolve(res.SQL, reader)
			if adapter == nil {
				return vzerr.Backend("", res.SQL, fmt.Errorf("no adapter supports reader %q", reader))
			}

			table, err := adapter.Execute(cmd.Context(), res.SQL, reader)
			if err != nil {
				return err
			}

			return cc.Renderer.Table(table)
		},
	}
	return cmd
}
