package commands

import (
	"github.com/spf13/cobra"

	"github.com/vvsql/vvsql/pkg/vizql"
)

// NewParseCommand builds "vvsql parse", which splits and compiles a query's
// visualization portion without touching any backend.
func NewParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [query]",
		Short: "Split and compile a query's SQL and visualization portions",
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
			return cc.Renderer.Value(parseView{
				SQLPortion: result.SQLPortion,
				VizPortion: result.VizPortion,
				Specs:      result.Specs,
			})
		},
	}
}

// parseView mirrors original_source's ParseResult JSON shape for the CLI's
// human/json renderer, reusing the compiled *vizmodel.VizSpec values as-is.
type parseView struct {
	SQLPortion string `json:"sql_portion"`
	VizPortion string `json:"viz_portion"`
	Specs      any    `json:"specs"`
}
