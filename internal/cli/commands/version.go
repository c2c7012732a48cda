package commands

import (
	"github.com/spf13/cobra"
)

// NewVersionCommand builds "vvsql version".
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print vvsql's version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := FromContext(cmd.Context())
			return cc.Renderer.Value(map[string]any{
				"version":  version,
				"features": []string{"duckdb", "postgres", "fileset", "vegalite"},
			})
		},
	}
}
