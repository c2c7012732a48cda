// Package cli provides the command-line interface for vvsql.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvsql/vvsql/internal/cli/commands"
	"github.com/vvsql/vvsql/internal/cli/output"
	"github.com/vvsql/vvsql/internal/vconfig"
	"github.com/vvsql/vvsql/pkg/adapters/duckdb"
	"github.com/vvsql/vvsql/pkg/adapters/fileset"
	_ "github.com/vvsql/vvsql/pkg/adapters/postgres" // registers the "postgres" adapter factory
	"github.com/vvsql/vvsql/pkg/tableio"
	"github.com/vvsql/vvsql/pkg/vizql"
)

var cfgFile string

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "vvsql",
		Short:   "vvsql - SQL with a declarative visualization sub-language",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			cfg, err := vconfig.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logLevel := slog.LevelInfo
			if cfg.Verbose {
				logLevel = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

			duckdbAdapter, err := tableio.New("duckdb")
			if err != nil {
				return err
			}
			postgresAdapter, err := tableio.New("postgres")
			if err != nil {
				return err
			}

			if cfg.Preload != "" {
				concrete, ok := duckdbAdapter.(*duckdb.Adapter)
				if !ok {
					return fmt.Errorf("--preload requires the duckdb adapter")
				}
				reader := cfg.Reader
				if reader == "" {
					reader = vizql.DefaultReader
				}
				if err := fileset.PreloadDir(cmd.Context(), fileset.NewPreloader(concrete), reader, cfg.Preload); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if path := cmd.Flag("output").Value.String(); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("open --output file: %w", err)
				}
				out = f
			}

			cc := &commands.CommandContext{
				Cfg:      cfg,
				Renderer: output.New(out, cfg.OutputFormat),
				Registry: tableio.NewRegistry(duckdbAdapter, postgresAdapter),
			}
			cmd.SetContext(commands.WithCommandContext(cmd.Context(), cc))

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./vvsql.yaml)")
	rootCmd.PersistentFlags().String("reader", "", "default data source connection URI (default: duckdb://memory)")
	rootCmd.PersistentFlags().String("writer", "", "output writer (default: vegalite)")
	rootCmd.PersistentFlags().StringP("output", "", "", "write result to a file instead of stdout")
	rootCmd.PersistentFlags().String("format", "", "output format: json|human")
	rootCmd.PersistentFlags().String("preload", "", "directory of CSV/Parquet/JSON files to preload as tables (file stem becomes table name)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewExecCommand())
	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewServeCommand())

	return rootCmd
}

// Execute runs the root command and returns the process exit code:
// 0 success, 1 any core/adapter error, 2 invalid invocation.
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if isUsageError(err) {
			return 2
		}
		return 1
	}
	return 0
}

// isUsageError reports whether err originated from cobra's own argument
// validation (unknown command, wrong arg count) rather than from a
// command's RunE. cobra doesn't tag these distinctly, so this matches its
// own error message prefixes.
func isUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{"unknown command", "unknown flag", "unknown shorthand flag", "requires at least", "accepts at most", "accepts between"} {
		if strings.Contains(msg, prefix) {
			return true
		}
	}
	return false
}
