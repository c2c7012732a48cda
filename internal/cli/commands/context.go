package commands

import (
	"context"
	"os"

	"github.com/vvsql/vvsql/internal/cli/output"
	"github.com/vvsql/vvsql/internal/vconfig"
	_ "github.com/vvsql/vvsql/pkg/adapters/duckdb" // registers the "duckdb" adapter factory
	"github.com/vvsql/vvsql/pkg/tableio"
)

// CommandContext bundles the state every subcommand needs: the loaded
// config, an output renderer, and the adapter registry. Grounded on the
// teacher's internal/cli/commands/setup.go CommandContext, trimmed to drop
// the engine field vvsql has no equivalent of.
type CommandContext struct {
	Cfg      *vconfig.Config
	Renderer *output.Renderer
	Registry *tableio.Registry
}

type contextKey struct{}

// WithCommandContext attaches cc to ctx for subcommands to retrieve via
// FromContext.
func WithCommandContext(ctx context.Context, cc *CommandContext) context.Context {
	return context.WithValue(ctx, contextKey{}, cc)
}

// FromContext retrieves the CommandContext attached by the root command's
// PersistentPreRunE, falling back to defaults if run standalone (e.g. in a
// test that skips root.go's setup).
func FromContext(ctx context.Context) *CommandContext {
	if cc, ok := ctx.Value(contextKey{}).(*CommandContext); ok {
		return cc
	}
	adapter, err := tableio.New("duckdb")
	if err != nil {
		// The blank import above always registers "duckdb"; this only
		// trips if that import is ever removed.
		panic(err)
	}
	return &CommandContext{
		Cfg:      vconfig.Defaults(),
		Renderer: output.New(os.Stdout, "human"),
		Registry: tableio.NewRegistry(adapter),
	}
}

// Reader returns the connection URI a command should use: the --reader
// flag value if the caller passed one, else the config default.
func (cc *CommandContext) Reader(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cc.Cfg.Reader != "" {
		return cc.Cfg.Reader
	}
	return "duckdb://memory"
}
