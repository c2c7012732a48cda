// Package vizql wires the vvSQL pipeline's stages — pkg/split,
// pkg/vizparser, a pkg/tableio.Adapter, and pkg/emitter — into the single
// Run/Parse operations spec.md §5 describes, grounded on
// original_source/src/rest.rs's query_handler/parse_handler request flow.
// internal/httpapi and internal/cli both call this package rather than
// wiring the stages themselves, so the two surfaces stay in lockstep.
package vizql

import (
	"context"
	"fmt"

	"github.com/vvsql/vvsql/pkg/emitter"
	"github.com/vvsql/vvsql/pkg/split"
	"github.com/vvsql/vvsql/pkg/tableio"
	"github.com/vvsql/vvsql/pkg/token"
	"github.com/vvsql/vvsql/pkg/vizmodel"
	"github.com/vvsql/vvsql/pkg/vizparser"
	"github.com/vvsql/vvsql/pkg/vzerr"
)

// DefaultReader is the connection URI used when a caller supplies none.
const DefaultReader = "duckdb://memory"

// ParseResult is the outcome of splitting and compiling a query without
// executing its data portion, mirroring original_source's ParseResult.
type ParseResult struct {
	SQLPortion string
	VizPortion string
	Specs      []*vizmodel.VizSpec
}

// Parse splits query and compiles its visualization portion, without
// touching any backend. Used by the CLI's parse/validate subcommands and
// the HTTP API's /api/v1/parse endpoint.
func Parse(query string) (*ParseResult, error) {
	res, err := split.Split(query)
	if err != nil {
		return nil, err
	}

	var specs []*vizmodel.VizSpec
	if res.Viz != "" {
		specs, err = vizparser.Compile(res.Viz)
		if err != nil {
			return nil, err
		}
	}

	return &ParseResult{SQLPortion: res.SQL, VizPortion: res.Viz, Specs: specs}, nil
}

// QueryResult is the outcome of running a query end to end: the emitted
// document for the first visualization spec plus its metadata.
type QueryResult struct {
	Result *emitter.Result
	Specs  []*vizmodel.VizSpec
}

// Run splits query, executes its data portion against the adapter resolved
// for reader, and emits the first visualization spec's Vega-Lite document.
// A query with no visualization portion at all is a ModelError: Run always
// produces a chart, unlike Parse which is also useful for plain SQL.
func Run(ctx context.Context, registry *tableio.Registry, query, reader string) (*QueryResult, error) {
	parsed, err := Parse(query)
	if err != nil {
		return nil, err
	}
	if len(parsed.Specs) == 0 {
		return nil, vzerr.Model(token.Position{}, "", "query has no VISUALISE/VISUALIZE clause")
	}

	if reader == "" {
		reader = DefaultReader
	}
	adapter := registry.Resolve(parsed.SQLPortion, reader)
	if adapter == nil {
		return nil, vzerr.Backend("", parsed.SQLPortion, fmt.Errorf("no adapter supports reader %q", reader))
	}

	table, err := adapter.Execute(ctx, parsed.SQLPortion, reader)
	if err != nil {
		return nil, err
	}

	layerTables, err := resolveLayerSources(ctx, adapter, reader, parsed.Specs[0])
	if err != nil {
		return nil, err
	}

	result, err := emitter.Emit(parsed.Specs[0], table, layerTables)
	if err != nil {
		return nil, err
	}

	return &QueryResult{Result: result, Specs: parsed.Specs}, nil
}

// resolveLayerSources executes a "SELECT * FROM <source>" query for every
// layer that names its own VISUALISE FROM source (SPEC_FULL.md §11.2's
// global-mapping resolution), keyed by the source's literal text so
// pkg/emitter.buildLayer can look it up per layer.
func resolveLayerSources(ctx context.Context, adapter tableio.Adapter, reader string, spec *vizmodel.VizSpec) (map[string]*tableio.Table, error) {
	var out map[string]*tableio.Table
	for _, layer := range spec.Layers {
		if layer.Source == nil {
			continue
		}
		if out == nil {
			out = make(map[string]*tableio.Table)
		}
		if _, ok := out[layer.Source.Text]; ok {
			continue
		}

		q := sourceQuery(layer.Source)
		table, err := adapter.Execute(ctx, q, reader)
		if err != nil {
			return nil, err
		}
		out[layer.Source.Text] = table
	}
	return out, nil
}

func sourceQuery(src *vizmodel.DataSource) string {
	switch src.Kind {
	case vizmodel.SourceFilePath:
		return fmt.Sprintf("SELECT * FROM %s", quoteFilePath(src.Text))
	default:
		return fmt.Sprintf("SELECT * FROM %s", src.Text)
	}
}

func quoteFilePath(path string) string {
	return "'" + path + "'"
}
