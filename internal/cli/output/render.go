// Package output renders CLI results in the format named by --format,
// grounded on the teacher's internal/cli/commands/query_render.go table
// writer (github.com/jedib0t/go-pretty/v6).
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/vvsql/vvsql/pkg/tableio"
)

// Format selects how a Renderer prints results.
type Format string

// Recognized Format values.
const (
	FormatJSON  Format = "json"
	FormatHuman Format = "human"
)

// Renderer prints CLI results in a caller-selected Format.
type Renderer struct {
	Out    io.Writer
	Format Format
}

// New builds a Renderer writing to out in the given format. An unrecognized
// format falls back to human, matching the teacher's tolerant --output
// handling.
func New(out io.Writer, format string) *Renderer {
	f := Format(format)
	if f != FormatJSON {
		f = FormatHuman
	}
	return &Renderer{Out: out, Format: f}
}

// Document renders a raw JSON document (a Vega-Lite spec).
func (r *Renderer) Document(doc json.RawMessage) error {
	if r.Format == FormatJSON {
		_, err := fmt.Fprintln(r.Out, string(doc))
		return err
	}

	var pretty map[string]any
	if err := json.Unmarshal(doc, &pretty); err != nil {
		return err
	}
	indented, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.Out, string(indented))
	return err
}

// Value renders an arbitrary JSON-marshalable value (parse/validate output).
func (r *Renderer) Value(v any) error {
	enc := json.NewEncoder(r.Out)
	if r.Format == FormatHuman {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// Table renders a tableio.Table, as rows in human mode or a JSON records
// array in json mode.
func (r *Renderer) Table(t *tableio.Table) error {
	if r.Format == FormatJSON {
		return r.Value(t.AsRecords())
	}

	if len(t.Columns) == 0 {
		_, err := fmt.Fprintln(r.Out, "(0 columns)")
		return err
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(r.Out)
	tw.SetStyle(table.StyleLight)

	header := make(table.Row, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c.Name
	}
	tw.AppendHeader(header)

	for _, row := range t.Rows {
		tr := make(table.Row, len(row))
		for i, v := range row {
			tr[i] = formatValue(v)
		}
		tw.AppendRow(tr)
	}
	tw.Render()
	_, err := fmt.Fprintf(r.Out, "(%d rows)\n", len(t.Rows))
	return err
}

func formatValue(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}
