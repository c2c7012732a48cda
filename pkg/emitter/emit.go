// Package emitter lowers a validated vizmodel.VizSpec and the Table
// produced by executing its data sub-language into a Vega-Lite v5
// document, per spec.md §4.6.
package emitter

import (
	"encoding/json"

	"github.com/vvsql/vvsql/pkg/tableio"
	"github.com/vvsql/vvsql/pkg/vizmodel"
	"github.com/vvsql/vvsql/pkg/vzerr"
)

const vegaLiteSchema = "https://vega.github.io/schema/vega-lite/v5.json"

// Metadata accompanies the emitted document, per spec.md §4.6's closing
// paragraph and the HTTP surface's {spec, metadata} response shape.
type Metadata struct {
	Rows     int      `json:"rows"`
	Columns  []string `json:"columns"`
	VizType  string   `json:"viz_type"`
	Layers   int      `json:"layers"`
	Warnings []string `json:"warnings,omitempty"`
}

// Result is the emitter's output: the Vega-Lite document and its metadata.
type Result struct {
	Document json.RawMessage
	Metadata Metadata
}

// builtLayer is the emitter's working representation of one lowered Layer,
// mutated in place by applyCoord before being frozen into the final
// document.
type builtLayer struct {
	Geom      vizmodel.Geom
	Mark      any // string, or *doc when extra mark properties are needed
	Channels  map[string]*doc
	Transform []any
}

// Emit lowers spec against table into a Vega-Lite document. layerTables
// resolves per-layer VISUALISE FROM sources (may be nil); a layer with no
// explicit Source uses table.
func Emit(spec *vizmodel.VizSpec, table *tableio.Table, layerTables map[string]*tableio.Table) (*Result, error) {
	var warnings []string

	built := make([]*builtLayer, 0, len(spec.Layers))
	for _, layer := range spec.Layers {
		bl, layerWarnings := buildLayer(spec, layer, table, layerTables)
		warnings = append(warnings, layerWarnings...)
		built = append(built, bl)
	}

	if spec.Coord != nil {
		warnings = append(warnings, applyCoord(spec.Coord, built)...)
	}

	body := newDoc()
	if len(built) == 1 {
		l := built[0]
		if len(l.Transform) > 0 {
			body.set("transform", l.Transform)
		}
		body.set("mark", l.Mark)
		body.set("encoding", encodingDocFor(l.Channels))
	} else {
		layerDocs := make([]any, 0, len(built))
		for _, l := range built {
			ld := newDoc()
			if len(l.Transform) > 0 {
				ld.set("transform", l.Transform)
			}
			ld.set("mark", l.Mark)
			ld.set("encoding", encodingDocFor(l.Channels))
			layerDocs = append(layerDocs, ld)
		}
		body.set("layer", layerDocs)
	}

	document := newDoc()
	document.set("$schema", vegaLiteSchema)
	if title, ok := spec.Labels["title"]; ok {
		document.set("title", title)
	}
	if subtitle, ok := spec.Labels["subtitle"]; ok {
		document.set("subtitle", subtitle)
	}
	document.set("data", dataDoc(table))
	document.set("width", 600)
	document.set("autosize", autosizeDoc())

	var resolveDoc *doc
	if spec.Facet != nil {
		facetDoc, rd, facetWarnings := lowerFacet(spec.Facet)
		warnings = append(warnings, facetWarnings...)
		resolveDoc = rd
		document.set("facet", facetDoc)
		document.set("spec", body)
	} else {
		for _, k := range body.keys {
			document.set(k, body.values[k])
		}
	}

	if spec.Theme != nil {
		document.set("config", lowerTheme(spec.Theme))
	}
	if resolveDoc != nil {
		document.set("resolve", resolveDoc)
	}

	if caption, ok := spec.Labels["caption"]; ok {
		document.set("footer", caption)
	}

	raw, err := json.Marshal(document)
	if err != nil {
		return nil, vzerr.Emit("encode document: %v", err)
	}

	return &Result{
		Document: raw,
		Metadata: Metadata{
			Rows:     len(table.Rows),
			Columns:  columnNames(table),
			VizType:  string(spec.VizType),
			Layers:   len(spec.Layers),
			Warnings: warnings,
		},
	}, nil
}

func buildLayer(spec *vizmodel.VizSpec, layer vizmodel.Layer, table *tableio.Table, layerTables map[string]*tableio.Table) (*builtLayer, []string) {
	var warnings []string

	src := table
	if layer.Source != nil && layerTables != nil {
		if t, ok := layerTables[layer.Source.Text]; ok {
			src = t
		}
	}

	mark, warn := markFor(layer.Geom)
	if warn != "" {
		warnings = append(warnings, warn)
	}

	channels := make(map[string]*doc, len(layer.Aesthetics))
	for _, aes := range layer.AestheticKeys() {
		value := layer.Aesthetics[aes]
		channel := channelFor(aes)
		chDoc := newDoc()

		if value.IsColumn() {
			chDoc.set("field", value.Column)
			sc, hasScale := spec.Scales[aes]
			fieldType := resolveFieldType(sc, hasScale, src, value.Column)
			chDoc.set("type", fieldType)
			if title, ok := spec.Labels[aes]; ok {
				chDoc.set("title", title)
			}

			var scaleDoc, axisDoc *doc
			if hasScale {
				scaleDoc, axisDoc = lowerScale(sc, channel)
			} else {
				scaleDoc = newDoc()
			}
			if fieldType == "nominal" {
				applyDefaultPalette(scaleDoc, channel)
			}
			if scaleDoc.len() > 0 {
				chDoc.set("scale", scaleDoc)
			}
			if axisDoc != nil && axisDoc.len() > 0 {
				chDoc.set("axis", axisDoc)
			}

			if guide, ok := spec.Guides[aes]; ok {
				applyGuide(chDoc, channel, guide)
			}
		} else {
			chDoc.set("value", value.Literal)
		}

		channels[channel] = chDoc
	}

	transform := applyGeomExtras(layer.Geom, channels)

	return &builtLayer{Geom: layer.Geom, Mark: mark, Channels: channels, Transform: transform}, warnings
}

// applyGuide carries opaque legend/axis properties from a GUIDE clause onto
// the channel's legend (color-like channels) or axis (positional channels)
// sub-document.
func applyGuide(chDoc *doc, channel string, guide vizmodel.Guide) {
	if len(guide.Properties) == 0 {
		return
	}
	target := "legend"
	if isPositionalChannel(channel) {
		target = "axis"
	}
	sub, ok := chDoc.values[target].(*doc)
	if !ok {
		sub = newDoc()
		chDoc.set(target, sub)
	}
	for k, v := range guide.Properties {
		sub.set(k, v)
	}
}

// encodingDocFor renders a layer's channel map as an ordered "encoding"
// document, using channelOrder for determinism and appending any opaque
// channel names afterward in sorted order.
func encodingDocFor(channels map[string]*doc) *doc {
	d := newDoc()
	used := make(map[string]bool, len(channels))
	for _, ch := range channelOrder {
		if cd, ok := channels[ch]; ok {
			d.set(ch, cd)
			used[ch] = true
		}
	}
	remaining := make([]string, 0)
	for ch := range channels {
		if !used[ch] {
			remaining = append(remaining, ch)
		}
	}
	sortStrings(remaining)
	for _, ch := range remaining {
		d.set(ch, channels[ch])
	}
	return d
}

func dataDoc(table *tableio.Table) *doc {
	d := newDoc()
	d.set("values", table.AsRecords())
	return d
}

func autosizeDoc() *doc {
	d := newDoc()
	d.set("type", "fit")
	d.set("contains", "padding")
	return d
}

func columnNames(table *tableio.Table) []string {
	names := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		names[i] = c.Name
	}
	return names
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
