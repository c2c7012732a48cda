package emitter

import "strings"

// Named palette definitions, carried verbatim from
// original_source/src/plot/scale/palettes.rs so a chart declaring
// palette=viridis renders with the exact colors the original tool used.

// Categorical color palettes.
var (
	tableau10 = []string{
		"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
		"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
	}
	category10 = []string{
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	}
	set1 = []string{
		"#e41a1c", "#377eb8", "#4daf4a", "#984ea3", "#ff7f00",
		"#ffff33", "#a65628", "#f781bf", "#999999",
	}
	set2 = []string{
		"#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3", "#a6d854",
		"#ffd92f", "#e5c494", "#b3b3b3",
	}
	set3 = []string{
		"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3",
		"#fdb462", "#b3de69", "#fccde5", "#d9d9d9", "#bc80bd",
		"#ccebc5", "#ffed6f",
	}
	pastel1 = []string{
		"#fbb4ae", "#b3cde3", "#ccebc5", "#decbe4", "#fed9a6",
		"#ffffcc", "#e5d8bd", "#fddaec", "#f2f2f2",
	}
	pastel2 = []string{
		"#b3e2cd", "#fdcdac", "#cbd5e8", "#f4cae4", "#e6f5c9",
		"#fff2ae", "#f1e2cc", "#cccccc",
	}
	dark2 = []string{
		"#1b9e77", "#d95f02", "#7570b3", "#e7298a", "#66a61e",
		"#e6ab02", "#a6761d", "#666666",
	}
	paired = []string{
		"#a6cee3", "#1f78b4", "#b2df8a", "#33a02c", "#fb9a99",
		"#e31a1c", "#fdbf6f", "#ff7f00", "#cab2d6", "#6a3d9a",
		"#ffff99", "#b15928",
	}
	accent = []string{
		"#7fc97f", "#beaed4", "#fdc086", "#ffff99", "#386cb0",
		"#f0027f", "#bf5b17", "#666666",
	}
)

// Sequential color palettes (sampled at 8-10 points).
var (
	viridis = []string{
		"#440154", "#482878", "#3e4a89", "#31688e", "#26828e",
		"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
	}
	plasma = []string{
		"#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786",
		"#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921",
	}
	magma = []string{
		"#000004", "#180f3d", "#440f76", "#721f81", "#9e2f7f",
		"#cd4071", "#f1605d", "#fd9668", "#feca8d", "#fcfdbf",
	}
	inferno = []string{
		"#000004", "#1b0c41", "#4a0c6b", "#781c6d", "#a52c60",
		"#cf4446", "#ed6925", "#fb9b06", "#f7d13d", "#fcffa4",
	}
	cividis = []string{
		"#00224e", "#123570", "#3b496c", "#575d6d", "#707173",
		"#8a8678", "#a59c74", "#c3b369", "#e1cc55", "#fdea45",
	}
	blues = []string{
		"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6",
		"#4292c6", "#2171b5", "#08519c", "#08306b",
	}
	greens = []string{
		"#f7fcf5", "#e5f5e0", "#c7e9c0", "#a1d99b", "#74c476",
		"#41ab5d", "#238b45", "#006d2c", "#00441b",
	}
	oranges = []string{
		"#fff5eb", "#fee6ce", "#fdd0a2", "#fdae6b", "#fd8d3c",
		"#f16913", "#d94801", "#a63603", "#7f2704",
	}
	reds = []string{
		"#fff5f0", "#fee0d2", "#fcbba1", "#fc9272", "#fb6a4a",
		"#ef3b2c", "#cb181d", "#a50f15", "#67000d",
	}
	purples = []string{
		"#fcfbfd", "#efedf5", "#dadaeb", "#bcbddc", "#9e9ac8",
		"#807dba", "#6a51a3", "#54278f", "#3f007d",
	}
)

// Diverging color palettes.
var (
	rdbu = []string{
		"#67001f", "#b2182b", "#d6604d", "#f4a582", "#fddbc7",
		"#f7f7f7", "#d1e5f0", "#92c5de", "#4393c3", "#2166ac", "#053061",
	}
	rdylbu = []string{
		"#a50026", "#d73027", "#f46d43", "#fdae61", "#fee090",
		"#ffffbf", "#e0f3f8", "#abd9e9", "#74add1", "#4575b4", "#313695",
	}
	rdylgn = []string{
		"#a50026", "#d73027", "#f46d43", "#fdae61", "#fee08b",
		"#ffffbf", "#d9ef8b", "#a6d96a", "#66bd63", "#1a9850", "#006837",
	}
	spectral = []string{
		"#9e0142", "#d53e4f", "#f46d43", "#fdae61", "#fee08b",
		"#ffffbf", "#e6f598", "#abdda4", "#66c2a5", "#3288bd", "#5e4fa2",
	}
	brbg = []string{
		"#543005", "#8c510a", "#bf812d", "#dfc27d", "#f6e8c3",
		"#f5f5f5", "#c7eae5", "#80cdc1", "#35978f", "#01665e", "#003c30",
	}
	prgn = []string{
		"#40004b", "#762a83", "#9970ab", "#c2a5cf", "#e7d4e8",
		"#f7f7f7", "#d9f0d3", "#a6dba0", "#5aae61", "#1b7837", "#00441b",
	}
	piyg = []string{
		"#8e0152", "#c51b7d", "#de77ae", "#f1b6da", "#fde0ef",
		"#f7f7f7", "#e6f5d0", "#b8e186", "#7fbc41", "#4d9221", "#276419",
	}
)

// shapes is the default point-shape palette (Vega-Lite shape symbols).
var shapes = []string{
	"circle", "square", "cross", "diamond",
	"triangle-up", "triangle-down", "triangle-left", "triangle-right",
}

// ColorPalette looks up a named color palette case-insensitively.
func ColorPalette(name string) ([]string, bool) {
	switch strings.ToLower(name) {
	case "tableau10", "tableau":
		return tableau10, true
	case "category10":
		return category10, true
	case "set1":
		return set1, true
	case "set2":
		return set2, true
	case "set3":
		return set3, true
	case "pastel1":
		return pastel1, true
	case "pastel2":
		return pastel2, true
	case "dark2":
		return dark2, true
	case "paired":
		return paired, true
	case "accent":
		return accent, true
	case "viridis":
		return viridis, true
	case "plasma":
		return plasma, true
	case "magma":
		return magma, true
	case "inferno":
		return inferno, true
	case "cividis":
		return cividis, true
	case "blues":
		return blues, true
	case "greens":
		return greens, true
	case "oranges":
		return oranges, true
	case "reds":
		return reds, true
	case "purples":
		return purples, true
	case "rdbu":
		return rdbu, true
	case "rdylbu":
		return rdylbu, true
	case "rdylgn":
		return rdylgn, true
	case "spectral":
		return spectral, true
	case "brbg":
		return brbg, true
	case "prgn":
		return prgn, true
	case "piyg":
		return piyg, true
	default:
		return nil, false
	}
}

// ShapePalette looks up a named shape palette case-insensitively.
func ShapePalette(name string) ([]string, bool) {
	switch strings.ToLower(name) {
	case "shapes", "default":
		return shapes, true
	default:
		return nil, false
	}
}

// DefaultColorPalette is used for categorical color scales with no
// explicit palette= property.
func DefaultColorPalette() []string { return tableau10 }

// DefaultShapePalette is used for shape scales with no explicit
// palette= property.
func DefaultShapePalette() []string { return shapes }

// ExpandPalette cycles through palette until count values are produced.
func ExpandPalette(palette []string, count int) []string {
	if len(palette) == 0 || count <= 0 {
		return nil
	}
	out := make([]string, count)
	for i := range out {
		out[i] = palette[i%len(palette)]
	}
	return out
}
