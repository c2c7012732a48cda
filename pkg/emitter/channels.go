package emitter

import "strings"

// channelFor maps an aesthetic name to its Vega-Lite encoding channel, per
// spec.md §4.6. Aesthetics with no special mapping pass through unchanged
// (the grammar permits arbitrary aesthetic names; the emitter is opaque to
// ones it doesn't specifically recognize).
func channelFor(aesthetic string) string {
	switch strings.ToLower(aesthetic) {
	case "alpha":
		return "opacity"
	case "label":
		return "text"
	case "xmin":
		return "x"
	case "xmax":
		return "x2"
	case "ymin":
		return "y"
	case "ymax":
		return "y2"
	case "xend":
		return "x2"
	case "yend":
		return "y2"
	case "linetype":
		return "strokeDash"
	case "linewidth":
		return "strokeWidth"
	default:
		return aesthetic
	}
}

// channelOrder is the canonical order channels appear in an "encoding"
// object, for deterministic output. Channels not listed here (opaque
// aesthetic names with no special mapping) are appended afterward in
// sorted order.
var channelOrder = []string{
	"x", "y", "x2", "y2", "theta", "radius",
	"color", "fill", "size", "shape", "opacity", "text",
	"strokeDash", "strokeWidth", "tooltip",
}

func isPositionalChannel(channel string) bool {
	switch channel {
	case "x", "y", "x2", "y2", "theta", "radius":
		return true
	default:
		return false
	}
}
