package emitter

import "github.com/vvsql/vvsql/pkg/vizmodel"

// themeCatalog maps each built-in theme preset to a base Vega-Lite config
// block, echoing the visual intent of the ggplot2 theme of the same name
// (minimal, classic, gray, bw, dark, void are ggplot2's own theme names).
func themeCatalog(name vizmodel.ThemeName) *doc {
	config := newDoc()
	switch name {
	case vizmodel.ThemeMinimal:
		view := newDoc()
		view.set("stroke", nil)
		axis := newDoc()
		axis.set("domain", false)
		axis.set("grid", true)
		axis.set("tickSize", 0)
		config.set("view", view)
		config.set("axis", axis)
	case vizmodel.ThemeClassic:
		axis := newDoc()
		axis.set("domain", true)
		axis.set("grid", false)
		view := newDoc()
		view.set("stroke", "#888888")
		config.set("axis", axis)
		config.set("view", view)
	case vizmodel.ThemeGray:
		config.set("background", "#ebebeb")
		axis := newDoc()
		axis.set("grid", true)
		axis.set("gridColor", "#ffffff")
		axis.set("domain", false)
		config.set("axis", axis)
	case vizmodel.ThemeBW:
		config.set("background", "#ffffff")
		axis := newDoc()
		axis.set("domain", true)
		axis.set("grid", true)
		axis.set("gridColor", "#d3d3d3")
		config.set("axis", axis)
	case vizmodel.ThemeDark:
		config.set("background", "#333333")
		axis := newDoc()
		axis.set("domainColor", "#cccccc")
		axis.set("gridColor", "#555555")
		axis.set("tickColor", "#cccccc")
		axis.set("labelColor", "#eeeeee")
		axis.set("titleColor", "#eeeeee")
		config.set("axis", axis)
		title := newDoc()
		title.set("color", "#eeeeee")
		config.set("title", title)
		legend := newDoc()
		legend.set("labelColor", "#eeeeee")
		legend.set("titleColor", "#eeeeee")
		config.set("legend", legend)
	case vizmodel.ThemeVoid:
		view := newDoc()
		view.set("stroke", nil)
		config.set("view", view)
		config.set("axis", nil)
	}
	return config
}

// lowerTheme builds the "config" document for a Theme, applying its
// overrides on top of the base preset per spec.md §4.6.
func lowerTheme(t *vizmodel.Theme) *doc {
	config := themeCatalog(t.Name)
	for key, value := range t.Overrides {
		config.set(key, value)
	}
	return config
}
