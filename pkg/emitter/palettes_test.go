package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorPalette_CaseInsensitive(t *testing.T) {
	_, ok := ColorPalette("viridis")
	assert.True(t, ok)
	_, ok = ColorPalette("VIRIDIS")
	assert.True(t, ok)
	_, ok = ColorPalette("tableau10")
	assert.True(t, ok)
	_, ok = ColorPalette("unknown")
	assert.False(t, ok)
}

func TestShapePalette(t *testing.T) {
	_, ok := ShapePalette("shapes")
	assert.True(t, ok)
	_, ok = ShapePalette("default")
	assert.True(t, ok)
	_, ok = ShapePalette("unknown")
	assert.False(t, ok)
}

func TestExpandPalette(t *testing.T) {
	expanded := ExpandPalette(tableau10, 3)
	assert.Equal(t, []string{"#4e79a7", "#f28e2b", "#e15759"}, expanded)
}

func TestExpandPalette_Cycles(t *testing.T) {
	expanded := ExpandPalette(tableau10, 15)
	assert.Len(t, expanded, 15)
	assert.Equal(t, expanded[0], expanded[10])
	assert.Equal(t, expanded[1], expanded[11])
}

func TestDefaultPalettes(t *testing.T) {
	assert.Len(t, DefaultColorPalette(), 10)
	assert.Len(t, DefaultShapePalette(), 8)
}
