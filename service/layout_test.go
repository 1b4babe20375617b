package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorant-og/models"
)

var testPalette = models.ResolvedPalette{"#0a141e", "#666666", "#010203"}

func area(regions []models.Region) int {
	total := 0
	for _, r := range regions {
		total += r.Rect.Dx() * r.Rect.Dy()
	}
	return total
}

func TestLayoutRegions_Vertical(t *testing.T) {
	layout := GeometryLayout(models.GeometryVertical, testPalette)
	assert.Equal(t, 800, layout.Width)
	assert.Equal(t, 800, layout.Height)

	regions := LayoutRegions(layout)
	require.Len(t, regions, 3)

	assert.Equal(t, models.Region{Rect: models.Rect{MinX: 0, MinY: 0, MaxX: 800, MaxY: 400}, Color: "#0a141e"}, regions[0])
	assert.Equal(t, models.Region{Rect: models.Rect{MinX: 0, MinY: 400, MaxX: 800, MaxY: 667}, Color: "#666666"}, regions[1])
	assert.Equal(t, models.Region{Rect: models.Rect{MinX: 0, MinY: 667, MaxX: 800, MaxY: 800}, Color: "#010203"}, regions[2])
	assert.Equal(t, 800*800, area(regions))
}

func TestLayoutRegions_Golden(t *testing.T) {
	layout := GeometryLayout(models.GeometryGolden, testPalette)
	assert.Equal(t, 1200, layout.Width)
	assert.Equal(t, 630, layout.Height)

	regions := LayoutRegions(layout)
	require.Len(t, regions, 3)

	assert.Equal(t, models.Region{Rect: models.Rect{MinX: 0, MinY: 0, MaxX: 742, MaxY: 630}, Color: "#0a141e"}, regions[0])
	assert.Equal(t, models.Region{Rect: models.Rect{MinX: 742, MinY: 0, MaxX: 1200, MaxY: 389}, Color: "#666666"}, regions[1])
	assert.Equal(t, models.Region{Rect: models.Rect{MinX: 742, MinY: 389, MaxX: 1200, MaxY: 630}, Color: "#010203"}, regions[2])
	assert.Equal(t, 1200*630, area(regions))
}

func TestLayoutRegions_ZeroWeights(t *testing.T) {
	layout := models.Layout{Width: 90, Height: 10, Root: models.LayoutNode{
		Direction: models.DirectionRow,
		Children:  []models.LayoutNode{{Color: "#000000"}, {Color: "#111111"}, {Color: "#222222"}},
	}}

	regions := LayoutRegions(layout)
	require.Len(t, regions, 3)
	for _, r := range regions {
		assert.Equal(t, 30, r.Rect.Dx())
	}
}

func TestCanvasSize(t *testing.T) {
	w, h := CanvasSize(models.GeometryVertical)
	assert.Equal(t, [2]int{800, 800}, [2]int{w, h})

	w, h = CanvasSize(models.GeometryGolden)
	assert.Equal(t, [2]int{1200, 630}, [2]int{w, h})
}
