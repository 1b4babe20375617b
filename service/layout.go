package service

import (
	"math"

	"colorant-og/models"
)

// Canvas sizes per geometry
const (
	VerticalWidth  = 800
	VerticalHeight = 800
	GoldenWidth    = 1200
	GoldenHeight   = 630
)

// CanvasSize returns the output dimensions of a geometry
func CanvasSize(g models.Geometry) (int, int) {
	if g == models.GeometryVertical {
		return VerticalWidth, VerticalHeight
	}
	return GoldenWidth, GoldenHeight
}

// GeometryLayout assigns the palette colors to the regions of geometry g
func GeometryLayout(g models.Geometry, palette models.ResolvedPalette) models.Layout {
	width, height := CanvasSize(g)

	var root models.LayoutNode
	switch g {
	case models.GeometryVertical:
		root = models.LayoutNode{
			Direction: models.DirectionColumn,
			Children: []models.LayoutNode{
				{Weight: 3, Color: palette[models.SlotPrimary]},
				{Weight: 2, Color: palette[models.SlotSecondary1]},
				{Weight: 1, Color: palette[models.SlotSecondary2]},
			},
		}
	default:
		root = models.LayoutNode{
			Direction: models.DirectionRow,
			Children: []models.LayoutNode{
				{Weight: 61.8, Color: palette[models.SlotPrimary]},
				{
					Weight:    38.2,
					Direction: models.DirectionColumn,
					Children: []models.LayoutNode{
						{Weight: 23.6, Color: palette[models.SlotSecondary1]},
						{Weight: 14.6, Color: palette[models.SlotSecondary2]},
					},
				},
			},
		}
	}

	return models.Layout{Width: width, Height: height, Root: root}
}

// LayoutRegions flattens a layout into solid rectangles. Band edges are
// rounded from cumulative weights, so adjacent bands share an edge and the
// regions tile the canvas exactly.
func LayoutRegions(layout models.Layout) []models.Region {
	var regions []models.Region
	bounds := models.Rect{MaxX: layout.Width, MaxY: layout.Height}
	layoutNode(layout.Root, bounds, &regions)
	return regions
}

func layoutNode(node models.LayoutNode, bounds models.Rect, out *[]models.Region) {
	if node.IsLeaf() {
		*out = append(*out, models.Region{Rect: bounds, Color: node.Color})
		return
	}

	total := 0.0
	for _, child := range node.Children {
		total += math.Max(child.Weight, 0)
	}

	extent, start := bounds.Dx(), bounds.MinX
	if node.Direction == models.DirectionColumn {
		extent, start = bounds.Dy(), bounds.MinY
	}

	acc := 0.0
	prev := start
	for i, child := range node.Children {
		var end int
		switch {
		case i == len(node.Children)-1:
			end = start + extent
		case total <= 0:
			end = start + extent*(i+1)/len(node.Children)
		default:
			acc += math.Max(child.Weight, 0)
			end = start + int(math.Round(float64(extent)*acc/total))
		}

		childBounds := bounds
		if node.Direction == models.DirectionColumn {
			childBounds.MinY, childBounds.MaxY = prev, end
		} else {
			childBounds.MinX, childBounds.MaxX = prev, end
		}
		layoutNode(child, childBounds, out)
		prev = end
	}
}
