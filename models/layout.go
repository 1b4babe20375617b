package models

import "fmt"

// Geometry names one of the fixed image layouts
type Geometry string

const (
	// GeometryVertical stacks the three slots top to bottom with weights 3:2:1 on an 800x800 canvas
	GeometryVertical Geometry = "vertical"
	// GeometryGolden puts the primary on the left (61.8) and splits the right
	// column (38.2) into 23.6 over 14.6, on a 1200x630 canvas
	GeometryGolden Geometry = "golden"
)

// ParseGeometry validates a geometry name
func ParseGeometry(name string) (Geometry, error) {
	switch g := Geometry(name); g {
	case GeometryVertical, GeometryGolden:
		return g, nil
	default:
		return "", fmt.Errorf("unknown geometry %q: must be one of vertical, golden", name)
	}
}

// Direction is the main axis of a flex container
type Direction string

const (
	DirectionRow    Direction = "row"
	DirectionColumn Direction = "column"
)

// LayoutNode is one box of a flex layout tree. Leaves carry a fill color,
// containers lay out their children along Direction in proportion to Weight.
type LayoutNode struct {
	Weight    float64
	Direction Direction
	Color     string
	Children  []LayoutNode
}

// IsLeaf reports whether the node is a solid fill
func (n LayoutNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// Rect is an axis-aligned pixel rectangle, Max exclusive
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// Dx returns the width of the rectangle
func (r Rect) Dx() int { return r.MaxX - r.MinX }

// Dy returns the height of the rectangle
func (r Rect) Dy() int { return r.MaxY - r.MinY }

// Region is a solid color rectangle of a laid out image
type Region struct {
	Rect  Rect
	Color string
}

// Layout is a flex tree bound to a canvas size
type Layout struct {
	Width  int
	Height int
	Root   LayoutNode
}
