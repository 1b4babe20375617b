package utils

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBToHex formats channels as "#rrggbb" with two lowercase hex digits each.
// Channels are not clamped: 256 formats as "100" and -1 as "-1", so an out of
// range value yields a string that HexToColor rejects.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// HexToColor parses a "#rrggbb" string into an opaque color
func HexToColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
