package models

// Palette slots
const (
	SlotPrimary = iota
	SlotSecondary1
	SlotSecondary2
)

// ResolvedPalette holds the three slot colors as "#rrggbb" strings
type ResolvedPalette [3]string

// FallbackPalette is used for every slot whose source data is absent or invalid
var FallbackPalette = ResolvedPalette{"#ffffff", "#666666", "#000000"}
