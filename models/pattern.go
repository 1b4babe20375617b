package models

// PatternLabels maps the decorative pattern tag of a share token to the
// label shown by the picker. Labels are never used to compute colors.
var PatternLabels = map[string]string{
	"triadic":             "バランス",
	"split-complementary": "アクセント",
	"analogous":           "グラデーション",
	"monochromatic":       "同系色",
	"similar":             "ナチュラル",
	"contrast":            "コントラスト",
	"vivid":               "ビビッド",
	"muted":               "ミュート",
}

// PatternLabel returns the display label for a pattern tag, or the tag itself
// when it is unknown
func PatternLabel(pattern string) string {
	if label, ok := PatternLabels[pattern]; ok {
		return label
	}
	return pattern
}
