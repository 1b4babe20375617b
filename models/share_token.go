package models

import "math"

// PrimaryKind discriminates the two shapes the primary color of a share
// token can take.
type PrimaryKind int

const (
	// PrimaryNone means the token carried no usable primary color
	PrimaryNone PrimaryKind = iota
	// PrimaryCatalog means the primary color is a catalog dye ID
	PrimaryCatalog
	// PrimaryCustom means the primary color is an inline RGB value
	PrimaryCustom
)

func (k PrimaryKind) String() string {
	switch k {
	case PrimaryCatalog:
		return "catalog"
	case PrimaryCustom:
		return "custom"
	default:
		return "none"
	}
}

// CustomColor is a user-picked color embedded in a share token
type CustomColor struct {
	Name string `json:"name"`
	RGB  RGB    `json:"rgb"`
}

// ShareToken is the decoded palette selection of a share link.
//
// Wire shapes:
//
//	simple:         {"p": "<dye id>", "s": ["<dye id>", "<dye id>"], "pt": "<pattern>"}
//	custom primary: {"p": {"type": "custom", "name": "...", "rgb": {"r":..,"g":..,"b":..}}, "s": [...]}
type ShareToken struct {
	Kind      PrimaryKind
	PrimaryID string
	Custom    *CustomColor
	// Secondary holds the two secondary dye IDs; an empty string marks a
	// missing or malformed entry.
	Secondary [2]string
	Pattern   string
}

// IsCustomPrimary reports whether the primary color is an inline custom color
func (t *ShareToken) IsCustomPrimary() bool {
	return t != nil && t.Kind == PrimaryCustom && t.Custom != nil
}

// ParseShareToken interprets a decoded token object. Every field is
// treated as untrusted and optional; fields of the wrong type are dropped
// rather than rejected, so a partially valid token still resolves what it can.
func ParseShareToken(obj map[string]any) *ShareToken {
	if obj == nil {
		return nil
	}

	token := &ShareToken{}

	switch p := obj["p"].(type) {
	case string:
		token.Kind = PrimaryCatalog
		token.PrimaryID = p
	case map[string]any:
		if custom, ok := parseCustomColor(p); ok {
			token.Kind = PrimaryCustom
			token.Custom = custom
		}
	}

	if s, ok := obj["s"].([]any); ok {
		for i := 0; i < len(token.Secondary) && i < len(s); i++ {
			if id, ok := s[i].(string); ok {
				token.Secondary[i] = id
			}
		}
	}

	if pt, ok := obj["pt"].(string); ok {
		token.Pattern = pt
	}

	return token
}

func parseCustomColor(p map[string]any) (*CustomColor, bool) {
	if typ, _ := p["type"].(string); typ != "custom" {
		return nil, false
	}
	rgbObj, ok := p["rgb"].(map[string]any)
	if !ok {
		return nil, false
	}

	var channels [3]int
	for i, key := range []string{"r", "g", "b"} {
		v, ok := integralNumber(rgbObj[key])
		if !ok {
			return nil, false
		}
		channels[i] = v
	}

	name, _ := p["name"].(string)
	return &CustomColor{
		Name: name,
		RGB:  RGB{R: channels[0], G: channels[1], B: channels[2]},
	}, true
}

// integralNumber accepts JSON numbers with no fractional part
func integralNumber(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
