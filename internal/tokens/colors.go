// Package tokens holds the constant design-token catalogs and the resolvers
// that assemble them into per-hue, per-mode and per-medium bundles.
package tokens

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Stop is one level of a color scale.
type Stop int

// Stops lists every level a hue defines, lightest first.
var Stops = []Stop{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

// ColorScale maps each stop of a hue to a #rrggbb color.
type ColorScale map[Stop]string

// MarshalJSON emits stops in ascending order.
func (c ColorScale) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, stop := range Stops {
		value, ok := c[stop]
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.WriteString(strconv.Quote(strconv.Itoa(int(stop))))
		buf.WriteByte(':')
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c ColorScale) clone() ColorScale {
	out := make(ColorScale, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Mode selects dark or light semantic colors.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// ParseMode validates a mode name.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeDark:
		return ModeDark, nil
	case ModeLight:
		return ModeLight, nil
	}
	return "", lookupError(ErrUnknownMode, value, []string{string(ModeDark), string(ModeLight)})
}

var palette = table[ColorScale]{
	{"slate", ColorScale{50: "#f8fafc", 100: "#f1f5f9", 200: "#e2e8f0", 300: "#cbd5e1", 400: "#94a3b8", 500: "#64748b", 600: "#475569", 700: "#334155", 800: "#1e293b", 900: "#0f172a", 950: "#020617"}},
	{"zinc", ColorScale{50: "#fafafa", 100: "#f4f4f5", 200: "#e4e4e7", 300: "#d4d4d8", 400: "#a1a1aa", 500: "#71717a", 600: "#52525b", 700: "#3f3f46", 800: "#27272a", 900: "#18181b", 950: "#09090b"}},
	{"blue", ColorScale{50: "#eff6ff", 100: "#dbeafe", 200: "#bfdbfe", 300: "#93c5fd", 400: "#60a5fa", 500: "#3b82f6", 600: "#2563eb", 700: "#1d4ed8", 800: "#1e40af", 900: "#1e3a8a", 950: "#172554"}},
	{"cyan", ColorScale{50: "#ecfeff", 100: "#cffafe", 200: "#a5f3fc", 300: "#67e8f9", 400: "#22d3ee", 500: "#06b6d4", 600: "#0891b2", 700: "#0e7490", 800: "#155e75", 900: "#164e63", 950: "#083344"}},
	{"green", ColorScale{50: "#f0fdf4", 100: "#dcfce7", 200: "#bbf7d0", 300: "#86efac", 400: "#4ade80", 500: "#22c55e", 600: "#16a34a", 700: "#15803d", 800: "#166534", 900: "#14532d", 950: "#052e16"}},
	{"purple", ColorScale{50: "#faf5ff", 100: "#f3e8ff", 200: "#e9d5ff", 300: "#d8b4fe", 400: "#c084fc", 500: "#a855f7", 600: "#9333ea", 700: "#7e22ce", 800: "#6b21a8", 900: "#581c87", 950: "#3b0764"}},
	{"pink", ColorScale{50: "#fdf2f8", 100: "#fce7f3", 200: "#fbcfe8", 300: "#f9a8d4", 400: "#f472b6", 500: "#ec4899", 600: "#db2777", 700: "#be185d", 800: "#9f1239", 900: "#831843", 950: "#500724"}},
	{"orange", ColorScale{50: "#fff7ed", 100: "#ffedd5", 200: "#fed7aa", 300: "#fdba74", 400: "#fb923c", 500: "#f97316", 600: "#ea580c", 700: "#c2410c", 800: "#9a3412", 900: "#7c2d12", 950: "#431407"}},
	{"yellow", ColorScale{50: "#fefce8", 100: "#fef9c3", 200: "#fef08a", 300: "#fde047", 400: "#facc15", 500: "#eab308", 600: "#ca8a04", 700: "#a16207", 800: "#854d0e", 900: "#713f12", 950: "#422006"}},
	{"red", ColorScale{50: "#fef2f2", 100: "#fee2e2", 200: "#fecaca", 300: "#fca5a5", 400: "#f87171", 500: "#ef4444", 600: "#dc2626", 700: "#b91c1c", 800: "#991b1b", 900: "#7f1d1d", 950: "#450a0a"}},
	{"indigo", ColorScale{50: "#eef2ff", 100: "#e0e7ff", 200: "#c7d2fe", 300: "#a5b4fc", 400: "#818cf8", 500: "#6366f1", 600: "#4f46e5", 700: "#4338ca", 800: "#3730a3", 900: "#312e81", 950: "#1e1b4b"}},
	{"violet", ColorScale{50: "#f5f3ff", 100: "#ede9fe", 200: "#ddd6fe", 300: "#c4b5fd", 400: "#a78bfa", 500: "#8b5cf6", 600: "#7c3aed", 700: "#6d28d9", 800: "#5b21b6", 900: "#4c1d95", 950: "#2e1065"}},
	{"emerald", ColorScale{50: "#ecfdf5", 100: "#d1fae5", 200: "#a7f3d0", 300: "#6ee7b7", 400: "#34d399", 500: "#10b981", 600: "#059669", 700: "#047857", 800: "#065f46", 900: "#064e3b", 950: "#022c22"}},
	{"amber", ColorScale{50: "#fffbeb", 100: "#fef3c7", 200: "#fde68a", 300: "#fcd34d", 400: "#fbbf24", 500: "#f59e0b", 600: "#d97706", 700: "#b45309", 800: "#92400e", 900: "#78350f", 950: "#451a03"}},
}

var gradients = table[string]{
	{"sunset", "linear-gradient(135deg, #ff6b6b 0%, #f7b731 50%, #5f27cd 100%)"},
	{"ocean", "linear-gradient(135deg, #667eea 0%, #764ba2 50%, #f093fb 100%)"},
	{"forest", "linear-gradient(135deg, #00b09b 0%, #96c93d 50%, #ffe000 100%)"},
	{"flame", "linear-gradient(135deg, #ff416c 0%, #ff4b2b 50%, #ffc837 100%)"},
	{"aurora", "linear-gradient(135deg, #00c9ff 0%, #92fe9d 50%, #fc00ff 100%)"},
	{"cosmic", "linear-gradient(135deg, #7303c0 0%, #ec38bc 50%, #03001e 100%)"},
	{"tech", "linear-gradient(135deg, #0066FF 0%, #00D9FF 100%)"},
	{"finance", "linear-gradient(135deg, #00C853 0%, #FFD600 100%)"},
	{"education", "linear-gradient(135deg, #7C4DFF 0%, #FF6E40 100%)"},
	{"lifestyle", "linear-gradient(135deg, #FF6B9D 0%, #FFB74D 100%)"},
	{"gaming", "linear-gradient(135deg, #00E676 0%, #E040FB 100%)"},
	{"business", "linear-gradient(135deg, #1565C0 0%, #00ACC1 100%)"},
}

// chartHues follow the theme's primary hue in every chart sequence.
var chartHues = []string{"cyan", "violet", "emerald", "orange", "pink", "yellow", "indigo"}

// Hues lists palette hue names in declaration order.
func Hues() []string {
	return palette.keys()
}

// Color returns one stop of one hue.
func Color(hue string, stop Stop) (string, error) {
	scale, ok := palette.lookup(hue)
	if !ok {
		return "", lookupError(ErrUnknownHue, hue, Hues())
	}
	value, ok := scale[stop]
	if !ok {
		return "", fmt.Errorf("hue %s has no stop %d", hue, stop)
	}
	return value, nil
}

// Palette returns a copy of the full palette.
func Palette() *orderedmap.OrderedMap[string, ColorScale] {
	return ordered(palette, ColorScale.clone)
}

// GradientNames lists the named gradients in declaration order.
func GradientNames() []string {
	return gradients.keys()
}

// Gradient returns the CSS for a named gradient.
func Gradient(name string) (string, error) {
	value, ok := gradients.lookup(name)
	if !ok {
		return "", lookupError(ErrUnknownGradient, name, GradientNames())
	}
	return value, nil
}

// Gradients returns a copy of the gradient table.
func Gradients() *orderedmap.OrderedMap[string, string] {
	return ordered(gradients, same[string])
}

// ColorGroup is the set of colors one semantic role resolves to. Only
// border uses Secondary; the rest use some of Foreground, Hover and Active.
type ColorGroup struct {
	Default    string `json:"DEFAULT"`
	Foreground string `json:"foreground,omitempty"`
	Hover      string `json:"hover,omitempty"`
	Active     string `json:"active,omitempty"`
	Secondary  string `json:"secondary,omitempty"`
}

// Variant is one named color within a group.
type Variant struct {
	Name  string
	Value string
}

// DefaultVariant is the name of a group's base color.
const DefaultVariant = "DEFAULT"

// Variants returns the group's set colors, DEFAULT first.
func (g ColorGroup) Variants() []Variant {
	candidates := []Variant{
		{DefaultVariant, g.Default},
		{"foreground", g.Foreground},
		{"hover", g.Hover},
		{"active", g.Active},
		{"secondary", g.Secondary},
	}
	out := candidates[:0]
	for _, v := range candidates {
		if v.Value != "" {
			out = append(out, v)
		}
	}
	return out
}

// IsZero reports whether no color in the group is set.
func (g ColorGroup) IsZero() bool {
	return g == ColorGroup{}
}

// Role pairs a semantic role name with its colors.
type Role struct {
	Name  string
	Group ColorGroup
}

// SemanticColors is the role-based color set derived from a hue and mode.
type SemanticColors struct {
	Background  ColorGroup `json:"background"`
	Foreground  ColorGroup `json:"foreground"`
	Primary     ColorGroup `json:"primary"`
	Secondary   ColorGroup `json:"secondary"`
	Accent      ColorGroup `json:"accent"`
	Muted       ColorGroup `json:"muted"`
	Card        ColorGroup `json:"card"`
	Border      ColorGroup `json:"border"`
	Destructive ColorGroup `json:"destructive"`
	Success     ColorGroup `json:"success"`
	Warning     ColorGroup `json:"warning"`
	Info        ColorGroup `json:"info"`
	Chart       []string   `json:"chart"`
}

// Groups returns every role in emission order.
func (s SemanticColors) Groups() []Role {
	return []Role{
		{"background", s.Background},
		{"foreground", s.Foreground},
		{"primary", s.Primary},
		{"secondary", s.Secondary},
		{"accent", s.Accent},
		{"muted", s.Muted},
		{"card", s.Card},
		{"border", s.Border},
		{"destructive", s.Destructive},
		{"success", s.Success},
		{"warning", s.Warning},
		{"info", s.Info},
	}
}

// Group looks up a role by name.
func (s SemanticColors) Group(name string) (ColorGroup, bool) {
	for _, role := range s.Groups() {
		if role.Name == name {
			return role.Group, true
		}
	}
	return ColorGroup{}, false
}

const white = "#ffffff"

// SemanticColorsFor derives semantic colors for a primary hue. Neutral
// roles come from zinc and depend only on mode; status roles always use
// red, green, amber and blue.
func SemanticColorsFor(primaryHue string, mode Mode) (SemanticColors, error) {
	hue, ok := palette.lookup(primaryHue)
	if !ok {
		return SemanticColors{}, lookupError(ErrUnknownHue, primaryHue, Hues())
	}
	mode, err := ParseMode(string(mode))
	if err != nil {
		return SemanticColors{}, err
	}

	dark := mode == ModeDark
	zinc := mustScale("zinc")
	byMode := func(darkValue, lightValue string) string {
		if dark {
			return darkValue
		}
		return lightValue
	}
	stops := func(scale ColorScale, darkStop, lightStop Stop) string {
		return byMode(scale[darkStop], scale[lightStop])
	}

	chart := make([]string, 0, len(chartHues)+1)
	chart = append(chart, hue[500])
	for _, name := range chartHues {
		chart = append(chart, mustScale(name)[500])
	}

	return SemanticColors{
		Background: ColorGroup{
			Default:    byMode(zinc[950], white),
			Foreground: stops(zinc, 50, 900),
			Hover:      stops(zinc, 900, 50),
			Active:     stops(zinc, 800, 100),
		},
		Foreground: ColorGroup{
			Default:    stops(zinc, 50, 900),
			Foreground: stops(zinc, 900, 50),
			Hover:      stops(zinc, 200, 700),
			Active:     stops(zinc, 100, 800),
		},
		Primary: ColorGroup{
			Default:    stops(hue, 500, 600),
			Foreground: white,
			Hover:      stops(hue, 400, 700),
			Active:     stops(hue, 300, 800),
		},
		Secondary: ColorGroup{
			Default:    stops(zinc, 800, 200),
			Foreground: stops(zinc, 50, 900),
			Hover:      stops(zinc, 700, 300),
			Active:     stops(zinc, 600, 400),
		},
		Accent: ColorGroup{
			Default:    stops(hue, 400, 500),
			Foreground: byMode(zinc[950], white),
			Hover:      stops(hue, 300, 600),
			Active:     stops(hue, 200, 700),
		},
		Muted: ColorGroup{
			Default:    stops(zinc, 800, 100),
			Foreground: stops(zinc, 400, 600),
		},
		Card: ColorGroup{
			Default:    stops(zinc, 900, 50),
			Foreground: stops(zinc, 50, 900),
			Hover:      stops(zinc, 800, 100),
		},
		Border: ColorGroup{
			Default:   stops(zinc, 800, 200),
			Secondary: stops(zinc, 700, 300),
		},
		Destructive: ColorGroup{Default: stops(mustScale("red"), 600, 500), Foreground: white},
		Success:     ColorGroup{Default: stops(mustScale("green"), 600, 500), Foreground: white},
		Warning:     ColorGroup{Default: stops(mustScale("amber"), 600, 500), Foreground: zinc[950]},
		Info:        ColorGroup{Default: stops(mustScale("blue"), 600, 500), Foreground: white},
		Chart:       chart,
	}, nil
}

func mustScale(hue string) ColorScale {
	scale, ok := palette.lookup(hue)
	if !ok {
		panic("tokens: palette is missing " + hue)
	}
	return scale
}

// ColorTokens bundles the palette, semantic colors and gradients. Gradient
// is set only when a theme chooses one.
type ColorTokens struct {
	Palette   *orderedmap.OrderedMap[string, ColorScale] `json:"palette"`
	Semantic  SemanticColors                             `json:"semantic"`
	Gradients *orderedmap.OrderedMap[string, string]     `json:"gradients"`
	Gradient  string                                     `json:"gradient,omitempty"`
}

// AllColorTokens assembles the color bundle for a hue and mode.
func AllColorTokens(primaryHue string, mode Mode) (*ColorTokens, error) {
	semantic, err := SemanticColorsFor(primaryHue, mode)
	if err != nil {
		return nil, err
	}
	return &ColorTokens{
		Palette:   Palette(),
		Semantic:  semantic,
		Gradients: Gradients(),
	}, nil
}
