package exporters

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/designkit/internal/themes"
	"github.com/opencode-ai/designkit/internal/tokens"
)

func mustTheme(t *testing.T, name string) *themes.Resolved {
	t.Helper()
	theme, err := themes.Get(name)
	require.NoError(t, err)
	return theme
}

func colorsOnly(semantic tokens.SemanticColors) *themes.Resolved {
	return &themes.Resolved{
		Key:      "partial",
		Metadata: themes.Metadata{Name: "Partial"},
		Colors:   &tokens.ColorTokens{Semantic: semantic},
	}
}

var propertyLine = regexp.MustCompile(`^  --[a-z0-9-]+: [^;]+;$`)

func TestCSS(t *testing.T) {
	css, err := CSS(mustTheme(t, "tech"), "")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(css, ":root {\n"))
	assert.True(t, strings.HasSuffix(css, "}"))
	assert.Contains(t, css, "  /* Tech Theme: Modern tech aesthetic")
	assert.Contains(t, css, "  --ds-color-primary: #3b82f6;")
	assert.Contains(t, css, "  --ds-color-primary-hover: #60a5fa;")
	assert.Contains(t, css, "  --ds-color-chart-1: #3b82f6;")
	assert.Contains(t, css, "  --ds-gradient: linear-gradient(")
	assert.Contains(t, css, "  --ds-space-0-5: 4px;")
	assert.Contains(t, css, "  --ds-font-family-mono: JetBrains Mono, Fira Code, Monaco, Consolas, monospace;")
	assert.Contains(t, css, "  --ds-font-size-base: 16px;")
	assert.Contains(t, css, "  --ds-font-weight-bold: 700;")
	assert.Contains(t, css, "  --ds-line-height-tight: 1.1;")
	assert.Contains(t, css, "  --ds-radius-full: 9999px;")
	assert.Contains(t, css, "  --ds-duration-normal: 300ms;")
	assert.Contains(t, css, "  --ds-easing-ease-out: cubic-bezier(0.0, 0.0, 0.58, 1.0);")

	for _, line := range strings.Split(css, "\n") {
		if strings.HasPrefix(line, "  --") {
			assert.Regexp(t, propertyLine, line)
		}
	}
}

func TestCSSPrefix(t *testing.T) {
	theme := mustTheme(t, "gaming")
	for _, prefix := range []string{"brand", "--brand", " brand- "} {
		css, err := CSS(theme, prefix)
		require.NoError(t, err)
		assert.Contains(t, css, "--brand-color-primary:")
		assert.NotContains(t, css, "--ds-")
	}
}

func TestCSSDeterministic(t *testing.T) {
	first, err := CSS(mustTheme(t, "finance"), "ds")
	require.NoError(t, err)
	second, err := CSS(mustTheme(t, "finance"), "ds")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := CSS(mustTheme(t, "tech"), "ds")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestCSSSkipsMissingSections(t *testing.T) {
	tech := mustTheme(t, "tech")
	css, err := CSS(colorsOnly(tech.Colors.Semantic), "")
	require.NoError(t, err)

	assert.Contains(t, css, "/* Colors */")
	assert.NotContains(t, css, "/* Spacing */")
	assert.NotContains(t, css, "/* Typography */")
	assert.NotContains(t, css, "/* Durations */")
	assert.NotContains(t, css, "--ds-gradient")
}

func TestMissingDefaultColor(t *testing.T) {
	theme := colorsOnly(tokens.SemanticColors{
		Primary: tokens.ColorGroup{Default: "#3b82f6"},
		Accent:  tokens.ColorGroup{Hover: "#93c5fd"},
	})

	exports := map[string]func() (string, error){
		"css":        func() (string, error) { return CSS(theme, "") },
		"platform":   func() (string, error) { return PlatformCSS(theme) },
		"typescript": func() (string, error) { return TypeScript(theme) },
		"w3c":        func() (string, error) { return W3CJSON(theme, true) },
		"pptx":       func() (string, error) { return PresentationJSON(theme, true) },
	}
	for name, export := range exports {
		t.Run(name, func(t *testing.T) {
			_, err := export()
			var invalid *InvalidThemeError
			require.True(t, errors.As(err, &invalid), "got %v", err)
			assert.Equal(t, "accent", invalid.Category)
			assert.Contains(t, err.Error(), "accent")
		})
	}
}

func TestNilTheme(t *testing.T) {
	for _, format := range Formats() {
		_, err := Export(nil, format, Options{})
		assert.ErrorIs(t, err, ErrNilTheme, string(format))
	}
	_, err := BuildStyles(nil)
	assert.ErrorIs(t, err, ErrNilTheme)
}

func TestUtilityClasses(t *testing.T) {
	css, err := UtilityClasses(mustTheme(t, "tech"), "")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(css, "/* Spacing Utilities */\n"))
	assert.Contains(t, css, ".ds-m-1-5 { margin: 12px; }\n")
	assert.Contains(t, css, ".ds-pt-4 { padding-top: 32px; }\n")
	assert.Contains(t, css, ".ds-mr-0 { margin-right: 0px; }\n")
}

func TestPlatformCSS(t *testing.T) {
	css, err := PlatformCSS(mustTheme(t, "tech"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(css, ":root {\n"))
	assert.True(t, strings.HasSuffix(css, "}"))
	assert.Contains(t, css, "  --content-color-primary: #3b82f6;")
	assert.Contains(t, css, "  --content-color-primary-foreground: #ffffff;")
	assert.Contains(t, css, "  --content-color-bg: #09090b;")
	assert.Contains(t, css, "  --content-color-error: #dc2626;")
	assert.Contains(t, css, "  --content-space-1-5: 12px;")
	assert.Contains(t, css, "  --content-typography-small-xs: 12px;")
	assert.Contains(t, css, "  --content-typography-medium-base: 16px;")
	assert.Contains(t, css, "  --content-typography-large-4xl: 36px;")
	assert.Contains(t, css, "  --content-typography-weight-bold: 700;")
	assert.NotContains(t, css, "--ds-")

	colors, err := PlatformColorsCSS(mustTheme(t, "tech"))
	require.NoError(t, err)
	assert.Contains(t, colors, "  --content-color-info: #2563eb;")
	assert.NotContains(t, colors, "space")
}

func TestTypeScript(t *testing.T) {
	ts, err := TypeScript(mustTheme(t, "tech"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ts, "/**\n * Design tokens for the Tech theme.\n"))
	assert.Contains(t, ts, "export const colorPrimary = '#3b82f6';\n")
	assert.Contains(t, ts, "export const colorPrimaryHover = '#60a5fa';\n")
	assert.Contains(t, ts, "export const colorChart = ['#3b82f6',")
	assert.Contains(t, ts, "export const gradient = 'linear-gradient(")
	assert.Contains(t, ts, "export const fontFamilyPrimary = 'Inter, SF Pro Display, system-ui, sans-serif';\n")
	assert.Contains(t, ts, "  base: '16px',\n")
	assert.Contains(t, ts, "  '2xl': '24px',\n")
	assert.Contains(t, ts, "  '0.5u': '4px',\n")
	assert.Contains(t, ts, "  bold: 700,\n")
	assert.Contains(t, ts, "export const durationNormal = { ms: 300, frames30: 9, frames60: 18, seconds: 0.3, css: '300ms' } as const;\n")
	assert.Contains(t, ts, "export const easingEaseOut = [0, 0, 0.58, 1] as const;\n")
	assert.Contains(t, ts, "export const springSnappy = { damping: 20, mass: 0.5, stiffness: 300, overshootClamping: false } as const;\n")
	assert.Contains(t, ts, "export const defaultDuration = durationFast;\n")
	assert.Contains(t, ts, "export const defaultEasing = easingSmooth;\n")
	assert.Contains(t, ts, "export const defaultSpring = springSnappy;\n")
}

func TestSpringsTypeScript(t *testing.T) {
	ts, err := SpringsTypeScript(mustTheme(t, "tech"))
	require.NoError(t, err)

	for _, name := range tokens.SpringNames() {
		assert.Contains(t, ts, "export const "+camel("spring", name)+" = {")
	}
	assert.Contains(t, ts, "overshootClamping: true")
	assert.NotContains(t, ts, "colorPrimary")
	assert.NotContains(t, ts, "duration")
}

func TestCamel(t *testing.T) {
	assert.Equal(t, "easingEaseInOut", camel("easing", "ease_in_out"))
	assert.Equal(t, "colorPrimaryForeground", camel(camel("color", "primary"), "foreground"))
	assert.Equal(t, "slideInUp", camel("", "slide_in_up"))
}

type w3cLeaf struct {
	Type        string `json:"$type"`
	Value       any    `json:"$value"`
	Description string `json:"$description"`
}

func decodeTokens(t *testing.T, doc string) map[string]map[string]w3cLeaf {
	t.Helper()
	var out map[string]map[string]w3cLeaf
	require.NoError(t, json.Unmarshal([]byte(doc), &out))
	return out
}

func TestW3CJSON(t *testing.T) {
	theme := mustTheme(t, "tech")
	doc, err := W3CJSON(theme, true)
	require.NoError(t, err)

	groups := decodeTokens(t, doc)
	for _, name := range []string{"color", "dimension", "fontFamily", "fontSize", "fontWeight", "duration", "cubicBezier"} {
		require.Contains(t, groups, name)
		for key, leaf := range groups[name] {
			assert.NotEmpty(t, leaf.Type, "%s.%s", name, key)
			assert.NotNil(t, leaf.Value, "%s.%s", name, key)
		}
	}

	assert.Equal(t, w3cLeaf{"color", "#3b82f6", "Primary color"}, groups["color"]["primary"])
	assert.Equal(t, "Primary hover color", groups["color"]["primary-hover"].Description)
	assert.Equal(t, "#3b82f6", groups["color"]["chart-1"].Value)
	assert.Equal(t, w3cLeaf{Type: "dimension", Value: "4px"}, groups["dimension"]["space-0.5u"])
	assert.Equal(t, "dimension", groups["fontSize"]["base"].Type)
	assert.Equal(t, float64(700), groups["fontWeight"]["bold"].Value)
	assert.Equal(t, "300ms", groups["duration"]["normal"].Value)
	assert.Equal(t, []any{0.0, 0.0, 0.58, 1.0}, groups["cubicBezier"]["ease_out"].Value)
	assert.Equal(t, []any{"Inter", "SF Pro Display", "system-ui", "sans-serif"}, groups["fontFamily"]["display"].Value)

	assert.Less(t, strings.Index(doc, `"color"`), strings.Index(doc, `"dimension"`))
	assert.Less(t, strings.Index(doc, `"dimension"`), strings.Index(doc, `"cubicBezier"`))
}

func TestW3CJSONCompact(t *testing.T) {
	theme := mustTheme(t, "education")
	pretty, err := W3CJSON(theme, true)
	require.NoError(t, err)
	compact, err := W3CJSON(theme, false)
	require.NoError(t, err)

	assert.Less(t, len(compact), len(pretty))
	assert.NotContains(t, compact, "\n")
	assert.Contains(t, pretty, "\n  \"color\": {")
	assert.Equal(t, decodeTokens(t, pretty), decodeTokens(t, compact))
}

func TestMinimalJSON(t *testing.T) {
	doc, err := MinimalJSON(mustTheme(t, "tech"), true)
	require.NoError(t, err)

	groups := decodeTokens(t, doc)
	require.Len(t, groups, 2)
	assert.Len(t, groups["color"], 4)
	assert.Len(t, groups["dimension"], 8)
	assert.Equal(t, "16px", groups["dimension"]["space-md"].Value)
	assert.Equal(t, "#09090b", groups["color"]["background"].Value)

	empty, err := MinimalJSON(&themes.Resolved{Key: "empty"}, false)
	require.NoError(t, err)
	assert.Equal(t, `{"color":{},"dimension":{}}`, empty)
}

func TestHexToRGB(t *testing.T) {
	for _, hex := range []string{"#0066FF", "#0066ff", "0066ff"} {
		rgb, err := HexToRGB(hex)
		require.NoError(t, err, hex)
		assert.Equal(t, RGB{0, 102, 255}, rgb, hex)
	}

	rgb, err := HexToRGB("#3b82f6")
	require.NoError(t, err)
	assert.Equal(t, uint8(59), rgb.R())
	assert.Equal(t, uint8(130), rgb.G())
	assert.Equal(t, uint8(246), rgb.B())

	_, err = HexToRGB("#zzzzzz")
	assert.Error(t, err)
}

func TestUnitConversions(t *testing.T) {
	assert.Equal(t, 12.0, PxToPt(16))
	assert.Equal(t, int64(76200), PxToEMU(8))
	assert.Equal(t, int64(38100), PxToEMU(4))
}

func TestPresentation(t *testing.T) {
	p, err := Presentation(mustTheme(t, "tech"))
	require.NoError(t, err)

	primary, ok := p.ColorsRGB.Get("primary")
	require.True(t, ok)
	assert.Equal(t, RGB{59, 130, 246}, primary)
	for _, key := range []string{"primary_hover", "primary_active", "primary_foreground", "border"} {
		_, ok := p.ColorsRGB.Get(key)
		assert.True(t, ok, key)
	}
	_, ok = p.ColorsRGB.Get("border_secondary")
	assert.False(t, ok)

	base, ok := p.FontSizesPt.Get("base")
	require.True(t, ok)
	assert.Equal(t, 12.0, base)

	unit, ok := p.SpacingEMU.Get("1u")
	require.True(t, ok)
	assert.Equal(t, int64(76200), unit)
	zero, ok := p.SpacingEMU.Get("0")
	require.True(t, ok)
	assert.Zero(t, zero)
	assert.Equal(t, "Tech", p.Metadata.Name)
}

func TestFontSizesPtForSlides(t *testing.T) {
	cfg := &themes.Config{Name: "Deck", Colors: themes.ColorConfig{PrimaryHue: "indigo", Mode: "light"}, Typography: themes.TypographyConfig{Medium: "pptx"}}
	cfg.ApplyDefaults()
	require.NoError(t, cfg.Validate())
	theme, err := themes.Resolve(cfg)
	require.NoError(t, err)

	sizes, err := FontSizesPt(theme)
	require.NoError(t, err)
	base, ok := sizes.Get("base")
	require.True(t, ok)
	assert.Equal(t, 18.0, base)
}

func TestPresentationJSON(t *testing.T) {
	doc, err := PresentationJSON(mustTheme(t, "business"), false)
	require.NoError(t, err)

	var decoded struct {
		ColorsRGB   map[string][]int   `json:"colors_rgb"`
		FontSizesPt map[string]float64 `json:"font_sizes_pt"`
		SpacingEMU  map[string]int64   `json:"spacing_emu"`
		Metadata    themes.Metadata    `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &decoded))
	assert.Len(t, decoded.ColorsRGB["primary"], 3)
	assert.Equal(t, int64(9525*16), decoded.SpacingEMU["2u"])
	assert.Equal(t, "Business", decoded.Metadata.Name)
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"css":          FormatCSS,
		"canva":        FormatPlatformCSS,
		"TS":           FormatTypeScript,
		" json ":       FormatW3CJSON,
		"w3c":          FormatW3CJSON,
		"pptx":         FormatPresentation,
		"springs-ts":   FormatSpringsTS,
		"minimal-json": FormatMinimalJSON,
	}
	for input, want := range tests {
		got, err := ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseFormat("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
	assert.Contains(t, err.Error(), "w3c-json")
}

func TestExportDispatch(t *testing.T) {
	theme := mustTheme(t, "lifestyle")
	for _, format := range Formats() {
		out, err := Export(theme, format, Options{Prefix: "ls", Pretty: true})
		require.NoError(t, err, string(format))
		assert.NotEmpty(t, out, string(format))
	}

	direct, err := CSS(theme, "ls")
	require.NoError(t, err)
	viaExport, err := Export(theme, FormatCSS, Options{Prefix: "ls"})
	require.NoError(t, err)
	assert.Equal(t, direct, viaExport)

	_, err = Export(theme, Format("xml"), Options{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestBuildStyles(t *testing.T) {
	styles, err := BuildStyles(mustTheme(t, "tech"))
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("#3b82f6"), styles.Primary.GetForeground())
	assert.Equal(t, lipgloss.Color("#3b82f6"), styles.Button.GetBackground())
	assert.True(t, styles.Title.GetBold())

	plain, err := BuildStyles(&themes.Resolved{Key: "bare"})
	require.NoError(t, err)
	assert.Equal(t, "text", plain.Text.Render("text"))
}

func TestStylesRole(t *testing.T) {
	styles, err := BuildStyles(mustTheme(t, "tech"))
	require.NoError(t, err)
	colors := mustTheme(t, "tech").Colors.Semantic

	assert.Equal(t, lipgloss.Color(colors.Primary.Default), styles.Role("primary").GetForeground())
	assert.Equal(t, lipgloss.Color(colors.Destructive.Default), styles.Role("destructive").GetForeground())
	assert.Equal(t, lipgloss.Color(colors.Muted.Foreground), styles.Role("secondary").GetForeground())
	assert.Equal(t, styles.Text.GetForeground(), styles.Role("background").GetForeground())
}

func TestSwatch(t *testing.T) {
	assert.Contains(t, Swatch("#3b82f6", "primary"), "primary")
	assert.Contains(t, Swatch("#fafafa", "light"), "light")
	assert.Greater(t, luminance(RGB{250, 250, 250}), 0.5)
	assert.Less(t, luminance(RGB{9, 9, 11}), 0.5)
}
