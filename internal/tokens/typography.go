package tokens

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Medium is an output context with its own font-size scale.
type Medium string

const (
	MediumWeb        Medium = "web"
	MediumPPTX       Medium = "pptx"
	MediumVideo1080p Medium = "video_1080p"
	MediumVideo4K    Medium = "video_4k"
)

// Mediums lists the supported mediums.
func Mediums() []string {
	return fontSizes.keys()
}

// ParseMedium validates a medium name. Unknown mediums are an error; there
// is no fallback to web.
func ParseMedium(value string) (Medium, error) {
	if _, ok := fontSizes.lookup(value); !ok {
		return "", lookupError(ErrUnknownMedium, value, Mediums())
	}
	return Medium(value), nil
}

// FontFamily is a named font stack in fallback order.
type FontFamily struct {
	Name        string   `json:"name"`
	Fonts       []string `json:"fonts"`
	Description string   `json:"description"`
	Usage       string   `json:"usage"`
}

// Stack joins the fonts for a CSS font-family declaration.
func (f FontFamily) Stack() string {
	return strings.Join(f.Fonts, ", ")
}

func (f FontFamily) clone() FontFamily {
	f.Fonts = append([]string(nil), f.Fonts...)
	return f
}

// TextStyle references size, weight, line height, letter spacing and
// family by key. It is resolved against a medium by TextStyleFor.
type TextStyle struct {
	Name          string `json:"name"`
	FontSize      string `json:"fontSize"`
	FontWeight    string `json:"fontWeight"`
	LineHeight    string `json:"lineHeight"`
	LetterSpacing string `json:"letterSpacing"`
	FontFamily    string `json:"fontFamily"`
}

// ResolvedTextStyle carries concrete values for one medium.
type ResolvedTextStyle struct {
	Name          string  `json:"name"`
	FontSize      string  `json:"fontSize"`
	FontWeight    int     `json:"fontWeight"`
	LineHeight    float64 `json:"lineHeight"`
	LetterSpacing string  `json:"letterSpacing"`
	FontFamily    string  `json:"fontFamily"`
}

var fontFamilies = table[FontFamily]{
	{"display", FontFamily{
		Name:        "Display",
		Fonts:       []string{"Inter", "SF Pro Display", "system-ui", "sans-serif"},
		Description: "Large headings and titles",
		Usage:       "Headlines, hero text, main titles",
	}},
	{"body", FontFamily{
		Name:        "Body",
		Fonts:       []string{"Inter", "SF Pro Text", "system-ui", "sans-serif"},
		Description: "Body text and paragraphs",
		Usage:       "Paragraphs, descriptions, captions",
	}},
	{"mono", FontFamily{
		Name:        "Monospace",
		Fonts:       []string{"JetBrains Mono", "Fira Code", "Monaco", "Consolas", "monospace"},
		Description: "Code and technical content",
		Usage:       "Code blocks, technical text, data",
	}},
	{"decorative", FontFamily{
		Name:        "Decorative",
		Fonts:       []string{"Poppins", "Montserrat", "Raleway", "sans-serif"},
		Description: "Special emphasis and style",
		Usage:       "Stylized text, special callouts, branding",
	}},
}

// SizeKeys are the font-size steps every medium defines, smallest first.
var SizeKeys = []string{"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl"}

func sizeScale(values ...string) table[string] {
	t := make(table[string], len(SizeKeys))
	for i, key := range SizeKeys {
		t[i] = entry[string]{key, values[i]}
	}
	return t
}

var fontSizes = table[table[string]]{
	{string(MediumWeb), sizeScale("12px", "14px", "16px", "18px", "20px", "24px", "30px", "36px")},
	{string(MediumPPTX), sizeScale("14pt", "16pt", "18pt", "24pt", "32pt", "40pt", "48pt", "60pt")},
	{string(MediumVideo1080p), sizeScale("24px", "32px", "40px", "48px", "64px", "80px", "96px", "120px")},
	{string(MediumVideo4K), sizeScale("48px", "64px", "80px", "96px", "128px", "160px", "192px", "240px")},
}

var fontWeights = table[int]{
	{"thin", 100},
	{"extralight", 200},
	{"light", 300},
	{"regular", 400},
	{"medium", 500},
	{"semibold", 600},
	{"bold", 700},
	{"extrabold", 800},
	{"black", 900},
}

var lineHeights = table[float64]{
	{"none", 1.0},
	{"tight", 1.1},
	{"snug", 1.25},
	{"normal", 1.5},
	{"relaxed", 1.75},
	{"loose", 2.0},
}

var letterSpacing = table[string]{
	{"tighter", "-0.05em"},
	{"tight", "-0.025em"},
	{"normal", "0"},
	{"wide", "0.025em"},
	{"wider", "0.05em"},
	{"widest", "0.1em"},
}

var textStyles = table[TextStyle]{
	{"hero_title", TextStyle{"Hero Title", "4xl", "black", "tight", "tight", "display"}},
	{"title", TextStyle{"Title", "3xl", "bold", "tight", "tight", "display"}},
	{"heading", TextStyle{"Heading", "2xl", "semibold", "snug", "normal", "display"}},
	{"subheading", TextStyle{"Subheading", "xl", "medium", "snug", "normal", "display"}},
	{"body", TextStyle{"Body", "base", "regular", "normal", "normal", "body"}},
	{"caption", TextStyle{"Caption", "sm", "medium", "relaxed", "wide", "body"}},
	{"small", TextStyle{"Small", "xs", "regular", "relaxed", "normal", "body"}},
}

var typographyScale = table[string]{
	{"title_large", "4xl"},
	{"title_medium", "3xl"},
	{"title_small", "2xl"},
	{"body_large", "lg"},
	{"body_medium", "base"},
	{"body_small", "sm"},
}

// FontFamilies lists the family keys.
func FontFamilies() []string {
	return fontFamilies.keys()
}

// Family returns a font family by key.
func Family(key string) (FontFamily, error) {
	family, ok := fontFamilies.lookup(key)
	if !ok {
		return FontFamily{}, lookupError(ErrUnknownFamily, key, FontFamilies())
	}
	return family.clone(), nil
}

// FontStack returns the comma-joined font stack for a family key.
func FontStack(key string) (string, error) {
	family, err := Family(key)
	if err != nil {
		return "", err
	}
	return family.Stack(), nil
}

// TextStyles lists the text style keys.
func TextStyles() []string {
	return textStyles.keys()
}

// FontSizes returns the size scale for a medium.
func FontSizes(medium Medium) (*orderedmap.OrderedMap[string, string], error) {
	sizes, ok := fontSizes.lookup(string(medium))
	if !ok {
		return nil, lookupError(ErrUnknownMedium, string(medium), Mediums())
	}
	return ordered(sizes, same[string]), nil
}

// TextStyleFor resolves a text style's symbolic keys for a medium.
func TextStyleFor(name string, medium Medium) (ResolvedTextStyle, error) {
	style, ok := textStyles.lookup(name)
	if !ok {
		return ResolvedTextStyle{}, lookupError(ErrUnknownStyle, name, TextStyles())
	}
	sizes, ok := fontSizes.lookup(string(medium))
	if !ok {
		return ResolvedTextStyle{}, lookupError(ErrUnknownMedium, string(medium), Mediums())
	}

	// References are checked by Validate at init, so lookups below hit.
	size, _ := sizes.lookup(style.FontSize)
	weight, _ := fontWeights.lookup(style.FontWeight)
	lineHeight, _ := lineHeights.lookup(style.LineHeight)
	spacing, _ := letterSpacing.lookup(style.LetterSpacing)
	family, _ := fontFamilies.lookup(style.FontFamily)

	return ResolvedTextStyle{
		Name:          style.Name,
		FontSize:      size,
		FontWeight:    weight,
		LineHeight:    lineHeight,
		LetterSpacing: spacing,
		FontFamily:    family.Stack(),
	}, nil
}

// TypographyTokens bundles every typography table with sizes for one medium.
type TypographyTokens struct {
	Medium        Medium                                     `json:"medium"`
	Families      *orderedmap.OrderedMap[string, FontFamily] `json:"families"`
	Sizes         *orderedmap.OrderedMap[string, string]     `json:"sizes"`
	Weights       *orderedmap.OrderedMap[string, int]        `json:"weights"`
	LineHeights   *orderedmap.OrderedMap[string, float64]    `json:"lineHeights"`
	LetterSpacing *orderedmap.OrderedMap[string, string]     `json:"letterSpacing"`
	TextStyles    *orderedmap.OrderedMap[string, TextStyle]  `json:"textStyles"`
	Scale         *orderedmap.OrderedMap[string, string]     `json:"scale"`
	PrimaryFont   string                                     `json:"primaryFont,omitempty"`
	BodyFont      string                                     `json:"bodyFont,omitempty"`
}

// AllTypographyTokens assembles the typography bundle for a medium.
func AllTypographyTokens(medium Medium) (*TypographyTokens, error) {
	sizes, err := FontSizes(medium)
	if err != nil {
		return nil, err
	}
	return &TypographyTokens{
		Medium:        medium,
		Families:      ordered(fontFamilies, FontFamily.clone),
		Sizes:         sizes,
		Weights:       ordered(fontWeights, same[int]),
		LineHeights:   ordered(lineHeights, same[float64]),
		LetterSpacing: ordered(letterSpacing, same[string]),
		TextStyles:    ordered(textStyles, same[TextStyle]),
		Scale:         ordered(typographyScale, same[string]),
	}, nil
}
