package tokens

import (
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SafeArea is a platform's content inset in pixels.
type SafeArea struct {
	Top         int    `json:"top"`
	Bottom      int    `json:"bottom"`
	Left        int    `json:"left"`
	Right       int    `json:"right"`
	AspectRatio string `json:"aspectRatio"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
}

// GridConfig is a column layout.
type GridConfig struct {
	Columns int    `json:"columns"`
	Gap     string `json:"gap"`
	Margin  string `json:"margin"`
}

// spacing is the 8px unit scale; "1u" is one unit.
var spacing = table[string]{
	{"0", "0px"},
	{"0.5u", "4px"},
	{"1u", "8px"},
	{"1.5u", "12px"},
	{"2u", "16px"},
	{"3u", "24px"},
	{"4u", "32px"},
	{"5u", "40px"},
	{"6u", "48px"},
	{"8u", "64px"},
	{"10u", "80px"},
	{"12u", "96px"},
	{"16u", "128px"},
	{"20u", "160px"},
	{"24u", "192px"},
}

func unit(key string) string {
	value, ok := spacing.lookup(key)
	if !ok {
		panic("tokens: spacing scale is missing " + key)
	}
	return value
}

var spacingTshirt = table[string]{
	{"xs", unit("0.5u")},
	{"sm", unit("1u")},
	{"md", unit("2u")},
	{"lg", unit("3u")},
	{"xl", unit("4u")},
	{"2xl", unit("6u")},
	{"3xl", unit("8u")},
	{"4xl", unit("12u")},
}

var margins = table[string]{
	{"page", unit("4u")},
	{"section", unit("6u")},
	{"container", unit("2u")},
}

var padding = table[string]{
	{"tight", unit("1u")},
	{"normal", unit("2u")},
	{"relaxed", unit("3u")},
	{"loose", unit("4u")},
}

var gaps = table[string]{
	{"tight", unit("1u")},
	{"normal", unit("2u")},
	{"relaxed", unit("3u")},
	{"loose", unit("4u")},
}

var radius = table[string]{
	{"none", "0"},
	{"sm", "4px"},
	{"md", "8px"},
	{"lg", "12px"},
	{"xl", "16px"},
	{"2xl", "24px"},
	{"full", "9999px"},
}

var borderWidth = table[string]{
	{"none", "0"},
	{"thin", "1px"},
	{"medium", "2px"},
	{"thick", "4px"},
}

var safeAreas = table[SafeArea]{
	{"youtube_shorts", SafeArea{100, 180, 40, 40, "9:16", "YouTube Shorts safe area avoiding UI overlays", "Vertical video for YouTube Shorts"}},
	{"tiktok", SafeArea{120, 200, 40, 40, "9:16", "TikTok safe area avoiding UI elements", "Vertical video for TikTok"}},
	{"instagram_story", SafeArea{100, 220, 40, 40, "9:16", "Instagram Stories safe area", "Vertical video for Instagram Stories"}},
	{"instagram_reel", SafeArea{100, 200, 40, 40, "9:16", "Instagram Reels safe area", "Vertical video for Instagram Reels"}},
	{"youtube_landscape", SafeArea{60, 60, 80, 80, "16:9", "YouTube landscape video safe area", "Horizontal video for YouTube"}},
	{"presentation", SafeArea{40, 40, 60, 60, "16:9", "PowerPoint/Keynote presentation safe area", "Presentation slides"}},
	{"none", SafeArea{0, 0, 0, 0, "any", "No safe area restrictions", "Full bleed content"}},
}

var grids = table[GridConfig]{
	{"12_column", GridConfig{Columns: 12, Gap: unit("2u"), Margin: unit("4u")}},
	{"8_column", GridConfig{Columns: 8, Gap: unit("2u"), Margin: unit("3u")}},
	{"4_column", GridConfig{Columns: 4, Gap: unit("2u"), Margin: unit("2u")}},
}

var containers = table[string]{
	{"sm", "640px"},
	{"md", "768px"},
	{"lg", "1024px"},
	{"xl", "1280px"},
	{"2xl", "1536px"},
	{"full", "100%"},
}

var aspectRatios = table[string]{
	{"square", "1:1"},
	{"video", "16:9"},
	{"portrait", "9:16"},
	{"ultrawide", "21:9"},
	{"cinema", "2.39:1"},
	{"presentation", "4:3"},
}

var zIndex = table[int]{
	{"base", 0},
	{"dropdown", 1000},
	{"sticky", 1100},
	{"overlay", 1200},
	{"modal", 1300},
	{"popover", 1400},
	{"tooltip", 1500},
}

// Platforms lists the safe-area platform keys.
func Platforms() []string {
	return safeAreas.keys()
}

// SafeAreaFor returns the safe area for a platform.
func SafeAreaFor(platform string) (SafeArea, error) {
	area, ok := safeAreas.lookup(platform)
	if !ok {
		return SafeArea{}, lookupError(ErrUnknownPlatform, platform, Platforms())
	}
	return area, nil
}

// GridFor returns the grid with the given column count. Only 12, 8 and 4
// are defined.
func GridFor(columns int) (GridConfig, error) {
	key := strconv.Itoa(columns) + "_column"
	grid, ok := grids.lookup(key)
	if !ok {
		return GridConfig{}, lookupError(ErrUnknownGrid, strconv.Itoa(columns), []string{"12", "8", "4"})
	}
	return grid, nil
}

// SpacingTokens bundles every spacing table. ActiveSafeArea is set only
// when a theme selects a platform.
type SpacingTokens struct {
	Spacing        *orderedmap.OrderedMap[string, string]     `json:"spacing"`
	SpacingTshirt  *orderedmap.OrderedMap[string, string]     `json:"spacingTshirt"`
	Margins        *orderedmap.OrderedMap[string, string]     `json:"margins"`
	Padding        *orderedmap.OrderedMap[string, string]     `json:"padding"`
	Gaps           *orderedmap.OrderedMap[string, string]     `json:"gaps"`
	Radius         *orderedmap.OrderedMap[string, string]     `json:"radius"`
	BorderWidth    *orderedmap.OrderedMap[string, string]     `json:"borderWidth"`
	SafeAreas      *orderedmap.OrderedMap[string, SafeArea]   `json:"safeAreas"`
	Grid           *orderedmap.OrderedMap[string, GridConfig] `json:"grid"`
	Containers     *orderedmap.OrderedMap[string, string]     `json:"containers"`
	AspectRatios   *orderedmap.OrderedMap[string, string]     `json:"aspectRatios"`
	ZIndex         *orderedmap.OrderedMap[string, int]        `json:"zIndex"`
	ActiveSafeArea *SafeArea                                  `json:"activeSafeArea,omitempty"`
}

// AllSpacingTokens assembles the spacing bundle.
func AllSpacingTokens() *SpacingTokens {
	return &SpacingTokens{
		Spacing:       ordered(spacing, same[string]),
		SpacingTshirt: ordered(spacingTshirt, same[string]),
		Margins:       ordered(margins, same[string]),
		Padding:       ordered(padding, same[string]),
		Gaps:          ordered(gaps, same[string]),
		Radius:        ordered(radius, same[string]),
		BorderWidth:   ordered(borderWidth, same[string]),
		SafeAreas:     ordered(safeAreas, same[SafeArea]),
		Grid:          ordered(grids, same[GridConfig]),
		Containers:    ordered(containers, same[string]),
		AspectRatios:  ordered(aspectRatios, same[string]),
		ZIndex:        ordered(zIndex, same[int]),
	}
}
