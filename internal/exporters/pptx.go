package exporters

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/opencode-ai/designkit/internal/themes"
)

const (
	ptPerPx  = 0.75
	emuPerPx = 9525
)

// RGB is an 8-bit color triple. It encodes as a JSON array.
type RGB [3]uint8

func (c RGB) R() uint8 { return c[0] }
func (c RGB) G() uint8 { return c[1] }
func (c RGB) B() uint8 { return c[2] }

// HexToRGB parses "#rrggbb" (or "rrggbb", either case) into its channels.
func HexToRGB(hex string) (RGB, error) {
	h := strings.TrimSpace(hex)
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	c, err := colorful.Hex(h)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}, nil
}

// PxToPt converts CSS pixels to points.
func PxToPt(px float64) float64 {
	return px * ptPerPx
}

// PxToEMU converts CSS pixels to English Metric Units, truncating.
func PxToEMU(px float64) int64 {
	return int64(px * emuPerPx)
}

// PresentationColors maps each semantic role, and its hover, active and
// foreground variants as role_variant, to RGB.
func PresentationColors(theme *themes.Resolved) (*orderedmap.OrderedMap[string, RGB], error) {
	if theme == nil {
		return nil, ErrNilTheme
	}
	roles, err := semanticRoles(theme)
	if err != nil {
		return nil, err
	}

	out := orderedmap.New[string, RGB]()
	set := func(key, hex string) error {
		if hex == "" {
			return nil
		}
		rgb, err := HexToRGB(hex)
		if err != nil {
			return fmt.Errorf("color %s: %w", key, err)
		}
		out.Set(key, rgb)
		return nil
	}
	for _, role := range roles {
		g := role.Group
		for _, v := range []struct{ key, hex string }{
			{role.Name, g.Default},
			{role.Name + "_hover", g.Hover},
			{role.Name + "_active", g.Active},
			{role.Name + "_foreground", g.Foreground},
		} {
			if err := set(v.key, v.hex); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func parseLength(value, unit string) (float64, bool, error) {
	v := strings.TrimSpace(value)
	if !strings.HasSuffix(v, unit) {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(v, unit), 64)
	if err != nil {
		return 0, true, fmt.Errorf("parse length %q: %w", value, err)
	}
	return f, true, nil
}

// FontSizesPt returns the theme's font sizes in points. Values already in
// pt pass through, px are converted and bare numbers are taken as points.
func FontSizesPt(theme *themes.Resolved) (*orderedmap.OrderedMap[string, float64], error) {
	if theme == nil {
		return nil, ErrNilTheme
	}
	out := orderedmap.New[string, float64]()
	if theme.Typography == nil || theme.Typography.Sizes == nil {
		return out, nil
	}
	for pair := theme.Typography.Sizes.Oldest(); pair != nil; pair = pair.Next() {
		if pt, ok, err := parseLength(pair.Value, "pt"); ok {
			if err != nil {
				return nil, err
			}
			out.Set(pair.Key, pt)
			continue
		}
		if px, ok, err := parseLength(pair.Value, "px"); ok {
			if err != nil {
				return nil, err
			}
			out.Set(pair.Key, PxToPt(px))
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(pair.Value), 64)
		if err != nil {
			return nil, fmt.Errorf("font size %s: %w", pair.Key, err)
		}
		out.Set(pair.Key, f)
	}
	return out, nil
}

// SpacingEMU returns the px spacing steps in EMU. Steps in other units are
// omitted.
func SpacingEMU(theme *themes.Resolved) (*orderedmap.OrderedMap[string, int64], error) {
	if theme == nil {
		return nil, ErrNilTheme
	}
	out := orderedmap.New[string, int64]()
	if theme.Spacing == nil || theme.Spacing.Spacing == nil {
		return out, nil
	}
	for pair := theme.Spacing.Spacing.Oldest(); pair != nil; pair = pair.Next() {
		px, ok, err := parseLength(pair.Value, "px")
		if err != nil {
			return nil, fmt.Errorf("spacing %s: %w", pair.Key, err)
		}
		if ok {
			out.Set(pair.Key, PxToEMU(px))
		}
	}
	return out, nil
}

// PresentationTheme is every presentation-ready value for one theme.
type PresentationTheme struct {
	ColorsRGB   *orderedmap.OrderedMap[string, RGB]     `json:"colors_rgb"`
	FontSizesPt *orderedmap.OrderedMap[string, float64] `json:"font_sizes_pt"`
	SpacingEMU  *orderedmap.OrderedMap[string, int64]   `json:"spacing_emu"`
	Metadata    themes.Metadata                         `json:"metadata"`
}

// Presentation assembles the presentation projection.
func Presentation(theme *themes.Resolved) (*PresentationTheme, error) {
	colors, err := PresentationColors(theme)
	if err != nil {
		return nil, err
	}
	sizes, err := FontSizesPt(theme)
	if err != nil {
		return nil, err
	}
	spacing, err := SpacingEMU(theme)
	if err != nil {
		return nil, err
	}
	return &PresentationTheme{
		ColorsRGB:   colors,
		FontSizesPt: sizes,
		SpacingEMU:  spacing,
		Metadata:    theme.Metadata,
	}, nil
}

// PresentationJSON renders Presentation as JSON.
func PresentationJSON(theme *themes.Resolved, pretty bool) (string, error) {
	p, err := Presentation(theme)
	if err != nil {
		return "", err
	}
	var data []byte
	if pretty {
		data, err = json.MarshalIndent(p, "", "  ")
	} else {
		data, err = json.Marshal(p)
	}
	if err != nil {
		return "", fmt.Errorf("encode presentation: %w", err)
	}
	return string(data), nil
}
