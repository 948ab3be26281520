package exporters

import (
	"encoding/json"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/opencode-ai/designkit/internal/themes"
	"github.com/opencode-ai/designkit/internal/tokens"
)

// Token is one W3C design-token leaf.
type Token struct {
	Type        string `json:"$type"`
	Value       any    `json:"$value"`
	Description string `json:"$description,omitempty"`
}

type tokenGroup = orderedmap.OrderedMap[string, Token]

// tokenDocument is the top-level document, groups in insertion order.
type tokenDocument struct {
	groups *orderedmap.OrderedMap[string, *tokenGroup]
}

func newTokenDocument() *tokenDocument {
	return &tokenDocument{groups: orderedmap.New[string, *tokenGroup]()}
}

func (d *tokenDocument) group(name string) *tokenGroup {
	if g, ok := d.groups.Get(name); ok {
		return g
	}
	g := orderedmap.New[string, Token]()
	d.groups.Set(name, g)
	return g
}

func (d *tokenDocument) encode(pretty bool) (string, error) {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(d.groups, "", "  ")
	} else {
		data, err = json.Marshal(d.groups)
	}
	if err != nil {
		return "", fmt.Errorf("encode tokens: %w", err)
	}
	return string(data), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// W3CJSON renders the theme as a W3C Design Tokens document with groups
// color, dimension, fontFamily, fontSize, fontWeight, duration and
// cubicBezier.
func W3CJSON(theme *themes.Resolved, pretty bool) (string, error) {
	if theme == nil {
		return "", ErrNilTheme
	}
	roles, err := semanticRoles(theme)
	if err != nil {
		return "", err
	}

	doc := newTokenDocument()
	if theme.Colors != nil {
		colors := doc.group("color")
		for _, role := range roles {
			for _, v := range role.Group.Variants() {
				if v.Name == tokens.DefaultVariant {
					colors.Set(role.Name, Token{Type: "color", Value: v.Value, Description: capitalize(role.Name) + " color"})
					continue
				}
				colors.Set(role.Name+"-"+v.Name, Token{
					Type:        "color",
					Value:       v.Value,
					Description: fmt.Sprintf("%s %s color", capitalize(role.Name), v.Name),
				})
			}
		}
		for i, c := range chartColors(theme) {
			colors.Set(fmt.Sprintf("chart-%d", i+1), Token{Type: "color", Value: c})
		}
	}

	if s := theme.Spacing; s != nil && s.Spacing != nil {
		dims := doc.group("dimension")
		for pair := s.Spacing.Oldest(); pair != nil; pair = pair.Next() {
			dims.Set("space-"+pair.Key, Token{Type: "dimension", Value: pair.Value})
		}
	}

	if t := theme.Typography; t != nil {
		if t.Families != nil {
			families := doc.group("fontFamily")
			for pair := t.Families.Oldest(); pair != nil; pair = pair.Next() {
				families.Set(pair.Key, Token{Type: "fontFamily", Value: pair.Value.Fonts, Description: pair.Value.Description})
			}
		}
		if t.Sizes != nil {
			sizes := doc.group("fontSize")
			for pair := t.Sizes.Oldest(); pair != nil; pair = pair.Next() {
				sizes.Set(pair.Key, Token{Type: "dimension", Value: pair.Value})
			}
		}
		if t.Weights != nil {
			weights := doc.group("fontWeight")
			for pair := t.Weights.Oldest(); pair != nil; pair = pair.Next() {
				weights.Set(pair.Key, Token{Type: "number", Value: pair.Value})
			}
		}
	}

	if m := theme.Motion; m != nil {
		if m.Durations != nil {
			durations := doc.group("duration")
			for pair := m.Durations.Oldest(); pair != nil; pair = pair.Next() {
				durations.Set(pair.Key, Token{Type: "duration", Value: pair.Value.CSSValue, Description: pair.Value.Description})
			}
		}
		if m.Easings != nil {
			easings := doc.group("cubicBezier")
			for pair := m.Easings.Oldest(); pair != nil; pair = pair.Next() {
				easings.Set(pair.Key, Token{Type: "cubicBezier", Value: pair.Value.Curve, Description: pair.Value.Description})
			}
		}
	}

	return doc.encode(pretty)
}

var minimalColorRoles = []string{"primary", "secondary", "background", "foreground"}

// MinimalJSON renders only the four core colors and the t-shirt spacing
// scale. Both groups are always present.
func MinimalJSON(theme *themes.Resolved, pretty bool) (string, error) {
	if theme == nil {
		return "", ErrNilTheme
	}

	doc := newTokenDocument()
	colors := doc.group("color")
	dims := doc.group("dimension")

	if theme.Colors != nil {
		for _, name := range minimalColorRoles {
			g, ok := theme.Colors.Semantic.Group(name)
			if !ok || g.Default == "" {
				continue
			}
			colors.Set(name, Token{Type: "color", Value: g.Default})
		}
	}
	if s := theme.Spacing; s != nil && s.SpacingTshirt != nil {
		for pair := s.SpacingTshirt.Oldest(); pair != nil; pair = pair.Next() {
			dims.Set("space-"+pair.Key, Token{Type: "dimension", Value: pair.Value})
		}
	}

	return doc.encode(pretty)
}
