package exporters

import (
	"fmt"
	"strconv"

	"github.com/opencode-ai/designkit/internal/themes"
)

// platformSizeBuckets folds the eight font-size steps into the three
// buckets of the --content-* vocabulary.
var platformSizeBuckets = map[string]string{
	"xs":   "small",
	"sm":   "small",
	"base": "medium",
	"lg":   "medium",
	"xl":   "large",
	"2xl":  "large",
	"3xl":  "large",
	"4xl":  "large",
}

// PlatformCSS renders the theme with the fixed --content-* variable names
// used by design-platform app SDKs. The names are not prefixable.
func PlatformCSS(theme *themes.Resolved) (string, error) {
	if theme == nil {
		return "", ErrNilTheme
	}
	if _, err := semanticRoles(theme); err != nil {
		return "", err
	}

	var b cssBlock
	if theme.Colors != nil {
		s := theme.Colors.Semantic
		emitted := false
		color := func(name, value string) {
			if value == "" {
				return
			}
			if !emitted {
				b.section("Colors")
				emitted = true
			}
			b.decl("content-color-"+name, value)
		}
		color("primary", s.Primary.Default)
		color("primary-foreground", s.Primary.Foreground)
		color("secondary", s.Secondary.Default)
		color("tertiary", s.Accent.Default)
		color("bg", s.Background.Default)
		color("typography-primary", s.Foreground.Default)
		color("typography-secondary", s.Foreground.Hover)
		color("success", s.Success.Default)
		color("warning", s.Warning.Default)
		color("error", s.Destructive.Default)
	}

	if sp := theme.Spacing; sp != nil && sp.Spacing != nil {
		b.section("Spacing (unit system: 1u = 8px)")
		for pair := sp.Spacing.Oldest(); pair != nil; pair = pair.Next() {
			b.decl("content-space-"+spacingKey(pair.Key), pair.Value)
		}
	}

	if t := theme.Typography; t != nil && t.Sizes != nil {
		b.section("Typography")
		for pair := t.Sizes.Oldest(); pair != nil; pair = pair.Next() {
			bucket, ok := platformSizeBuckets[pair.Key]
			if !ok {
				continue
			}
			b.decl(fmt.Sprintf("content-typography-%s-%s", bucket, pair.Key), pair.Value)
		}
	}

	if t := theme.Typography; t != nil && t.Weights != nil {
		b.section("Font weights")
		for pair := t.Weights.Oldest(); pair != nil; pair = pair.Next() {
			b.decl("content-typography-weight-"+pair.Key, strconv.Itoa(pair.Value))
		}
	}

	return b.String(), nil
}

// PlatformColorsCSS renders only each semantic category's base color.
func PlatformColorsCSS(theme *themes.Resolved) (string, error) {
	if theme == nil {
		return "", ErrNilTheme
	}
	roles, err := semanticRoles(theme)
	if err != nil {
		return "", err
	}

	var b cssBlock
	for _, role := range roles {
		b.decl("content-color-"+role.Name, role.Group.Default)
	}
	return b.String(), nil
}
