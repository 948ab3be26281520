package exporters

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/opencode-ai/designkit/internal/themes"
	"github.com/opencode-ai/designkit/internal/tokens"
)

// cssBlock collects declarations for one :root block, grouped into
// commented sections separated by blank lines.
type cssBlock struct {
	lines    []string
	sections int
}

func (b *cssBlock) section(title string) {
	if b.sections > 0 {
		b.lines = append(b.lines, "")
	}
	b.sections++
	b.lines = append(b.lines, "  /* "+title+" */")
}

func (b *cssBlock) decl(name, value string) {
	b.lines = append(b.lines, fmt.Sprintf("  --%s: %s;", name, value))
}

func (b *cssBlock) comment(text string) {
	b.lines = append(b.lines, "  /* "+strings.ReplaceAll(text, "*/", "* /")+" */")
}

func (b *cssBlock) String() string {
	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, line := range b.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString("}")
	return sb.String()
}

func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "-")
	if prefix == "" {
		return DefaultPrefix
	}
	return prefix
}

// CSS renders the theme as custom properties on :root, each named
// --{prefix}-{group}-{key}.
func CSS(theme *themes.Resolved, prefix string) (string, error) {
	if theme == nil {
		return "", ErrNilTheme
	}
	p := normalizePrefix(prefix)
	roles, err := semanticRoles(theme)
	if err != nil {
		return "", err
	}

	var b cssBlock
	b.comment(fmt.Sprintf("%s Theme: %s", displayName(theme), theme.Metadata.Description))

	if c := theme.Colors; c != nil && (len(roles) > 0 || len(c.Semantic.Chart) > 0 || c.Gradient != "") {
		b.section("Colors")
		for _, role := range roles {
			for _, v := range role.Group.Variants() {
				name := fmt.Sprintf("%s-color-%s", p, role.Name)
				if v.Name != tokens.DefaultVariant {
					name += "-" + v.Name
				}
				b.decl(name, v.Value)
			}
		}
		for i, c := range chartColors(theme) {
			b.decl(fmt.Sprintf("%s-color-chart-%d", p, i+1), c)
		}
		if theme.Colors.Gradient != "" {
			b.decl(p+"-gradient", theme.Colors.Gradient)
		}
	}

	if s := theme.Spacing; s != nil && s.Spacing != nil {
		b.section("Spacing")
		for pair := s.Spacing.Oldest(); pair != nil; pair = pair.Next() {
			b.decl(fmt.Sprintf("%s-space-%s", p, spacingKey(pair.Key)), pair.Value)
		}
	}

	if t := theme.Typography; t != nil {
		b.section("Typography")
		if t.PrimaryFont != "" {
			b.decl(p+"-font-primary", t.PrimaryFont)
		}
		if t.BodyFont != "" {
			b.decl(p+"-font-body", t.BodyFont)
		}
		if t.Families != nil {
			for pair := t.Families.Oldest(); pair != nil; pair = pair.Next() {
				b.decl(fmt.Sprintf("%s-font-family-%s", p, pair.Key), pair.Value.Stack())
			}
		}
		if t.Sizes != nil {
			for pair := t.Sizes.Oldest(); pair != nil; pair = pair.Next() {
				b.decl(fmt.Sprintf("%s-font-size-%s", p, pair.Key), pair.Value)
			}
		}
		if t.Weights != nil {
			for pair := t.Weights.Oldest(); pair != nil; pair = pair.Next() {
				b.decl(fmt.Sprintf("%s-font-weight-%s", p, pair.Key), strconv.Itoa(pair.Value))
			}
		}
		if t.LineHeights != nil {
			for pair := t.LineHeights.Oldest(); pair != nil; pair = pair.Next() {
				b.decl(fmt.Sprintf("%s-line-height-%s", p, pair.Key), formatFloat(pair.Value))
			}
		}
		if t.LetterSpacing != nil {
			for pair := t.LetterSpacing.Oldest(); pair != nil; pair = pair.Next() {
				b.decl(fmt.Sprintf("%s-letter-spacing-%s", p, pair.Key), pair.Value)
			}
		}
	}

	if s := theme.Spacing; s != nil && s.Radius != nil {
		b.section("Border Radius")
		for pair := s.Radius.Oldest(); pair != nil; pair = pair.Next() {
			b.decl(fmt.Sprintf("%s-radius-%s", p, pair.Key), pair.Value)
		}
	}

	if m := theme.Motion; m != nil && m.Durations != nil {
		b.section("Durations")
		for pair := m.Durations.Oldest(); pair != nil; pair = pair.Next() {
			b.decl(fmt.Sprintf("%s-duration-%s", p, cssName(pair.Key)), pair.Value.CSSValue)
		}
	}

	if m := theme.Motion; m != nil && m.Easings != nil {
		b.section("Easings")
		for pair := m.Easings.Oldest(); pair != nil; pair = pair.Next() {
			b.decl(fmt.Sprintf("%s-easing-%s", p, cssName(pair.Key)), pair.Value.CSSValue)
		}
	}

	return b.String(), nil
}

// cssName turns snake_case keys into kebab-case.
func cssName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

var spacingUtilities = []struct {
	class    string
	property string
}{
	{"m", "margin"},
	{"mt", "margin-top"},
	{"mb", "margin-bottom"},
	{"ml", "margin-left"},
	{"mr", "margin-right"},
	{"p", "padding"},
	{"pt", "padding-top"},
	{"pb", "padding-bottom"},
	{"pl", "padding-left"},
	{"pr", "padding-right"},
}

// UtilityClasses renders margin and padding classes for every spacing
// step, shorthand and per side.
func UtilityClasses(theme *themes.Resolved, prefix string) (string, error) {
	if theme == nil {
		return "", ErrNilTheme
	}
	p := normalizePrefix(prefix)
	if theme.Spacing == nil || theme.Spacing.Spacing == nil {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("/* Spacing Utilities */\n")
	for pair := theme.Spacing.Spacing.Oldest(); pair != nil; pair = pair.Next() {
		key := spacingKey(pair.Key)
		for _, u := range spacingUtilities {
			fmt.Fprintf(&sb, ".%s-%s-%s { %s: %s; }\n", p, u.class, key, u.property, pair.Value)
		}
	}
	return sb.String(), nil
}
