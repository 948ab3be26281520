package exporters

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/opencode-ai/designkit/internal/themes"
	"github.com/opencode-ai/designkit/internal/tokens"
)

var tsIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// tsString quotes s as a single-quoted TypeScript string literal.
func tsString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`)
	return "'" + r.Replace(s) + "'"
}

func tsKey(key string) string {
	if tsIdentifier.MatchString(key) {
		return key
	}
	return tsString(key)
}

// camel joins a prefix and a snake, kebab or spaced key into camelCase.
func camel(prefix, key string) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	upper := prefix != ""
	for _, r := range key {
		if r == '_' || r == '-' || r == ' ' || r == '.' {
			upper = true
			continue
		}
		if upper {
			sb.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

type tsWriter struct {
	sb       strings.Builder
	sections int
}

func (w *tsWriter) section(title string) {
	if w.sections > 0 {
		w.sb.WriteByte('\n')
	}
	w.sections++
	fmt.Fprintf(&w.sb, "// %s\n", title)
}

func (w *tsWriter) constant(name, literal string) {
	fmt.Fprintf(&w.sb, "export const %s = %s;\n", name, literal)
}

func tsObject[V any](m *orderedmap.OrderedMap[string, V], format func(V) string) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		fmt.Fprintf(&sb, "  %s: %s,\n", tsKey(pair.Key), format(pair.Value))
	}
	sb.WriteString("} as const")
	return sb.String()
}

func tsArray(values []string) string {
	return "[" + strings.Join(values, ", ") + "] as const"
}

func tsCurve(curve [4]float64) string {
	parts := make([]string, len(curve))
	for i, v := range curve {
		parts[i] = formatFloat(v)
	}
	return tsArray(parts)
}

func tsSpring(s tokens.SpringConfig) string {
	return fmt.Sprintf("{ damping: %s, mass: %s, stiffness: %s, overshootClamping: %t } as const",
		formatFloat(s.Damping), formatFloat(s.Mass), formatFloat(s.Stiffness), s.OvershootClamping)
}

func tsDuration(d tokens.Duration) string {
	return fmt.Sprintf("{ ms: %d, frames30: %d, frames60: %d, seconds: %s, css: %s } as const",
		d.MS, d.FramesAt30, d.FramesAt60, formatFloat(d.Seconds), tsString(d.CSSValue))
}

// TypeScript renders the theme as exported constants: one per color, one
// object per typography and spacing scale, and one per motion preset.
func TypeScript(theme *themes.Resolved) (string, error) {
	if theme == nil {
		return "", ErrNilTheme
	}
	roles, err := semanticRoles(theme)
	if err != nil {
		return "", err
	}

	w := &tsWriter{}
	fmt.Fprintf(&w.sb, "/**\n * Design tokens for the %s theme.\n", displayName(theme))
	if theme.Metadata.Description != "" {
		fmt.Fprintf(&w.sb, " * %s\n", strings.ReplaceAll(theme.Metadata.Description, "*/", "* /"))
	}
	w.sb.WriteString(" */\n\n")
	w.sections++

	if c := theme.Colors; c != nil && (len(roles) > 0 || len(c.Semantic.Chart) > 0 || c.Gradient != "") {
		w.section("Colors")
		for _, role := range roles {
			for _, v := range role.Group.Variants() {
				name := camel("color", role.Name)
				if v.Name != tokens.DefaultVariant {
					name = camel(name, v.Name)
				}
				w.constant(name, tsString(v.Value))
			}
		}
		if len(c.Semantic.Chart) > 0 {
			quoted := make([]string, len(c.Semantic.Chart))
			for i, v := range c.Semantic.Chart {
				quoted[i] = tsString(v)
			}
			w.constant("colorChart", tsArray(quoted))
		}
		if c.Gradient != "" {
			w.constant("gradient", tsString(c.Gradient))
		}
	}

	if t := theme.Typography; t != nil {
		w.section("Typography")
		if t.PrimaryFont != "" {
			w.constant("fontFamilyPrimary", tsString(t.PrimaryFont))
		}
		if t.BodyFont != "" {
			w.constant("fontFamilyBody", tsString(t.BodyFont))
		}
		if t.Families != nil {
			w.constant("fontFamily", tsObject(t.Families, func(f tokens.FontFamily) string { return tsString(f.Stack()) }))
		}
		if t.Sizes != nil {
			w.constant("fontSize", tsObject(t.Sizes, tsString))
		}
		if t.Weights != nil {
			w.constant("fontWeight", tsObject(t.Weights, strconv.Itoa))
		}
		if t.LineHeights != nil {
			w.constant("lineHeight", tsObject(t.LineHeights, formatFloat))
		}
	}

	if s := theme.Spacing; s != nil {
		w.section("Spacing")
		if s.Spacing != nil {
			w.constant("spacing", tsObject(s.Spacing, tsString))
		}
		if s.Radius != nil {
			w.constant("radius", tsObject(s.Radius, tsString))
		}
	}

	if m := theme.Motion; m != nil {
		w.section("Motion")
		if m.Durations != nil {
			for pair := m.Durations.Oldest(); pair != nil; pair = pair.Next() {
				w.constant(camel("duration", pair.Key), tsDuration(pair.Value))
			}
		}
		if m.Easings != nil {
			for pair := m.Easings.Oldest(); pair != nil; pair = pair.Next() {
				w.constant(camel("easing", pair.Key), tsCurve(pair.Value.Curve))
			}
		}
		writeSprings(w, m)
		if d := m.Defaults; d != nil {
			w.constant("defaultDuration", camel("duration", d.Duration))
			w.constant("defaultEasing", camel("easing", d.Easing))
			w.constant("defaultSpring", camel("spring", d.Spring))
		}
	}

	return w.sb.String(), nil
}

func writeSprings(w *tsWriter, m *tokens.MotionTokens) {
	if m.Springs == nil {
		return
	}
	for pair := m.Springs.Oldest(); pair != nil; pair = pair.Next() {
		w.constant(camel("spring", pair.Key), tsSpring(pair.Value.Config()))
	}
}

// SpringsTypeScript renders only the spring constants, for consumers that
// need physics configs without the rest of the theme.
func SpringsTypeScript(theme *themes.Resolved) (string, error) {
	if theme == nil {
		return "", ErrNilTheme
	}

	w := &tsWriter{}
	fmt.Fprintf(&w.sb, "/**\n * Spring configs for the %s theme.\n */\n\n", displayName(theme))
	if theme.Motion == nil {
		return w.sb.String(), nil
	}
	writeSprings(w, theme.Motion)
	if d := theme.Motion.Defaults; d != nil {
		w.constant("defaultSpring", camel("spring", d.Spring))
	}
	return w.sb.String(), nil
}
