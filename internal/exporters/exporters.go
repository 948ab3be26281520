// Package exporters projects a resolved theme into CSS, TypeScript, W3C
// design-token JSON, presentation primitives and terminal styles.
package exporters

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/opencode-ai/designkit/internal/themes"
	"github.com/opencode-ai/designkit/internal/tokens"
)

var (
	// ErrNilTheme is returned when an exporter receives no theme.
	ErrNilTheme = errors.New("theme is required")
	// ErrUnknownFormat is returned for an unsupported export format.
	ErrUnknownFormat = errors.New("unknown export format")
)

// InvalidThemeError reports a structurally broken section of a theme.
type InvalidThemeError struct {
	Category string
	Message  string
}

func (e *InvalidThemeError) Error() string {
	return fmt.Sprintf("invalid theme: color category %s: %s", e.Category, e.Message)
}

// DefaultPrefix is the CSS variable prefix used when none is given.
const DefaultPrefix = "ds"

// semanticRoles returns the roles to export. Empty groups are skipped; a
// group with variants but no DEFAULT is an error.
func semanticRoles(theme *themes.Resolved) ([]tokens.Role, error) {
	if theme.Colors == nil {
		return nil, nil
	}
	roles := make([]tokens.Role, 0, 12)
	for _, role := range theme.Colors.Semantic.Groups() {
		if role.Group.IsZero() {
			continue
		}
		if role.Group.Default == "" {
			return nil, &InvalidThemeError{Category: role.Name, Message: "missing DEFAULT color"}
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func chartColors(theme *themes.Resolved) []string {
	if theme.Colors == nil {
		return nil
	}
	return theme.Colors.Semantic.Chart
}

// spacingKey turns a unit key such as "1.5u" into "1-5".
func spacingKey(key string) string {
	return strings.ReplaceAll(strings.ReplaceAll(key, "u", ""), ".", "-")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func displayName(theme *themes.Resolved) string {
	if theme.Metadata.Name != "" {
		return theme.Metadata.Name
	}
	return theme.Key
}

// Format names an export target.
type Format string

const (
	FormatCSS            Format = "css"
	FormatUtilities      Format = "utilities"
	FormatPlatformCSS    Format = "platform-css"
	FormatPlatformColors Format = "platform-colors"
	FormatTypeScript     Format = "typescript"
	FormatSpringsTS      Format = "springs-ts"
	FormatW3CJSON        Format = "w3c-json"
	FormatMinimalJSON    Format = "minimal-json"
	FormatPresentation   Format = "pptx-json"
)

var formatAliases = map[string]Format{
	"canva": FormatPlatformCSS,
	"ts":    FormatTypeScript,
	"json":  FormatW3CJSON,
	"w3c":   FormatW3CJSON,
	"pptx":  FormatPresentation,
}

// Formats lists every supported format.
func Formats() []Format {
	return []Format{
		FormatCSS,
		FormatUtilities,
		FormatPlatformCSS,
		FormatPlatformColors,
		FormatTypeScript,
		FormatSpringsTS,
		FormatW3CJSON,
		FormatMinimalJSON,
		FormatPresentation,
	}
}

// ParseFormat resolves a format name or alias.
func ParseFormat(value string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	if alias, ok := formatAliases[name]; ok {
		return alias, nil
	}
	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}
	valid := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		valid = append(valid, string(f))
	}
	return "", fmt.Errorf("%w %q (valid: %s)", ErrUnknownFormat, value, strings.Join(valid, ", "))
}

// Options tunes Export.
type Options struct {
	Prefix string // CSS variable and class prefix
	Pretty bool   // indent JSON output
}

// Export renders a theme in the given format.
func Export(theme *themes.Resolved, format Format, opts Options) (string, error) {
	switch format {
	case FormatCSS:
		return CSS(theme, opts.Prefix)
	case FormatUtilities:
		return UtilityClasses(theme, opts.Prefix)
	case FormatPlatformCSS:
		return PlatformCSS(theme)
	case FormatPlatformColors:
		return PlatformColorsCSS(theme)
	case FormatTypeScript:
		return TypeScript(theme)
	case FormatSpringsTS:
		return SpringsTypeScript(theme)
	case FormatW3CJSON:
		return W3CJSON(theme, opts.Pretty)
	case FormatMinimalJSON:
		return MinimalJSON(theme, opts.Pretty)
	case FormatPresentation:
		return PresentationJSON(theme, opts.Pretty)
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, format)
}
