package exporters

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/designkit/internal/themes"
)

// Styles contains lipgloss styles derived from a theme's semantic colors.
type Styles struct {
	Title       lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Primary     lipgloss.Style
	Accent      lipgloss.Style
	Panel       lipgloss.Style
	Border      lipgloss.Style
	Button      lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
	Destructive lipgloss.Style
	Info        lipgloss.Style
}

// BuildStyles converts theme colors into lipgloss styles. A theme without
// colors yields unstyled values.
func BuildStyles(theme *themes.Resolved) (Styles, error) {
	if theme == nil {
		return Styles{}, ErrNilTheme
	}
	if _, err := semanticRoles(theme); err != nil {
		return Styles{}, err
	}
	if theme.Colors == nil {
		plain := lipgloss.NewStyle()
		return Styles{
			Title: plain.Bold(true), Text: plain, Muted: plain, Primary: plain, Accent: plain, Panel: plain,
			Border: plain, Button: plain, Success: plain, Warning: plain, Destructive: plain, Info: plain,
		}, nil
	}

	s := theme.Colors.Semantic
	fg := func(hex string) lipgloss.Style {
		style := lipgloss.NewStyle()
		if hex != "" {
			style = style.Foreground(lipgloss.Color(hex))
		}
		return style
	}

	return Styles{
		Title:       fg(s.Foreground.Default).Bold(true),
		Text:        fg(s.Foreground.Default),
		Muted:       fg(s.Muted.Foreground),
		Primary:     fg(s.Primary.Default).Bold(true),
		Accent:      fg(s.Accent.Default),
		Panel:       fg(s.Card.Foreground).Background(lipgloss.Color(s.Card.Default)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(s.Border.Default)),
		Border:      fg(s.Border.Default),
		Button:      fg(s.Primary.Foreground).Background(lipgloss.Color(s.Primary.Default)).Padding(0, 1),
		Success:     fg(s.Success.Default),
		Warning:     fg(s.Warning.Default),
		Destructive: fg(s.Destructive.Default),
		Info:        fg(s.Info.Default),
	}, nil
}

// Role returns the style for a semantic color role name. Roles without a
// dedicated style use Text.
func (s Styles) Role(name string) lipgloss.Style {
	switch name {
	case "primary":
		return s.Primary
	case "accent":
		return s.Accent
	case "muted", "secondary":
		return s.Muted
	case "border", "card":
		return s.Border
	case "success":
		return s.Success
	case "warning":
		return s.Warning
	case "destructive":
		return s.Destructive
	case "info":
		return s.Info
	}
	return s.Text
}

// Swatch renders label on a block of the given color with a readable
// foreground.
func Swatch(hex, label string) string {
	fg := "#ffffff"
	if rgb, err := HexToRGB(hex); err == nil && luminance(rgb) > 0.5 {
		fg = "#000000"
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(hex)).
		Padding(0, 1).
		Render(label)
}

func luminance(c RGB) float64 {
	return (0.299*float64(c.R()) + 0.587*float64(c.G()) + 0.114*float64(c.B())) / 255
}
