// Package themes provides the theme registry: preset loading, lookup and
// resolution into concrete token bundles.
package themes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opencode-ai/designkit/internal/tokens"
)

var (
	// ErrThemeNameRequired is returned when a theme has no name.
	ErrThemeNameRequired = errors.New("theme name is required")
	// ErrThemeNotFound is returned when a theme is not registered.
	ErrThemeNotFound = errors.New("theme not found")
	// ErrThemeExists is returned when a theme key is registered twice.
	ErrThemeExists = errors.New("theme already registered")
)

// NotFoundError names the requested theme and the keys that exist.
type NotFoundError struct {
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("theme %q not found (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrThemeNotFound
}

// ValidationError describes an invalid field in a theme config.
type ValidationError struct {
	Theme   string
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Theme != "" {
		return fmt.Sprintf("theme %s: %s: %s", e.Theme, e.Field, e.Message)
	}
	return fmt.Sprintf("theme %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Config is a theme preset. It references token keys and never defines
// values of its own.
type Config struct {
	Key         string           `yaml:"key" json:"key"`
	Name        string           `yaml:"name" json:"name"`
	Description string           `yaml:"description" json:"description"`
	Category    string           `yaml:"category" json:"category"`
	Colors      ColorConfig      `yaml:"colors" json:"colors"`
	Typography  TypographyConfig `yaml:"typography" json:"typography"`
	Spacing     SpacingConfig    `yaml:"spacing" json:"spacing"`
	Motion      MotionConfig     `yaml:"motion" json:"motion"`
	Tags        []string         `yaml:"tags,omitempty" json:"tags"`
	Source      string           `yaml:"-" json:"source,omitempty"` // file path or "builtin"
}

// ColorConfig selects the palette hue and mode. Gradient is either CSS or
// the name of a catalog gradient.
type ColorConfig struct {
	PrimaryHue string `yaml:"primary_hue" json:"primaryHue"`
	Mode       string `yaml:"mode" json:"mode"`
	Gradient   string `yaml:"gradient,omitempty" json:"gradient,omitempty"`
}

// TypographyConfig selects the medium and font families.
type TypographyConfig struct {
	Medium      string `yaml:"medium,omitempty" json:"medium"`
	PrimaryFont string `yaml:"primary_font,omitempty" json:"primaryFont"`
	BodyFont    string `yaml:"body_font,omitempty" json:"bodyFont"`
}

// SpacingConfig selects density and an optional platform safe area.
type SpacingConfig struct {
	Density  string `yaml:"density,omitempty" json:"density"`
	SafeArea string `yaml:"safe_area,omitempty" json:"safeArea,omitempty"`
}

// MotionConfig names the theme's default duration, easing and spring.
type MotionConfig struct {
	DefaultDuration string `yaml:"default_duration,omitempty" json:"defaultDuration"`
	DefaultEasing   string `yaml:"default_easing,omitempty" json:"defaultEasing"`
	DefaultSpring   string `yaml:"default_spring,omitempty" json:"defaultSpring"`
}

const (
	defaultMedium      = string(tokens.MediumWeb)
	defaultPrimaryFont = "display"
	defaultBodyFont    = "body"
	defaultDensity     = "normal"
	defaultDuration    = "normal"
	defaultEasing      = "ease_out"
	defaultSpring      = "smooth"
)

// ApplyDefaults fills unset optional fields.
func (c *Config) ApplyDefaults() {
	c.Name = strings.TrimSpace(c.Name)
	c.Key = strings.ToLower(strings.TrimSpace(c.Key))
	if c.Key == "" {
		c.Key = strings.ToLower(c.Name)
	}
	c.Colors.PrimaryHue = strings.TrimSpace(c.Colors.PrimaryHue)
	c.Colors.Mode = strings.ToLower(strings.TrimSpace(c.Colors.Mode))
	setDefault(&c.Typography.Medium, defaultMedium)
	setDefault(&c.Typography.PrimaryFont, defaultPrimaryFont)
	setDefault(&c.Typography.BodyFont, defaultBodyFont)
	setDefault(&c.Spacing.Density, defaultDensity)
	setDefault(&c.Motion.DefaultDuration, defaultDuration)
	setDefault(&c.Motion.DefaultEasing, defaultEasing)
	setDefault(&c.Motion.DefaultSpring, defaultSpring)
	if c.Tags == nil {
		c.Tags = []string{}
	}
}

func setDefault(field *string, value string) {
	if strings.TrimSpace(*field) == "" {
		*field = value
	}
}

// Validate checks that every token key the theme references exists.
func (c *Config) Validate() error {
	if c.Name == "" {
		return ErrThemeNameRequired
	}
	if strings.ContainsAny(c.Key, " \t/") {
		return c.invalid("key", "must not contain spaces or slashes", nil)
	}

	if _, err := tokens.Color(c.Colors.PrimaryHue, 500); err != nil {
		return c.invalid("colors.primary_hue", err.Error(), err)
	}
	if _, err := tokens.ParseMode(c.Colors.Mode); err != nil {
		return c.invalid("colors.mode", err.Error(), err)
	}
	if _, err := c.gradientCSS(); err != nil {
		return c.invalid("colors.gradient", err.Error(), err)
	}
	if _, err := tokens.ParseMedium(c.Typography.Medium); err != nil {
		return c.invalid("typography.medium", err.Error(), err)
	}
	if _, err := tokens.Family(c.Typography.PrimaryFont); err != nil {
		return c.invalid("typography.primary_font", err.Error(), err)
	}
	if _, err := tokens.Family(c.Typography.BodyFont); err != nil {
		return c.invalid("typography.body_font", err.Error(), err)
	}
	if c.Spacing.SafeArea != "" {
		if _, err := tokens.SafeAreaFor(c.Spacing.SafeArea); err != nil {
			return c.invalid("spacing.safe_area", err.Error(), err)
		}
	}
	if _, err := tokens.ResolveMotionDefaults(c.Motion.DefaultDuration, c.Motion.DefaultEasing, c.Motion.DefaultSpring); err != nil {
		return c.invalid("motion", err.Error(), err)
	}
	return nil
}

func (c *Config) invalid(field, message string, err error) error {
	return &ValidationError{Theme: c.Key, Field: field, Message: message, Err: err}
}

// gradientCSS expands a gradient name into its CSS. Values that already
// look like CSS are returned as is.
func (c *Config) gradientCSS() (string, error) {
	value := strings.TrimSpace(c.Colors.Gradient)
	if value == "" || strings.Contains(value, "(") {
		return value, nil
	}
	return tokens.Gradient(value)
}

// Metadata is the label-only view of a theme.
type Metadata struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// Summary is one row of the theme listing.
type Summary struct {
	Name        string   `json:"name"`
	Key         string   `json:"key"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// Metadata returns the theme's labels.
func (c *Config) Metadata() Metadata {
	return Metadata{
		Name:        c.Name,
		Description: c.Description,
		Category:    c.Category,
		Tags:        append([]string{}, c.Tags...),
	}
}

// Summary returns the theme's listing row.
func (c *Config) Summary() Summary {
	return Summary{
		Name:        c.Name,
		Key:         c.Key,
		Description: c.Description,
		Category:    c.Category,
		Tags:        append([]string{}, c.Tags...),
	}
}
