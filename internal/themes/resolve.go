package themes

import (
	"fmt"

	"github.com/opencode-ai/designkit/internal/tokens"
)

// Resolved is a theme expanded into concrete tokens. Sections are nil when
// absent and exporters skip them.
type Resolved struct {
	Key        string                   `json:"key"`
	Metadata   Metadata                 `json:"metadata"`
	Colors     *tokens.ColorTokens      `json:"colors,omitempty"`
	Typography *tokens.TypographyTokens `json:"typography,omitempty"`
	Spacing    *tokens.SpacingTokens    `json:"spacing,omitempty"`
	Motion     *tokens.MotionTokens     `json:"motion,omitempty"`
}

// Resolve runs every token resolver with the config's parameters.
func Resolve(cfg *Config) (*Resolved, error) {
	if cfg == nil {
		return nil, fmt.Errorf("theme config is required")
	}

	colors, err := tokens.AllColorTokens(cfg.Colors.PrimaryHue, tokens.Mode(cfg.Colors.Mode))
	if err != nil {
		return nil, fmt.Errorf("resolve %s colors: %w", cfg.Key, err)
	}
	gradient, err := cfg.gradientCSS()
	if err != nil {
		return nil, fmt.Errorf("resolve %s gradient: %w", cfg.Key, err)
	}
	colors.Gradient = gradient

	typography, err := tokens.AllTypographyTokens(tokens.Medium(cfg.Typography.Medium))
	if err != nil {
		return nil, fmt.Errorf("resolve %s typography: %w", cfg.Key, err)
	}
	if typography.PrimaryFont, err = tokens.FontStack(cfg.Typography.PrimaryFont); err != nil {
		return nil, fmt.Errorf("resolve %s primary font: %w", cfg.Key, err)
	}
	if typography.BodyFont, err = tokens.FontStack(cfg.Typography.BodyFont); err != nil {
		return nil, fmt.Errorf("resolve %s body font: %w", cfg.Key, err)
	}

	spacing := tokens.AllSpacingTokens()
	if cfg.Spacing.SafeArea != "" {
		area, err := tokens.SafeAreaFor(cfg.Spacing.SafeArea)
		if err != nil {
			return nil, fmt.Errorf("resolve %s safe area: %w", cfg.Key, err)
		}
		spacing.ActiveSafeArea = &area
	}

	motion := tokens.AllMotionTokens()
	motion.Defaults, err = tokens.ResolveMotionDefaults(cfg.Motion.DefaultDuration, cfg.Motion.DefaultEasing, cfg.Motion.DefaultSpring)
	if err != nil {
		return nil, fmt.Errorf("resolve %s motion: %w", cfg.Key, err)
	}

	return &Resolved{
		Key:        cfg.Key,
		Metadata:   cfg.Metadata(),
		Colors:     colors,
		Typography: typography,
		Spacing:    spacing,
		Motion:     motion,
	}, nil
}
