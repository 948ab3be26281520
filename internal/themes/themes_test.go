package themes

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/designkit/internal/tokens"
)

func TestListThemes(t *testing.T) {
	summaries := List()
	require.Len(t, summaries, 7)

	keys := make([]string, 0, len(summaries))
	for _, s := range summaries {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []string{"tech", "finance", "education", "lifestyle", "gaming", "business", "minimal"}, keys)
	assert.Equal(t, "Tech", summaries[0].Name)
	assert.Equal(t, []string{"modern", "technology", "professional", "clean"}, summaries[0].Tags)
}

func TestGetCaseInsensitive(t *testing.T) {
	upper, err := Get("TECH")
	require.NoError(t, err)
	lower, err := Get("tech")
	require.NoError(t, err)
	title, err := Get(" Tech ")
	require.NoError(t, err)

	assert.Equal(t, lower.Metadata, upper.Metadata)
	assert.Equal(t, lower.Metadata, title.Metadata)
}

func TestGetNotFound(t *testing.T) {
	_, err := Get("nonexistent")
	require.ErrorIs(t, err, ErrThemeNotFound)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "nonexistent", notFound.Name)
	assert.Len(t, notFound.Available, 7)
	assert.Contains(t, err.Error(), "tech, finance")
}

func TestGetFinance(t *testing.T) {
	theme, err := Get("finance")
	require.NoError(t, err)

	base, ok := theme.Typography.Sizes.Get("base")
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(base, "px") || strings.HasSuffix(base, "pt"))
	assert.True(t, strings.HasPrefix(theme.Colors.Semantic.Primary.Default, "#"))
	assert.Equal(t, "#22c55e", theme.Colors.Semantic.Primary.Default)
	assert.Equal(t, "linear-gradient(135deg, #00C853 0%, #FFD600 100%)", theme.Colors.Gradient)

	require.NotNil(t, theme.Motion.Defaults)
	assert.Equal(t, "normal", theme.Motion.Defaults.Duration)
	assert.Equal(t, "ease", theme.Motion.Defaults.Easing)
	assert.Equal(t, "smooth", theme.Motion.Defaults.Spring)
	assert.Equal(t, 300, theme.Motion.Defaults.Resolved.Duration.MS)
	assert.Nil(t, theme.Spacing.ActiveSafeArea)
	assert.Equal(t, "Inter, SF Pro Display, system-ui, sans-serif", theme.Typography.PrimaryFont)
}

func TestLightThemes(t *testing.T) {
	lifestyle, err := Get("lifestyle")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", lifestyle.Colors.Semantic.Background.Default)
	assert.Equal(t, "#db2777", lifestyle.Colors.Semantic.Primary.Default)

	minimal, err := Get("minimal")
	require.NoError(t, err)
	assert.Equal(t, "linear-gradient(135deg, #212121 0%, #616161 100%)", minimal.Colors.Gradient)
}

func TestGetMetadata(t *testing.T) {
	meta, err := GetMetadata("Gaming")
	require.NoError(t, err)
	assert.Equal(t, Metadata{
		Name:        "Gaming",
		Description: "High-energy gaming theme with neon accents. Ideal for gaming content, esports, and entertainment.",
		Category:    "gaming",
		Tags:        []string{"energetic", "gaming", "neon", "bold"},
	}, meta)

	meta.Tags[0] = "sleepy"
	again, err := GetMetadata("gaming")
	require.NoError(t, err)
	assert.Equal(t, "energetic", again.Tags[0])

	_, err = GetMetadata("arcade")
	assert.ErrorIs(t, err, ErrThemeNotFound)
}

func TestResolveSafeArea(t *testing.T) {
	cfg := &Config{
		Name:    "Shorts",
		Colors:  ColorConfig{PrimaryHue: "violet", Mode: "dark"},
		Spacing: SpacingConfig{SafeArea: "youtube_shorts"},
	}
	cfg.ApplyDefaults()
	require.NoError(t, cfg.Validate())

	theme, err := Resolve(cfg)
	require.NoError(t, err)
	require.NotNil(t, theme.Spacing.ActiveSafeArea)
	assert.Equal(t, 180, theme.Spacing.ActiveSafeArea.Bottom)
	assert.Equal(t, "shorts", theme.Key)
	assert.Empty(t, theme.Colors.Gradient)
	assert.Equal(t, tokens.MediumWeb, theme.Typography.Medium)
	assert.Equal(t, "ease_out", theme.Motion.Defaults.Easing)
}

func TestResolveMixedCaseMode(t *testing.T) {
	cfg := &Config{Name: "Night", Colors: ColorConfig{PrimaryHue: "blue", Mode: "Dark"}}
	cfg.ApplyDefaults()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "dark", cfg.Colors.Mode)

	theme, err := Resolve(cfg)
	require.NoError(t, err)
	assert.Equal(t, "#09090b", theme.Colors.Semantic.Background.Default)
}

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		cfg   Config
		field string
		err   error
	}{
		"hue":       {Config{Name: "x", Colors: ColorConfig{PrimaryHue: "teal", Mode: "dark"}}, "colors.primary_hue", tokens.ErrUnknownHue},
		"mode":      {Config{Name: "x", Colors: ColorConfig{PrimaryHue: "blue", Mode: "dusk"}}, "colors.mode", tokens.ErrUnknownMode},
		"gradient":  {Config{Name: "x", Colors: ColorConfig{PrimaryHue: "blue", Mode: "dark", Gradient: "rainbow"}}, "colors.gradient", tokens.ErrUnknownGradient},
		"medium":    {Config{Name: "x", Colors: ColorConfig{PrimaryHue: "blue", Mode: "dark"}, Typography: TypographyConfig{Medium: "print"}}, "typography.medium", tokens.ErrUnknownMedium},
		"font":      {Config{Name: "x", Colors: ColorConfig{PrimaryHue: "blue", Mode: "dark"}, Typography: TypographyConfig{PrimaryFont: "script"}}, "typography.primary_font", tokens.ErrUnknownFamily},
		"safe area": {Config{Name: "x", Colors: ColorConfig{PrimaryHue: "blue", Mode: "dark"}, Spacing: SpacingConfig{SafeArea: "vine"}}, "spacing.safe_area", tokens.ErrUnknownPlatform},
		"spring":    {Config{Name: "x", Colors: ColorConfig{PrimaryHue: "blue", Mode: "dark"}, Motion: MotionConfig{DefaultSpring: "floppy"}}, "motion", tokens.ErrUnknownSpring},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := tc.cfg
			cfg.ApplyDefaults()
			err := cfg.Validate()
			require.ErrorIs(t, err, tc.err)

			var invalid *ValidationError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tc.field, invalid.Field)
		})
	}

	empty := Config{}
	empty.ApplyDefaults()
	assert.ErrorIs(t, empty.Validate(), ErrThemeNameRequired)
}

func TestLoadThemesFromDir(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "brand.yaml", `name: Brand
description: Company colors
category: custom
colors:
  primary_hue: orange
  mode: light
  gradient: sunset
typography:
  medium: video_1080p
tags: [custom]
`)
	writeTheme(t, dir, "notes.txt", "not a theme")

	themes, err := LoadThemesFromDir(dir)
	require.NoError(t, err)
	require.Len(t, themes, 1)
	assert.Equal(t, "brand", themes[0].Key)
	assert.Equal(t, filepath.Join(dir, "brand.yaml"), themes[0].Source)
	assert.Equal(t, "video_1080p", themes[0].Typography.Medium)
	assert.Equal(t, "smooth", themes[0].Motion.DefaultSpring)

	missing, err := LoadThemesFromDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestLoadThemeRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := writeTheme(t, dir, "typo.yaml", `name: Typo
colors:
  primary_hue: blue
  mode: dark
  primaryhue: red
`)
	_, err := LoadTheme(path)
	assert.Error(t, err)
}

func TestLoadThemesFromSearchPaths(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeTheme(t, first, "brand.yaml", "name: Brand\ncolors: {primary_hue: red, mode: dark}\n")
	writeTheme(t, second, "brand.yml", "name: Brand\ncolors: {primary_hue: blue, mode: dark}\n")
	writeTheme(t, second, "night.yml", "name: Night\ncolors: {primary_hue: slate, mode: dark}\n")

	themes, err := LoadThemesFromSearchPaths([]string{first, second})
	require.NoError(t, err)
	require.Len(t, themes, 2)
	assert.Equal(t, "red", themes[0].Colors.PrimaryHue)
	assert.Equal(t, "night", themes[1].Key)
}

func TestThemeSearchPaths(t *testing.T) {
	paths := ThemeSearchPaths("/work/site", "/opt/themes", "")
	require.NotEmpty(t, paths)
	assert.Equal(t, filepath.Join("/work/site", ".designkit", "themes"), paths[0])
	assert.Equal(t, "/opt/themes", paths[len(paths)-1])
}

func TestRegistryWithUserThemes(t *testing.T) {
	brand := &Config{Name: "Brand", Colors: ColorConfig{PrimaryHue: "emerald", Mode: "dark"}, Source: "brand.yaml"}
	shadow := &Config{Name: "Tech", Colors: ColorConfig{PrimaryHue: "red", Mode: "dark"}, Source: "tech.yaml"}

	registry, err := NewRegistry(WithLogger(zerolog.Nop()), WithThemes(brand, shadow))
	require.NoError(t, err)

	assert.Len(t, registry.List(), 8)
	assert.Equal(t, "brand", registry.Keys()[7])

	tech, err := registry.Get("tech")
	require.NoError(t, err)
	assert.Equal(t, "#3b82f6", tech.Colors.Semantic.Primary.Default, "builtins cannot be replaced")

	custom, err := registry.Get("BRAND")
	require.NoError(t, err)
	assert.Equal(t, "#10b981", custom.Colors.Semantic.Primary.Default)
}

func TestBuiltinThemesValid(t *testing.T) {
	builtins, err := LoadBuiltinThemes()
	require.NoError(t, err)
	require.Len(t, builtins, 7)
	for _, theme := range builtins {
		assert.Equal(t, SourceBuiltin, theme.Source)
		assert.NoError(t, theme.Validate(), theme.Key)
		_, err := Resolve(theme)
		assert.NoError(t, err, theme.Key)
	}
}

func writeTheme(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write theme: %v", err)
	}
	return path
}
