package themes

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/designkit/internal/logging"
)

// Registry holds theme configs in registration order. It is read-only once
// built and safe for concurrent use.
type Registry struct {
	logger zerolog.Logger
	extra  []*Config
	themes []*Config
	byKey  map[string]*Config
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the registry logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithThemes registers user themes after the builtins. Themes whose key
// collides with an already registered one are skipped with a warning.
func WithThemes(themes ...*Config) Option {
	return func(r *Registry) {
		r.extra = append(r.extra, themes...)
	}
}

// NewRegistry builds a registry from the bundled presets plus any themes
// passed with WithThemes.
func NewRegistry(opts ...Option) (*Registry, error) {
	r := &Registry{
		logger: logging.Component("themes"),
		byKey:  make(map[string]*Config),
	}
	for _, opt := range opts {
		opt(r)
	}

	builtins, err := LoadBuiltinThemes()
	if err != nil {
		return nil, err
	}
	for _, theme := range builtins {
		if err := r.add(theme); err != nil {
			return nil, err
		}
	}

	for _, theme := range r.extra {
		if theme == nil {
			continue
		}
		if err := r.add(theme); err != nil {
			r.logger.Warn().Err(err).Str("theme", theme.Key).Str("source", theme.Source).Msg("skipping theme")
			continue
		}
		r.logger.Debug().Str("theme", theme.Key).Str("source", theme.Source).Msg("registered theme")
	}
	r.extra = nil

	return r, nil
}

func (r *Registry) add(theme *Config) error {
	theme.ApplyDefaults()
	if err := theme.Validate(); err != nil {
		return err
	}
	if _, exists := r.byKey[theme.Key]; exists {
		return fmt.Errorf("%w: %s", ErrThemeExists, theme.Key)
	}
	r.byKey[theme.Key] = theme
	r.themes = append(r.themes, theme)
	return nil
}

// Keys returns registered keys in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.themes))
	for _, theme := range r.themes {
		keys = append(keys, theme.Key)
	}
	return keys
}

// List returns a summary of every theme in registration order.
func (r *Registry) List() []Summary {
	summaries := make([]Summary, 0, len(r.themes))
	for _, theme := range r.themes {
		summaries = append(summaries, theme.Summary())
	}
	return summaries
}

// Config returns a copy of a theme's config. Lookup ignores case and
// surrounding space.
func (r *Registry) Config(name string) (*Config, error) {
	theme, ok := r.byKey[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, &NotFoundError{Name: name, Available: r.Keys()}
	}
	clone := *theme
	clone.Tags = append([]string{}, theme.Tags...)
	return &clone, nil
}

// Get resolves a theme by name.
func (r *Registry) Get(name string) (*Resolved, error) {
	theme, err := r.Config(name)
	if err != nil {
		return nil, err
	}
	return Resolve(theme)
}

// Metadata returns a theme's labels without resolving tokens.
func (r *Registry) Metadata(name string) (Metadata, error) {
	theme, err := r.Config(name)
	if err != nil {
		return Metadata{}, err
	}
	return theme.Metadata(), nil
}

var defaultRegistry = mustBuiltinRegistry()

func mustBuiltinRegistry() *Registry {
	r, err := NewRegistry(WithLogger(zerolog.Nop()))
	if err != nil {
		panic(fmt.Sprintf("themes: invalid builtin presets: %v", err))
	}
	return r
}

// Default returns the registry of bundled presets.
func Default() *Registry {
	return defaultRegistry
}

// List returns the bundled presets in registration order.
func List() []Summary {
	return defaultRegistry.List()
}

// Get resolves a bundled preset by name.
func Get(name string) (*Resolved, error) {
	return defaultRegistry.Get(name)
}

// GetMetadata returns a bundled preset's labels.
func GetMetadata(name string) (Metadata, error) {
	return defaultRegistry.Metadata(name)
}
