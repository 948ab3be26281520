package tokens

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var stopColorPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func init() {
	if err := Validate(); err != nil {
		panic(fmt.Sprintf("tokens: invalid catalog: %v", err))
	}
}

// Validate checks that every table is complete and every symbolic
// reference between tables resolves.
func Validate() error {
	var errs []error
	errs = append(errs, validatePalette()...)
	errs = append(errs, validateGradients()...)
	errs = append(errs, validateTypography()...)
	errs = append(errs, validateMotion()...)
	return errors.Join(errs...)
}

func validatePalette() []error {
	var errs []error
	for _, hue := range palette {
		if len(hue.value) != len(Stops) {
			errs = append(errs, fmt.Errorf("hue %s defines %d stops, want %d", hue.key, len(hue.value), len(Stops)))
		}
		for _, stop := range Stops {
			value, ok := hue.value[stop]
			if !ok {
				errs = append(errs, fmt.Errorf("hue %s is missing stop %d", hue.key, stop))
				continue
			}
			if !stopColorPattern.MatchString(value) {
				errs = append(errs, fmt.Errorf("hue %s stop %d: %q is not #rrggbb", hue.key, stop, value))
			}
		}
	}
	for _, hue := range append([]string{"zinc", "red", "green", "amber", "blue"}, chartHues...) {
		if _, ok := palette.lookup(hue); !ok {
			errs = append(errs, fmt.Errorf("palette is missing hue %s", hue))
		}
	}
	return errs
}

func validateGradients() []error {
	var errs []error
	for _, g := range gradients {
		if n := len(GradientColors(g.value)); n < 2 {
			errs = append(errs, fmt.Errorf("gradient %s embeds %d colors", g.key, n))
		}
	}
	return errs
}

func validateTypography() []error {
	var errs []error
	for _, medium := range fontSizes {
		prev := -1.0
		for _, key := range SizeKeys {
			value, ok := medium.value.lookup(key)
			if !ok {
				errs = append(errs, fmt.Errorf("medium %s is missing size %s", medium.key, key))
				continue
			}
			n, err := sizeMagnitude(value)
			if err != nil {
				errs = append(errs, fmt.Errorf("medium %s size %s: %w", medium.key, key, err))
				continue
			}
			if n <= prev {
				errs = append(errs, fmt.Errorf("medium %s size %s (%s) does not increase", medium.key, key, value))
			}
			prev = n
		}
	}

	sizes, _ := fontSizes.lookup(string(MediumWeb))
	for _, style := range textStyles {
		refs := []struct {
			kind string
			key  string
			ok   bool
		}{
			{"size", style.value.FontSize, has(sizes, style.value.FontSize)},
			{"weight", style.value.FontWeight, has(fontWeights, style.value.FontWeight)},
			{"line height", style.value.LineHeight, has(lineHeights, style.value.LineHeight)},
			{"letter spacing", style.value.LetterSpacing, has(letterSpacing, style.value.LetterSpacing)},
			{"font family", style.value.FontFamily, has(fontFamilies, style.value.FontFamily)},
		}
		for _, ref := range refs {
			if !ref.ok {
				errs = append(errs, fmt.Errorf("text style %s references unknown %s %q", style.key, ref.kind, ref.key))
			}
		}
	}
	for _, s := range typographyScale {
		if !has(sizes, s.value) {
			errs = append(errs, fmt.Errorf("scale %s references unknown size %q", s.key, s.value))
		}
	}
	return errs
}

func validateMotion() []error {
	var errs []error
	for _, group := range []table[transition]{enterTransitions, exitTransitions} {
		for _, t := range group {
			if !has(durations, t.value.duration) {
				errs = append(errs, fmt.Errorf("transition %s references unknown duration %q", t.key, t.value.duration))
			}
			if !has(easings, t.value.easing) {
				errs = append(errs, fmt.Errorf("transition %s references unknown easing %q", t.key, t.value.easing))
			}
		}
	}
	for _, s := range springs {
		if s.value.Damping <= 0 || s.value.Mass <= 0 || s.value.Stiffness <= 0 {
			errs = append(errs, fmt.Errorf("spring %s has non-positive physics", s.key))
		}
	}
	return errs
}

func has[V any](t table[V], key string) bool {
	_, ok := t.lookup(key)
	return ok
}

// sizeMagnitude parses the number in front of a px or pt unit.
func sizeMagnitude(value string) (float64, error) {
	trimmed := strings.TrimSuffix(strings.TrimSuffix(value, "px"), "pt")
	if trimmed == value {
		return 0, fmt.Errorf("%q has no px or pt unit", value)
	}
	return strconv.ParseFloat(trimmed, 64)
}
