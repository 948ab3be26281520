package tokens

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	hexColorPattern  = regexp.MustCompile(`#[0-9a-fA-F]{6}\b`)
	colorStopPattern = regexp.MustCompile(`(#[0-9a-fA-F]{6})\b(?:\s+(\d+(?:\.\d+)?)%)?`)
)

// GradientStop is one color of a linear gradient at a position in [0, 1].
type GradientStop struct {
	Color    string  `json:"color"`
	Position float64 `json:"position"`
}

// GradientColors returns the hex colors embedded in a gradient, in order.
func GradientColors(css string) []string {
	return hexColorPattern.FindAllString(css, -1)
}

// ParseGradient extracts the color stops of a linear-gradient string.
// Stops without an explicit percentage are spread evenly.
func ParseGradient(css string) ([]GradientStop, error) {
	matches := colorStopPattern.FindAllStringSubmatch(css, -1)
	if len(matches) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGradient, css)
	}

	stops := make([]GradientStop, len(matches))
	for i, match := range matches {
		position := float64(i) / float64(len(matches)-1)
		if match[2] != "" {
			pct, err := strconv.ParseFloat(match[2], 64)
			if err != nil {
				return nil, fmt.Errorf("parse stop %q: %w", match[0], err)
			}
			position = pct / 100
		}
		stops[i] = GradientStop{Color: match[1], Position: position}
	}
	return stops, nil
}

// SampleGradient returns steps colors evenly spaced along the gradient,
// blending neighbouring stops in RGB.
func SampleGradient(css string, steps int) ([]string, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSteps, steps)
	}
	stops, err := ParseGradient(css)
	if err != nil {
		return nil, err
	}

	colors := make([]colorful.Color, len(stops))
	for i, stop := range stops {
		c, err := colorful.Hex(stop.Color)
		if err != nil {
			return nil, fmt.Errorf("parse color %s: %w", stop.Color, err)
		}
		colors[i] = c
	}

	out := make([]string, steps)
	for i := range out {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		out[i] = blendAt(stops, colors, t).Clamped().Hex()
	}
	return out, nil
}

func blendAt(stops []GradientStop, colors []colorful.Color, t float64) colorful.Color {
	if t <= stops[0].Position {
		return colors[0]
	}
	last := len(stops) - 1
	for i := 1; i <= last; i++ {
		if t > stops[i].Position {
			continue
		}
		span := stops[i].Position - stops[i-1].Position
		if span <= 0 {
			return colors[i]
		}
		return colors[i-1].BlendRgb(colors[i], (t-stops[i-1].Position)/span)
	}
	return colors[last]
}
