package tokens

import (
	"fmt"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Duration is a named animation length with its frame equivalents.
type Duration struct {
	MS          int     `json:"ms"`
	FramesAt30  int     `json:"framesAt30"`
	FramesAt60  int     `json:"framesAt60"`
	Seconds     float64 `json:"seconds"`
	CSSValue    string  `json:"cssValue"`
	Description string  `json:"description"`
}

// Easing is a cubic-bezier timing curve.
type Easing struct {
	Curve       [4]float64 `json:"curve"`
	CSSValue    string     `json:"cssValue"`
	Description string     `json:"description"`
	Usage       string     `json:"usage"`
}

// Spring holds spring physics parameters and how they feel.
type Spring struct {
	Damping           float64 `json:"damping"`
	Mass              float64 `json:"mass"`
	Stiffness         float64 `json:"stiffness"`
	OvershootClamping bool    `json:"overshootClamping"`
	Description       string  `json:"description"`
	Feel              string  `json:"feel"`
	Usage             string  `json:"usage"`
}

// SpringConfig is the subset of a spring an animation engine consumes.
type SpringConfig struct {
	Damping           float64 `json:"damping"`
	Mass              float64 `json:"mass"`
	Stiffness         float64 `json:"stiffness"`
	OvershootClamping bool    `json:"overshootClamping"`
}

// Config strips the descriptive fields.
func (s Spring) Config() SpringConfig {
	return SpringConfig{
		Damping:           s.Damping,
		Mass:              s.Mass,
		Stiffness:         s.Stiffness,
		OvershootClamping: s.OvershootClamping,
	}
}

// Range is the start and end value of an animated property. Values are
// numbers or CSS lengths.
type Range struct {
	From any `json:"from"`
	To   any `json:"to"`
}

// Transition is an enter or exit animation preset.
type Transition struct {
	Properties      *orderedmap.OrderedMap[string, Range] `json:"properties"`
	Description     string                                `json:"description"`
	Usage           string                                `json:"usage"`
	DefaultDuration string                                `json:"defaultDuration"`
	DefaultEasing   string                                `json:"defaultEasing"`
}

type transition struct {
	properties  table[Range]
	description string
	usage       string
	duration    string
	easing      string
}

func (t transition) resolve() Transition {
	return Transition{
		Properties:      ordered(t.properties, same[Range]),
		Description:     t.description,
		Usage:           t.usage,
		DefaultDuration: t.duration,
		DefaultEasing:   t.easing,
	}
}

// framesFor converts milliseconds to whole frames, rounding halves up.
func framesFor(ms, fps int) int {
	return (ms*fps + 500) / 1000
}

func newDuration(ms int, description string) Duration {
	return Duration{
		MS:          ms,
		FramesAt30:  framesFor(ms, 30),
		FramesAt60:  framesFor(ms, 60),
		Seconds:     float64(ms) / 1000,
		CSSValue:    strconv.Itoa(ms) + "ms",
		Description: description,
	}
}

func newEasing(x1, y1, x2, y2 float64, description, usage string) Easing {
	curve := [4]float64{x1, y1, x2, y2}
	return Easing{
		Curve:       curve,
		CSSValue:    cubicBezier(curve),
		Description: description,
		Usage:       usage,
	}
}

func cubicBezier(curve [4]float64) string {
	parts := make([]string, len(curve))
	for i, v := range curve {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		parts[i] = s
	}
	return fmt.Sprintf("cubic-bezier(%s)", strings.Join(parts, ", "))
}

var durations = table[Duration]{
	{"instant", newDuration(0, "No delay")},
	{"fastest", newDuration(100, "Fastest animation")},
	{"faster", newDuration(150, "Very fast animation")},
	{"fast", newDuration(200, "Fast animation")},
	{"normal", newDuration(300, "Normal animation speed")},
	{"moderate", newDuration(400, "Moderate animation")},
	{"slow", newDuration(500, "Slow animation")},
	{"slower", newDuration(700, "Very slow animation")},
	{"slowest", newDuration(1000, "Slowest animation")},
}

var easings = table[Easing]{
	{"linear", newEasing(0.0, 0.0, 1.0, 1.0, "Linear motion, no acceleration", "Loading indicators, continuous rotation")},
	{"ease", newEasing(0.25, 0.1, 0.25, 1.0, "Default ease, gentle acceleration and deceleration", "General purpose animations")},
	{"ease_in", newEasing(0.42, 0.0, 1.0, 1.0, "Slow start, fast end", "Exit animations, elements leaving the screen")},
	{"ease_out", newEasing(0.0, 0.0, 0.58, 1.0, "Fast start, slow end", "Enter animations, elements appearing")},
	{"ease_in_out", newEasing(0.42, 0.0, 0.58, 1.0, "Slow start and end, fast middle", "Position changes, scaling")},
	{"smooth", newEasing(0.4, 0.0, 0.2, 1.0, "Very smooth acceleration and deceleration", "Polished UI transitions")},
	{"snappy", newEasing(0.4, 0.0, 0.6, 1.0, "Quick, responsive feel", "Interactive elements, buttons")},
	{"bouncy", newEasing(0.68, -0.55, 0.265, 1.55, "Bounce effect at end", "Playful animations, emphasis")},
}

var springs = table[Spring]{
	{"gentle", Spring{26, 1, 120, false, "Gentle, smooth spring", "Calm and controlled", "Subtle animations, background elements"}},
	{"smooth", Spring{22, 1, 150, false, "Smooth spring with slight bounce", "Natural and fluid", "General purpose spring animations"}},
	{"bouncy", Spring{10, 1, 200, false, "Bouncy spring with overshoot", "Energetic and playful", "Playful elements, emphasis"}},
	{"snappy", Spring{20, 0.5, 300, false, "Quick, snappy spring", "Fast and responsive", "Interactive UI, quick transitions"}},
	{"stiff", Spring{30, 1, 400, true, "Stiff spring, no overshoot", "Mechanical and precise", "Precise movements, technical content"}},
}

var (
	fadeIn  = table[Range]{{"opacity", Range{0, 1}}}
	fadeOut = table[Range]{{"opacity", Range{1, 0}}}
)

func withFade(fade table[Range], prop string, r Range) table[Range] {
	return append(append(table[Range]{}, fade...), entry[Range]{prop, r})
}

var enterTransitions = table[transition]{
	{"fade_in", transition{fadeIn, "Simple fade in", "General purpose enter animation", "normal", "ease_out"}},
	{"slide_in_up", transition{withFade(fadeIn, "translateY", Range{"40px", "0px"}), "Slide in from bottom with fade", "Content appearing from below", "normal", "ease_out"}},
	{"slide_in_down", transition{withFade(fadeIn, "translateY", Range{"-40px", "0px"}), "Slide in from top with fade", "Headers, titles appearing", "normal", "ease_out"}},
	{"scale_in", transition{withFade(fadeIn, "scale", Range{0.8, 1.0}), "Scale up with fade", "Emphasis, important elements", "normal", "smooth"}},
}

var exitTransitions = table[transition]{
	{"fade_out", transition{fadeOut, "Simple fade out", "General purpose exit animation", "normal", "ease_in"}},
	{"slide_out_up", transition{withFade(fadeOut, "translateY", Range{"0px", "-40px"}), "Slide out to top with fade", "Content exiting upward", "normal", "ease_in"}},
	{"slide_out_down", transition{withFade(fadeOut, "translateY", Range{"0px", "40px"}), "Slide out to bottom with fade", "Content exiting downward", "normal", "ease_in"}},
	{"scale_out", transition{withFade(fadeOut, "scale", Range{1.0, 0.8}), "Scale down with fade", "Elements disappearing", "normal", "ease_in"}},
}

// DurationNames lists the duration keys, shortest first.
func DurationNames() []string { return durations.keys() }

// EasingNames lists the easing keys.
func EasingNames() []string { return easings.keys() }

// SpringNames lists the spring keys.
func SpringNames() []string { return springs.keys() }

// DurationFor returns a named duration.
func DurationFor(name string) (Duration, error) {
	d, ok := durations.lookup(name)
	if !ok {
		return Duration{}, lookupError(ErrUnknownDuration, name, DurationNames())
	}
	return d, nil
}

// DurationMS returns a named duration in milliseconds.
func DurationMS(name string) (int, error) {
	d, err := DurationFor(name)
	if err != nil {
		return 0, err
	}
	return d.MS, nil
}

// DurationFrames returns a named duration as a frame count at fps.
func DurationFrames(name string, fps int) (int, error) {
	d, err := DurationFor(name)
	if err != nil {
		return 0, err
	}
	if fps <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFPS, fps)
	}
	return framesFor(d.MS, fps), nil
}

// EasingFor returns a named easing.
func EasingFor(name string) (Easing, error) {
	e, ok := easings.lookup(name)
	if !ok {
		return Easing{}, lookupError(ErrUnknownEasing, name, EasingNames())
	}
	return e, nil
}

// EasingCurve returns the cubic-bezier control points of a named easing.
func EasingCurve(name string) ([4]float64, error) {
	e, err := EasingFor(name)
	if err != nil {
		return [4]float64{}, err
	}
	return e.Curve, nil
}

// SpringFor returns a named spring with its descriptions.
func SpringFor(name string) (Spring, error) {
	s, ok := springs.lookup(name)
	if !ok {
		return Spring{}, lookupError(ErrUnknownSpring, name, SpringNames())
	}
	return s, nil
}

// SpringConfigFor returns the physics parameters of a named spring.
func SpringConfigFor(name string) (SpringConfig, error) {
	s, err := SpringFor(name)
	if err != nil {
		return SpringConfig{}, err
	}
	return s.Config(), nil
}

// MotionDefaults records a theme's chosen motion names next to the values
// they resolve to, so consumers can re-resolve them at another frame rate.
type MotionDefaults struct {
	Duration string       `json:"duration"`
	Easing   string       `json:"easing"`
	Spring   string       `json:"spring"`
	Resolved MotionValues `json:"resolved"`
}

// MotionValues are the concrete values behind MotionDefaults.
type MotionValues struct {
	Duration Duration     `json:"duration"`
	Easing   Easing       `json:"easing"`
	Spring   SpringConfig `json:"spring"`
}

// ResolveMotionDefaults looks up a duration, easing and spring together.
func ResolveMotionDefaults(duration, easing, spring string) (*MotionDefaults, error) {
	d, err := DurationFor(duration)
	if err != nil {
		return nil, err
	}
	e, err := EasingFor(easing)
	if err != nil {
		return nil, err
	}
	s, err := SpringConfigFor(spring)
	if err != nil {
		return nil, err
	}
	return &MotionDefaults{
		Duration: duration,
		Easing:   easing,
		Spring:   spring,
		Resolved: MotionValues{Duration: d, Easing: e, Spring: s},
	}, nil
}

// MotionTokens bundles every motion table. Defaults is set only for a
// resolved theme.
type MotionTokens struct {
	Durations        *orderedmap.OrderedMap[string, Duration]   `json:"durations"`
	Easings          *orderedmap.OrderedMap[string, Easing]     `json:"easings"`
	Springs          *orderedmap.OrderedMap[string, Spring]     `json:"springs"`
	EnterTransitions *orderedmap.OrderedMap[string, Transition] `json:"enterTransitions"`
	ExitTransitions  *orderedmap.OrderedMap[string, Transition] `json:"exitTransitions"`
	Defaults         *MotionDefaults                            `json:"defaults,omitempty"`
}

// AllMotionTokens assembles the motion bundle.
func AllMotionTokens() *MotionTokens {
	return &MotionTokens{
		Durations:        ordered(durations, same[Duration]),
		Easings:          ordered(easings, same[Easing]),
		Springs:          ordered(springs, same[Spring]),
		EnterTransitions: ordered(enterTransitions, transition.resolve),
		ExitTransitions:  ordered(exitTransitions, transition.resolve),
	}
}
