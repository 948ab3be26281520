package tokens

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationFrames(t *testing.T) {
	frames, err := DurationFrames("normal", 30)
	require.NoError(t, err)
	assert.Equal(t, 9, frames)

	frames, err = DurationFrames("normal", 60)
	require.NoError(t, err)
	assert.Equal(t, 18, frames)

	// 150ms at 30fps is 4.5 frames; halves round up.
	frames, err = DurationFrames("faster", 30)
	require.NoError(t, err)
	assert.Equal(t, 5, frames)

	frames, err = DurationFrames("slowest", 24)
	require.NoError(t, err)
	assert.Equal(t, 24, frames)

	_, err = DurationFrames("normal", 0)
	assert.ErrorIs(t, err, ErrInvalidFPS)
	_, err = DurationFrames("glacial", 30)
	assert.ErrorIs(t, err, ErrUnknownDuration)
}

func TestDurationTokens(t *testing.T) {
	for _, name := range DurationNames() {
		d, err := DurationFor(name)
		require.NoError(t, err)

		assert.Equal(t, float64(d.MS)/1000, d.Seconds, name)
		assert.Equal(t, framesFor(d.MS, 30), d.FramesAt30, name)
		if d.FramesAt30 > 0 {
			ratio := float64(d.FramesAt60) / float64(d.FramesAt30)
			assert.GreaterOrEqual(t, ratio, 1.7, name)
			assert.LessOrEqual(t, ratio, 2.3, name)
		}
	}

	ms, err := DurationMS("fast")
	require.NoError(t, err)
	assert.Equal(t, 200, ms)

	d, err := DurationFor("slow")
	require.NoError(t, err)
	assert.Equal(t, "500ms", d.CSSValue)
}

func TestEasingCurves(t *testing.T) {
	for _, name := range EasingNames() {
		curve, err := EasingCurve(name)
		require.NoError(t, err)
		for _, v := range curve {
			assert.GreaterOrEqual(t, v, -2.0, name)
			assert.LessOrEqual(t, v, 2.0, name)
		}
	}

	linear, err := EasingFor("linear")
	require.NoError(t, err)
	assert.Equal(t, "cubic-bezier(0.0, 0.0, 1.0, 1.0)", linear.CSSValue)

	bouncy, err := EasingFor("bouncy")
	require.NoError(t, err)
	assert.Equal(t, "cubic-bezier(0.68, -0.55, 0.265, 1.55)", bouncy.CSSValue)

	_, err = EasingCurve("wobbly")
	assert.ErrorIs(t, err, ErrUnknownEasing)
}

func TestSpringConfig(t *testing.T) {
	gentle, err := SpringConfigFor("gentle")
	require.NoError(t, err)
	smooth, err := SpringConfigFor("smooth")
	require.NoError(t, err)
	stiff, err := SpringConfigFor("stiff")
	require.NoError(t, err)

	assert.Less(t, gentle.Stiffness, smooth.Stiffness)
	assert.Less(t, smooth.Stiffness, stiff.Stiffness)
	assert.True(t, stiff.OvershootClamping)

	data, err := json.Marshal(smooth)
	require.NoError(t, err)
	assert.JSONEq(t, `{"damping":22,"mass":1,"stiffness":150,"overshootClamping":false}`, string(data))

	_, err = SpringConfigFor("loose")
	assert.ErrorIs(t, err, ErrUnknownSpring)
}

func TestResolveMotionDefaults(t *testing.T) {
	defaults, err := ResolveMotionDefaults("fast", "smooth", "snappy")
	require.NoError(t, err)
	assert.Equal(t, "fast", defaults.Duration)
	assert.Equal(t, 200, defaults.Resolved.Duration.MS)
	assert.Equal(t, [4]float64{0.4, 0, 0.2, 1}, defaults.Resolved.Easing.Curve)
	assert.Equal(t, 0.5, defaults.Resolved.Spring.Mass)

	_, err = ResolveMotionDefaults("fast", "smooth", "floppy")
	assert.ErrorIs(t, err, ErrUnknownSpring)
}

func TestAllMotionTokens(t *testing.T) {
	bundle := AllMotionTokens()

	assert.Equal(t, 9, bundle.Durations.Len())
	assert.Equal(t, 8, bundle.Easings.Len())
	assert.Equal(t, 5, bundle.Springs.Len())
	assert.Equal(t, []string{"fade_in", "slide_in_up", "slide_in_down", "scale_in"}, orderedKeys(bundle.EnterTransitions))
	assert.Equal(t, []string{"fade_out", "slide_out_up", "slide_out_down", "scale_out"}, orderedKeys(bundle.ExitTransitions))
	assert.Nil(t, bundle.Defaults)

	slide, _ := bundle.EnterTransitions.Get("slide_in_up")
	assert.Equal(t, []string{"opacity", "translateY"}, orderedKeys(slide.Properties))
	data, err := json.Marshal(slide.Properties)
	require.NoError(t, err)
	assert.Equal(t, `{"opacity":{"from":0,"to":1},"translateY":{"from":"40px","to":"0px"}}`, string(data))

	fade, _ := bundle.EnterTransitions.Get("fade_in")
	assert.Equal(t, 1, fade.Properties.Len(), "fade_in must not pick up properties from other presets")
}
