package tokens

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownHue      = errors.New("unknown hue")
	ErrUnknownMode     = errors.New("unknown color mode")
	ErrUnknownGradient = errors.New("unknown gradient")
	ErrUnknownPlatform = errors.New("unknown platform")
	ErrUnknownGrid     = errors.New("unknown grid")
	ErrUnknownDuration = errors.New("unknown duration")
	ErrUnknownEasing   = errors.New("unknown easing")
	ErrUnknownSpring   = errors.New("unknown spring")
	ErrUnknownStyle    = errors.New("unknown text style")
	ErrUnknownMedium   = errors.New("unknown medium")
	ErrUnknownFamily   = errors.New("unknown font family")
	ErrInvalidFPS      = errors.New("fps must be positive")
	ErrInvalidSteps    = errors.New("steps must be positive")
	ErrInvalidGradient = errors.New("gradient needs at least two colors")
)

// LookupError reports a key missing from one of the token tables along
// with the keys that would have been accepted.
type LookupError struct {
	Err   error
	Key   string
	Valid []string
}

func (e *LookupError) Error() string {
	if len(e.Valid) == 0 {
		return fmt.Sprintf("%s: %q", e.Err, e.Key)
	}
	return fmt.Sprintf("%s: %q (valid: %s)", e.Err, e.Key, strings.Join(e.Valid, ", "))
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

func lookupError(err error, key string, valid []string) error {
	return &LookupError{Err: err, Key: key, Valid: valid}
}
