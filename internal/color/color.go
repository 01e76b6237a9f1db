// Package color derives card shading and text contrast from an accent colour.
//
// Every function is pure. Accent colours are "#RRGGBB" strings; anything else
// is rejected with ErrInvalidColorFormat.
package color

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColorFormat is returned for accent colours that are not six hex digits.
var ErrInvalidColorFormat = errors.New("invalid color format")

// BrightnessThreshold separates light backgrounds (dark text) from dark ones (light text).
const BrightnessThreshold = 128

// Percentages used for the envelope's shaded faces.
const (
	FlapShade   = 15
	BottomShade = 25
)

// Text colours chosen by TextColorFor.
const (
	TextDark  = "#1F2937"
	TextLight = "#FFFFFF"
)

// RGB is an 8-bit-per-channel colour.
type RGB struct {
	R, G, B uint8
}

// Hex formats the colour as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string { return c.Hex() }

// Parse reads "#RRGGBB" (the leading '#' is optional).
func Parse(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: %q: want 6 hex digits", ErrInvalidColorFormat, hex)
	}
	for _, r := range s {
		if !isHexDigit(r) {
			return RGB{}, fmt.Errorf("%w: %q: non-hex character %q", ErrInvalidColorFormat, hex, r)
		}
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorFormat, hex, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// MustParse is Parse for compiled-in constants. It panics on malformed input.
func MustParse(hex string) RGB {
	c, err := Parse(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate reports whether hex is a well-formed accent colour.
func Validate(hex string) error {
	_, err := Parse(hex)
	return err
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// Darken scales each channel by (1 - percent/100), flooring the result.
// percent is clamped to [0, 100].
func Darken(c RGB, percent float64) RGB {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	f := 1 - percent/100
	return RGB{R: scale(c.R, f), G: scale(c.G, f), B: scale(c.B, f)}
}

func scale(ch uint8, f float64) uint8 {
	v := math.Floor(float64(ch) * f)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// DarkenHex is Darken on a hex string.
func DarkenHex(hex string, percent float64) (string, error) {
	c, err := Parse(hex)
	if err != nil {
		return "", err
	}
	return Darken(c, percent).Hex(), nil
}

// Luminance is the perceived brightness 0.299·R + 0.587·G + 0.114·B, in [0, 255].
func Luminance(c RGB) float64 {
	return (float64(c.R)*299 + float64(c.G)*587 + float64(c.B)*114) / 1000
}

// IsLight reports whether text on c should be dark.
func IsLight(c RGB) bool {
	return Luminance(c) > BrightnessThreshold
}

// TextColorFor returns TextDark for light accents and TextLight otherwise.
func TextColorFor(c RGB) string {
	if IsLight(c) {
		return TextDark
	}
	return TextLight
}

// Palette holds the three shades an envelope is drawn with.
type Palette struct {
	Base    RGB
	Darker  RGB // flap and side flaps
	Darkest RGB // bottom flap
	Text    string
}

// NewPalette derives the envelope palette from an accent colour.
func NewPalette(hex string) (Palette, error) {
	base, err := Parse(hex)
	if err != nil {
		return Palette{}, err
	}
	return Palette{
		Base:    base,
		Darker:  Darken(base, FlapShade),
		Darkest: Darken(base, BottomShade),
		Text:    TextColorFor(base),
	}, nil
}
