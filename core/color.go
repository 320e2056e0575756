package core

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Color is an immutable 8-bit RGB triple
// Channels are always in range, construction rounds and clamps instead of rejecting
type Color struct {
	R, G, B uint8
}

// Predefined colors
var (
	ColorWhite = Color{255, 255, 255}
	ColorBlack = Color{0, 0, 0}
)

// NewColor builds a Color from arbitrary numeric channels
// Each channel is rounded half up then clamped into [0, 255]
func NewColor(r, g, b float64) Color {
	return Color{
		R: channel(r),
		G: channel(g),
		B: channel(b),
	}
}

// channel rounds half up and saturates, NaN maps to 0
func channel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	// v+0.5 loses precision just below a half
	r := math.Floor(v)
	if v-r >= 0.5 {
		r++
	}
	if r >= 255 {
		return 255
	}
	if r <= 0 {
		return 0
	}
	return uint8(r)
}

// InterpolatedToward returns the color fraction of the way from c to other
// Fraction is not validated: values outside [0,1] extrapolate and saturate
func (c Color) InterpolatedToward(other Color, fraction float64) Color {
	return NewColor(
		float64(c.R)+(float64(other.R)-float64(c.R))*fraction,
		float64(c.G)+(float64(other.G)-float64(c.G))*fraction,
		float64(c.B)+(float64(other.B)-float64(c.B))*fraction,
	)
}

// Colorful converts to go-colorful's normalized representation
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Hex formats as #rrggbb, lowercase, each channel zero-padded to two digits
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// String implements fmt.Stringer with the hex form
func (c Color) String() string {
	return c.Hex()
}

// ParseHex parses #rrggbb or #rgb into a Color
func ParseHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.Wrapf(err, "parse color %q", s)
	}
	r, g, b := cf.RGB255()
	return Color{r, g, b}, nil
}
