package pix

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a 4-channel 8-bit color. Channels 0-2 are R, G, B for packed
// destinations or Y, U, V for planar ones; channel 3 is the blend opacity.
type Color [4]uint8

// Alpha returns the opacity channel.
func (c Color) Alpha() uint8 { return c[3] }

// InvalidColorError is returned when a color specification cannot be parsed.
type InvalidColorError struct {
	Spec string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("pix: invalid color %q", e.Spec)
}

// ParseColor maps a color specification string to a Color in RGBA
// interpretation. Accepted forms:
//
//   - a case-insensitive SVG 1.1 color name ("red", "white", ...)
//   - "#RRGGBB" or "#RRGGBBAA"
//   - "0xRRGGBB" or "0xRRGGBBAA"
//
// Invalid specifications are rejected here, at configuration time,
// never during rendering.
func ParseColor(spec string) (Color, error) {
	s := spec
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHexColor(spec, s[1:])
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		return parseHexColor(spec, s[2:])
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Color{c.R, c.G, c.B, c.A}, nil
	}
	return Color{}, &InvalidColorError{Spec: spec}
}

// parseHexColor parses "RRGGBB" or "RRGGBBAA".
func parseHexColor(spec, hex string) (Color, error) {
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, &InvalidColorError{Spec: spec}
	}
	var v [4]uint8
	v[3] = 0xFF
	for i := 0; i*2 < len(hex); i++ {
		hi, ok1 := hexDigit(hex[i*2])
		lo, ok2 := hexDigit(hex[i*2+1])
		if !ok1 || !ok2 {
			return Color{}, &InvalidColorError{Spec: spec}
		}
		v[i] = hi<<4 | lo
	}
	return v, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// CCIR 601 studio-range conversion coefficients, 10-bit fixed point.
const (
	fixBits = 10
	oneHalf = 1 << (fixBits - 1)
)

func fix(x float64) int { return int(x*(1<<fixBits) + 0.5) }

var (
	yR = fix(0.29900 * 219.0 / 255.0)
	yG = fix(0.58700 * 219.0 / 255.0)
	yB = fix(0.11400 * 219.0 / 255.0)

	uR = fix(0.16874 * 224.0 / 255.0)
	uG = fix(0.33126 * 224.0 / 255.0)
	uB = fix(0.50000 * 224.0 / 255.0)

	vR = fix(0.50000 * 224.0 / 255.0)
	vG = fix(0.41869 * 224.0 / 255.0)
	vB = fix(0.08131 * 224.0 / 255.0)
)

// YUV converts an RGBA color to studio-range YUVA using the CCIR 601
// integer coefficients. Luma lands in [16, 235], chroma in [16, 240].
// The opacity channel is carried over unchanged.
func (c Color) YUV() Color {
	r, g, b := int(c[0]), int(c[1]), int(c[2])
	y := (yR*r + yG*g + yB*b + oneHalf + (16 << fixBits)) >> fixBits
	u := ((-uR*r - uG*g + uB*b + oneHalf - 1) >> fixBits) + 128
	v := ((vR*r - vG*g - vB*b + oneHalf - 1) >> fixBits) + 128
	return Color{uint8(y), uint8(u), uint8(v), c[3]}
}
