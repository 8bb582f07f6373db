// Package face loads and rasterizes font glyphs for the drawtext renderer.
//
// The Rasterizer interface is the boundary between text layout and the
// underlying font machinery: given a code point it produces a coverage
// bitmap plus placement metrics, and for a pair of code points a kerning
// adjustment. OpenType is the production implementation; tests and callers
// with custom font machinery can supply their own.
package face

import (
	"errors"
	"fmt"
)

// ErrNoGlyph is returned when a font has no glyph for a code point.
var ErrNoGlyph = errors.New("face: no glyph for code point")

// BitmapMode is the coverage encoding of a glyph bitmap.
type BitmapMode uint8

const (
	// ModeGray stores one 8-bit coverage sample per pixel.
	ModeGray BitmapMode = iota

	// ModeMono stores 1-bit coverage samples packed MSB-first, 8 per byte.
	ModeMono
)

// String returns the string representation of the mode.
func (m BitmapMode) String() string {
	switch m {
	case ModeGray:
		return "Gray"
	case ModeMono:
		return "Mono"
	default:
		return fmt.Sprintf("BitmapMode(%d)", uint8(m))
	}
}

// Bitmap is a glyph coverage bitmap.
type Bitmap struct {
	Pix    []byte
	Width  int
	Height int
	Stride int // bytes per row
	Mode   BitmapMode
}

// Value returns the coverage sample at row r, column c, expanded to the
// 0-255 range. Callers must check that the Mode is ModeGray or ModeMono
// before iterating.
func (b *Bitmap) Value(r, c int) uint8 {
	if b.Mode == ModeMono {
		if b.Pix[r*b.Stride+(c>>3)]&(0x80>>(c&7)) != 0 {
			return 255
		}
		return 0
	}
	return b.Pix[r*b.Stride+c]
}

// Glyph is one rasterized character, immutable once created.
//
// Left and Top are the bearing offsets from the pen position to the
// bitmap's top-left corner: Left to the right, Top above the baseline.
// YMin and YMax are the vertical extents relative to the baseline in
// pixels, with positive values above it.
type Glyph struct {
	Code    rune
	Bitmap  Bitmap
	Left    int
	Top     int
	Advance int
	YMin    int
	YMax    int
}

// Rasterizer produces glyphs and kerning values for a font at a fixed
// pixel size. Implementations are initialized once, before any rendering.
type Rasterizer interface {
	// Rasterize returns the glyph for the given code point, or an error
	// wrapping ErrNoGlyph if the font cannot produce one.
	Rasterize(code rune) (*Glyph, error)

	// Kern returns the horizontal kerning adjustment in pixels to apply
	// between prev and code. Zero when the pair has no adjustment.
	Kern(prev, code rune) int
}
