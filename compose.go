package drawtext

import (
	"fmt"

	"github.com/gogpu/drawtext/face"
	"github.com/gogpu/drawtext/pix"
)

// drawGlyph alpha-blends a glyph coverage bitmap into the destination at
// (x, y). Bitmap samples landing outside the image are silently dropped.
// Transparent samples (coverage 0) leave the destination untouched.
func drawGlyph(sink pix.Sink, bm *face.Bitmap, x, y int, c pix.Color) error {
	switch bm.Mode {
	case face.ModeGray, face.ModeMono:
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedGlyphFormat, bm.Mode)
	}

	w, h := sink.Bounds()
	for row := 0; row < bm.Height; row++ {
		dy := y + row
		if dy < 0 {
			continue
		}
		if dy >= h {
			break
		}
		for col := 0; col < bm.Width; col++ {
			dx := x + col
			if dx < 0 {
				continue
			}
			if dx >= w {
				break
			}
			val := bm.Value(row, col)
			if val == 0 {
				continue
			}
			sink.BlendPixel(dx, dy, val, c)
		}
	}
	return nil
}

// drawBox fills the background rectangle behind the text. Fully opaque
// colors take the scanline overwrite fast path; anything else blends per
// pixel with full coverage, through the same sink as the glyphs.
func drawBox(sink pix.Sink, x, y, w, h int, c pix.Color) {
	if c.Alpha() == 0xFF {
		sink.Fill(x, y, w, h, c)
		return
	}
	dw, dh := sink.Bounds()
	for j := 0; j < h; j++ {
		if y+j < 0 || y+j >= dh {
			continue
		}
		for i := 0; i < w; i++ {
			if x+i < 0 || x+i >= dw {
				continue
			}
			sink.BlendPixel(x+i, y+j, 255, c)
		}
	}
}
