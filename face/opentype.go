package face

import (
	"bytes"
	"fmt"
	"image"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Options configures an OpenType rasterizer.
type Options struct {
	// Size is the pixel size (ppem) glyphs are rendered at. Default: 16.
	Size float64

	// DPI is the dot resolution used to scale Size. Default: 72,
	// which makes Size a pixel size.
	DPI float64

	// Hinting selects glyph grid-fitting. Default: full hinting.
	Hinting font.Hinting
}

func (o *Options) withDefaults() Options {
	out := Options{Size: 16, DPI: 72, Hinting: font.HintingFull}
	if o != nil {
		if o.Size > 0 {
			out.Size = o.Size
		}
		if o.DPI > 0 {
			out.DPI = o.DPI
		}
		out.Hinting = o.Hinting
	}
	return out
}

// OpenType rasterizes glyphs from an OpenType/TrueType font using
// golang.org/x/image/font/opentype. Character coverage is checked through
// go-text/typesetting, since the x/image face silently substitutes the
// missing-glyph symbol instead of reporting absent code points.
//
// The zero value is not usable; create instances with NewOpenType.
// Methods are safe for concurrent use.
type OpenType struct {
	mu   sync.Mutex
	face font.Face    // not concurrent-safe, guarded by mu
	cov  *gtfont.Face // cmap queries, guarded by mu
}

// NewOpenType parses fontData and prepares a rasterizer at the given size.
func NewOpenType(fontData []byte, opts *Options) (*OpenType, error) {
	o := opts.withDefaults()

	f, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("face: parsing font: %w", err)
	}
	xface, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    o.Size,
		DPI:     o.DPI,
		Hinting: o.Hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("face: creating face: %w", err)
	}

	cov, err := gtfont.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("face: parsing font tables: %w", err)
	}

	return &OpenType{face: xface, cov: cov}, nil
}

// Rasterize implements Rasterizer. The returned glyph owns a private copy
// of the coverage bitmap; the underlying face buffers are reused between
// calls and never escape.
//
// Code point 0 is always rasterized as the font's missing-glyph symbol.
func (ot *OpenType) Rasterize(code rune) (*Glyph, error) {
	ot.mu.Lock()
	defer ot.mu.Unlock()

	// Control characters fall back to the missing-glyph symbol instead of
	// failing: layout needs their advance but they are never blitted.
	if code != 0 && !isControl(code) {
		if _, ok := ot.cov.NominalGlyph(code); !ok {
			return nil, fmt.Errorf("%w: %U", ErrNoGlyph, code)
		}
	}

	dr, mask, maskp, advance, ok := ot.face.Glyph(fixed.Point26_6{}, code)
	if !ok {
		return nil, fmt.Errorf("%w: %U", ErrNoGlyph, code)
	}
	alpha, ok := mask.(*image.Alpha)
	if !ok {
		return nil, fmt.Errorf("face: unexpected mask type %T for %U", mask, code)
	}

	w, h := dr.Dx(), dr.Dy()
	bm := Bitmap{
		Pix:    make([]byte, w*h),
		Width:  w,
		Height: h,
		Stride: w,
		Mode:   ModeGray,
	}
	for r := 0; r < h; r++ {
		src := (maskp.Y+r)*alpha.Stride + maskp.X
		copy(bm.Pix[r*w:(r+1)*w], alpha.Pix[src:src+w])
	}

	return &Glyph{
		Code:    code,
		Bitmap:  bm,
		Left:    dr.Min.X,
		Top:     -dr.Min.Y,
		Advance: advance.Floor(),
		YMin:    -dr.Max.Y,
		YMax:    -dr.Min.Y,
	}, nil
}

// isControl reports whether code is a C0/C1 control character.
func isControl(code rune) bool {
	return code < 0x20 || (code >= 0x7F && code < 0xA0)
}

// Kern implements Rasterizer.
func (ot *OpenType) Kern(prev, code rune) int {
	ot.mu.Lock()
	defer ot.mu.Unlock()
	return ot.face.Kern(prev, code).Floor()
}

// Close releases the rasterizer's font resources.
func (ot *OpenType) Close() error {
	ot.mu.Lock()
	defer ot.mu.Unlock()
	return ot.face.Close()
}
