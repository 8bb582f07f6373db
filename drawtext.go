package drawtext

import (
	"fmt"
	"time"

	"github.com/gogpu/drawtext/expand"
	"github.com/gogpu/drawtext/face"
	"github.com/gogpu/drawtext/pix"
)

// MaxTextSize is the maximum length in bytes of the text after time
// expansion. Longer texts are rejected before layout begins.
const MaxTextSize = 2048

// Renderer is a text rendering session. It owns the glyph cache, which
// grows lazily on first reference to each code point and persists across
// frames, and the validated configuration. Create with New, then call
// Draw once per frame.
type Renderer struct {
	ras   face.Rasterizer
	cache *glyphCache

	text string
	now  func() time.Time

	originX, originY int
	fontColor        pix.Color // RGBA interpretation
	boxColor         pix.Color
	drawBox          bool
	tabSize          int
	kerning          bool
}

// New creates a rendering session for the given text template.
// The text is expanded strftime-style on every Draw, so templates like
// "%H:%M:%S" render a live clock; plain text passes through unchanged.
//
// All configuration is validated here: invalid color specifications, a
// negative origin or tab size, or a template at or above MaxTextSize are
// rejected now rather than at render time. The fallback glyph for code
// point 0 is rasterized and cached before New returns.
func New(ras face.Rasterizer, text string, opts ...Option) (*Renderer, error) {
	if ras == nil {
		return nil, ErrNoRasterizer
	}
	if len(text) >= MaxTextSize {
		return nil, ErrTextTooLong
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.originX < 0 || o.originY < 0 {
		return nil, ErrNegativeOrigin
	}
	if o.tabSize < 0 {
		return nil, ErrBadTabSize
	}

	fontColor, err := pix.ParseColor(o.fontColor)
	if err != nil {
		return nil, fmt.Errorf("drawtext: font color: %w", err)
	}
	boxColor, err := pix.ParseColor(o.boxColor)
	if err != nil {
		return nil, fmt.Errorf("drawtext: box color: %w", err)
	}

	r := &Renderer{
		ras:       ras,
		cache:     newGlyphCache(ras),
		text:      text,
		now:       o.now,
		originX:   o.originX,
		originY:   o.originY,
		fontColor: fontColor,
		boxColor:  boxColor,
		drawBox:   o.drawBox,
		tabSize:   o.tabSize,
		kerning:   o.kerning,
	}

	// Pre-populate the reserved fallback glyph.
	if _, err := r.cache.lookupOrLoad(0); err != nil {
		return nil, err
	}
	return r, nil
}

// CacheSize returns the number of glyphs cached by the session.
func (r *Renderer) CacheSize() int { return r.cache.size() }

// Draw renders the session's text onto img. One call processes the frame
// to completion before returning; it either succeeds or fails atomically
// with an error, in which case the destination may hold partial writes
// and the caller should discard the frame.
func (r *Renderer) Draw(img *pix.Image) error {
	text := expand.Expand(r.text, r.now())
	if len(text) >= MaxTextSize {
		return ErrTextTooLong
	}
	codes := decodeText(text)

	glyphs, textHeight, baseline, err := measure(r.cache, codes)
	if err != nil {
		return err
	}

	res := layoutText(codes, glyphs, textHeight, baseline, layoutConfig{
		originX: r.originX,
		originY: r.originY,
		width:   img.Width,
		tabSize: r.tabSize,
		kerning: r.kerning,
		kern:    r.ras.Kern,
	})

	fontColor, boxColor := r.fontColor, r.boxColor
	if img.Format.Model == pix.Planar {
		fontColor = fontColor.YUV()
		boxColor = boxColor.YUV()
	}
	sink := pix.NewSink(img)

	if r.drawBox {
		boxW := min(res.boxWidth, img.Width-r.originX-1)
		bottom := min(res.bottom, img.Height-1)
		drawBox(sink, r.originX, r.originY, boxW, bottom-r.originY, boxColor)
	}

	for i, code := range codes {
		if code == '\n' || code == '\r' || code == '\t' {
			continue
		}
		g := glyphs[code]
		if err := drawGlyph(sink, &g.Bitmap, res.positions[i].x, res.positions[i].y, fontColor); err != nil {
			return err
		}
	}

	Logger().Debug("drawtext: frame rendered",
		"chars", len(codes),
		"cache", r.cache.size(),
		"textHeight", res.textHeight,
		"boxWidth", res.boxWidth)
	return nil
}
