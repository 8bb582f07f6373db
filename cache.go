package drawtext

import "github.com/gogpu/drawtext/face"

// glyphCache owns the rendered glyphs of one rendering session, keyed by
// code point. Entries are created on first reference, never mutated and
// never evicted; they are reclaimed with the session. The cache is only
// written during the measurement pass of a render call, and render calls
// against one session are serialized by the caller, so no locking is
// needed here.
type glyphCache struct {
	ras    face.Rasterizer
	glyphs map[rune]*face.Glyph
}

func newGlyphCache(ras face.Rasterizer) *glyphCache {
	return &glyphCache{
		ras:    ras,
		glyphs: make(map[rune]*face.Glyph),
	}
}

// lookupOrLoad returns the cached glyph for code, rasterizing and caching
// it on first reference. On failure the cache is left unmodified for that
// key and the glyph result must not be used.
func (c *glyphCache) lookupOrLoad(code rune) (*face.Glyph, error) {
	if g, ok := c.glyphs[code]; ok {
		return g, nil
	}
	g, err := c.ras.Rasterize(code)
	if err != nil {
		return nil, &RasterizationError{Code: code, Err: err}
	}
	c.glyphs[code] = g
	return g, nil
}

// size returns the number of cached glyphs.
func (c *glyphCache) size() int { return len(c.glyphs) }
