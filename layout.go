package drawtext

import (
	"unicode/utf8"

	"github.com/gogpu/drawtext/face"
)

// penPosition is the top-left blit target for one decoded character.
type penPosition struct {
	x, y int
}

// layoutConfig carries the configuration the positioning pass depends on.
type layoutConfig struct {
	originX int
	originY int
	width   int // drawing width; lines wrap at this boundary
	tabSize int
	kerning bool
	kern    func(prev, code rune) int
}

// layoutResult is the outcome of the positioning pass: one position per
// decoded code point plus the extents of the background box.
type layoutResult struct {
	positions  []penPosition
	textHeight int
	baseline   int
	boxWidth   int // widest content line; clamped at the wrap boundary
	bottom     int // y below the closing line
}

// decodeText decodes UTF-8 into code points, skipping ill-formed sequences
// byte by byte instead of aborting.
func decodeText(s string) []rune {
	codes := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			i++
			continue
		}
		codes = append(codes, r)
		i += size
	}
	return codes
}

// measure is the first layout pass: it resolves every code point through
// the cache (including control characters) and accumulates the global
// vertical extent. Line height is uniform across wrapped lines, so the
// whole sequence is measured before any position is computed.
//
// A lookup failure is fatal to the render call.
func measure(cache *glyphCache, codes []rune) (glyphs map[rune]*face.Glyph, textHeight, baseline int, err error) {
	glyphs = make(map[rune]*face.Glyph, len(codes))
	yMin, yMax := 32000, -32000
	for _, code := range codes {
		g, err := cache.lookupOrLoad(code)
		if err != nil {
			return nil, 0, 0, err
		}
		glyphs[code] = g
		yMin = min(yMin, g.YMin)
		yMax = max(yMax, g.YMax)
	}
	if len(codes) == 0 {
		return glyphs, 0, 0, nil
	}
	return glyphs, yMax - yMin, yMax, nil
}

// layoutText is the second layout pass: a pure function from the decoded
// sequence and its resolved glyph table to blit positions and box extents.
//
// The pen starts at the configured origin. A line break, or a glyph whose
// advance would cross the drawing width, moves the pen down one text
// height and back to the origin column. The \n of a \r\n pair is folded
// into the preceding break. Tabs advance by tabSize glyph advances and,
// like all printable characters, widen the current line accumulator;
// \r and \n do not.
func layoutText(codes []rune, glyphs map[rune]*face.Glyph, textHeight, baseline int, cfg layoutConfig) layoutResult {
	res := layoutResult{
		positions:  make([]penPosition, len(codes)),
		textHeight: textHeight,
		baseline:   baseline,
	}

	x, y := cfg.originX, cfg.originY
	strW := 0
	var prevCode rune
	havePrev := false

	for i, code := range codes {
		if havePrev && prevCode == '\r' && code == '\n' {
			continue
		}
		g := glyphs[code]

		if cfg.kerning && havePrev && code != 0 {
			x += cfg.kern(prevCode, code)
		}

		if x+g.Advance >= cfg.width || code == '\r' || code == '\n' {
			if x+g.Advance >= cfg.width {
				// The box never extends past the wrap boundary.
				res.boxWidth = cfg.width - cfg.originX - 1
			}
			y += textHeight
			x = cfg.originX
		}

		res.positions[i] = penPosition{
			x: x + g.Left,
			y: y - g.Top + baseline,
		}

		if code != '\n' && code != '\r' {
			adv := g.Advance
			if code == '\t' {
				adv *= cfg.tabSize
			}
			x += adv
			strW += adv
		}

		prevCode = code
		havePrev = true
	}

	y += textHeight // closing line
	if res.boxWidth == 0 {
		res.boxWidth = strW
	}
	res.bottom = y
	return res
}
