package drawtext

import "time"

// Option configures a Renderer during creation.
// Use functional options to customize rendering behavior.
//
// Example:
//
//	r, err := drawtext.New(ras, "hello",
//		drawtext.WithOrigin(32, 32),
//		drawtext.WithFontColor("#00ff00"),
//	)
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
// Color specifications stay strings here; New parses and validates them.
type rendererOptions struct {
	originX, originY int
	fontColor        string
	boxColor         string
	drawBox          bool
	tabSize          int
	kerning          bool
	now              func() time.Time
}

// defaultOptions returns the default renderer options: black text on an
// optional white box, origin (0,0), tab size 4, kerning applied.
func defaultOptions() rendererOptions {
	return rendererOptions{
		fontColor: "black",
		boxColor:  "white",
		tabSize:   4,
		kerning:   true,
		now:       time.Now,
	}
}

// WithOrigin sets the top-left position the text block starts at.
func WithOrigin(x, y int) Option {
	return func(o *rendererOptions) {
		o.originX = x
		o.originY = y
	}
}

// WithFontColor sets the foreground color from a specification string
// (a color name, "#RRGGBB[AA]" or "0xRRGGBB[AA]"). Invalid specifications
// are rejected by New.
func WithFontColor(spec string) Option {
	return func(o *rendererOptions) {
		o.fontColor = spec
	}
}

// WithBox enables the background box behind the text, filled with the
// given color specification.
func WithBox(spec string) Option {
	return func(o *rendererOptions) {
		o.drawBox = true
		o.boxColor = spec
	}
}

// WithTabSize sets the number of glyph advances a horizontal tab covers.
// The default is 4. A tab size of 0 makes tabs advance nothing.
func WithTabSize(n int) Option {
	return func(o *rendererOptions) {
		o.tabSize = n
	}
}

// WithKerning enables or disables kerning adjustments between glyph pairs.
// Kerning is enabled by default; fonts without kerning data yield zero
// adjustments either way.
func WithKerning(enabled bool) Option {
	return func(o *rendererOptions) {
		o.kerning = enabled
	}
}

// WithNow sets the clock used for time expansion of the text template.
// Intended for tests; the default is time.Now.
func WithNow(now func() time.Time) Option {
	return func(o *rendererOptions) {
		if now != nil {
			o.now = now
		}
	}
}
