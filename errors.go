package drawtext

import (
	"errors"
	"fmt"
)

// Sentinel errors for the drawtext package.
var (
	// ErrNoRasterizer is returned by New when no rasterizer is supplied.
	ErrNoRasterizer = errors.New("drawtext: rasterizer must not be nil")

	// ErrTextTooLong is returned when the text, after expansion, reaches
	// the maximum supported size.
	ErrTextTooLong = errors.New("drawtext: text exceeds maximum expanded size")

	// ErrNegativeOrigin is returned by New for an origin outside the frame.
	ErrNegativeOrigin = errors.New("drawtext: origin must not be negative")

	// ErrBadTabSize is returned by New for a negative tab size.
	ErrBadTabSize = errors.New("drawtext: tab size must not be negative")

	// ErrUnsupportedGlyphFormat is returned when a glyph bitmap uses a
	// coverage encoding that is neither mono nor gray.
	ErrUnsupportedGlyphFormat = errors.New("drawtext: unsupported glyph bitmap encoding")
)

// RasterizationError wraps a rasterizer failure for one code point.
// It aborts the whole render call; no fallback glyph is substituted.
type RasterizationError struct {
	Code rune
	Err  error
}

func (e *RasterizationError) Error() string {
	return fmt.Sprintf("drawtext: rasterizing %U: %v", e.Code, e.Err)
}

func (e *RasterizationError) Unwrap() error { return e.Err }
