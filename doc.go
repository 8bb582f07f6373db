// Package drawtext renders anti-aliased text onto raster frame buffers.
//
// # Overview
//
// drawtext composites glyph coverage bitmaps, with optional background
// boxes, over destination images in either a planar chroma-subsampled
// layout (YUV 4:2:0 and friends) or a packed multi-channel layout (RGBA
// byte orders and 24-bit RGB). It is built for the one-render-per-frame
// shape of a video pipeline: a session owns a lazily populated glyph
// cache that persists across frames, while positions are recomputed on
// every call because the text may be time-expanded.
//
// # Quick Start
//
//	data, _ := os.ReadFile("font.ttf")
//	ras, _ := face.NewOpenType(data, &face.Options{Size: 24})
//
//	r, _ := drawtext.New(ras, "%H:%M:%S",
//		drawtext.WithOrigin(16, 16),
//		drawtext.WithFontColor("white"),
//		drawtext.WithBox("black"),
//	)
//
//	img := pix.NewImage(pix.YUV420, 1280, 720)
//	_ = r.Draw(img) // once per frame
//
// # Architecture
//
// The library is organized into:
//   - Public API: Renderer, functional options
//   - face: the font rasterizer boundary (coverage bitmaps, metrics, kerning)
//   - pix: destination formats, colors, and the per-model pixel sinks
//   - expand: strftime-style time expansion of the text template
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Glyph
// positions are derived from pen position, bearing and baseline; the
// baseline of a line block is the maximum ascent over the whole text.
//
// # Concurrency
//
// A Renderer serves one Draw call at a time; the hosting pipeline must
// serialize calls against the same session (or confine each session to
// one worker).
package drawtext
