// Package pix models the destination pixel buffers the drawtext renderer
// writes into: format descriptors for planar chroma-subsampled YUV and
// packed RGB layouts, image buffers, 4-channel colors with string parsing
// and CCIR 601 conversion, and the per-model pixel sinks.
package pix

// Model selects the pixel memory layout of a destination image.
type Model uint8

const (
	// Planar stores each channel in its own plane; the chroma planes may
	// be stored at a lower resolution than luma (see Format.HSub/VSub).
	Planar Model = iota

	// Packed stores all channels interleaved in a single plane, one pixel
	// every Format.PixelStep bytes.
	Packed
)

// String returns the string representation of the model.
func (m Model) String() string {
	switch m {
	case Planar:
		return "Planar"
	case Packed:
		return "Packed"
	default:
		return "Unknown"
	}
}

// Format describes the memory layout of a destination image.
//
// Planar formats use three planes (Y, U, V) with the chroma planes
// subsampled by 1<<HSub horizontally and 1<<VSub vertically.
// Packed formats use a single plane with PixelStep bytes per pixel and
// Channels giving the byte offset of R, G, B and A within a pixel.
type Format struct {
	Name  string
	Model Model

	// HSub, VSub are the log2 chroma subsampling factors (planar only).
	HSub, VSub int

	// PixelStep is the distance in bytes between two pixels (packed only).
	PixelStep int

	// Channels maps R, G, B, A (in that order) to byte offsets within a
	// packed pixel. The alpha offset is meaningful only when HasAlpha is set.
	Channels [4]uint8

	// HasAlpha reports whether a packed format carries an alpha byte.
	HasAlpha bool
}

// String returns the format name.
func (f Format) String() string { return f.Name }

// Supported destination pixel formats.
var (
	YUV420 = Format{Name: "yuv420p", Model: Planar, HSub: 1, VSub: 1}
	YUV422 = Format{Name: "yuv422p", Model: Planar, HSub: 1, VSub: 0}
	YUV444 = Format{Name: "yuv444p", Model: Planar, HSub: 0, VSub: 0}
	YUV411 = Format{Name: "yuv411p", Model: Planar, HSub: 2, VSub: 0}
	YUV410 = Format{Name: "yuv410p", Model: Planar, HSub: 2, VSub: 2}
	YUV440 = Format{Name: "yuv440p", Model: Planar, HSub: 0, VSub: 1}

	RGBA  = Format{Name: "rgba", Model: Packed, PixelStep: 4, Channels: [4]uint8{0, 1, 2, 3}, HasAlpha: true}
	BGRA  = Format{Name: "bgra", Model: Packed, PixelStep: 4, Channels: [4]uint8{2, 1, 0, 3}, HasAlpha: true}
	ARGB  = Format{Name: "argb", Model: Packed, PixelStep: 4, Channels: [4]uint8{1, 2, 3, 0}, HasAlpha: true}
	ABGR  = Format{Name: "abgr", Model: Packed, PixelStep: 4, Channels: [4]uint8{3, 2, 1, 0}, HasAlpha: true}
	RGB24 = Format{Name: "rgb24", Model: Packed, PixelStep: 3, Channels: [4]uint8{0, 1, 2, 0}}
	BGR24 = Format{Name: "bgr24", Model: Packed, PixelStep: 3, Channels: [4]uint8{2, 1, 0, 0}}
)
