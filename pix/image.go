package pix

import "image"

// Image is a destination pixel buffer in one of the supported formats.
// The planes are owned by the caller; Image never reallocates them.
//
// Planar images carry three planes (Y, U, V). Packed images carry one.
// Strides give the distance in bytes between two rows of each plane.
type Image struct {
	Format  Format
	Width   int
	Height  int
	Planes  [][]byte
	Strides []int
}

// NewImage allocates an image of the given format and size.
// Chroma plane dimensions are rounded up so that every luma position
// (x>>HSub, y>>VSub) is addressable.
func NewImage(f Format, w, h int) *Image {
	im := &Image{Format: f, Width: w, Height: h}
	switch f.Model {
	case Planar:
		cw := chromaDim(w, f.HSub)
		ch := chromaDim(h, f.VSub)
		im.Planes = [][]byte{
			make([]byte, w*h),
			make([]byte, cw*ch),
			make([]byte, cw*ch),
		}
		im.Strides = []int{w, cw, cw}
	case Packed:
		stride := w * f.PixelStep
		im.Planes = [][]byte{make([]byte, stride*h)}
		im.Strides = []int{stride}
	}
	return im
}

// FromRGBA wraps a stdlib image.RGBA as a packed destination image.
// The pixel data is shared, not copied: drawing into the returned Image
// mutates img.
func FromRGBA(img *image.RGBA) *Image {
	b := img.Bounds()
	return &Image{
		Format:  RGBA,
		Width:   b.Dx(),
		Height:  b.Dy(),
		Planes:  [][]byte{img.Pix},
		Strides: []int{img.Stride},
	}
}

// Clone returns a deep copy of the image.
func (im *Image) Clone() *Image {
	out := &Image{
		Format:  im.Format,
		Width:   im.Width,
		Height:  im.Height,
		Planes:  make([][]byte, len(im.Planes)),
		Strides: append([]int(nil), im.Strides...),
	}
	for i, p := range im.Planes {
		out.Planes[i] = append([]byte(nil), p...)
	}
	return out
}

// chromaDim rounds a luma dimension up to the matching chroma dimension.
func chromaDim(d, sub int) int {
	return (d + (1 << sub) - 1) >> sub
}
