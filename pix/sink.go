package pix

// Sink blends or overwrites single pixels of a destination image,
// hiding the difference between the planar and packed memory layouts.
// Coordinates are always in luma (full-resolution) pixels; the planar
// implementation applies chroma subsampling internally.
type Sink interface {
	// Bounds returns the destination width and height.
	Bounds() (w, h int)

	// BlendPixel alpha-blends c into the pixel at (x, y), weighted by the
	// coverage value cov (0 transparent, 255 fully covered).
	// Out-of-bounds positions are ignored.
	BlendPixel(x, y int, cov uint8, c Color)

	// Fill overwrites the rectangle with c, no blending.
	// The rectangle is clipped to the image.
	Fill(x, y, w, h int, c Color)
}

// NewSink returns the Sink for the image's pixel model.
// Planar destinations expect c in YUVA interpretation, packed ones in RGBA.
func NewSink(im *Image) Sink {
	if im.Format.Model == Planar {
		return &planarSink{im: im}
	}
	return &packedSink{im: im}
}

// chromaRange is the excursion of studio-range chroma samples and
// chromaOffset their zero point; luma blends over the full 8-bit range.
const (
	chromaRange  = 224
	chromaOffset = 16
)

// planarSink writes three-plane chroma-subsampled destinations.
type planarSink struct {
	im *Image
}

func (s *planarSink) Bounds() (int, int) { return s.im.Width, s.im.Height }

func (s *planarSink) BlendPixel(x, y int, cov uint8, c Color) {
	im := s.im
	if x < 0 || x >= im.Width || y < 0 || y >= im.Height {
		return
	}
	f := im.Format

	a := int(c[3]) * int(cov) / 255

	lp := y*im.Strides[0] + x
	im.Planes[0][lp] = uint8((a*int(c[0]) + (255-a)*int(im.Planes[0][lp])) >> 8)

	// Chroma alpha is rescaled to the studio excursion so that full
	// opacity and full coverage overwrite the sample exactly.
	ca := a * chromaRange / 255
	cp := (y>>f.VSub)*im.Strides[1] + (x >> f.HSub)
	u := int(im.Planes[1][cp])
	im.Planes[1][cp] = uint8(chromaOffset +
		(ca*(int(c[1])-chromaOffset)+(chromaRange-ca)*(u-chromaOffset))/chromaRange)
	v := int(im.Planes[2][cp])
	im.Planes[2][cp] = uint8(chromaOffset +
		(ca*(int(c[2])-chromaOffset)+(chromaRange-ca)*(v-chromaOffset))/chromaRange)
}

func (s *planarSink) Fill(x, y, w, h int, c Color) {
	im := s.im
	x, y, w, h = clipRect(x, y, w, h, im.Width, im.Height)
	if w <= 0 || h <= 0 {
		return
	}
	f := im.Format
	fillPlane(im.Planes[0], im.Strides[0], x, y, w, h, c[0])
	fillPlane(im.Planes[1], im.Strides[1], x>>f.HSub, y>>f.VSub, w>>f.HSub, h>>f.VSub, c[1])
	fillPlane(im.Planes[2], im.Strides[2], x>>f.HSub, y>>f.VSub, w>>f.HSub, h>>f.VSub, c[2])
}

// fillPlane overwrites a rectangle of one plane with a single value,
// reusing a filled scanline for every row.
func fillPlane(p []byte, stride, x, y, w, h int, v byte) {
	if w <= 0 || h <= 0 {
		return
	}
	line := p[y*stride+x : y*stride+x+w]
	for i := range line {
		line[i] = v
	}
	for j := 1; j < h; j++ {
		row := (y+j)*stride + x
		copy(p[row:row+w], line)
	}
}

// packedSink writes single-plane interleaved destinations.
type packedSink struct {
	im *Image
}

func (s *packedSink) Bounds() (int, int) { return s.im.Width, s.im.Height }

func (s *packedSink) BlendPixel(x, y int, cov uint8, c Color) {
	im := s.im
	if x < 0 || x >= im.Width || y < 0 || y >= im.Height {
		return
	}
	f := im.Format
	p := im.Planes[0]
	base := y*im.Strides[0] + x*f.PixelStep

	a := int(c[3]) * int(cov) / 255
	for ch := 0; ch < 3; ch++ {
		off := base + int(f.Channels[ch])
		p[off] = uint8((a*int(c[ch]) + (255-a)*int(p[off])) >> 8)
	}
	// The destination alpha byte, if any, is deliberately left untouched.
}

func (s *packedSink) Fill(x, y, w, h int, c Color) {
	im := s.im
	x, y, w, h = clipRect(x, y, w, h, im.Width, im.Height)
	if w <= 0 || h <= 0 {
		return
	}
	f := im.Format
	p := im.Planes[0]

	// Build one scanline of the fill pattern, then copy it per row.
	line := make([]byte, w*f.PixelStep)
	for i := 0; i < w; i++ {
		px := line[i*f.PixelStep:]
		px[f.Channels[0]] = c[0]
		px[f.Channels[1]] = c[1]
		px[f.Channels[2]] = c[2]
		if f.HasAlpha {
			px[f.Channels[3]] = c[3]
		}
	}
	for j := 0; j < h; j++ {
		row := (y+j)*im.Strides[0] + x*f.PixelStep
		copy(p[row:row+len(line)], line)
	}
}

// clipRect clips a rectangle to [0, w) x [0, h) destination bounds.
func clipRect(x, y, w, h, dw, dh int) (int, int, int, int) {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > dw {
		w = dw - x
	}
	if y+h > dh {
		h = dh - y
	}
	return x, y, w, h
}
