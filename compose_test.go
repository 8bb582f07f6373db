package drawtext

import (
	"errors"
	"testing"

	"github.com/gogpu/drawtext/face"
	"github.com/gogpu/drawtext/pix"
)

func grayBitmap(w, h int, val byte) *face.Bitmap {
	cov := make([]byte, w*h)
	for i := range cov {
		cov[i] = val
	}
	return &face.Bitmap{Pix: cov, Width: w, Height: h, Stride: w, Mode: face.ModeGray}
}

func TestDrawGlyphOpaqueOverwrites(t *testing.T) {
	img := pix.NewImage(pix.RGBA, 8, 8)
	sink := pix.NewSink(img)
	c := pix.Color{200, 100, 50, 255}

	if err := drawGlyph(sink, grayBitmap(2, 2, 255), 3, 3, c); err != nil {
		t.Fatalf("drawGlyph: %v", err)
	}

	off := 3*img.Strides[0] + 3*4
	for ch := 0; ch < 3; ch++ {
		got := int(img.Planes[0][off+ch])
		want := int(c[ch])
		if got < want-1 || got > want {
			t.Errorf("channel %d = %d, want %d (±1)", ch, got, want)
		}
	}
}

func TestDrawGlyphZeroCoverageLeavesDestination(t *testing.T) {
	img := pix.NewImage(pix.RGBA, 8, 8)
	for i := range img.Planes[0] {
		img.Planes[0][i] = 77
	}
	sink := pix.NewSink(img)

	if err := drawGlyph(sink, grayBitmap(4, 4, 0), 0, 0, pix.Color{255, 255, 255, 255}); err != nil {
		t.Fatalf("drawGlyph: %v", err)
	}
	for i, b := range img.Planes[0] {
		if b != 77 {
			t.Fatalf("byte %d modified by zero-coverage glyph", i)
		}
	}
}

func TestDrawGlyphClipsSilently(t *testing.T) {
	img := pix.NewImage(pix.RGBA, 4, 4)
	sink := pix.NewSink(img)
	c := pix.Color{255, 255, 255, 255}

	// Partially and fully outside positions must not error or write
	// out of bounds.
	for _, p := range []struct{ x, y int }{{-1, -1}, {3, 3}, {10, 10}, {-8, 2}} {
		if err := drawGlyph(sink, grayBitmap(3, 3, 255), p.x, p.y, c); err != nil {
			t.Fatalf("drawGlyph at (%d,%d): %v", p.x, p.y, err)
		}
	}
	// The (3,3) blit covers exactly the bottom-right pixel.
	if img.Planes[0][3*img.Strides[0]+3*4] == 0 {
		t.Error("in-bounds corner pixel not painted")
	}
}

func TestDrawGlyphMonoUnpacksBits(t *testing.T) {
	// One row, pattern 10100000: columns 0 and 2 covered.
	bm := &face.Bitmap{
		Pix:    []byte{0xA0},
		Width:  5,
		Height: 1,
		Stride: 1,
		Mode:   face.ModeMono,
	}
	img := pix.NewImage(pix.RGBA, 8, 8)
	sink := pix.NewSink(img)

	if err := drawGlyph(sink, bm, 0, 0, pix.Color{255, 0, 0, 255}); err != nil {
		t.Fatalf("drawGlyph: %v", err)
	}
	for col := 0; col < 5; col++ {
		r := img.Planes[0][col*4]
		covered := col == 0 || col == 2
		if covered && r == 0 {
			t.Errorf("column %d: covered bit not painted", col)
		}
		if !covered && r != 0 {
			t.Errorf("column %d: uncovered bit painted", col)
		}
	}
}

func TestDrawGlyphRejectsUnknownEncoding(t *testing.T) {
	bm := grayBitmap(2, 2, 255)
	bm.Mode = face.BitmapMode(7)
	sink := pix.NewSink(pix.NewImage(pix.RGBA, 4, 4))

	if err := drawGlyph(sink, bm, 0, 0, pix.Color{}); !errors.Is(err, ErrUnsupportedGlyphFormat) {
		t.Errorf("got %v, want ErrUnsupportedGlyphFormat", err)
	}
}

func TestDrawBoxOpaqueFastPath(t *testing.T) {
	img := pix.NewImage(pix.YUV420, 8, 8)
	sink := pix.NewSink(img)
	c := pix.Color{100, 60, 200, 255}

	drawBox(sink, 2, 2, 4, 4, c)

	if got := img.Planes[0][3*img.Strides[0]+3]; got != 100 {
		t.Errorf("luma inside box = %d, want straight overwrite 100", got)
	}
	if got := img.Planes[0][0]; got != 0 {
		t.Errorf("luma outside box = %d, want untouched 0", got)
	}
	// Chroma rect is subsampled: (2,2,4,4) -> (1,1,2,2).
	if got := img.Planes[1][1*img.Strides[1]+1]; got != 60 {
		t.Errorf("chroma U inside box = %d, want 60", got)
	}
	if got := img.Planes[1][0]; got != 0 {
		t.Errorf("chroma U outside box = %d, want untouched 0", got)
	}
}

func TestDrawBoxBlendsTranslucentColor(t *testing.T) {
	img := pix.NewImage(pix.RGBA, 4, 4)
	sink := pix.NewSink(img)

	drawBox(sink, 0, 0, 4, 4, pix.Color{255, 255, 255, 128})

	// dst = (128*255 + 127*0) >> 8 = 127 on every covered channel.
	got := img.Planes[0][0]
	if got != 127 {
		t.Errorf("blended channel = %d, want 127", got)
	}
}
