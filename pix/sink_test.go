package pix

import "testing"

func TestPlanarBlendPixelFullOpacityOverwrites(t *testing.T) {
	im := NewImage(YUV420, 4, 4)
	for _, p := range im.Planes {
		for i := range p {
			p[i] = 128
		}
	}
	s := NewSink(im)

	s.BlendPixel(2, 2, 255, Color{235, 40, 200, 255})

	if got := im.Planes[0][2*im.Strides[0]+2]; got < 234 || got > 235 {
		t.Errorf("luma = %d, want 235 (±1)", got)
	}
	// Chroma lands at the subsampled position (1, 1) and full effective
	// alpha replaces the sample exactly.
	cp := 1*im.Strides[1] + 1
	if got := im.Planes[1][cp]; got != 40 {
		t.Errorf("U = %d, want exact overwrite 40", got)
	}
	if got := im.Planes[2][cp]; got != 200 {
		t.Errorf("V = %d, want exact overwrite 200", got)
	}
}

func TestPlanarBlendPixelHalfCoverage(t *testing.T) {
	im := NewImage(YUV444, 2, 2)
	im.Planes[0][0] = 16
	s := NewSink(im)

	s.BlendPixel(0, 0, 128, Color{235, 128, 128, 255})

	// a = 128, luma = (128*235 + 127*16) >> 8 = 125.
	if got := im.Planes[0][0]; got != 125 {
		t.Errorf("luma = %d, want 125", got)
	}
}

func TestPlanarBlendPixelZeroAlphaIsNoop(t *testing.T) {
	im := NewImage(YUV444, 2, 2)
	for _, p := range im.Planes {
		for i := range p {
			p[i] = 99
		}
	}
	s := NewSink(im)

	s.BlendPixel(0, 0, 255, Color{235, 16, 240, 0})
	s.BlendPixel(1, 1, 0, Color{235, 16, 240, 255})

	for pi, p := range im.Planes {
		for i, b := range p {
			if b != 99 {
				t.Fatalf("plane %d byte %d modified with zero effective alpha", pi, i)
			}
		}
	}
}

func TestPlanarBlendPixelIgnoresOutOfBounds(t *testing.T) {
	im := NewImage(YUV420, 2, 2)
	s := NewSink(im)

	s.BlendPixel(-1, 0, 255, Color{235, 128, 128, 255})
	s.BlendPixel(0, -1, 255, Color{235, 128, 128, 255})
	s.BlendPixel(2, 0, 255, Color{235, 128, 128, 255})
	s.BlendPixel(0, 2, 255, Color{235, 128, 128, 255})

	for _, b := range im.Planes[0] {
		if b != 0 {
			t.Fatal("out-of-bounds blend modified the image")
		}
	}
}

func TestPlanarFillSubsamplesChromaRect(t *testing.T) {
	im := NewImage(YUV420, 8, 8)
	s := NewSink(im)

	s.Fill(2, 2, 4, 4, Color{100, 60, 70, 255})

	// Luma rect is (2,2)-(6,6).
	if got := im.Planes[0][2*im.Strides[0]+2]; got != 100 {
		t.Errorf("luma inside = %d, want 100", got)
	}
	if got := im.Planes[0][1*im.Strides[0]+2]; got != 0 {
		t.Errorf("luma above rect = %d, want 0", got)
	}
	// Chroma rect is (1,1)-(3,3) in the half-resolution planes.
	if got := im.Planes[1][1*im.Strides[1]+1]; got != 60 {
		t.Errorf("U inside = %d, want 60", got)
	}
	if got := im.Planes[1][0]; got != 0 {
		t.Errorf("U outside = %d, want 0", got)
	}
	if got := im.Planes[2][2*im.Strides[2]+2]; got != 70 {
		t.Errorf("V inside = %d, want 70", got)
	}
	if got := im.Planes[2][3*im.Strides[2]+3]; got != 0 {
		t.Errorf("V outside = %d, want 0", got)
	}
}

func TestPackedBlendPixelChannelOffsets(t *testing.T) {
	for _, f := range []Format{RGBA, BGRA, ARGB, ABGR} {
		im := NewImage(f, 2, 1)
		s := NewSink(im)

		s.BlendPixel(0, 0, 255, Color{200, 100, 50, 255})

		p := im.Planes[0]
		checks := []struct {
			ch   int
			want int
		}{{0, 200}, {1, 100}, {2, 50}}
		for _, c := range checks {
			got := int(p[int(f.Channels[c.ch])])
			if got < c.want-1 || got > c.want {
				t.Errorf("%s: channel %d = %d, want %d (±1)", f.Name, c.ch, got, c.want)
			}
		}
	}
}

func TestPackedBlendPixelLeavesDestinationAlpha(t *testing.T) {
	im := NewImage(RGBA, 1, 1)
	im.Planes[0][3] = 0x42
	s := NewSink(im)

	s.BlendPixel(0, 0, 255, Color{255, 255, 255, 255})

	if got := im.Planes[0][3]; got != 0x42 {
		t.Errorf("destination alpha byte = %#x, want untouched 0x42", got)
	}
}

func TestPackedBlendPixelThreeBytePixels(t *testing.T) {
	im := NewImage(BGR24, 2, 1)
	s := NewSink(im)

	s.BlendPixel(1, 0, 255, Color{200, 100, 50, 255})

	p := im.Planes[0]
	// Second pixel starts at byte 3; BGR order stores blue first.
	if got := int(p[3]); got < 49 || got > 50 {
		t.Errorf("B = %d, want 50 (±1)", got)
	}
	if got := int(p[5]); got < 199 || got > 200 {
		t.Errorf("R = %d, want 200 (±1)", got)
	}
	if p[0] != 0 || p[1] != 0 || p[2] != 0 {
		t.Error("first pixel modified")
	}
}

func TestPackedFillWritesAlphaAndClips(t *testing.T) {
	im := NewImage(RGBA, 4, 4)
	s := NewSink(im)

	s.Fill(2, 2, 10, 10, Color{10, 20, 30, 40})

	inside := 2*im.Strides[0] + 2*4
	got := im.Planes[0][inside : inside+4]
	if got[0] != 10 || got[1] != 20 || got[2] != 30 || got[3] != 40 {
		t.Errorf("filled pixel = %v, want [10 20 30 40]", got)
	}
	if im.Planes[0][0] != 0 {
		t.Error("pixel outside rect modified")
	}

	// Fully off-image rects are dropped.
	s.Fill(-10, -10, 5, 5, Color{255, 255, 255, 255})
	if im.Planes[0][0] != 0 {
		t.Error("clipped fill leaked into the image")
	}
}
