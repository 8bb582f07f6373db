// Command drawtext renders a text string onto an image and saves it as PNG.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gogpu/drawtext"
	"github.com/gogpu/drawtext/face"
	"github.com/gogpu/drawtext/pix"
	"golang.org/x/image/font/gofont/goregular"
)

func main() {
	var (
		fontPath  = flag.String("font", "", "TTF/OTF font file (default: embedded Go Regular)")
		text      = flag.String("text", "%H:%M:%S", "text to render, strftime conversions expand per render")
		textFile  = flag.String("textfile", "", "read the text from this file instead of -text")
		size      = flag.Float64("size", 32, "font size in pixels")
		x         = flag.Int("x", 20, "left edge of the text")
		y         = flag.Int("y", 20, "top edge of the text")
		fontColor = flag.String("fontcolor", "black", "text color (name, #RRGGBB[AA] or 0xRRGGBB[AA])")
		box       = flag.Bool("box", false, "draw a background box behind the text")
		boxColor  = flag.String("boxcolor", "white", "background box color")
		tabSize   = flag.Int("tabsize", 4, "tab width in space advances")
		kerning   = flag.Bool("kerning", true, "apply kerning adjustments")
		input     = flag.String("input", "", "PNG to draw over (default: a blank canvas)")
		width     = flag.Int("width", 640, "canvas width when no input image is given")
		height    = flag.Int("height", 360, "canvas height when no input image is given")
		output    = flag.String("output", "drawtext.png", "output file")
	)
	flag.Parse()

	fontData := goregular.TTF
	if *fontPath != "" {
		data, err := os.ReadFile(*fontPath)
		if err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
		fontData = data
	}
	ras, err := face.NewOpenType(fontData, &face.Options{Size: *size})
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	defer ras.Close()

	template := *text
	if *textFile != "" {
		data, err := os.ReadFile(*textFile)
		if err != nil {
			log.Fatalf("Failed to read text file: %v", err)
		}
		template = strings.TrimRight(string(data), "\n")
	}

	opts := []drawtext.Option{
		drawtext.WithOrigin(*x, *y),
		drawtext.WithFontColor(*fontColor),
		drawtext.WithTabSize(*tabSize),
		drawtext.WithKerning(*kerning),
	}
	if *box {
		opts = append(opts, drawtext.WithBox(*boxColor))
	}
	r, err := drawtext.New(ras, template, opts...)
	if err != nil {
		log.Fatalf("Failed to configure renderer: %v", err)
	}

	canvas := loadCanvas(*input, *width, *height)
	start := time.Now()
	if err := r.Draw(pix.FromRGBA(canvas)); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	elapsed := time.Since(start)

	out, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer out.Close()
	if err := png.Encode(out, canvas); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}

	log.Printf("Rendered to %s (%dx%d, %v, %d cached glyphs)\n",
		*output, canvas.Bounds().Dx(), canvas.Bounds().Dy(), elapsed, r.CacheSize())
}

// loadCanvas decodes the input PNG into an RGBA buffer, or allocates a
// white canvas of the given size when no input is given.
func loadCanvas(path string, w, h int) *image.RGBA {
	if path == "" {
		canvas := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
		return canvas
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open input: %v", err)
	}
	defer f.Close()
	src, err := png.Decode(f)
	if err != nil {
		log.Fatalf("Failed to decode input: %v", err)
	}

	b := src.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(canvas, canvas.Bounds(), src, b.Min, draw.Src)
	return canvas
}
