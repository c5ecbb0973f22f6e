package ggrenderer

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/pmdartus/speedline/pkg/ports"
)

func TestRenderer_CreateCanvas(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(100, 60, color.White)
	if canvas == nil {
		t.Fatal("expected canvas to be created")
	}

	img := canvas.ToImage()
	bounds := img.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 60 {
		t.Errorf("expected 100x60, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	r0, g0, b0, _ := img.At(50, 30).RGBA()
	if r0 != 0xffff || g0 != 0xffff || b0 != 0xffff {
		t.Errorf("expected white background, got %d,%d,%d", r0, g0, b0)
	}
}

func TestCanvas_UniformBackground(t *testing.T) {
	bg := color.RGBA{R: 0x20, G: 0x40, B: 0x80, A: 0xff}
	img := New().CreateCanvas(7, 5, bg).ToImage()

	wr, wg, wb, wa := bg.RGBA()
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			r0, g0, b0, a0 := img.At(x, y).RGBA()
			if r0 != wr || g0 != wg || b0 != wb || a0 != wa {
				t.Fatalf("pixel (%d,%d): expected %v, got %v", x, y, bg, img.At(x, y))
			}
		}
	}
}

func TestRenderer_EncodeJPEG(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(32, 24, color.White)

	data, err := r.EncodeImage(canvas.ToImage(), ports.FormatJPEG, 90)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	decoded, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode JPEG: %v", err)
	}
	if decoded.Bounds().Dx() != 32 || decoded.Bounds().Dy() != 24 {
		t.Errorf("expected 32x24, got %v", decoded.Bounds())
	}
}

func TestRenderer_EncodePNG(t *testing.T) {
	r := New()
	img := image.NewRGBA(image.Rect(0, 0, 30, 30))

	data, err := r.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 30 || decoded.Bounds().Dy() != 30 {
		t.Errorf("expected 30x30, got %v", decoded.Bounds())
	}
}

func TestRenderer_EncodeUnsupportedFormat(t *testing.T) {
	r := New()
	if _, err := r.EncodeImage(image.NewRGBA(image.Rect(0, 0, 1, 1)), ports.ImageFormat(99), 0); err == nil {
		t.Error("expected error for unsupported format")
	}
}
