package histogram

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestCompute_SolidBlack(t *testing.T) {
	h := Compute(solid(10, 8, color.Black))

	for c := 0; c < NumChannels; c++ {
		if h[c][0] != 80 {
			t.Errorf("channel %d: expected 80 pixels at bucket 0, got %d", c, h[c][0])
		}
		if h[c][255] != 0 {
			t.Errorf("channel %d: expected no pixels at bucket 255, got %d", c, h[c][255])
		}
	}
}

func TestCompute_SolidWhite(t *testing.T) {
	h := Compute(solid(4, 4, color.White))

	for c := 0; c < NumChannels; c++ {
		if h[c][0] != 0 {
			t.Errorf("channel %d: expected no pixels at bucket 0, got %d", c, h[c][0])
		}
		if h[c][255] != 16 {
			t.Errorf("channel %d: expected 16 pixels at bucket 255, got %d", c, h[c][255])
		}
	}
}

func TestCompute_UniformHasSingleBucket(t *testing.T) {
	h := Compute(solid(5, 5, color.RGBA{R: 10, G: 20, B: 30, A: 255}))
	want := [NumChannels]int{10, 20, 30}

	for c := 0; c < NumChannels; c++ {
		nonZero := 0
		for i, n := range h[c] {
			if n == 0 {
				continue
			}
			nonZero++
			if i != want[c] || n != 25 {
				t.Errorf("channel %d: unexpected bucket %d = %d", c, i, n)
			}
		}
		if nonZero != 1 {
			t.Errorf("channel %d: expected 1 non-zero bucket, got %d", c, nonZero)
		}
	}
}

func TestCompute_GrayscaleWithoutWhite(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 250, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 250; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(x)})
		}
	}

	h := Compute(img)

	for c := 0; c < NumChannels; c++ {
		if h[c][255] != 0 {
			t.Errorf("channel %d: expected no white pixels, got %d", c, h[c][255])
		}
		if got := h.Total(c); got != 500 {
			t.Errorf("channel %d: expected total 500, got %d", c, got)
		}
		if h[c][100] != 2 {
			t.Errorf("channel %d: expected 2 pixels at bucket 100, got %d", c, h[c][100])
		}
	}
}

func TestCompute_SaturatedColors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})
	img.Set(2, 0, color.RGBA{B: 255, A: 255})

	h := Compute(img)

	for c := 0; c < NumChannels; c++ {
		if h[c][255] != 1 {
			t.Errorf("channel %d: expected 1 pixel at bucket 255, got %d", c, h[c][255])
		}
		if h[c][0] != 2 {
			t.Errorf("channel %d: expected 2 pixels at bucket 0, got %d", c, h[c][0])
		}
	}
}

func TestCompute_TotalsMatchPixelCount(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
	}{
		{"rgba", solid(7, 3, color.RGBA{R: 1, G: 2, B: 3, A: 255})},
		{"nrgba", image.NewNRGBA(image.Rect(0, 0, 6, 6))},
		{"ycbcr", image.NewYCbCr(image.Rect(0, 0, 16, 16), image.YCbCrSubsampleRatio420)},
		{"offset rect", solid(20, 20, color.White).SubImage(image.Rect(5, 5, 15, 10))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Compute(tt.img)
			want := tt.img.Bounds().Dx() * tt.img.Bounds().Dy()
			for c := 0; c < NumChannels; c++ {
				if got := h.Total(c); got != want {
					t.Errorf("channel %d: expected total %d, got %d", c, want, got)
				}
			}
		})
	}
}

func TestCompute_WhiteThreshold(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	img.Set(0, 0, color.White)
	img.Set(1, 0, color.RGBA{R: 250, G: 250, B: 250, A: 255})
	img.Set(2, 0, color.RGBA{R: 255, G: 100, B: 255, A: 255})
	img.Set(3, 0, color.Black)

	h := Compute(img, WithWhiteThreshold(249))

	if got := h.Total(Red); got != 2 {
		t.Fatalf("expected 2 counted pixels, got %d", got)
	}
	if h[Green][100] != 1 || h[Green][0] != 1 {
		t.Errorf("unexpected green distribution: 100=%d 0=%d", h[Green][100], h[Green][0])
	}
}

func TestHistogram_Mean(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 0, G: 10, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 100, G: 10, B: 255, A: 255})

	h := Compute(img)

	if got := h.Mean(Red); got != 50 {
		t.Errorf("expected red mean 50, got %v", got)
	}
	if got := h.Mean(Green); got != 10 {
		t.Errorf("expected green mean 10, got %v", got)
	}

	var empty Histogram
	if got := empty.Mean(Blue); got != 0 {
		t.Errorf("expected mean 0 for empty histogram, got %v", got)
	}
}

func TestHistogram_Equal(t *testing.T) {
	a := Compute(solid(2, 2, color.Black))
	b := Compute(solid(2, 2, color.Black))
	c := Compute(solid(2, 2, color.White))

	if !a.Equal(&b) {
		t.Error("expected identical histograms to be equal")
	}
	if a.Equal(&c) {
		t.Error("expected different histograms to differ")
	}
}
