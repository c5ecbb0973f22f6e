// Package histogram computes per-channel pixel intensity distributions.
package histogram

import (
	"image"
	"image/color"
)

// NumChannels is the number of color channels tracked (R, G, B).
const NumChannels = 3

// NumBuckets is the number of intensity buckets per channel.
const NumBuckets = 256

// Channel indexes into a Histogram.
const (
	Red = iota
	Green
	Blue
)

// Histogram holds one 256-bucket distribution per color channel.
// Bucket i of channel c counts the pixels whose c component equals i.
type Histogram [NumChannels][NumBuckets]int

// Total returns the number of pixels counted in the given channel.
func (h *Histogram) Total(channel int) int {
	total := 0
	for _, n := range h[channel] {
		total += n
	}
	return total
}

// Mean returns the mean intensity of the given channel, or 0 for an empty channel.
func (h *Histogram) Mean(channel int) float64 {
	total, sum := 0, 0
	for i, n := range h[channel] {
		total += n
		sum += i * n
	}
	if total == 0 {
		return 0
	}
	return float64(sum) / float64(total)
}

// Equal reports whether two histograms hold identical counts.
func (h *Histogram) Equal(other *Histogram) bool {
	return *h == *other
}

// Option configures Compute.
type Option func(*settings)

type settings struct {
	skipWhite      bool
	whiteThreshold uint8
}

// WithWhiteThreshold excludes pixels whose R, G and B are all >= t.
// Counts no longer sum to the pixel count when any pixel is excluded.
func WithWhiteThreshold(t uint8) Option {
	return func(s *settings) {
		s.skipWhite = true
		s.whiteThreshold = t
	}
}

// Compute builds the histogram of img. Colors are taken non-premultiplied at 8 bits per channel.
func Compute(img image.Image, opts ...Option) Histogram {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	var h Histogram
	bounds := img.Bounds()

	switch src := img.(type) {
	case *image.RGBA:
		// Screenshots are opaque, so premultiplied and straight alpha agree.
		if isOpaque(src.Pix) {
			countPix(&h, &s, src.Pix, src.Stride, bounds.Dx(), bounds.Dy())
			return h
		}
	case *image.NRGBA:
		countPix(&h, &s, src.Pix, src.Stride, bounds.Dx(), bounds.Dy())
		return h
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			s.add(&h, c.R, c.G, c.B)
		}
	}
	return h
}

func countPix(h *Histogram, s *settings, pix []byte, stride, width, height int) {
	for y := 0; y < height; y++ {
		row := pix[y*stride : y*stride+width*4]
		for i := 0; i < len(row); i += 4 {
			s.add(h, row[i], row[i+1], row[i+2])
		}
	}
}

func (s *settings) add(h *Histogram, r, g, b uint8) {
	if s.skipWhite && r >= s.whiteThreshold && g >= s.whiteThreshold && b >= s.whiteThreshold {
		return
	}
	h[Red][r]++
	h[Green][g]++
	h[Blue][b]++
}

func isOpaque(pix []byte) bool {
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0xff {
			return false
		}
	}
	return true
}
