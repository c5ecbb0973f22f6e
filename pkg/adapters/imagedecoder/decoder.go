// Package imagedecoder provides an image decoder for trace screenshot payloads.
// JPEG and PNG come from the standard library, WebP and BMP from golang.org/x/image.
package imagedecoder

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/pmdartus/speedline/pkg/ports"
)

// ErrEmptyData is returned when there are no bytes to decode.
var ErrEmptyData = errors.New("imagedecoder: empty image data")

// Decoder implements ports.ImageDecoder by sniffing the payload format.
type Decoder struct{}

// New creates a new Decoder.
func New() *Decoder {
	return &Decoder{}
}

// Decode decodes data and converts it to an RGBA raster anchored at (0, 0).
func (d *Decoder) Decode(data []byte) (*image.RGBA, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba, nil
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("decode %s image: zero dimensions", format)
	}
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst, nil
}

// DecodeConfig reads the image header only.
func (d *Decoder) DecodeConfig(data []byte) (image.Config, string, error) {
	if len(data) == 0 {
		return image.Config{}, "", ErrEmptyData
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, "", fmt.Errorf("decode image config: %w", err)
	}
	return cfg, format, nil
}

// Ensure Decoder implements ports.ImageDecoder
var _ ports.ImageDecoder = (*Decoder)(nil)
