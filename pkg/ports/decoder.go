// Package ports defines interfaces for the capabilities speedline consumes
// from its environment: image decoding, rendering, files, logging and debug output.
package ports

import (
	"image"
)

// ImageDecoder abstracts decoding of encoded screenshot payloads.
type ImageDecoder interface {
	// Decode decodes image data into an 8-bit RGBA raster.
	Decode(data []byte) (*image.RGBA, error)

	// DecodeConfig reads only the image header and returns its dimensions
	// and format name (e.g. "jpeg", "png").
	DecodeConfig(data []byte) (image.Config, string, error)
}
