package timeline

import (
	"fmt"
	"image/color"

	"github.com/pmdartus/speedline/pkg/ports"
)

// anchorQuality is the JPEG quality of the synthesized blank frame.
const anchorQuality = 90

// blankImage encodes a white JPEG with the dimensions of the reference screenshot.
func blankImage(decoder ports.ImageDecoder, renderer ports.Renderer, reference []byte) ([]byte, error) {
	cfg, _, err := decoder.DecodeConfig(reference)
	if err != nil {
		return nil, fmt.Errorf("read first screenshot size: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("first screenshot has invalid size %dx%d", cfg.Width, cfg.Height)
	}

	canvas := renderer.CreateCanvas(cfg.Width, cfg.Height, color.White)
	data, err := renderer.EncodeImage(canvas.ToImage(), ports.FormatJPEG, anchorQuality)
	if err != nil {
		return nil, fmt.Errorf("encode blank frame: %w", err)
	}
	return data, nil
}
