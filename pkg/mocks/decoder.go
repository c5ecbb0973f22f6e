package mocks

import (
	"image"
	"sync"

	"github.com/pmdartus/speedline/pkg/ports"
)

// ImageDecoder is a mock implementation of ports.ImageDecoder.
// By default every payload decodes to a 10x10 black raster.
type ImageDecoder struct {
	mu          sync.Mutex
	decodeCalls int

	DecodeFunc       func(data []byte) (*image.RGBA, error)
	DecodeConfigFunc func(data []byte) (image.Config, string, error)
}

func (m *ImageDecoder) Decode(data []byte) (*image.RGBA, error) {
	m.mu.Lock()
	m.decodeCalls++
	m.mu.Unlock()
	if m.DecodeFunc != nil {
		return m.DecodeFunc(data)
	}
	return image.NewRGBA(image.Rect(0, 0, 10, 10)), nil
}

func (m *ImageDecoder) DecodeConfig(data []byte) (image.Config, string, error) {
	if m.DecodeConfigFunc != nil {
		return m.DecodeConfigFunc(data)
	}
	return image.Config{Width: 10, Height: 10}, "jpeg", nil
}

// DecodeCalls returns how many times Decode was called.
func (m *ImageDecoder) DecodeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.decodeCalls
}

var _ ports.ImageDecoder = (*ImageDecoder)(nil)
