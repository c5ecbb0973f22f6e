// Package frame models a single screenshot snapshot taken from a trace.
package frame

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/pmdartus/speedline/pkg/histogram"
	"github.com/pmdartus/speedline/pkg/ports"
)

// Frame is one screenshot paired with its timestamp.
// The image bytes and timestamp never change after New returns.
// Progress and the memoized histogram are guarded by separate locks.
type Frame struct {
	data      []byte
	timestamp float64
	decoder   ports.ImageDecoder
	histOpts  []histogram.Option

	progressMu sync.Mutex
	progress   float64

	histMu    sync.Mutex
	histogram *histogram.Histogram
}

// Option configures a Frame at construction.
type Option func(*Frame)

// WithHistogramOptions sets the options passed to histogram.Compute.
func WithHistogramOptions(opts ...histogram.Option) Option {
	return func(f *Frame) {
		f.histOpts = append(f.histOpts, opts...)
	}
}

// New creates a Frame from encoded image bytes and a timestamp in milliseconds.
// The header of data is checked with decoder; the pixels are decoded lazily.
func New(data []byte, timestamp float64, decoder ports.ImageDecoder, opts ...Option) (*Frame, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image data", ErrInvalidInput)
	}
	if !isFinite(timestamp) {
		return nil, fmt.Errorf("%w: timestamp %v is not finite", ErrInvalidInput, timestamp)
	}
	if decoder == nil {
		return nil, fmt.Errorf("%w: nil image decoder", ErrInvalidInput)
	}
	if _, _, err := decoder.DecodeConfig(data); err != nil {
		return nil, fmt.Errorf("%w: image not decodable: %v", ErrInvalidInput, err)
	}

	f := &Frame{
		data:      bytes.Clone(data),
		timestamp: timestamp,
		decoder:   decoder,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// TimeStamp returns the timestamp given at construction.
func (f *Frame) TimeStamp() float64 {
	return f.timestamp
}

// Image returns a copy of the encoded image bytes.
func (f *Frame) Image() []byte {
	return bytes.Clone(f.data)
}

// Size returns the length of the encoded image in bytes.
func (f *Frame) Size() int {
	return len(f.data)
}

// HasImage reports whether the frame's encoded bytes equal data.
func (f *Frame) HasImage(data []byte) bool {
	return bytes.Equal(f.data, data)
}

// Progress returns the last value passed to SetProgress, or 0.
func (f *Frame) Progress() float64 {
	f.progressMu.Lock()
	defer f.progressMu.Unlock()
	return f.progress
}

// SetProgress stores a visual progress score, replacing any previous value.
func (f *Frame) SetProgress(value float64) error {
	if !isFinite(value) {
		return fmt.Errorf("%w: progress %v is not finite", ErrInvalidInput, value)
	}
	f.progressMu.Lock()
	defer f.progressMu.Unlock()
	f.progress = value
	return nil
}

// Histogram returns the frame's color histogram, decoding the image on first use.
// Later calls return the cached value. A failed computation is not cached.
func (f *Frame) Histogram(ctx context.Context) (histogram.Histogram, error) {
	f.histMu.Lock()
	defer f.histMu.Unlock()

	if f.histogram != nil {
		return *f.histogram, nil
	}
	if err := ctx.Err(); err != nil {
		return histogram.Histogram{}, err
	}

	img, err := f.decoder.Decode(f.data)
	if err != nil {
		return histogram.Histogram{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	h := histogram.Compute(img, f.histOpts...)
	f.histogram = &h
	return h, nil
}

// HasHistogram reports whether the histogram has already been computed.
func (f *Frame) HasHistogram() bool {
	f.histMu.Lock()
	defer f.histMu.Unlock()
	return f.histogram != nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
