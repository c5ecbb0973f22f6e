// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"path/filepath"

	"github.com/pmdartus/speedline/pkg/ports"
)

// Sink saves debug output under a base directory:
//
//	<baseDir>/frames/frame-0000.jpg
//	<baseDir>/timeline.json
//	<baseDir>/histograms.json
type Sink struct {
	baseDir string
	fs      ports.FileSystem
	decoder ports.ImageDecoder
}

// New creates a new FileSink. decoder is used to pick frame file extensions.
func New(baseDir string, fs ports.FileSystem, decoder ports.ImageDecoder) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
		decoder: decoder,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveFrame saves the encoded image of the frame at index.
func (s *Sink) SaveFrame(index int, data []byte) error {
	dir := filepath.Join(s.baseDir, "frames")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("frame-%04d.%s", index, s.extension(data)))
	return s.fs.WriteFile(path, data)
}

// SaveTimelineJSON saves the timeline metadata.
func (s *Sink) SaveTimelineJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "timeline.json"), data)
}

// SaveHistogramsJSON saves the per-frame histograms.
func (s *Sink) SaveHistogramsJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "histograms.json"), data)
}

func (s *Sink) extension(data []byte) string {
	if s.decoder == nil {
		return "bin"
	}
	_, format, err := s.decoder.DecodeConfig(data)
	if err != nil {
		return "bin"
	}
	if format == "jpeg" {
		return "jpg"
	}
	return format
}

var _ ports.DebugSink = (*Sink)(nil)
