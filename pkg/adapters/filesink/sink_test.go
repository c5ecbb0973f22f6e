package filesink

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pmdartus/speedline/pkg/mocks"
)

var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, mocks.NewFileSystem(), &mocks.ImageDecoder{})
	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveFrame(t *testing.T) {
	tests := []struct {
		name   string
		format string
		err    error
		want   string
	}{
		{"jpeg", "jpeg", nil, "frame-0003.jpg"},
		{"png", "png", nil, "frame-0003.png"},
		{"webp", "webp", nil, "frame-0003.webp"},
		{"unknown", "", errors.New("unknown format"), "frame-0003.bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := mocks.NewFileSystem()
			decoder := &mocks.ImageDecoder{
				DecodeConfigFunc: func(data []byte) (image.Config, string, error) {
					return image.Config{Width: 1, Height: 1}, tt.format, tt.err
				},
			}
			sink := New(testBaseDir, fs, decoder)

			data := []byte{0xFF, 0xD8, 0xFF}
			if err := sink.SaveFrame(3, data); err != nil {
				t.Fatalf("SaveFrame failed: %v", err)
			}

			path := filepath.Join(testBaseDir, "frames", tt.want)
			saved, ok := fs.File(path)
			if !ok {
				t.Fatalf("expected file at %s, have %v", path, fs.Files())
			}
			if string(saved) != string(data) {
				t.Errorf("expected %q, got %q", data, saved)
			}
		})
	}
}

func TestSink_SaveJSON(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, nil)

	if err := sink.SaveTimelineJSON([]byte(`{"startTs":1}`)); err != nil {
		t.Fatalf("SaveTimelineJSON failed: %v", err)
	}
	if err := sink.SaveHistogramsJSON([]byte(`[]`)); err != nil {
		t.Fatalf("SaveHistogramsJSON failed: %v", err)
	}

	for _, name := range []string{"timeline.json", "histograms.json"} {
		if _, ok := fs.File(filepath.Join(testBaseDir, name)); !ok {
			t.Errorf("expected %s to be saved", name)
		}
	}
}

func TestSink_MkdirError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.MkdirAllFunc = func(path string) error { return errors.New("read-only") }
	sink := New(testBaseDir, fs, nil)

	if err := sink.SaveFrame(0, []byte{1}); err == nil {
		t.Error("expected error")
	}
}

func TestSink_MultipleFrames(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, &mocks.ImageDecoder{})

	for i := 0; i < 10; i++ {
		if err := sink.SaveFrame(i, []byte{0xFF}); err != nil {
			t.Fatalf("SaveFrame %d failed: %v", i, err)
		}
	}

	if n := len(fs.Files()); n != 10 {
		t.Errorf("expected 10 files, got %d", n)
	}

	written := fs.Written()
	if len(written) != 10 {
		t.Fatalf("expected 10 writes, got %v", written)
	}
	for i, path := range written {
		want := fmt.Sprintf("frame-%04d.", i)
		if !strings.HasPrefix(filepath.Base(path), want) {
			t.Errorf("write %d: expected %s*, got %s", i, want, path)
		}
	}

	dirs := fs.Dirs()
	if len(dirs) != 1 || dirs[0] != filepath.Join(testBaseDir, "frames") {
		t.Errorf("expected only the frames directory, got %v", dirs)
	}
}
