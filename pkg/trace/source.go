package trace

import (
	"fmt"

	"github.com/pmdartus/speedline/pkg/ports"
)

// SourceKind tells which field of a Source is set.
type SourceKind int

const (
	SourcePath SourceKind = iota
	SourceBytes
	SourceDocument
)

// Source is where a trace comes from: a file path, raw JSON, or an already parsed document.
type Source struct {
	Kind     SourceKind
	Path     string
	Data     []byte
	Document *Document
}

// FromPath returns a Source that reads a JSON trace file.
func FromPath(path string) Source {
	return Source{Kind: SourcePath, Path: path}
}

// FromBytes returns a Source for raw JSON trace data.
func FromBytes(data []byte) Source {
	return Source{Kind: SourceBytes, Data: data}
}

// FromDocument returns a Source for a parsed document.
func FromDocument(doc *Document) Source {
	return Source{Kind: SourceDocument, Document: doc}
}

// String describes the source for logs.
func (s Source) String() string {
	switch s.Kind {
	case SourcePath:
		return s.Path
	case SourceBytes:
		return fmt.Sprintf("<%d bytes>", len(s.Data))
	default:
		return "<document>"
	}
}

// Resolve turns the source into a Document, reading files through fs.
func (s Source) Resolve(fs ports.FileSystem) (*Document, error) {
	switch s.Kind {
	case SourcePath:
		if fs == nil {
			return nil, fmt.Errorf("read trace %s: no file system", s.Path)
		}
		data, err := fs.ReadFile(s.Path)
		if err != nil {
			return nil, fmt.Errorf("read trace %s: %w", s.Path, err)
		}
		return Parse(data)
	case SourceBytes:
		return Parse(s.Data)
	case SourceDocument:
		if s.Document == nil || s.Document.TraceEvents == nil {
			return nil, fmt.Errorf("%w: no traceEvents array", ErrMalformedTrace)
		}
		return s.Document, nil
	default:
		return nil, fmt.Errorf("unknown trace source kind %d", s.Kind)
	}
}
