package ports

// DebugSink abstracts debug output for intermediate results.
// It allows saving extracted frames and timeline metadata for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveFrame saves the encoded image of a retained frame.
	SaveFrame(index int, data []byte) error

	// SaveTimelineJSON saves the extracted timeline metadata as JSON.
	SaveTimelineJSON(data []byte) error

	// SaveHistogramsJSON saves computed per-frame histograms as JSON.
	SaveHistogramsJSON(data []byte) error
}
