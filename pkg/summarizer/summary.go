package summarizer

import (
	"context"
	"time"

	"github.com/pmdartus/speedline/pkg/histogram"
	"github.com/pmdartus/speedline/pkg/timeline"
)

// Summary describes one extraction run.
type Summary struct {
	GeneratedAt time.Time

	Trace    TraceInfo
	Timeline TimelineInfo
	Settings Settings
	Frames   []FrameRow
}

// TraceInfo identifies the input trace.
type TraceInfo struct {
	Source string
}

// TimelineInfo contains the timeline bounds in milliseconds.
type TimelineInfo struct {
	StartTs    float64
	EndTs      float64
	DurationMs float64
	FrameCount int
	TotalBytes int64
}

// Settings contains the extraction options of the run.
type Settings struct {
	TimeOrigin     *float64 // trace microseconds, nil when defaulted
	Relative       bool
	Histograms     bool
	WhiteThreshold int
}

// FrameRow describes a single retained frame.
type FrameRow struct {
	Index       int
	TimestampMs float64
	OffsetMs    float64 // from StartTs
	Bytes       int

	// Mean is the mean intensity per channel, nil if no histogram was computed.
	Mean *[histogram.NumChannels]float64
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithTrace sets the trace description.
func (b *Builder) WithTrace(source string) *Builder {
	b.summary.Trace = TraceInfo{Source: source}
	return b
}

// WithTimeline fills timeline bounds and one row per frame.
// Histograms are only read if already computed.
func (b *Builder) WithTimeline(result timeline.Result) *Builder {
	info := TimelineInfo{
		StartTs:    result.StartTs,
		EndTs:      result.EndTs,
		DurationMs: result.Duration(),
		FrameCount: len(result.Frames),
	}

	rows := make([]FrameRow, len(result.Frames))
	for i, f := range result.Frames {
		rows[i] = FrameRow{
			Index:       i,
			TimestampMs: f.TimeStamp(),
			OffsetMs:    f.TimeStamp() - result.StartTs,
			Bytes:       f.Size(),
		}
		info.TotalBytes += int64(f.Size())

		if !f.HasHistogram() {
			continue
		}
		h, err := f.Histogram(context.Background())
		if err != nil {
			continue
		}
		var mean [histogram.NumChannels]float64
		for c := range mean {
			mean[c] = h.Mean(c)
		}
		rows[i].Mean = &mean
	}

	b.summary.Timeline = info
	b.summary.Frames = rows
	return b
}

// WithSettings sets the extraction options.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
