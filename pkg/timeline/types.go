// Package timeline extracts the screenshot filmstrip of a trace.
package timeline

import (
	"github.com/pmdartus/speedline/pkg/frame"
	"github.com/pmdartus/speedline/pkg/pipeline"
	"github.com/pmdartus/speedline/pkg/trace"
)

var (
	_ pipeline.Stage[Input, Result]  = (*Extractor)(nil)
	_ pipeline.Stage[Result, Result] = (*HistogramStage)(nil)
)

// Options control which events qualify and how timestamps are expressed.
type Options struct {
	// TimeOrigin is the zero point in trace microseconds. Screenshot events
	// before it are dropped. Defaults to the earliest non-zero event timestamp.
	TimeOrigin *float64

	// Relative subtracts the origin from every timestamp, so StartTs is 0.
	// By default timestamps stay on the trace clock, converted to milliseconds.
	Relative bool
}

// WithTimeOrigin returns a copy of o with TimeOrigin set to ts.
func (o Options) WithTimeOrigin(ts float64) Options {
	o.TimeOrigin = &ts
	return o
}

// Input is the extractor stage input.
type Input struct {
	Source  trace.Source
	Options Options
}

// Result is an extracted timeline. Timestamps are in milliseconds.
type Result struct {
	// StartTs is the time origin. Frames[0] always sits at StartTs.
	StartTs float64
	// EndTs is the timestamp of the latest event of any category.
	EndTs float64
	// Frames are in chronological order with no two adjacent frames identical.
	Frames []*frame.Frame
}

// Duration returns EndTs - StartTs.
func (r Result) Duration() float64 {
	return r.EndTs - r.StartTs
}
