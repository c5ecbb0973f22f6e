// Package orchestrator coordinates the extraction pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pmdartus/speedline/pkg/histogram"
	"github.com/pmdartus/speedline/pkg/pipeline"
	"github.com/pmdartus/speedline/pkg/ports"
	"github.com/pmdartus/speedline/pkg/summarizer"
	"github.com/pmdartus/speedline/pkg/timeline"
	"github.com/pmdartus/speedline/pkg/trace"
)

// Config contains all configuration for a run.
type Config struct {
	// Source is the trace to extract.
	Source trace.Source

	// TimeOrigin in trace microseconds. Nil uses the earliest event.
	TimeOrigin *float64
	// Relative expresses timestamps relative to the time origin.
	Relative bool

	// Histograms computes every frame's histogram after extraction.
	Histograms bool
	// WhiteThreshold is reported in the summary; 0 means disabled.
	WhiteThreshold int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Histograms: true,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	extractStage   pipeline.Stage[timeline.Input, timeline.Result]
	histogramStage pipeline.Stage[timeline.Result, timeline.Result]
	sink           ports.DebugSink
	logger         ports.Logger
}

// New creates a new Orchestrator.
func New(
	extractStage pipeline.Stage[timeline.Input, timeline.Result],
	histogramStage pipeline.Stage[timeline.Result, timeline.Result],
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		extractStage:   extractStage,
		histogramStage: histogramStage,
		sink:           sink,
		logger:         logger,
	}
}

// RunResult contains the extracted timeline and its summary.
type RunResult struct {
	Timeline timeline.Result
	Summary  *summarizer.Summary
}

// Run extracts the timeline of config.Source and, when enabled, its histograms.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info("Extracting frames from %s", config.Source)

	input := timeline.Input{
		Source: config.Source,
		Options: timeline.Options{
			TimeOrigin: config.TimeOrigin,
			Relative:   config.Relative,
		},
	}

	result, err := o.extractStage.Execute(ctx, input)
	if err != nil {
		o.logger.Error("Extraction failed: %s", err)
		return RunResult{}, fmt.Errorf("extract stage: %w", err)
	}
	o.logger.Info("Extracted %d frames spanning %.1f ms", len(result.Frames), result.Duration())

	if config.Histograms {
		o.logger.Info("Computing histograms")
		result, err = o.histogramStage.Execute(ctx, result)
		if err != nil {
			o.logger.Error("Extraction failed: %s", err)
			return RunResult{}, fmt.Errorf("histogram stage: %w", err)
		}

		if o.sink.Enabled() {
			o.saveHistograms(ctx, result)
		}
	}

	o.logger.Info("Extraction completed")

	summary := summarizer.NewBuilder().
		WithTrace(config.Source.String()).
		WithTimeline(result).
		WithSettings(summarizer.Settings{
			TimeOrigin:     config.TimeOrigin,
			Relative:       config.Relative,
			Histograms:     config.Histograms,
			WhiteThreshold: config.WhiteThreshold,
		}).
		Build()

	return RunResult{Timeline: result, Summary: summary}, nil
}

type frameHistogram struct {
	Index     int                       `json:"index"`
	Timestamp float64                   `json:"timestamp"`
	Red       [histogram.NumBuckets]int `json:"r"`
	Green     [histogram.NumBuckets]int `json:"g"`
	Blue      [histogram.NumBuckets]int `json:"b"`
}

// saveHistograms writes every computed histogram to the debug sink.
func (o *Orchestrator) saveHistograms(ctx context.Context, result timeline.Result) {
	out := make([]frameHistogram, 0, len(result.Frames))
	for i, f := range result.Frames {
		h, err := f.Histogram(ctx)
		if err != nil {
			continue
		}
		out = append(out, frameHistogram{
			Index:     i,
			Timestamp: f.TimeStamp(),
			Red:       h[histogram.Red],
			Green:     h[histogram.Green],
			Blue:      h[histogram.Blue],
		})
	}

	data, err := json.Marshal(out)
	if err != nil {
		o.logger.Warn("Failed to encode histograms JSON: %s", err)
		return
	}
	if err := o.sink.SaveHistogramsJSON(data); err != nil {
		o.logger.Warn("Failed to save histograms JSON: %s", err)
	}
}
