package timeline

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pmdartus/speedline/pkg/frame"
	"github.com/pmdartus/speedline/pkg/ports"
	"github.com/pmdartus/speedline/pkg/trace"
)

// ctxCheckInterval is how many events are scanned between context checks.
const ctxCheckInterval = 512

// Extractor builds timelines from trace screenshots.
type Extractor struct {
	decoder   ports.ImageDecoder
	renderer  ports.Renderer
	fs        ports.FileSystem
	sink      ports.DebugSink
	logger    ports.Logger
	frameOpts []frame.Option
}

// NewExtractor creates a new Extractor.
// fs is only needed for trace.FromPath sources.
func NewExtractor(
	decoder ports.ImageDecoder,
	renderer ports.Renderer,
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
	frameOpts ...frame.Option,
) *Extractor {
	return &Extractor{
		decoder:   decoder,
		renderer:  renderer,
		fs:        fs,
		sink:      sink,
		logger:    logger.WithComponent("timeline"),
		frameOpts: frameOpts,
	}
}

// Execute implements pipeline.Stage.
func (e *Extractor) Execute(ctx context.Context, input Input) (Result, error) {
	return e.Extract(ctx, input.Source, input.Options)
}

// Extract resolves src and extracts its deduplicated screenshot timeline.
//
// Screenshot events before the time origin are dropped. A screenshot identical
// to the previously retained one is discarded. A blank white frame is placed
// at StartTs ahead of the first screenshot.
func (e *Extractor) Extract(ctx context.Context, src trace.Source, opts Options) (Result, error) {
	doc, err := src.Resolve(e.fs)
	if err != nil {
		return Result{}, err
	}
	if len(doc.TraceEvents) == 0 {
		return Result{}, fmt.Errorf("%w: trace has no events", trace.ErrMalformedTrace)
	}

	first, last, ok := doc.Bounds()
	if !ok {
		return Result{}, fmt.Errorf("%w: trace has no timestamped events", trace.ErrMalformedTrace)
	}

	origin := first
	if opts.TimeOrigin != nil {
		origin = *opts.TimeOrigin
	}
	toMs := func(ts float64) float64 {
		if opts.Relative {
			return (ts - origin) / 1000
		}
		return ts / 1000
	}

	e.logger.Debug("Scanning %d trace events from %s", len(doc.TraceEvents), src)

	var (
		frames      []*frame.Frame
		lastPayload string
		screenshots int
		early       int
		duplicates  int
	)
	for i := range doc.TraceEvents {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}

		ev := &doc.TraceEvents[i]
		if !ev.IsScreenshot() {
			continue
		}
		screenshots++
		if ev.Ts < origin {
			early++
			continue
		}

		prev := lastFrame(frames)
		if prev != nil && ev.Args.Snapshot == lastPayload {
			duplicates++
			continue
		}

		data, err := decodeSnapshot(ev.Args.Snapshot)
		if err != nil {
			return Result{}, fmt.Errorf("%w: screenshot at ts %.0f: %v", frame.ErrDecode, ev.Ts, err)
		}
		candidate, err := e.newFrame(data, toMs(ev.Ts))
		if err != nil {
			return Result{}, fmt.Errorf("screenshot at ts %.0f: %w", ev.Ts, err)
		}
		lastPayload = ev.Args.Snapshot

		if AreEqual(prev, candidate) {
			duplicates++
			continue
		}
		frames = append(frames, candidate)
	}

	e.logger.Debug("Found %d screenshots, %d before time origin, %d duplicates", screenshots, early, duplicates)

	if len(frames) == 0 {
		return Result{}, fmt.Errorf("%w: no screenshots at or after time origin %.0f", trace.ErrMalformedTrace, origin)
	}

	result := Result{
		StartTs: toMs(origin),
		EndTs:   toMs(last),
	}

	anchor, err := e.anchorFrame(frames[0], result.StartTs)
	if err != nil {
		return Result{}, err
	}
	if AreEqual(anchor, frames[0]) {
		frames = frames[1:]
	}
	result.Frames = append([]*frame.Frame{anchor}, frames...)

	e.logger.Debug("Extracted %d frames between %.3f ms and %.3f ms", len(result.Frames), result.StartTs, result.EndTs)

	if e.sink.Enabled() {
		e.saveDebug(result)
	}

	return result, nil
}

// newFrame wraps frame.New, reporting undecodable images as decode errors.
func (e *Extractor) newFrame(data []byte, ts float64) (*frame.Frame, error) {
	f, err := frame.New(data, ts, e.decoder, e.frameOpts...)
	if err != nil {
		if errors.Is(err, frame.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", frame.ErrDecode, err)
		}
		return nil, err
	}
	return f, nil
}

// anchorFrame synthesizes the blank frame shown at the time origin.
func (e *Extractor) anchorFrame(first *frame.Frame, startTs float64) (*frame.Frame, error) {
	if e.renderer == nil {
		return nil, errors.New("timeline: no renderer for blank frame")
	}
	data, err := blankImage(e.decoder, e.renderer, first.Image())
	if err != nil {
		return nil, err
	}
	f, err := frame.New(data, startTs, e.decoder, e.frameOpts...)
	if err != nil {
		return nil, fmt.Errorf("create blank frame: %w", err)
	}
	return f, nil
}

type debugFrame struct {
	Index     int     `json:"index"`
	Timestamp float64 `json:"timestamp"`
	Size      int     `json:"size"`
}

type debugTimeline struct {
	StartTs float64      `json:"startTs"`
	EndTs   float64      `json:"endTs"`
	Frames  []debugFrame `json:"frames"`
}

// saveDebug writes frames and timeline metadata to the debug sink.
// Sink failures are logged and never fail extraction.
func (e *Extractor) saveDebug(result Result) {
	meta := debugTimeline{
		StartTs: result.StartTs,
		EndTs:   result.EndTs,
		Frames:  make([]debugFrame, len(result.Frames)),
	}
	for i, f := range result.Frames {
		meta.Frames[i] = debugFrame{Index: i, Timestamp: f.TimeStamp(), Size: f.Size()}
		if err := e.sink.SaveFrame(i, f.Image()); err != nil {
			e.logger.Warn("Failed to save debug frame %d: %s", i, err)
		}
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		e.logger.Warn("Failed to encode timeline JSON: %s", err)
		return
	}
	if err := e.sink.SaveTimelineJSON(data); err != nil {
		e.logger.Warn("Failed to save timeline JSON: %s", err)
	}
}

func lastFrame(frames []*frame.Frame) *frame.Frame {
	if len(frames) == 0 {
		return nil
	}
	return frames[len(frames)-1]
}

// decodeSnapshot decodes a base64 screenshot payload, with or without padding.
func decodeSnapshot(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	data, err := base64.StdEncoding.DecodeString(payload)
	if err == nil {
		return data, nil
	}
	if raw, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "=")); rawErr == nil {
		return raw, nil
	}
	return nil, fmt.Errorf("invalid base64: %w", err)
}
