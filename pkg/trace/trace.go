// Package trace parses browser performance trace documents.
//
// A trace is either a JSON object with a "traceEvents" array or a bare JSON array
// of events. Only the fields speedline needs are decoded.
package trace

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedTrace is returned when a trace has no usable events.
var ErrMalformedTrace = errors.New("trace: malformed trace")

// ScreenshotCategory is the category DevTools uses for screenshot events.
const ScreenshotCategory = "disabled-by-default-devtools.screenshot"

// Event is a single trace event.
type Event struct {
	Name     string    `json:"name,omitempty"`
	Category string    `json:"cat"`
	Phase    string    `json:"ph,omitempty"`
	Ts       float64   `json:"ts"`
	Args     EventArgs `json:"args"`
}

// EventArgs holds the argument fields read from events.
type EventArgs struct {
	// Snapshot is the base64-encoded screenshot of a screenshot event.
	Snapshot string `json:"snapshot,omitempty"`
}

// UnmarshalJSON decodes args leniently. Args that are not an object, or a
// snapshot that is not a string, leave the value empty instead of failing
// the whole document.
func (a *EventArgs) UnmarshalJSON(data []byte) error {
	*a = EventArgs{}

	var fields struct {
		Snapshot json.RawMessage `json:"snapshot"`
	}
	if err := json.Unmarshal(data, &fields); err != nil || len(fields.Snapshot) == 0 {
		return nil
	}

	var snapshot string
	if err := json.Unmarshal(fields.Snapshot, &snapshot); err == nil {
		a.Snapshot = snapshot
	}
	return nil
}

// IsScreenshot reports whether the event carries a screenshot payload.
func (e *Event) IsScreenshot() bool {
	return strings.Contains(e.Category, "screenshot") && e.Args.Snapshot != ""
}

// Document is a parsed trace.
type Document struct {
	TraceEvents []Event `json:"traceEvents"`
}

// Parse decodes a trace from JSON. Both the object form and the bare array form are accepted.
func Parse(data []byte) (*Document, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedTrace)
	}

	if data[0] == '[' {
		var events []Event
		if err := json.Unmarshal(data, &events); err != nil {
			return nil, fmt.Errorf("%w: invalid JSON: %v", ErrMalformedTrace, err)
		}
		return &Document{TraceEvents: events}, nil
	}

	var raw struct {
		TraceEvents *[]Event `json:"traceEvents"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrMalformedTrace, err)
	}
	if raw.TraceEvents == nil {
		return nil, fmt.Errorf("%w: no traceEvents array", ErrMalformedTrace)
	}
	return &Document{TraceEvents: *raw.TraceEvents}, nil
}

// Bounds returns the smallest and largest event timestamps, skipping zero
// timestamps (metadata events). ok is false when no event has a timestamp.
func (d *Document) Bounds() (start, end float64, ok bool) {
	for _, e := range d.TraceEvents {
		if e.Ts == 0 {
			continue
		}
		if !ok {
			start, end, ok = e.Ts, e.Ts, true
			continue
		}
		if e.Ts < start {
			start = e.Ts
		}
		if e.Ts > end {
			end = e.Ts
		}
	}
	return start, end, ok
}
