package mocks

import (
	"sync"

	"github.com/pmdartus/speedline/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	TimelineJSON   []byte
	HistogramsJSON []byte
	Frames         map[int][]byte
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		Frames:  make(map[int][]byte),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveFrame(index int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Frames[index] = data
	return nil
}

func (m *DebugSink) SaveTimelineJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TimelineJSON = data
	return nil
}

func (m *DebugSink) SaveHistogramsJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HistogramsJSON = data
	return nil
}

// FrameCount returns how many frames were saved.
func (m *DebugSink) FrameCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.Frames)
}

var _ ports.DebugSink = (*DebugSink)(nil)
