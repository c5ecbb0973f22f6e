// Package mocks provides hand-written test doubles for the ports interfaces.
package mocks

import (
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"github.com/pmdartus/speedline/pkg/ports"
)

// FileSystem is an in-memory ports.FileSystem. It remembers the order in
// which paths were written so tests can assert on debug and summary output.
type FileSystem struct {
	mu      sync.RWMutex
	files   map[string][]byte
	dirs    map[string]struct{}
	written []string

	ReadFileFunc  func(path string) ([]byte, error)
	WriteFileFunc func(path string, data []byte) error
	MkdirAllFunc  func(path string) error
}

// NewFileSystem creates an empty in-memory FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]struct{}),
	}
}

// ReadFile returns a copy of the stored bytes, or an error wrapping
// fs.ErrNotExist for unknown paths.
func (m *FileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", path, fs.ErrNotExist)
	}
	return append([]byte(nil), data...), nil
}

// WriteFile stores a copy of data under path.
func (m *FileSystem) WriteFile(path string, data []byte) error {
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(path, data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = append([]byte(nil), data...)
	m.written = append(m.written, path)
	return nil
}

// MkdirAll records path as a created directory.
func (m *FileSystem) MkdirAll(path string) error {
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path] = struct{}{}
	return nil
}

// File returns the bytes last written to path.
func (m *FileSystem) File(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path]
	return data, ok
}

// Files returns a snapshot of every stored file keyed by path.
func (m *FileSystem) Files() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string][]byte, len(m.files))
	for k, v := range m.files {
		out[k] = v
	}
	return out
}

// Written returns every path passed to WriteFile, in call order.
func (m *FileSystem) Written() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.written...)
}

// Dirs returns the directories created through MkdirAll, sorted.
func (m *FileSystem) Dirs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.dirs))
	for d := range m.dirs {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

var _ ports.FileSystem = (*FileSystem)(nil)
