package storage

import (
	"bytes"
	"context"
	"sync"
)

// Memory keeps documents in process memory.
type Memory struct {
	mu      sync.RWMutex
	data    map[string][]byte
	saves   int
	saveErr error
}

// NewMemory returns an empty in-memory persister.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Load returns a copy of the stored value.
func (m *Memory) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return bytes.Clone(v), nil
}

// Save stores a copy of data.
func (m *Memory) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return &Error{Op: "save", Key: key, Message: "memory save failed", Cause: m.saveErr}
	}
	m.data[key] = bytes.Clone(data)
	m.saves++
	return nil
}

// Delete removes key.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Saves reports how many successful saves have happened.
func (m *Memory) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

// FailSaves sets the error returned by subsequent saves; nil restores normal behavior.
func (m *Memory) FailSaves(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
