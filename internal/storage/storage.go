// Package storage provides key/value persistence for the serialized store state
// on the local device: a JSON file directory, an embedded SQLite database, or memory.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Load when nothing is stored under the key.
var ErrNotFound = errors.New("storage: key not found")

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Persister loads and saves opaque documents by key.
type Persister interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Error represents a storage backend failure.
type Error struct {
	Op      string
	Key     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage error: %s %s: %s: %v", e.Op, e.Key, e.Message, e.Cause)
	}
	return fmt.Sprintf("storage error: %s %s: %s", e.Op, e.Key, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Open creates the persister for backend rooted at dataDir.
func Open(backend, dataDir string) (Persister, error) {
	switch strings.ToLower(backend) {
	case "", BackendFile:
		return NewFile(dataDir)
	case BackendSQLite:
		return OpenSQLite(filepath.Join(dataDir, "resume-builder.db"))
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q (want file, sqlite, or memory)", backend)
	}
}

func validKey(op, key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return &Error{Op: op, Key: key, Message: "invalid key"}
	}
	return nil
}
