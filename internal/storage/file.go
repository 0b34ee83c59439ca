package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// File stores each key as <dir>/<key>.json, replacing it atomically on save.
type File struct {
	dir string
}

// NewFile creates the data directory if needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &Error{Op: "open", Key: dir, Message: "failed to create data directory", Cause: err}
	}
	return &File{dir: dir}, nil
}

// Dir returns the data directory.
func (f *File) Dir() string {
	return f.dir
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Load reads the document stored under key.
func (f *File) Load(ctx context.Context, key string) ([]byte, error) {
	if err := validKey("load", key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &Error{Op: "load", Key: key, Message: "failed to read file", Cause: err}
	}
	return data, nil
}

// Save writes data to a temp file in the same directory and renames it over the target.
func (f *File) Save(ctx context.Context, key string, data []byte) error {
	if err := validKey("save", key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return &Error{Op: "save", Key: key, Message: "failed to create temp file", Cause: err}
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return &Error{Op: "save", Key: key, Message: "failed to write temp file", Cause: err}
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return &Error{Op: "save", Key: key, Message: "failed to sync temp file", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return &Error{Op: "save", Key: key, Message: "failed to close temp file", Cause: err}
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		return &Error{Op: "save", Key: key, Message: "failed to replace file", Cause: err}
	}
	return nil
}

// Delete removes the document; deleting a missing key is not an error.
func (f *File) Delete(ctx context.Context, key string) error {
	if err := validKey("delete", key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &Error{Op: "delete", Key: key, Message: "failed to remove file", Cause: err}
	}
	return nil
}

// Close is a no-op for files.
func (f *File) Close() error {
	return nil
}
