package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// SQLite stores documents in a single key/value table.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and initializes the schema.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &Error{Op: "open", Key: path, Message: "failed to open database", Cause: err}
	}
	// one writer at a time keeps sqlite from returning SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, &Error{Op: "open", Key: path, Message: "failed to init schema", Cause: err}
	}
	return &SQLite{db: db}, nil
}

// Load returns the value stored under key.
func (s *SQLite) Load(ctx context.Context, key string) ([]byte, error) {
	if err := validKey("load", key); err != nil {
		return nil, err
	}
	var value []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &Error{Op: "load", Key: key, Message: "query failed", Cause: err}
	}
	return value, nil
}

// Save upserts the value for key.
func (s *SQLite) Save(ctx context.Context, key string, data []byte) error {
	if err := validKey("save", key); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, data, time.Now().UTC(),
	)
	if err != nil {
		return &Error{Op: "save", Key: key, Message: "upsert failed", Cause: err}
	}
	return nil
}

// Delete removes key.
func (s *SQLite) Delete(ctx context.Context, key string) error {
	if err := validKey("delete", key); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return &Error{Op: "delete", Key: key, Message: "delete failed", Cause: err}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
