// Package store provides the client state store: the single owner of all resume builder
// documents, with synchronous persistence and change notification.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-builder/internal/ids"
	"github.com/jonathan/resume-builder/internal/storage"
)

// Persister is the storage the store writes its snapshot to.
type Persister interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// Slice names a top-level collection of the state.
type Slice string

// State slices reported in change notifications
const (
	SliceUser            Slice = "user"
	SliceResumes         Slice = "resumes"
	SliceActiveResume    Slice = "activeResumeId"
	SliceCoverLetters    Slice = "coverLetters"
	SliceActiveCover     Slice = "activeCoverLetterId"
	SliceSavedJobs       Slice = "savedJobs"
	SliceJobApplications Slice = "jobApplications"
	SliceInterviewPreps  Slice = "interviewPreps"
	SliceVideoResumes    Slice = "videoResumes"
	SliceAll             Slice = "*"
)

// Op is the kind of mutation.
type Op string

// Mutation kinds
const (
	OpAdd     Op = "add"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
	OpSelect  Op = "select"
	OpReplace Op = "replace"
)

// Change describes one committed mutation.
type Change struct {
	Slice Slice
	ID    string
	Op    Op
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for mutation and persistence events.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// Store holds the state and serializes mutations.
// Reads return deep copies, so callers never share memory with the store.
type Store struct {
	mu        sync.RWMutex
	state     State
	persister Persister
	now       func() time.Time
	logger    *zap.Logger
	restored  bool

	subMu  sync.Mutex
	subs   map[int]func(Change)
	nextID int
}

// New creates a store with an empty state that persists to p.
func New(p Persister, opts ...Option) *Store {
	s := &Store{
		state:     EmptyState(),
		persister: p,
		now:       time.Now,
		logger:    zap.NewNop(),
		subs:      make(map[int]func(Change)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a store and restores the persisted state from p, migrating it if needed.
// A missing document yields an empty state.
func Open(ctx context.Context, p Persister, opts ...Option) (*Store, error) {
	s := New(p, opts...)

	data, err := p.Load(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Debug("no persisted state, starting empty", zap.String("key", StorageKey))
		return s, nil
	}
	if err != nil {
		return nil, &PersistError{Message: "failed to load persisted state", Cause: err}
	}

	st, err := Decode(data)
	if err != nil {
		return nil, err
	}
	s.state = st
	s.restored = true
	s.logger.Debug("restored persisted state",
		zap.Int("resumes", len(st.Resumes)),
		zap.Int("cover_letters", len(st.CoverLetters)),
		zap.Int("applications", len(st.JobApplications)))
	return s, nil
}

// Restored reports whether the state was loaded from storage.
func (s *Store) Restored() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.restored
}

// Subscribe registers fn to be called after every committed mutation.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Change)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify(changes []Change) {
	s.subMu.Lock()
	subs := make([]func(Change), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, c := range changes {
		for _, fn := range subs {
			fn(c)
		}
	}
}

// mutate applies fn to a copy of the state, persists the copy, and commits it.
// fn returns the changes it made; on any error the state is untouched.
func (s *Store) mutate(ctx context.Context, fn func(st *State) ([]Change, error)) error {
	s.mu.Lock()
	next := s.state.Clone()
	changes, err := fn(&next)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	data, err := Encode(next)
	if err != nil {
		s.mu.Unlock()
		return &PersistError{Message: "failed to encode state", Cause: err}
	}
	if err := s.persister.Save(ctx, StorageKey, data); err != nil {
		s.mu.Unlock()
		s.logger.Error("failed to persist state", zap.Error(err))
		return &PersistError{Message: "failed to save state", Cause: err}
	}
	s.state = next
	s.mu.Unlock()

	for _, c := range changes {
		s.logger.Debug("state mutated",
			zap.String("slice", string(c.Slice)),
			zap.String("id", c.ID),
			zap.String("op", string(c.Op)))
	}
	s.notify(changes)
	return nil
}

// timestamp returns the current time, strictly after prev.
func (s *Store) timestamp(prev time.Time) time.Time {
	now := s.now().UTC()
	if !now.After(prev) {
		now = prev.Add(time.Millisecond)
	}
	return now
}

func newID[T any](list []T, idOf func(T) string) string {
	return ids.NewUnique(func(id string) bool {
		return indexOf(list, id, idOf) >= 0
	})
}

// Replace swaps the whole state, as when seeding sample data or importing a backup.
func (s *Store) Replace(ctx context.Context, st State) error {
	return s.mutate(ctx, func(cur *State) ([]Change, error) {
		next := st.Clone()
		next.normalize()
		*cur = next
		return []Change{{Slice: SliceAll, Op: OpReplace}}, nil
	})
}

// Snapshot returns a deep copy of the whole state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}
