// Package service contains the domain stores of the Wayfarer backend.
// Each store owns one normalized collection, validates inputs, enforces
// business rules, and writes its whole state through to a repo.SnapshotRepo
// after every mutation. No storage code lives here; services depend on the
// repo interface, not on a backend.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/pkordes/wayfarer/internal/dates"
	"github.com/pkordes/wayfarer/internal/domain"
	"github.com/pkordes/wayfarer/internal/repo"
)

// SchemaVersion is the snapshot format written by this build.
//
// Version 0 is the layout of the original mobile client: {"state": ..., "version": 0},
// or a bare state object with no envelope at all.
// Version 1 is {"version": 1, "data": ...}.
const SchemaVersion = 1

// ErrUnsupportedSchema is returned when a stored snapshot was written by a
// newer build than this one.
var ErrUnsupportedSchema = errors.New("unsupported snapshot schema version")

// errNoChange lets an update callback end the update without persisting.
var errNoChange = errors.New("no change")

// migration upgrades the payload of version v to version v+1.
type migration func(payload json.RawMessage) (json.RawMessage, error)

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data,omitempty"`
	State   json.RawMessage `json:"state,omitempty"`
}

// snapshotStore holds one store's state and persists it under a single key.
// Mutations run against a clone; the clone replaces the live state only after
// it has been saved, so a failed write never leaves memory and storage apart.
type snapshotStore[S any] struct {
	key        string
	repo       repo.SnapshotRepo
	log        *slog.Logger
	clone      func(S) S
	migrations map[int]migration

	mu    sync.Mutex
	state S
}

func newSnapshotStore[S any](key string, r repo.SnapshotRepo, logger *slog.Logger, clone func(S) S, migrations map[int]migration) *snapshotStore[S] {
	if logger == nil {
		logger = slog.Default()
	}
	return &snapshotStore[S]{
		key:        key,
		repo:       r,
		log:        logger.With("store", key),
		clone:      clone,
		migrations: migrations,
	}
}

// load replaces the in-memory state with the persisted snapshot. When nothing
// has been saved yet, seed (if non-nil) provides the initial state, which is
// persisted immediately. Older snapshots are migrated and written back.
func (s *snapshotStore[S]) load(ctx context.Context, seed func() S) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := s.repo.Load(ctx, s.key)
	if errors.Is(err, domain.ErrNotFound) {
		var st S
		if seed != nil {
			st = seed()
			if err := s.save(ctx, st); err != nil {
				return err
			}
			s.log.InfoContext(ctx, "seeded store with demo data")
		}
		s.state = st
		return nil
	}
	if err != nil {
		return err
	}

	st, from, err := s.decode(blob)
	if err != nil {
		return fmt.Errorf("decode %s: %w", s.key, err)
	}
	if from < SchemaVersion {
		if err := s.save(ctx, st); err != nil {
			return err
		}
		s.log.InfoContext(ctx, "migrated snapshot", "from_version", from, "to_version", SchemaVersion)
	}
	s.state = st
	return nil
}

func (s *snapshotStore[S]) decode(blob []byte) (S, int, error) {
	var st S

	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return st, 0, err
	}
	if env.Version > SchemaVersion {
		return st, env.Version, fmt.Errorf("%w: %d", ErrUnsupportedSchema, env.Version)
	}

	payload := env.Data
	if env.Version == 0 {
		payload = env.State
		if len(payload) == 0 {
			payload = blob
		}
	}

	for v := env.Version; v < SchemaVersion; v++ {
		m, ok := s.migrations[v]
		if !ok {
			continue
		}
		var err error
		if payload, err = m(payload); err != nil {
			return st, env.Version, fmt.Errorf("migrate from version %d: %w", v, err)
		}
	}

	if err := json.Unmarshal(payload, &st); err != nil {
		return st, env.Version, err
	}
	return st, env.Version, nil
}

func (s *snapshotStore[S]) save(ctx context.Context, st S) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}
	blob, err := json.Marshal(envelope{Version: SchemaVersion, Data: data})
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}
	if err := s.repo.Save(ctx, s.key, blob); err != nil {
		s.log.ErrorContext(ctx, "persist snapshot failed", "error", err)
		return err
	}
	return nil
}

// update applies fn to a clone of the state, persists the clone, and then
// swaps it in. If fn or the save fails the live state is untouched.
func (s *snapshotStore[S]) update(ctx context.Context, fn func(st *S) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.clone(s.state)
	if err := fn(&next); err != nil {
		if errors.Is(err, errNoChange) {
			return nil
		}
		return err
	}
	if err := s.save(ctx, next); err != nil {
		return err
	}
	s.state = next
	return nil
}

// view runs fn against the live state under the lock. fn must copy anything
// it returns.
func (s *snapshotStore[S]) view(fn func(st S)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

// upgradeDateFields rewrites the named fields of a JSON object from
// "YYYY-MM-DD" calendar dates to RFC 3339 timestamps. Fields that are absent,
// empty, or already timestamps are left alone.
func upgradeDateFields(raw json.RawMessage, fields ...string) (json.RawMessage, error) {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	for _, f := range fields {
		v, ok := obj[f].(string)
		if !ok || v == "" {
			continue
		}
		if _, err := time.Parse(time.RFC3339, v); err == nil {
			continue
		}
		d, err := dates.ParseDate(v)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f, err)
		}
		obj[f] = d.Format(time.RFC3339)
	}
	return json.Marshal(obj)
}

// upgradeDateFieldsEach applies upgradeDateFields to every element of a JSON array.
func upgradeDateFieldsEach(raw []json.RawMessage, fields ...string) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, len(raw))
	for i, r := range raw {
		u, err := upgradeDateFields(r, fields...)
		if err != nil {
			return nil, err
		}
		out[i] = u
	}
	return out, nil
}

// required returns a validation error naming field when value is blank.
func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrValidation, field)
	}
	return nil
}
