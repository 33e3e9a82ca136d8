// Package repository defines the attendance store interface and errors.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"presenca/internal/domain/absence"
	"presenca/internal/domain/types"
	"presenca/pkg/metrics"
)

// File-backed, in-memory Store implementation.
//
// The whole database lives in one JSON document that is loaded on open and
// rewritten after every mutation. Writes go to a temp file in the same
// directory followed by a rename, so a crash mid-write never leaves a
// truncated database behind.

const defaultIndent = "    "

// diskState is the on-disk document layout.
type diskState struct {
	Users    map[string]types.Profile `json:"users"`
	Absences []absence.Log            `json:"absences"`
}

// FileStore implements Store on top of a single JSON file.
type FileStore struct {
	mu     sync.RWMutex
	path   string
	indent string
	state  diskState
}

var _ Store = (*FileStore)(nil)

// Open loads the database file at path, creating an empty state when the
// file does not exist yet. A file that fails to parse starts an empty
// database; the store is a local cache of remotely recoverable data.
func Open(path string, opts ...Option) (*FileStore, error) {
	s := &FileStore{
		path:   path,
		indent: defaultIndent,
		state:  emptyState(),
	}
	for _, opt := range opts {
		opt(s)
	}

	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run.
	case err != nil:
		return nil, fmt.Errorf("open database file: %w", err)
	default:
		var st diskState
		if jsonErr := json.Unmarshal(raw, &st); jsonErr == nil {
			if st.Users == nil {
				st.Users = make(map[string]types.Profile)
			}
			s.state = st
		}
	}

	s.publishGauges()
	return s, nil
}

func emptyState() diskState {
	return diskState{Users: make(map[string]types.Profile)}
}

// AbsencesByUser returns every absence recorded for a user.
func (s *FileStore) AbsencesByUser(_ context.Context, userID string) ([]absence.Log, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]absence.Log, 0)
	for _, l := range s.state.Absences {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

// AddAbsence records an absence, skipping ids that already exist.
func (s *FileStore) AddAbsence(_ context.Context, l absence.Log) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.state.Absences {
		if existing.ID == l.ID {
			metrics.RecordAbsenceDuplicate()
			return false, nil
		}
	}

	s.state.Absences = append(s.state.Absences, l)
	if err := s.persistLocked(); err != nil {
		s.state.Absences = s.state.Absences[:len(s.state.Absences)-1]
		return false, err
	}
	metrics.RecordAbsenceCreated()
	return true, nil
}

// RemoveAbsence deletes an absence by id. Unknown ids are a no-op.
func (s *FileStore) RemoveAbsence(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.state.Absences {
		if l.ID == id {
			removed := l
			s.state.Absences = append(s.state.Absences[:i], s.state.Absences[i+1:]...)
			if err := s.persistLocked(); err != nil {
				s.state.Absences = append(s.state.Absences, removed)
				return err
			}
			metrics.RecordAbsenceDeleted()
			return nil
		}
	}
	return nil
}

// Ranking returns every profile ordered by total presents desc, ties by
// user id asc.
func (s *FileStore) Ranking(_ context.Context) ([]types.RankingEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.RankingEntry, 0, len(s.state.Users))
	for _, p := range s.state.Users {
		out = append(out, types.RankingEntry(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPresents != out[j].TotalPresents {
			return out[i].TotalPresents > out[j].TotalPresents
		}
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}

// UpsertProfile creates or replaces a user profile.
func (s *FileStore) UpsertProfile(_ context.Context, p types.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.state.Users[p.UserID]
	s.state.Users[p.UserID] = p
	if err := s.persistLocked(); err != nil {
		if existed {
			s.state.Users[p.UserID] = prev
		} else {
			delete(s.state.Users, p.UserID)
		}
		return err
	}
	metrics.RecordProfileUpsert()
	return nil
}

// User returns the profile for a user id.
func (s *FileStore) User(_ context.Context, userID string) (types.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.state.Users[userID]
	if !ok {
		return types.Profile{}, ErrNotFound
	}
	return p, nil
}

// Register creates a bare profile named after the given id.
func (s *FileStore) Register(_ context.Context, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.state.Users[userID]; exists {
		return false, nil
	}

	s.state.Users[userID] = types.Profile{
		UserID:      userID,
		DisplayName: userID,
	}
	if err := s.persistLocked(); err != nil {
		delete(s.state.Users, userID)
		return false, err
	}
	metrics.RecordProfileUpsert()
	return true, nil
}

// Counts returns the number of users and absences tracked.
func (s *FileStore) Counts(_ context.Context) (users, absences int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.Users), len(s.state.Absences)
}

// persistLocked writes the state to disk atomically. Callers hold s.mu.
func (s *FileStore) persistLocked() error {
	start := time.Now()

	raw, err := json.MarshalIndent(s.state, "", s.indent)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}

	metrics.RecordStorePersistLatency(float64(time.Since(start).Milliseconds()))
	s.publishGaugesLocked()
	return nil
}

func (s *FileStore) publishGauges() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.publishGaugesLocked()
}

func (s *FileStore) publishGaugesLocked() {
	metrics.UpdateStoreUsers(len(s.state.Users))
	metrics.UpdateStoreAbsences(len(s.state.Absences))
}
