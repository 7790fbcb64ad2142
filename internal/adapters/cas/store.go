// Package cas implements the snapshot store, addressed by parameter fingerprint.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/fractal/internal/core/domain"
	"go.trai.ch/fractal/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultDir is the directory snapshots are kept in when none is configured.
const DefaultDir = ".fractal/snapshots"

var _ ports.SnapshotStore = (*Store)(nil)

// Store implements ports.SnapshotStore with one JSON file per fingerprint.
type Store struct {
	dir   string
	mu    sync.RWMutex
	cache map[string]*domain.Snapshot
}

// NewStore creates a snapshot store rooted at dir. The directory is created on first Put.
func NewStore(dir string) *Store {
	return &Store{
		dir:   filepath.Clean(dir),
		cache: make(map[string]*domain.Snapshot),
	}
}

func (s *Store) path(fingerprint string) string {
	return filepath.Join(s.dir, fingerprint+".json")
}

// Get retrieves the snapshot stored under a fingerprint.
// Returns nil, nil if not found.
func (s *Store) Get(fingerprint string) (*domain.Snapshot, error) {
	s.mu.RLock()
	snap, ok := s.cache[fingerprint]
	s.mu.RUnlock()
	if ok {
		return snap, nil
	}

	path := s.path(fingerprint)
	//nolint:gosec // Path is cleaned and the name is a hex fingerprint
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrSnapshotReadFailed, err.Error()), "path", path)
	}

	snap = &domain.Snapshot{}
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrSnapshotReadFailed, err.Error()), "path", path)
	}
	if snap.Fingerprint != fingerprint {
		return nil, zerr.With(zerr.Wrap(domain.ErrSnapshotReadFailed, "fingerprint mismatch"), "path", path)
	}

	s.mu.Lock()
	s.cache[fingerprint] = snap
	s.mu.Unlock()
	return snap, nil
}

// Put stores the snapshot under its fingerprint, replacing any previous one.
func (s *Store) Put(snap domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return zerr.Wrap(domain.ErrSnapshotWriteFailed, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrSnapshotWriteFailed, err.Error()), "path", s.dir)
	}

	// Write to a temporary file first so readers never see a partial snapshot.
	path := s.path(snap.Fingerprint)
	tmp, err := os.CreateTemp(s.dir, snap.Fingerprint+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrSnapshotWriteFailed, err.Error()), "path", path)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(domain.ErrSnapshotWriteFailed, err.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(domain.ErrSnapshotWriteFailed, err.Error()), "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(domain.ErrSnapshotWriteFailed, err.Error()), "path", path)
	}

	s.cache[snap.Fingerprint] = &snap
	return nil
}
