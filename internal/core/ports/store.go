package ports

import "go.trai.ch/fractal/internal/core/domain"

// SnapshotStore defines the interface for storing and retrieving completed grids.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Get retrieves the snapshot stored under a fingerprint.
	// Returns nil, nil if not found.
	Get(fingerprint string) (*domain.Snapshot, error)

	// Put stores the snapshot under its fingerprint.
	Put(snap domain.Snapshot) error
}
