package ports

import "go.trai.ch/fractal/internal/core/domain"

// Fingerprinter derives a stable key from the cache-relevant part of a parameter record.
//
//go:generate mockgen -destination=mocks/fingerprinter_mock.go -package=mocks -source=fingerprinter.go
type Fingerprinter interface {
	// Fingerprint returns the same key for records that produce the same values
	// at every world coordinate.
	Fingerprint(p domain.Params) string
}
