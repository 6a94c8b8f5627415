// Package ports defines the interfaces between the invalidation engine
// and its collaborators.
package ports

import "go.trai.ch/stale/internal/core/domain"

// ChangeLog is the writable face of the versioned change log. The log is
// append-only: records are never altered or removed, so query results
// only become more matching as the log grows.
//
//go:generate go run go.uber.org/mock/mockgen -source=changes.go -destination=mocks/mock_changes.go -package=mocks
type ChangeLog interface {
	domain.ChangeMatcher

	// RegisterFileChange appends a change record for the path at the
	// given version. Ordering of versions for the same path is the
	// caller's responsibility; the reserved NoMatch version is rejected.
	RegisterFileChange(path string, version domain.Version) error
}
