// Package changelog implements the append-only versioned change log.
package changelog

import (
	"slices"
	"strings"
	"sync"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/zerr"
)

// VersionedChanges owns the full set of change records, indexed for
// exact-path and directory-prefix queries. Registration may race with
// queries: records are never altered or removed, so a query is a pure
// function of the log's contents at call time.
type VersionedChanges struct {
	mu sync.RWMutex

	// byPath holds recorded versions per exact path, sorted ascending.
	byPath map[string][]domain.Version

	// byDir holds, per directory, the versions of every record nested
	// under it ("" is the root bucket). Populated at registration so
	// listing queries need no path scan.
	byDir map[string][]domain.Version

	records int
}

var _ domain.ChangeMatcher = (*VersionedChanges)(nil)

// New creates an empty change log.
func New() *VersionedChanges {
	return &VersionedChanges{
		byPath: make(map[string][]domain.Version),
		byDir:  make(map[string][]domain.Version),
	}
}

// RegisterFileChange appends a change record for the path at the given
// version. Same-path version ordering is the caller's responsibility and
// is not validated; the reserved NoMatch version is rejected.
func (c *VersionedChanges) RegisterFileChange(path string, version domain.Version) error {
	if version == domain.NoMatch {
		return zerr.With(zerr.Wrap(domain.ErrReservedVersion, "failed to register change"), "path", path)
	}
	if path == "" {
		return zerr.With(zerr.Wrap(domain.ErrEmptyResolvedPath, "failed to register change"), "version", uint64(version))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.byPath[path] = insertSorted(c.byPath[path], version)
	for dir := parentDirectory(path); ; dir = parentDirectory(dir) {
		c.byDir[dir] = insertSorted(c.byDir[dir], version)
		if dir == "" {
			break
		}
	}
	c.records++
	return nil
}

// MatchFileChange returns the smallest recorded version for the path
// strictly greater than the horizon, or NoMatch.
func (c *VersionedChanges) MatchFileChange(path string, horizon domain.Version) domain.Version {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return firstAfter(c.byPath[path], horizon)
}

// MatchListingChange returns the smallest version strictly greater than
// the horizon recorded for the directory path itself or for any path
// nested under it. Nesting is per path segment: "dir2" is not under
// "dir".
func (c *VersionedChanges) MatchListingChange(directory string, horizon domain.Version) domain.Version {
	c.mu.RLock()
	defer c.mu.RUnlock()
	self := firstAfter(c.byPath[directory], horizon)
	return self.Min(firstAfter(c.byDir[directory], horizon))
}

// Len returns the number of registered records.
func (c *VersionedChanges) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.records
}

// parentDirectory strips the last path segment; the parent of a
// single-segment path is the root bucket "".
func parentDirectory(path string) string {
	idx := strings.LastIndexByte(path, '/')
	if idx < 0 {
		return ""
	}
	return path[:idx]
}

// insertSorted keeps the version slice ascending so matching is a binary
// search. Duplicates can occur in directory buckets when sibling paths
// change at the same version; they are harmless for a minimum query.
func insertSorted(versions []domain.Version, v domain.Version) []domain.Version {
	idx, _ := slices.BinarySearch(versions, v)
	return slices.Insert(versions, idx, v)
}

// firstAfter returns the smallest version strictly greater than the
// horizon, or NoMatch.
func firstAfter(versions []domain.Version, horizon domain.Version) domain.Version {
	if horizon == domain.NoMatch {
		return domain.NoMatch
	}
	idx, _ := slices.BinarySearch(versions, horizon+1)
	if idx == len(versions) {
		return domain.NoMatch
	}
	return versions[idx]
}
