// Package domain contains the core domain model for incremental
// invalidation: build versions, change-match results and the
// file-dependency graph evaluated against a versioned change log.
package domain

import "math"

// Version is a monotonically assigned build version. Versions are totally
// ordered; the writer of the change log assigns them.
type Version uint64

// NoMatch is the reserved sentinel meaning "no change found". It is the
// maximum representable version so that aggregating a set of results is a
// plain numeric minimum with NoMatch as the identity element.
const NoMatch Version = math.MaxUint64

// Matches reports whether v denotes an actual recorded change.
func (v Version) Matches() bool {
	return v != NoMatch
}

// Min returns the smaller of v and other.
func (v Version) Min(other Version) Version {
	if other < v {
		return other
	}
	return v
}

// ChangeMatcher answers point and prefix queries against a versioned
// change log. Implementations must be safe for concurrent use; the log
// may grow while queries are in flight.
type ChangeMatcher interface {
	// MatchFileChange returns the smallest recorded version for path that
	// is strictly greater than the horizon, or NoMatch.
	MatchFileChange(path string, horizon Version) Version

	// MatchListingChange returns the smallest recorded version strictly
	// greater than the horizon for the directory path itself or for any
	// path nested under it, or NoMatch. Prefix matching is per path
	// segment, so "dir2" is not under "dir".
	MatchListingChange(directory string, horizon Version) Version
}
