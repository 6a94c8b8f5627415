package domain

import "fmt"

// MatchResult is the outcome of evaluating a dependency against a change
// log: either the earliest version strictly after the supplied horizon at
// which something in the dependency's closure changed, or no match.
type MatchResult struct {
	version Version
}

// NoMatchResult is the result meaning "nothing changed after the horizon".
var NoMatchResult = MatchResult{version: NoMatch}

// MatchAt returns a result reporting the earliest invalidating version.
// MatchAt(NoMatch) is NoMatchResult.
func MatchAt(v Version) MatchResult {
	return MatchResult{version: v}
}

// Matches reports whether a change after the horizon was found.
func (r MatchResult) Matches() bool {
	return r.version.Matches()
}

// Version returns the earliest invalidating version, or NoMatch.
func (r MatchResult) Version() Version {
	return r.version
}

// Min aggregates two results, keeping the earlier match. NoMatchResult is
// the identity.
func (r MatchResult) Min(other MatchResult) MatchResult {
	return MatchResult{version: r.version.Min(other.version)}
}

// String renders the result for logs and CLI output.
func (r MatchResult) String() string {
	if !r.Matches() {
		return "no match"
	}
	return fmt.Sprintf("match@%d", r.version)
}
