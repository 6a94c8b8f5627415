package domain

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// NodeKey identifies a dependency node for memoization. Keys are
// structural: two nodes describing the same path with the same children
// share a key, so shared subtrees are evaluated once per engine instance.
type NodeKey uint64

// Node is a dependency-graph node the lookup engine can evaluate. Nodes
// are immutable once constructed and shared read-only across concurrent
// queries. The dependency relation must form a DAG.
type Node interface {
	// ResolvedPath returns the path this node observes.
	ResolvedPath() string

	// DependencyCount returns the number of direct children.
	DependencyCount() int

	// Dependency returns the child at the given index. The engine routes
	// child evaluation back through itself, never through raw recursion,
	// so shared children are computed once.
	Dependency(index int) Node

	// Key returns the node's memoization identity.
	Key() NodeKey

	// FindEarliestMatch evaluates this node's own match against the
	// change log, excluding children: the earliest recorded change to the
	// node's own path strictly after the horizon, or NoMatch.
	FindEarliestMatch(changes ChangeMatcher, horizon Version) (Version, error)
}

// FileDependency observes the content and identity of a resolved path,
// plus an ordered list of dependencies the resolution was defined in
// terms of.
type FileDependency struct {
	resolvedPath InternedString
	dependencies []Node
	key          NodeKey
}

var _ Node = (*FileDependency)(nil)

// NewFileDependency constructs an immutable file dependency node.
func NewFileDependency(resolvedPath string, dependencies ...Node) *FileDependency {
	d := &FileDependency{
		resolvedPath: NewInternedString(resolvedPath),
		dependencies: dependencies,
	}
	d.key = fingerprint("file", resolvedPath, dependencies)
	return d
}

// ResolvedPath returns the observed path.
func (d *FileDependency) ResolvedPath() string {
	return d.resolvedPath.String()
}

// DependencyCount returns the number of direct children.
func (d *FileDependency) DependencyCount() int {
	return len(d.dependencies)
}

// Dependency returns the child at the given index.
func (d *FileDependency) Dependency(index int) Node {
	return d.dependencies[index]
}

// Key returns the structural memoization identity.
func (d *FileDependency) Key() NodeKey {
	return d.key
}

// FindEarliestMatch matches content and identity changes recorded for the
// resolved path itself.
func (d *FileDependency) FindEarliestMatch(changes ChangeMatcher, horizon Version) (Version, error) {
	path := d.resolvedPath.String()
	if path == "" {
		return NoMatch, ErrEmptyResolvedPath
	}
	return changes.MatchFileChange(path, horizon), nil
}

// ListingDependency observes the set of entries under a directory: it
// matches on changes to the directory path or anything nested under it,
// and on matches anywhere in the wrapped file dependency's closure.
type ListingDependency struct {
	wrapped *FileDependency
	key     NodeKey
}

var _ Node = (*ListingDependency)(nil)

// NewListingDependency constructs a listing node over the wrapped file
// dependency's path.
func NewListingDependency(wrapped *FileDependency) *ListingDependency {
	return &ListingDependency{
		wrapped: wrapped,
		key:     fingerprint("listing", wrapped.ResolvedPath(), []Node{wrapped}),
	}
}

// ResolvedPath returns the directory path, taken from the wrapped node.
func (d *ListingDependency) ResolvedPath() string {
	return d.wrapped.ResolvedPath()
}

// DependencyCount returns 1: the wrapped file dependency.
func (d *ListingDependency) DependencyCount() int {
	return 1
}

// Dependency returns the wrapped file dependency.
func (d *ListingDependency) Dependency(int) Node {
	return d.wrapped
}

// Key returns the structural memoization identity.
func (d *ListingDependency) Key() NodeKey {
	return d.key
}

// FindEarliestMatch matches entry additions, removals and renames: any
// change recorded at or under the directory path.
func (d *ListingDependency) FindEarliestMatch(changes ChangeMatcher, horizon Version) (Version, error) {
	dir := d.wrapped.ResolvedPath()
	if dir == "" {
		return NoMatch, ErrEmptyResolvedPath
	}
	return changes.MatchListingChange(dir, horizon), nil
}

// fingerprint digests a node's kind, path and child keys. Zero bytes
// separate fields so "ab"+"c" and "a"+"bc" cannot collide.
func fingerprint(kind, path string, dependencies []Node) NodeKey {
	hasher := xxhash.New()
	_, _ = hasher.WriteString(kind)
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(path)
	_, _ = hasher.Write([]byte{0})
	for _, dep := range dependencies {
		_ = binary.Write(hasher, binary.LittleEndian, uint64(dep.Key()))
	}
	return NodeKey(hasher.Sum64())
}
