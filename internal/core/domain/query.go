package domain

// ChangeRecord is one recorded filesystem mutation: a path observed to
// have changed at a specific build version.
type ChangeRecord struct {
	Path    string
	Version Version
}

// Query pairs a dependency node with the validity horizon of the cached
// result it guards: a match strictly after the horizon invalidates it.
type Query struct {
	// Name labels the query in output and telemetry.
	Name string

	// Root is the dependency whose transitive closure is examined.
	Root Node

	// Horizon is the version as of which the cached result was computed.
	Horizon Version
}
