// Package journal reads recorded change journals and query files.
package journal

// JournalFile is the YAML structure of a change journal: the (path,
// version) mutation events recorded during an epoch, in registration
// order.
type JournalFile struct {
	Version string      `yaml:"version"`
	Changes []ChangeDTO `yaml:"changes"`
}

// ChangeDTO is one recorded change event.
type ChangeDTO struct {
	Path    string `yaml:"path"`
	Version uint64 `yaml:"version"`
}

// QueryFile is the YAML structure of a query file: dependency trees
// paired with validity horizons.
type QueryFile struct {
	Version string     `yaml:"version"`
	Queries []QueryDTO `yaml:"queries"`
}

// QueryDTO is one match query.
type QueryDTO struct {
	Name    string  `yaml:"name"`
	Horizon uint64  `yaml:"horizon"`
	Root    NodeDTO `yaml:"root"`
}

// NodeDTO is a dependency node definition. Listing nodes observe the set
// of entries under the path instead of its content.
type NodeDTO struct {
	Path         string    `yaml:"path"`
	Listing      bool      `yaml:"listing"`
	Dependencies []NodeDTO `yaml:"dependencies"`
}
