package journal

import (
	"os"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileLoader implements ports.JournalLoader using YAML files.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// LoadJournal reads the change records at the given path.
func (l *FileLoader) LoadJournal(path string) ([]domain.ChangeRecord, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read journal file")
	}

	var file JournalFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse journal file")
	}

	records := make([]domain.ChangeRecord, 0, len(file.Changes))
	for i, change := range file.Changes {
		if change.Path == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrEmptyResolvedPath, "invalid change record"), "record", i)
		}
		records = append(records, domain.ChangeRecord{
			Path:    change.Path,
			Version: domain.Version(change.Version),
		})
	}
	return records, nil
}

// LoadQueries reads the queries at the given path and builds their
// dependency trees.
func (l *FileLoader) LoadQueries(path string) ([]domain.Query, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read query file")
	}

	var file QueryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse query file")
	}

	queries := make([]domain.Query, 0, len(file.Queries))
	for _, q := range file.Queries {
		root, err := buildNode(q.Root)
		if err != nil {
			return nil, zerr.With(err, "query", q.Name)
		}
		name := q.Name
		if name == "" {
			name = q.Root.Path
		}
		queries = append(queries, domain.Query{
			Name:    name,
			Root:    root,
			Horizon: domain.Version(q.Horizon),
		})
	}
	return queries, nil
}

// buildNode converts a node definition into an immutable dependency
// node. Structurally identical definitions yield nodes with equal keys,
// so shared subtrees are deduplicated by the engine.
func buildNode(dto NodeDTO) (domain.Node, error) {
	if dto.Path == "" {
		return nil, zerr.Wrap(domain.ErrEmptyResolvedPath, "invalid node definition")
	}

	children := make([]domain.Node, 0, len(dto.Dependencies))
	for _, dep := range dto.Dependencies {
		child, err := buildNode(dep)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	file := domain.NewFileDependency(dto.Path, children...)
	if dto.Listing {
		return domain.NewListingDependency(file), nil
	}
	return file, nil
}
