package ports

import "go.trai.ch/stale/internal/core/domain"

// JournalLoader reads a recorded change journal: the (path, version)
// events to replay into a change log.
//
//go:generate go run go.uber.org/mock/mockgen -source=journal_loader.go -destination=mocks/mock_journal_loader.go -package=mocks
type JournalLoader interface {
	// LoadJournal reads the change records at the given path, in
	// registration order.
	LoadJournal(path string) ([]domain.ChangeRecord, error)

	// LoadQueries reads the queries at the given path: dependency trees
	// paired with validity horizons.
	LoadQueries(path string) ([]domain.Query, error)
}
