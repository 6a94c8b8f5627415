// Package app implements the application layer for stale: it replays a
// change journal into a fresh change log and evaluates match queries
// against it through the memoizing lookup engine.
package app

import (
	"context"
	"fmt"
	"runtime"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App wires the journal loader, the change log and the lookup engine
// into one run. An App instance corresponds to one build version epoch:
// the log and the engine's memoization table live and die together.
type App struct {
	loader    ports.JournalLoader
	changes   ports.ChangeLog
	lookup    ports.MatchLookup
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.JournalLoader,
	changes ports.ChangeLog,
	lookup ports.MatchLookup,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		loader:    loader,
		changes:   changes,
		lookup:    lookup,
		logger:    logger,
		telemetry: telemetry,
	}
}

// WithTelemetry swaps the telemetry sink. Used by the CLI when
// progress output is requested.
func (a *App) WithTelemetry(t ports.Telemetry) {
	a.telemetry = t
}

// RunOptions configures one match run.
type RunOptions struct {
	// JournalPath is the recorded change journal to replay.
	JournalPath string

	// QueryPath holds the dependency trees and horizons to evaluate.
	QueryPath string

	// Parallelism bounds concurrent query evaluation; zero means the
	// number of CPUs.
	Parallelism int
}

// QueryResult pairs a query with its outcome.
type QueryResult struct {
	Name   string
	Result domain.MatchResult
}

// Run replays the journal and evaluates every query, in query-file
// order. All registration happens before the first lookup, matching the
// contract that a horizon is only queried once every change at or below
// it is recorded.
func (a *App) Run(ctx context.Context, opts RunOptions) ([]QueryResult, error) {
	records, err := a.loader.LoadJournal(opts.JournalPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load journal")
	}
	for _, record := range records {
		if err := a.changes.RegisterFileChange(record.Path, record.Version); err != nil {
			return nil, zerr.Wrap(err, "failed to replay journal")
		}
	}
	a.logger.Info(fmt.Sprintf("replayed %d change records", len(records)))

	queries, err := a.loader.LoadQueries(opts.QueryPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load queries")
	}
	if len(queries) == 0 {
		return nil, domain.ErrNoQueriesSpecified
	}

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	results := make([]QueryResult, len(queries))
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, query := range queries {
		g.Go(func() error {
			result, err := a.evaluate(groupCtx, query)
			if err != nil {
				return err
			}
			results[i] = QueryResult{Name: query.Name, Result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, r := range results {
		a.logger.Info(fmt.Sprintf("%s: %s", r.Name, r.Result))
	}
	return results, nil
}

func (a *App) evaluate(ctx context.Context, query domain.Query) (domain.MatchResult, error) {
	ctx, vertex := a.telemetry.Record(ctx, query.Name)

	if result, ok := a.lookup.Memoized(query.Root, query.Horizon); ok {
		vertex.Cached()
		return result, nil
	}

	result, err := a.lookup.Lookup(ctx, query.Root, query.Horizon)
	vertex.Complete(err)
	if err != nil {
		return domain.NoMatchResult, zerr.With(zerr.Wrap(err, "query evaluation failed"), "query", query.Name)
	}
	return result, nil
}
