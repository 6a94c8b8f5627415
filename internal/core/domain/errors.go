package domain

import "go.trai.ch/zerr"

var (
	// ErrCycleDetected is returned when a dependency node transitively
	// depends on itself, violating the DAG invariant.
	ErrCycleDetected = zerr.New("dependency cycle detected")

	// ErrEmptyResolvedPath is returned when a node carries no resolved
	// path. This is a construction defect, not a runtime condition.
	ErrEmptyResolvedPath = zerr.New("empty resolved path")

	// ErrReservedVersion is returned when a change is registered at the
	// reserved NoMatch sentinel version.
	ErrReservedVersion = zerr.New("version is reserved")

	// ErrWaitInterrupted is returned to a caller that chose to block on a
	// pending result and was interrupted. The underlying computation
	// continues for other observers.
	ErrWaitInterrupted = zerr.New("wait interrupted")

	// ErrNoQueriesSpecified is returned when a match run has nothing to
	// evaluate.
	ErrNoQueriesSpecified = zerr.New("no queries specified")
)
