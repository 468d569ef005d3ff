package driving

import (
	"context"

	"github.com/fennec-labs/gistfind-cli/internal/core/domain"
)

// SessionState is the query session's position in its state machine.
type SessionState string

// Session states.
const (
	// StateIdle is the initial and resting state.
	StateIdle SessionState = "idle"

	// StateDebouncing means input arrived and the debounce timer is pending.
	StateDebouncing SessionState = "debouncing"

	// StateScanning means the debounce fired and a scan is running.
	StateScanning SessionState = "scanning"

	// StatePublished means the latest scan completed and its results
	// are the current list. The next input moves back to debouncing.
	StatePublished SessionState = "published"
)

// QuerySession owns one interactive search interaction: it debounces
// raw input, runs scans, and publishes ranked result lists.
type QuerySession interface {
	// Start runs the initial empty-query scan synchronously so the
	// view opens on the browse-all list.
	Start(ctx context.Context) error

	// SetQuery feeds a new raw query text into the session, restarting
	// the debounce timer. Returns domain.ErrSessionClosed after Close.
	SetQuery(text string) error

	// Refresh re-runs the current query immediately, bypassing the
	// debounce.
	Refresh(ctx context.Context) error

	// SetFilters replaces the filters applied to subsequent scans.
	SetFilters(f domain.Filters)

	// Results returns the most recently published result list.
	Results() []domain.RankedResult

	// State returns the current state machine position.
	State() SessionState

	// Close tears the session down; no timer fires afterwards.
	Close()
}
