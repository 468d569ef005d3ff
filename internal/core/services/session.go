package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fennec-labs/gistfind-cli/internal/core/domain"
	"github.com/fennec-labs/gistfind-cli/internal/core/ports/driven"
	"github.com/fennec-labs/gistfind-cli/internal/core/ports/driving"
	"github.com/fennec-labs/gistfind-cli/internal/logger"
)

// DefaultDebounce is the pause after the last keystroke before a scan
// runs.
const DefaultDebounce = 300 * time.Millisecond

// SessionConfig configures a query session. Zero values select
// production defaults.
type SessionConfig struct {
	// Debounce is the quiet period before a scan fires.
	Debounce time.Duration

	// Options is the baseline search options for every scan.
	Options domain.SearchOptions

	// Timers schedules debounce timers. Defaults to the wall clock.
	Timers driven.TimerFactory

	// OnPublish, when set, is called after each scan with the new
	// result list. Called outside the session lock.
	OnPublish func([]domain.RankedResult)
}

// Session debounces raw query input and publishes ranked result lists.
// Each keystroke restarts the timer; only the text present when the
// timer fires is ever scanned. Results are replaced wholesale, never
// merged, so a stale scan can never interleave with a newer one.
type Session struct {
	id       string
	search   driving.SearchService
	debounce time.Duration
	timers   driven.TimerFactory
	publish  func([]domain.RankedResult)

	mu      sync.Mutex
	opts    domain.SearchOptions
	query   string
	gen     uint64
	timer   driven.Timer
	state   driving.SessionState
	results []domain.RankedResult
	lastErr error
	closed  bool
}

var _ driving.QuerySession = (*Session)(nil)

// NewSession creates an idle session. Call Start to publish the initial
// browse-all list.
func NewSession(search driving.SearchService, cfg SessionConfig) *Session {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.Timers == nil {
		cfg.Timers = driven.StdTimerFactory
	}
	return &Session{
		id:       uuid.New().String(),
		search:   search,
		debounce: cfg.Debounce,
		timers:   cfg.Timers,
		publish:  cfg.OnPublish,
		opts:     cfg.Options,
		state:    driving.StateIdle,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Start runs the initial empty-query scan synchronously so the view
// opens on the browse-all list rather than a blank screen.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrSessionClosed
	}
	gen := s.gen
	s.mu.Unlock()

	s.scan(ctx, "", gen)

	s.mu.Lock()
	err := s.lastErr
	s.mu.Unlock()
	return err
}

// SetQuery feeds new raw input into the session. The pending timer, if
// any, is cancelled and a fresh one is armed, so a burst of keystrokes
// produces exactly one scan of the final text.
func (s *Session) SetQuery(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrSessionClosed
	}

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	s.query = text
	s.gen++
	gen := s.gen
	s.state = driving.StateDebouncing

	s.timer = s.timers(s.debounce, func() {
		s.scan(context.Background(), text, gen)
	})
	return nil
}

// SetFilters replaces the filters applied to subsequent scans. The
// current result list is untouched until the next scan fires.
func (s *Session) SetFilters(f domain.Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.Filters = f
}

// Refresh re-runs the current query immediately, bypassing the
// debounce. Used after a filter change or an index rebuild.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrSessionClosed
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	gen := s.gen
	query := s.query
	s.mu.Unlock()

	s.scan(ctx, query, gen)

	s.mu.Lock()
	err := s.lastErr
	s.mu.Unlock()
	return err
}

// Results returns the most recently published result list.
func (s *Session) Results() []domain.RankedResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// State returns the current state machine position.
func (s *Session) State() driving.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the error from the most recent scan, nil on success.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Close tears the session down. Any pending timer is stopped and a
// timer that already fired publishes nothing.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state = driving.StateIdle
}

// scan runs one search pass for the given generation. A scan whose
// generation is stale by the time it starts or finishes is discarded,
// which keeps a slow scan from overwriting a newer one's results.
func (s *Session) scan(ctx context.Context, query string, gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.state = driving.StateScanning
	opts := s.opts
	s.mu.Unlock()

	results, err := s.search.Search(ctx, query, opts)

	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.lastErr = err
	if err != nil {
		// Keep the previous list on failure; a flaky supplier should
		// not blank the screen mid-session.
		logger.Warn("scan failed: %v", err)
		s.state = driving.StateIdle
		s.mu.Unlock()
		return
	}
	s.state = driving.StatePublished
	s.results = results
	publish := s.publish
	s.mu.Unlock()

	if publish != nil {
		publish(results)
	}
}
