package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fennec-labs/gistfind-cli/internal/core/domain"
	"github.com/fennec-labs/gistfind-cli/internal/core/ports/driven"
	"github.com/fennec-labs/gistfind-cli/internal/core/ports/driving"
)

// --- Mock implementations ---

type manualTimer struct {
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// manualClock collects scheduled timers so tests control exactly when
// the debounce fires.
type manualClock struct {
	timers []*manualTimer
}

func (c *manualClock) factory(d time.Duration, fn func()) driven.Timer {
	t := &manualTimer{fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// fire runs the i-th scheduled timer unless it was stopped.
func (c *manualClock) fire(i int) {
	t := c.timers[i]
	if !t.stopped {
		t.stopped = true
		t.fn()
	}
}

type recordingSearch struct {
	mu      sync.Mutex
	queries []string
	results []domain.RankedResult
	err     error
}

func (m *recordingSearch) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.RankedResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, query)
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func (m *recordingSearch) recorded() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.queries))
	copy(out, m.queries)
	return out
}

func newTestSession(search driving.SearchService, clock *manualClock) *Session {
	return NewSession(search, SessionConfig{
		Debounce: 300 * time.Millisecond,
		Timers:   clock.factory,
	})
}

// TestSession_DebounceCoalescesKeystrokes verifies a burst of inputs
// produces exactly one scan of the final text.
func TestSession_DebounceCoalescesKeystrokes(t *testing.T) {
	search := &recordingSearch{results: []domain.RankedResult{{Rank: 0}}}
	clock := &manualClock{}
	s := newTestSession(search, clock)
	defer s.Close()

	require.NoError(t, s.SetQuery("r"))
	require.NoError(t, s.SetQuery("re"))
	require.NoError(t, s.SetQuery("rea"))
	require.NoError(t, s.SetQuery("react"))

	require.Len(t, clock.timers, 4)
	assert.True(t, clock.timers[0].stopped)
	assert.True(t, clock.timers[1].stopped)
	assert.True(t, clock.timers[2].stopped)
	assert.False(t, clock.timers[3].stopped)

	clock.fire(3)
	assert.Equal(t, []string{"react"}, search.recorded())
}

// TestSession_StateTransitions verifies the idle, debouncing,
// published cycle around one scan.
func TestSession_StateTransitions(t *testing.T) {
	search := &recordingSearch{}
	clock := &manualClock{}
	s := newTestSession(search, clock)
	defer s.Close()

	assert.Equal(t, driving.StateIdle, s.State())

	require.NoError(t, s.SetQuery("react"))
	assert.Equal(t, driving.StateDebouncing, s.State())

	clock.fire(0)
	assert.Equal(t, driving.StatePublished, s.State())

	require.NoError(t, s.SetQuery("reactx"))
	assert.Equal(t, driving.StateDebouncing, s.State(), "new input leaves published")
}

// TestSession_FailedScanReturnsToIdle verifies an errored scan does not
// report published.
func TestSession_FailedScanReturnsToIdle(t *testing.T) {
	search := &recordingSearch{err: errors.New("supplier down")}
	clock := &manualClock{}
	s := newTestSession(search, clock)
	defer s.Close()

	require.NoError(t, s.SetQuery("react"))
	clock.fire(0)

	assert.Equal(t, driving.StateIdle, s.State())
	assert.Error(t, s.Err())
}

// TestSession_PublishesWholesale verifies each scan replaces the result
// list and notifies the publish callback.
func TestSession_PublishesWholesale(t *testing.T) {
	search := &recordingSearch{results: []domain.RankedResult{
		{Rank: 0, Name: "React Hooks"},
	}}
	clock := &manualClock{}

	var published [][]domain.RankedResult
	s := NewSession(search, SessionConfig{
		Timers: clock.factory,
		OnPublish: func(r []domain.RankedResult) {
			published = append(published, r)
		},
	})
	defer s.Close()

	require.NoError(t, s.SetQuery("react"))
	clock.fire(0)

	require.Len(t, published, 1)
	require.Len(t, s.Results(), 1)
	assert.Equal(t, "React Hooks", s.Results()[0].Name)

	search.mu.Lock()
	search.results = nil
	search.mu.Unlock()

	require.NoError(t, s.SetQuery("vue"))
	clock.fire(1)

	assert.Len(t, published, 2)
	assert.Empty(t, s.Results(), "old results do not linger")
}

// TestSession_CloseStopsPendingTimer verifies no scan runs after Close,
// even if the timer callback is invoked late.
func TestSession_CloseStopsPendingTimer(t *testing.T) {
	search := &recordingSearch{}
	clock := &manualClock{}
	s := newTestSession(search, clock)

	require.NoError(t, s.SetQuery("react"))
	s.Close()

	assert.True(t, clock.timers[0].stopped)

	// Simulate a callback that was already in flight when Stop ran.
	clock.timers[0].fn()
	assert.Empty(t, search.recorded())
}

// TestSession_SetQueryAfterClose verifies closed sessions reject input.
func TestSession_SetQueryAfterClose(t *testing.T) {
	s := newTestSession(&recordingSearch{}, &manualClock{})
	s.Close()

	err := s.SetQuery("react")
	assert.ErrorIs(t, err, domain.ErrSessionClosed)
}

// TestSession_CloseIdempotent verifies double Close is harmless.
func TestSession_CloseIdempotent(t *testing.T) {
	s := newTestSession(&recordingSearch{}, &manualClock{})
	s.Close()
	s.Close()
	assert.Equal(t, driving.StateIdle, s.State())
}

// TestSession_StaleScanDiscarded verifies a fired scan whose text was
// superseded publishes nothing.
func TestSession_StaleScanDiscarded(t *testing.T) {
	search := &recordingSearch{results: []domain.RankedResult{{Name: "stale"}}}
	clock := &manualClock{}
	s := newTestSession(search, clock)
	defer s.Close()

	require.NoError(t, s.SetQuery("rea"))
	require.NoError(t, s.SetQuery("react"))

	// Invoke the first callback directly, as if Stop lost the race.
	clock.timers[0].fn()
	assert.Empty(t, search.recorded(), "superseded generation never scans")

	clock.fire(1)
	assert.Equal(t, []string{"react"}, search.recorded())
}

// TestSession_ScanErrorKeepsResults verifies a failed scan leaves the
// previous list on screen and surfaces the error via Err.
func TestSession_ScanErrorKeepsResults(t *testing.T) {
	search := &recordingSearch{results: []domain.RankedResult{{Name: "kept"}}}
	clock := &manualClock{}
	s := newTestSession(search, clock)
	defer s.Close()

	require.NoError(t, s.SetQuery("react"))
	clock.fire(0)
	require.Len(t, s.Results(), 1)
	require.NoError(t, s.Err())

	search.mu.Lock()
	search.err = errors.New("supplier down")
	search.mu.Unlock()

	require.NoError(t, s.SetQuery("vue"))
	clock.fire(1)

	assert.Len(t, s.Results(), 1)
	assert.Equal(t, "kept", s.Results()[0].Name)
	assert.Error(t, s.Err())
}

// TestSession_StartPublishesBrowseAll verifies Start runs the empty
// query synchronously.
func TestSession_StartPublishesBrowseAll(t *testing.T) {
	search := &recordingSearch{results: []domain.RankedResult{{Name: "a"}, {Name: "b"}}}
	clock := &manualClock{}
	s := newTestSession(search, clock)
	defer s.Close()

	require.NoError(t, s.Start(context.Background()))
	assert.Equal(t, []string{""}, search.recorded())
	assert.Len(t, s.Results(), 2)
}

// TestSession_RefreshBypassesDebounce verifies Refresh scans the
// current query immediately.
func TestSession_RefreshBypassesDebounce(t *testing.T) {
	search := &recordingSearch{}
	clock := &manualClock{}
	s := newTestSession(search, clock)
	defer s.Close()

	require.NoError(t, s.SetQuery("react"))
	require.NoError(t, s.Refresh(context.Background()))

	assert.Equal(t, []string{"react"}, search.recorded())
	assert.True(t, clock.timers[0].stopped, "pending debounce is cancelled")
}

// TestSession_SetFiltersAppliesToNextScan verifies filter changes reach
// the search call.
func TestSession_SetFiltersAppliesToNextScan(t *testing.T) {
	var gotOpts domain.SearchOptions
	search := &optsCapturingSearch{onSearch: func(opts domain.SearchOptions) { gotOpts = opts }}
	clock := &manualClock{}
	s := newTestSession(search, clock)
	defer s.Close()

	s.SetFilters(domain.Filters{Visibility: "public"})
	require.NoError(t, s.SetQuery("react"))
	clock.fire(0)

	assert.Equal(t, "public", gotOpts.Filters.Visibility)
}

type optsCapturingSearch struct {
	onSearch func(domain.SearchOptions)
}

func (m *optsCapturingSearch) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.RankedResult, error) {
	m.onSearch(opts)
	return nil, nil
}
