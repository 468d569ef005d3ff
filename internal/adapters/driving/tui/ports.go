package tui

import (
	"github.com/fennec-labs/gistfind-cli/internal/core/domain"
	"github.com/fennec-labs/gistfind-cli/internal/core/ports/driving"
)

// Ports carries the driving-port dependencies the TUI needs. The TUI
// is a driving adapter: it only talks to the core through these.
type Ports struct {
	// Session is the debounced query session behind the finder.
	Session driving.QuerySession

	// Results receives result lists published by the session.
	Results <-chan []domain.RankedResult
}

// Validate checks that all required ports are present.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSession
	}
	if p.Results == nil {
		return ErrMissingResults
	}
	return nil
}
