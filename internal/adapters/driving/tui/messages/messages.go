// Package messages defines Bubbletea message types for the TUI.
// Messages represent events that flow through the Elm architecture.
package messages

import (
	"github.com/fennec-labs/gistfind-cli/internal/core/domain"
)

// ResultsPublished carries a freshly published ranked result list from
// the query session into the view.
type ResultsPublished struct {
	Results []domain.RankedResult
}

// ErrorOccurred carries an error into the view.
type ErrorOccurred struct {
	Err error
}
