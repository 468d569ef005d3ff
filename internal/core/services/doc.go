// Package services implements the driving port interfaces.
// Services contain the core search pipeline - fuzzy matching, field
// scanning, deduplication, ranking - plus index construction and the
// debounced query session, and orchestrate calls to driven ports.
package services
