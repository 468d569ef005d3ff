// Package memory provides in-memory implementations of driven storage
// ports. Used for tests and for running without a config directory.
package memory
