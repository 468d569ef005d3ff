// Package file implements the ConfigStore driven port backed by a TOML
// file in the gistfind config directory. The store also implements
// ConfigWatcher so external edits to the file are picked up while a
// session is running.
package file
