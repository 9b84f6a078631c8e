// Package watcher reports changes to scenario and script files.
//
// A Watcher wraps fsnotify. Files are watched through their directory so
// editors that replace files on save keep being tracked. Rapid changes to
// one path are coalesced into a single event after a quiet period.
package watcher

import (
	"errors"
	"path/filepath"
	"strings"
	"time"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed   = errors.New("watcher is closed")
	ErrAlreadyWatching = errors.New("path is already being watched")
)

// DefaultDelay is the quiet period before an event is delivered.
const DefaultDelay = 100 * time.Millisecond

// Op is the kind of file system change.
type Op uint32

const (
	// OpCreate indicates a file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates a file was written to.
	OpWrite
	// OpRemove indicates a file was removed.
	OpRemove
	// OpRename indicates a file was renamed.
	OpRename
)

// String returns a readable form of the operation set.
func (op Op) String() string {
	var names []string
	for _, o := range []struct {
		op   Op
		name string
	}{{OpCreate, "CREATE"}, {OpWrite, "WRITE"}, {OpRemove, "REMOVE"}, {OpRename, "RENAME"}} {
		if op.Has(o.op) {
			names = append(names, o.name)
		}
	}
	if len(names) == 0 {
		return "UNKNOWN"
	}
	return strings.Join(names, "|")
}

// Has returns true if the operation includes o.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Event is a coalesced change to one path.
type Event struct {
	Path      string
	Op        Op
	Timestamp time.Time
}

// Config holds watcher settings.
type Config struct {
	// Delay is the quiet period used to coalesce events.
	Delay time.Duration
	// Extensions limits events in watched directories to these file
	// extensions. Explicitly watched files always pass.
	Extensions []string
	// BufferSize is the capacity of the event channel.
	BufferSize int
}

// DefaultConfig returns the settings used for scenario files.
func DefaultConfig() Config {
	return Config{
		Delay:      DefaultDelay,
		Extensions: []string{".yaml", ".yml", ".lua"},
		BufferSize: 64,
	}
}

// Option configures a Watcher.
type Option func(*Config)

// WithDelay sets the coalescing delay.
func WithDelay(d time.Duration) Option {
	return func(c *Config) {
		c.Delay = d
	}
}

// WithExtensions sets the file extensions reported for directories.
func WithExtensions(exts ...string) Option {
	return func(c *Config) {
		c.Extensions = exts
	}
}

func (c Config) matches(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range c.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
