// Package store provides the ordered cell substrate scans run over: an
// order preserving key codec and two backends, an immutable in memory map
// and a bbolt file.
package store

import (
	"github.com/gernest/sift/cell"
	"github.com/go-kit/log"
)

// Backend is an ordered cell store. Readers get a stable snapshot for the
// duration of a View; writers advance the generation so caches above can
// tell stale results apart.
type Backend interface {
	// Put upserts cells, last write wins per (row, family, qualifier, ts).
	Put(cells ...cell.Cell) error
	// DeleteRow removes every cell of row.
	DeleteRow(row []byte) error
	// View runs f over a read snapshot.
	View(f func(Cursor) error) error
	// Gen is the write generation. It is process local and monotonic, not
	// persisted.
	Gen() uint64
	Close() error
}

// Cursor walks cells in encoded key order. Returned cells are owned by the
// caller and stay valid after the View ends.
type Cursor interface {
	// First positions at the smallest key.
	First() (cell.Cell, bool)
	// Next advances one cell.
	Next() (cell.Cell, bool)
	// Seek positions at the first key at or after key, as produced by
	// EncodeKey or the prefix helpers.
	Seek(key []byte) (cell.Cell, bool)
}

// Option configures a backend.
type Option func(*config)

type config struct {
	log log.Logger
}

func newConfig(opts []Option) config {
	c := config{log: log.NewNopLogger()}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithLogger routes backend debug logging to l.
func WithLogger(l log.Logger) Option {
	return func(c *config) { c.log = l }
}
