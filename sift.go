// Package sift is a filtered cell store. Cells are keyed by row, family,
// qualifier and timestamp, kept in scan order, and read back through
// server side filters: a filter sees every candidate cell and decides per
// cell whether it is included, skipped or whether the scan can jump ahead.
//
// Filters are built directly (filter.NewCounting, filter.NewValue, ...)
// or from textual argument lists (filter.FromArguments), and travel as
// self describing envelopes (filter.Unmarshal) so a stored or shipped
// filter reconstructs with the same configuration.
package sift

import (
	"context"

	"github.com/gernest/sift/cell"
	"github.com/gernest/sift/filter"
	"github.com/gernest/sift/scan"
	"github.com/gernest/sift/store"
	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
)

type config struct {
	log     log.Logger
	reg     prometheus.Registerer
	entries int
}

type Option func(*config)

// WithLogger routes debug logging; the default discards it.
func WithLogger(l log.Logger) Option { return func(c *config) { c.log = l } }

// WithMetrics registers scan metrics on reg.
func WithMetrics(reg prometheus.Registerer) Option { return func(c *config) { c.reg = reg } }

// WithCache keeps up to entries scan results, invalidated by writes.
func WithCache(entries int) Option { return func(c *config) { c.entries = entries } }

func newConfig(opts []Option) *config {
	c := &config{log: log.NewNopLogger()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// DB ties a cell store to a scanner.
type DB struct {
	store   store.Backend
	scanner *scan.Scanner
	log     log.Logger
}

// Open opens or creates a persistent store at path.
func Open(path string, opts ...Option) (*DB, error) {
	c := newConfig(opts)
	b, err := store.OpenBolt(path, store.WithLogger(c.log))
	if err != nil {
		return nil, err
	}
	return newDB(b, c)
}

// OpenMemory opens an in memory store.
func OpenMemory(opts ...Option) (*DB, error) {
	c := newConfig(opts)
	return newDB(store.NewMem(store.WithLogger(c.log)), c)
}

func newDB(b store.Backend, c *config) (*DB, error) {
	sopts := []scan.Option{scan.WithLogger(c.log)}
	if c.reg != nil {
		sopts = append(sopts, scan.WithMetrics(scan.NewMetrics(c.reg)))
	}
	if c.entries > 0 {
		cache, err := scan.NewCache(c.entries)
		if err != nil {
			b.Close()
			return nil, err
		}
		sopts = append(sopts, scan.WithCache(cache))
	}
	return &DB{store: b, scanner: scan.New(b, sopts...), log: c.log}, nil
}

// Put upserts cells, last write per (row, family, qualifier, ts) wins.
func (db *DB) Put(cells ...cell.Cell) error { return db.store.Put(cells...) }

// DeleteRow removes every cell of row.
func (db *DB) DeleteRow(row []byte) error { return db.store.DeleteRow(row) }

// Get reads one row through f; f may be nil. A missing row comes back with
// no cells and no error.
func (db *DB) Get(ctx context.Context, row []byte, f filter.Filter) (scan.Result, error) {
	return db.scanner.Get(ctx, row, f)
}

// Scan walks [req.Start, req.Stop) through req.Filter.
func (db *DB) Scan(ctx context.Context, req scan.Request) ([]scan.Result, error) {
	return db.scanner.Scan(ctx, req)
}

// MultiGet fetches rows concurrently; newFilter mints one filter per row
// and may be nil.
func (db *DB) MultiGet(ctx context.Context, rows [][]byte, newFilter func() (filter.Filter, error)) ([]scan.Result, error) {
	return db.scanner.MultiGet(ctx, rows, newFilter)
}

func (db *DB) Close() error { return db.store.Close() }
