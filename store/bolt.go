package store

import (
	"bytes"
	"sync/atomic"

	"github.com/gernest/sift/cell"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
)

var cellsBucket = []byte("cells")

// Bolt is the persistent backend: every cell lives in one bbolt bucket
// under its encoded key, and bbolt's MVCC gives View its snapshot.
type Bolt struct {
	db  *bbolt.DB
	gen atomic.Uint64
	log log.Logger
}

// OpenBolt opens or creates the store at path.
func OpenBolt(path string, opts ...Option) (*Bolt, error) {
	c := newConfig(opts)
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "opening cell store")
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(cellsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "creating cells bucket")
	}
	level.Debug(c.log).Log("msg", "opened cell store", "path", path)
	return &Bolt{db: db, log: c.log}, nil
}

func (s *Bolt) Put(cells ...cell.Cell) error {
	if len(cells) == 0 {
		return nil
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(cellsBucket)
		for _, c := range cells {
			if err := b.Put(EncodeKey(c), c.Value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "writing cells")
	}
	s.gen.Add(1)
	level.Debug(s.log).Log("msg", "put cells", "cells", len(cells), "gen", s.Gen())
	return nil
}

func (s *Bolt) DeleteRow(row []byte) error {
	prefix := RowPrefix(row)
	err := s.db.Update(func(tx *bbolt.Tx) error {
		c := tx.Bucket(cellsBucket).Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			if err := c.Delete(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "deleting row")
	}
	s.gen.Add(1)
	return nil
}

func (s *Bolt) View(f func(Cursor) error) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		return f(&boltCursor{c: tx.Bucket(cellsBucket).Cursor()})
	})
}

func (s *Bolt) Gen() uint64 { return s.gen.Load() }

func (s *Bolt) Close() error { return s.db.Close() }

type boltCursor struct {
	c *bbolt.Cursor
}

func (c *boltCursor) First() (cell.Cell, bool) {
	return boltCell(c.c.First())
}

func (c *boltCursor) Next() (cell.Cell, bool) {
	return boltCell(c.c.Next())
}

func (c *boltCursor) Seek(key []byte) (cell.Cell, bool) {
	return boltCell(c.c.Seek(key))
}

// boltCell copies out of transaction memory; cursor cells outlive the View.
func boltCell(k, v []byte) (cell.Cell, bool) {
	if k == nil {
		return cell.Cell{}, false
	}
	cl, err := DecodeKey(k)
	if err != nil {
		return cell.Cell{}, false
	}
	cl.Value = bytes.Clone(v)
	return cl, true
}
