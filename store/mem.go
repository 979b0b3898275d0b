package store

import (
	"bytes"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/benbjohnson/immutable"
	"github.com/gernest/sift/cell"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Mem is the in memory backend. Writes build a new immutable sorted map and
// swap it under a mutex, so every View iterates a consistent snapshot
// without holding any lock.
type Mem struct {
	mu  sync.Mutex
	m   *immutable.SortedMap[string, []byte]
	gen atomic.Uint64
	log log.Logger
}

func NewMem(opts ...Option) *Mem {
	c := newConfig(opts)
	return &Mem{
		m:   immutable.NewSortedMap[string, []byte](nil),
		log: c.log,
	}
}

func (s *Mem) Put(cells ...cell.Cell) error {
	if len(cells) == 0 {
		return nil
	}
	s.mu.Lock()
	m := s.m
	for _, c := range cells {
		m = m.Set(string(EncodeKey(c)), bytes.Clone(c.Value))
	}
	s.m = m
	s.mu.Unlock()
	s.gen.Add(1)
	level.Debug(s.log).Log("msg", "put cells", "cells", len(cells), "gen", s.Gen())
	return nil
}

func (s *Mem) DeleteRow(row []byte) error {
	prefix := string(RowPrefix(row))
	s.mu.Lock()
	m := s.m
	itr := m.Iterator()
	itr.Seek(prefix)
	for !itr.Done() {
		k, _, _ := itr.Next()
		if !strings.HasPrefix(k, prefix) {
			break
		}
		m = m.Delete(k)
	}
	s.m = m
	s.mu.Unlock()
	s.gen.Add(1)
	return nil
}

func (s *Mem) View(f func(Cursor) error) error {
	s.mu.Lock()
	m := s.m
	s.mu.Unlock()
	return f(&memCursor{itr: m.Iterator()})
}

func (s *Mem) Gen() uint64 { return s.gen.Load() }

func (s *Mem) Close() error { return nil }

type memCursor struct {
	itr *immutable.SortedMapIterator[string, []byte]
}

func (c *memCursor) First() (cell.Cell, bool) {
	c.itr.First()
	return c.step()
}

func (c *memCursor) Next() (cell.Cell, bool) {
	return c.step()
}

func (c *memCursor) Seek(key []byte) (cell.Cell, bool) {
	c.itr.Seek(string(key))
	return c.step()
}

func (c *memCursor) step() (cell.Cell, bool) {
	if c.itr.Done() {
		return cell.Cell{}, false
	}
	k, v, _ := c.itr.Next()
	cl, err := DecodeKey([]byte(k))
	if err != nil {
		return cell.Cell{}, false
	}
	cl.Value = bytes.Clone(v)
	return cl, true
}
