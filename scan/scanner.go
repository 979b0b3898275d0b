// Package scan walks the cell store in key order and drives the filter
// contract over it: reset per row, exhaustion checks before every cell,
// seek hints, row vetoes and cell transforms. Get and MultiGet are point
// lookups built on the same loop.
package scan

import (
	"bytes"
	"context"
	"runtime"
	"time"

	"github.com/gernest/sift/cell"
	"github.com/gernest/sift/filter"
	"github.com/gernest/sift/store"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Request bounds one scan. Start is inclusive and Stop exclusive; nil
// leaves that side open. Filter may be nil. Filters carry scan state, so
// give every Scan its own instance.
type Request struct {
	Start  []byte
	Stop   []byte
	Filter filter.Filter
}

// Result holds one row's surviving cells in column order.
type Result struct {
	Row   []byte
	Cells []cell.Cell
}

type Scanner struct {
	store   store.Backend
	log     log.Logger
	metrics *Metrics
	cache   *Cache
}

type Option func(*Scanner)

func WithLogger(l log.Logger) Option { return func(s *Scanner) { s.log = l } }

func WithMetrics(m *Metrics) Option { return func(s *Scanner) { s.metrics = m } }

func WithCache(c *Cache) Option { return func(s *Scanner) { s.cache = c } }

func New(b store.Backend, opts ...Option) *Scanner {
	s := &Scanner{store: b, log: log.NewNopLogger()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Scan walks [Start, Stop) and returns the rows the filter lets through.
func (s *Scanner) Scan(ctx context.Context, req Request) ([]Result, error) {
	begin := time.Now()
	key, cacheable := s.cacheKeyFor(req)
	if cacheable {
		if res, ok := s.cache.get(key); ok {
			s.metrics.hit()
			return res, nil
		}
		s.metrics.miss()
	}
	var out []Result
	err := s.store.View(func(cur store.Cursor) error {
		var err error
		out, err = s.run(ctx, cur, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	if cacheable {
		s.cache.put(key, out)
	}
	took := time.Since(begin)
	s.metrics.scanDone(len(out), took)
	level.Debug(s.log).Log("msg", "scan", "rows", len(out), "took", took)
	return out, nil
}

// cacheKeyFor reads the generation before Scan opens its snapshot, so a
// racing write can only file fresh data under an old key, never old data
// under a fresh key.
func (s *Scanner) cacheKeyFor(req Request) (uint64, bool) {
	if s.cache == nil {
		return 0, false
	}
	var cfg []byte
	if req.Filter != nil {
		if req.Filter.FilterAllRemaining() {
			// Already exhausted; its result would alias a fresh filter's.
			return 0, false
		}
		b, err := req.Filter.MarshalBinary()
		if err != nil {
			return 0, false
		}
		cfg = b
	}
	return cacheKey(s.store.Gen(), req, cfg), true
}

func (s *Scanner) run(ctx context.Context, cur store.Cursor, req Request) ([]Result, error) {
	f := req.Filter
	var out []Result
	rows := 0
	c, ok := seekStart(cur, req.Start)
	for ok {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(req.Stop) > 0 && bytes.Compare(c.Row, req.Stop) >= 0 {
			break
		}
		if f != nil {
			// Exhaustion outranks Reset: filters like prefix or page flag
			// the whole scan done and a reset must not revive them.
			if f.FilterAllRemaining() {
				break
			}
			if rows > 0 {
				f.Reset()
			}
		}
		rows++
		row := c.Row
		if f != nil && f.FilterRowKey(row) {
			c, ok = seekPastRow(cur, row)
			continue
		}
		var cells []cell.Cell
		stopped := false
		for ok && bytes.Equal(c.Row, row) {
			s.metrics.cell()
			if f == nil {
				cells = append(cells, c)
				c, ok = cur.Next()
				continue
			}
			if f.FilterAllRemaining() {
				stopped = true
				break
			}
			code := f.FilterCell(c)
			s.metrics.decision(code)
			switch code {
			case filter.Include:
				cells = append(cells, c)
				c, ok = cur.Next()
			case filter.IncludeAndNextColumn:
				cells = append(cells, c)
				c, ok = seekPastColumn(cur, c)
			case filter.Skip:
				c, ok = cur.Next()
			case filter.NextColumn:
				c, ok = seekPastColumn(cur, c)
			case filter.NextRow:
				c, ok = seekPastRow(cur, row)
			case filter.SeekUsingHint:
				c, ok = seekToHint(cur, f, c)
			default:
				return nil, errors.Errorf("unhandled return code %v", code)
			}
		}
		if f != nil && f.FilterRow() {
			cells = nil
		}
		if f != nil && len(cells) > 0 {
			if t, ok := f.(filter.Transformer); ok {
				for i := range cells {
					cells[i] = t.TransformCell(cells[i])
				}
			}
		}
		if len(cells) > 0 {
			out = append(out, Result{Row: row, Cells: cells})
		}
		if stopped {
			break
		}
	}
	return out, nil
}

func seekStart(cur store.Cursor, start []byte) (cell.Cell, bool) {
	if len(start) == 0 {
		return cur.First()
	}
	return cur.Seek(store.RowPrefix(start))
}

// seekPastRow jumps over the remaining cells of row.
func seekPastRow(cur store.Cursor, row []byte) (cell.Cell, bool) {
	p := store.PrefixSuccessor(store.RowPrefix(row))
	if p == nil {
		return cell.Cell{}, false
	}
	return cur.Seek(p)
}

// seekPastColumn jumps over the remaining versions of c's column.
func seekPastColumn(cur store.Cursor, c cell.Cell) (cell.Cell, bool) {
	p := store.PrefixSuccessor(store.ColumnPrefix(c.Row, c.Family, c.Qualifier))
	if p == nil {
		return cell.Cell{}, false
	}
	return cur.Seek(p)
}

// seekToHint asks the filter where to jump. Hints that do not move the
// cursor forward degrade to a plain step so a bad hint cannot loop.
func seekToHint(cur store.Cursor, f filter.Filter, at cell.Cell) (cell.Cell, bool) {
	h, ok := f.(filter.SeekHinter)
	if !ok {
		return cur.Next()
	}
	hint := h.NextCellHint(at)
	if cell.Compare(hint, at) <= 0 {
		return cur.Next()
	}
	return cur.Seek(store.EncodeKey(hint))
}

// Get reads one row through the same loop as Scan. The single row never
// gets a reset, which is what point lookup counting relies on.
func (s *Scanner) Get(ctx context.Context, row []byte, f filter.Filter) (Result, error) {
	stop := append(bytes.Clone(row), 0)
	res, err := s.Scan(ctx, Request{Start: row, Stop: stop, Filter: f})
	if err != nil {
		return Result{}, err
	}
	if len(res) == 0 {
		return Result{Row: bytes.Clone(row)}, nil
	}
	return res[0], nil
}

// MultiGet runs one Get per row, bounded by GOMAXPROCS workers. newFilter
// mints a fresh filter for each row; nil means unfiltered. Results keep
// the order of rows.
func (s *Scanner) MultiGet(ctx context.Context, rows [][]byte, newFilter func() (filter.Filter, error)) ([]Result, error) {
	out := make([]Result, len(rows))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, row := range rows {
		g.Go(func() error {
			var f filter.Filter
			if newFilter != nil {
				var err error
				f, err = newFilter()
				if err != nil {
					return err
				}
			}
			res, err := s.Get(ctx, row, f)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
