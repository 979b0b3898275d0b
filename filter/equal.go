package filter

import (
	"bytes"
	"slices"
)

// Equal reports whether two filters are interchangeable on the wire: same
// kind, same serialized configuration. Runtime state never participates, so
// an exhausted filter still equals its fresh twin.
func Equal(a, b Filter) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *Counting:
		y, ok := b.(*Counting)
		return ok && x.limit == y.limit
	case *Value:
		y, ok := b.(*Value)
		return ok && x.cfg.equal(y.cfg)
	case *Qualifier:
		y, ok := b.(*Qualifier)
		return ok && x.cfg.equal(y.cfg)
	case *Family:
		y, ok := b.(*Family)
		return ok && x.cfg.equal(y.cfg)
	case *Row:
		y, ok := b.(*Row)
		return ok && x.cfg.equal(y.cfg)
	case *Prefix:
		y, ok := b.(*Prefix)
		return ok && bytes.Equal(x.prefix, y.prefix)
	case *InclusiveStop:
		y, ok := b.(*InclusiveStop)
		return ok && bytes.Equal(x.stop, y.stop)
	case *Page:
		y, ok := b.(*Page)
		return ok && x.size == y.size
	case *FirstKeyOnly:
		_, ok := b.(*FirstKeyOnly)
		return ok
	case *KeyOnly:
		y, ok := b.(*KeyOnly)
		return ok && x.lenAsVal == y.lenAsVal
	case *ColumnPagination:
		y, ok := b.(*ColumnPagination)
		return ok && x.limit == y.limit && x.offset == y.offset
	case *ColumnRange:
		y, ok := b.(*ColumnRange)
		return ok && bytes.Equal(x.min, y.min) && bytes.Equal(x.max, y.max) &&
			x.minInc == y.minInc && x.maxInc == y.maxInc
	case *Timestamps:
		y, ok := b.(*Timestamps)
		return ok && slices.Equal(x.vals, y.vals)
	case *RandomRow:
		y, ok := b.(*RandomRow)
		return ok && x.chance == y.chance
	case *Expr:
		y, ok := b.(*Expr)
		return ok && x.src == y.src
	}
	return false
}
