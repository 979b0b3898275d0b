// Package cell defines the unit of data the read path filters: a single
// versioned value addressed by row, family and qualifier.
package cell

import "bytes"

// Cell is one versioned value. Ts is the version; larger means newer.
type Cell struct {
	Row       []byte
	Family    []byte
	Qualifier []byte
	Ts        uint64
	Value     []byte
}

const maxTs = ^uint64(0)

// Compare orders cells in natural scan order: row, family and qualifier
// ascending, then version descending so the newest value of a column comes
// first.
func Compare(a, b Cell) int {
	if c := bytes.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	if c := bytes.Compare(a.Family, b.Family); c != 0 {
		return c
	}
	if c := bytes.Compare(a.Qualifier, b.Qualifier); c != 0 {
		return c
	}
	switch {
	case a.Ts > b.Ts:
		return -1
	case a.Ts < b.Ts:
		return 1
	}
	return 0
}

// FirstOnRow returns the smallest cell of row in scan order, used as a seek
// target.
func FirstOnRow(row []byte) Cell {
	return Cell{Row: row, Ts: maxTs}
}

// FirstOnColumn returns the smallest cell of a column in scan order, used as
// a seek target for qualifier hints.
func FirstOnColumn(row, family, qualifier []byte) Cell {
	return Cell{Row: row, Family: family, Qualifier: qualifier, Ts: maxTs}
}

// Clone returns a deep copy of c.
func (c Cell) Clone() Cell {
	return Cell{
		Row:       bytes.Clone(c.Row),
		Family:    bytes.Clone(c.Family),
		Qualifier: bytes.Clone(c.Qualifier),
		Ts:        c.Ts,
		Value:     bytes.Clone(c.Value),
	}
}
