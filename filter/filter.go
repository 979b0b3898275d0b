// Package filter implements the per cell filtering protocol of the read
// path: a closed set of filter kinds sharing one evaluation contract, a
// binary form for shipping configurations between processes, and the
// argument list boundary text parsers hand their tokens to.
package filter

import "github.com/gernest/sift/cell"

// Filter is the per request decision object a scan drives. A filter starts
// active, may report exhaustion through FilterAllRemaining, and only Reset
// brings it back. Configuration is immutable for the filter's lifetime; only
// derived counters and flags move during evaluation.
//
// Instances belong to a single request and are not safe for concurrent use.
// Concurrent scans take a fresh instance each.
type Filter interface {
	Kind() Kind

	// FilterRowKey runs once when the scan enters a row. True excludes the
	// whole row.
	FilterRowKey(row []byte) bool

	// FilterCell decides one cell. It never blocks and performs no I/O.
	// Once exhausted the result is advisory; engines stop asking instead.
	FilterCell(c cell.Cell) ReturnCode

	// FilterRow runs after the last cell of a row. True drops the cells the
	// row accumulated.
	FilterRow() bool

	// FilterAllRemaining reports exhaustion. Once true it stays true until
	// Reset, and the scan is over for this filter.
	FilterAllRemaining() bool

	// Reset clears per row state before the next row begins. Configuration
	// is untouched.
	Reset()

	// MarshalBinary encodes the configuration, never runtime state.
	// Unmarshal is the inverse and always yields an active filter.
	MarshalBinary() ([]byte, error)
}

// SeekHinter is implemented by filters that answer SeekUsingHint with the
// cell the scan should jump to. Hints only ever move the scan forward.
type SeekHinter interface {
	NextCellHint(c cell.Cell) cell.Cell
}

// Transformer is implemented by filters that rewrite cells after inclusion,
// such as KeyOnly stripping values.
type Transformer interface {
	TransformCell(c cell.Cell) cell.Cell
}

// Base carries the neutral contract defaults: include every cell, exclude
// nothing, hold no state. Concrete kinds embed it and override what they
// need.
type Base struct{}

func (Base) FilterRowKey([]byte) bool        { return false }
func (Base) FilterCell(cell.Cell) ReturnCode { return Include }
func (Base) FilterRow() bool                 { return false }
func (Base) FilterAllRemaining() bool        { return false }
func (Base) Reset()                          {}
