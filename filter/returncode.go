package filter

import "fmt"

// ReturnCode is a filter's per cell decision. Include and Skip decide the
// cell itself; the remaining codes steer the scan cursor past columns and
// rows or to an explicit seek hint.
type ReturnCode uint8

const (
	// Include keeps the cell.
	Include ReturnCode = iota
	// IncludeAndNextColumn keeps the cell and moves to the next column,
	// dropping older versions unseen.
	IncludeAndNextColumn
	// Skip drops the cell.
	Skip
	// NextColumn drops the cell and the remaining versions of its column.
	NextColumn
	// NextRow drops the cell and the rest of its row.
	NextRow
	// SeekUsingHint asks the engine for the filter's NextCellHint and jumps
	// there. Filters answering it implement SeekHinter.
	SeekUsingHint
)

func (rc ReturnCode) String() string {
	switch rc {
	case Include:
		return "include"
	case IncludeAndNextColumn:
		return "include_next_col"
	case Skip:
		return "skip"
	case NextColumn:
		return "next_col"
	case NextRow:
		return "next_row"
	case SeekUsingHint:
		return "seek_hint"
	}
	return fmt.Sprintf("code(%d)", uint8(rc))
}
