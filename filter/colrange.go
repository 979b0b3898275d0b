package filter

import (
	"bytes"
	"fmt"

	"github.com/gernest/sift/cell"
	"google.golang.org/protobuf/encoding/protowire"
)

// ColumnRange keeps cells whose qualifier falls inside a window, with both
// bounds optional and inclusivity configurable. Cells before the window seek
// directly to its start, cells past it move the scan to the next row.
type ColumnRange struct {
	Base
	min, max       []byte
	minInc, maxInc bool
}

func NewColumnRange(min []byte, minInc bool, max []byte, maxInc bool) (*ColumnRange, error) {
	if len(min) > 0 && len(max) > 0 {
		c := bytes.Compare(min, max)
		if c > 0 || (c == 0 && !(minInc && maxInc)) {
			return nil, fmt.Errorf("%w: empty column range %q..%q", ErrInvalidArgument, min, max)
		}
	}
	return &ColumnRange{
		min:    bytes.Clone(min),
		max:    bytes.Clone(max),
		minInc: minInc,
		maxInc: maxInc,
	}, nil
}

func (f *ColumnRange) Kind() Kind { return KindColumnRange }

func (f *ColumnRange) FilterCell(c cell.Cell) ReturnCode {
	if len(f.min) > 0 {
		cmp := bytes.Compare(c.Qualifier, f.min)
		if cmp < 0 {
			return SeekUsingHint
		}
		if cmp == 0 && !f.minInc {
			return Skip
		}
	}
	if len(f.max) == 0 {
		return Include
	}
	cmp := bytes.Compare(c.Qualifier, f.max)
	if cmp < 0 || (cmp == 0 && f.maxInc) {
		return Include
	}
	return NextRow
}

// NextCellHint jumps to the window's start within the current row and
// family.
func (f *ColumnRange) NextCellHint(c cell.Cell) cell.Cell {
	return cell.FirstOnColumn(c.Row, c.Family, f.min)
}

func (f *ColumnRange) MarshalBinary() ([]byte, error) {
	payload := appendBytesField(nil, 1, f.min)
	payload = protowire.AppendTag(payload, 2, protowire.VarintType)
	payload = protowire.AppendVarint(payload, protowire.EncodeBool(f.minInc))
	payload = appendBytesField(payload, 3, f.max)
	payload = protowire.AppendTag(payload, 4, protowire.VarintType)
	payload = protowire.AppendVarint(payload, protowire.EncodeBool(f.maxInc))
	return marshalEnvelope(KindColumnRange, payload), nil
}

func (f *ColumnRange) String() string {
	return fmt.Sprintf("columnrange %q..%q", f.min, f.max)
}

func parseColumnRange(payload []byte) (Filter, error) {
	var min, max []byte
	var minInc, maxInc bool
	r := fieldReader{data: payload}
	for {
		num, typ, ok := r.next()
		if !ok {
			break
		}
		switch {
		case num == 1 && typ == protowire.BytesType:
			min = r.bytes()
		case num == 2 && typ == protowire.VarintType:
			minInc = protowire.DecodeBool(r.varint())
		case num == 3 && typ == protowire.BytesType:
			max = r.bytes()
		case num == 4 && typ == protowire.VarintType:
			maxInc = protowire.DecodeBool(r.varint())
		default:
			r.skip(num, typ)
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	return NewColumnRange(min, minInc, max, maxInc)
}

func columnRangeFromArgs(args [][]byte) (Filter, error) {
	if err := arity("columnrange", args, 4); err != nil {
		return nil, err
	}
	minInc, err := boolArg(args[1])
	if err != nil {
		return nil, err
	}
	maxInc, err := boolArg(args[3])
	if err != nil {
		return nil, err
	}
	return NewColumnRange(args[0], minInc, args[2], maxInc)
}
