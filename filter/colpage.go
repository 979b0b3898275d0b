package filter

import (
	"fmt"
	"math"

	"github.com/gernest/sift/cell"
	"google.golang.org/protobuf/encoding/protowire"
)

// ColumnPagination returns a limit sized window of columns per row,
// starting at offset. Every answer moves the scan to the next column, so a
// column counts once no matter how many versions it holds. The count
// restarts every row.
type ColumnPagination struct {
	Base
	limit  int
	offset int
	count  int
}

func NewColumnPagination(limit, offset int) (*ColumnPagination, error) {
	if limit < 0 || offset < 0 {
		return nil, fmt.Errorf("%w: column pagination limit %d offset %d", ErrInvalidArgument, limit, offset)
	}
	return &ColumnPagination{limit: limit, offset: offset}, nil
}

func (f *ColumnPagination) Kind() Kind { return KindColumnPagination }

func (f *ColumnPagination) FilterCell(cell.Cell) ReturnCode {
	if f.count >= f.offset+f.limit {
		return NextRow
	}
	code := IncludeAndNextColumn
	if f.count < f.offset {
		code = NextColumn
	}
	f.count++
	return code
}

func (f *ColumnPagination) Reset() { f.count = 0 }

func (f *ColumnPagination) MarshalBinary() ([]byte, error) {
	payload := protowire.AppendTag(nil, 1, protowire.VarintType)
	payload = protowire.AppendVarint(payload, uint64(f.limit))
	payload = protowire.AppendTag(payload, 2, protowire.VarintType)
	payload = protowire.AppendVarint(payload, uint64(f.offset))
	return marshalEnvelope(KindColumnPagination, payload), nil
}

func (f *ColumnPagination) String() string {
	return fmt.Sprintf("columnpagination %d+%d", f.offset, f.limit)
}

func parseColumnPagination(payload []byte) (Filter, error) {
	var limit, offset uint64
	var sawLimit bool
	r := fieldReader{data: payload}
	for {
		num, typ, ok := r.next()
		if !ok {
			break
		}
		switch {
		case num == 1 && typ == protowire.VarintType:
			limit = r.varint()
			sawLimit = true
		case num == 2 && typ == protowire.VarintType:
			offset = r.varint()
		default:
			r.skip(num, typ)
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	if !sawLimit {
		return nil, fmt.Errorf("missing limit")
	}
	if limit > math.MaxInt || offset > math.MaxInt {
		return nil, fmt.Errorf("limit %d offset %d out of range", limit, offset)
	}
	return NewColumnPagination(int(limit), int(offset))
}

func columnPaginationFromArgs(args [][]byte) (Filter, error) {
	if err := arity("columnpagination", args, 2); err != nil {
		return nil, err
	}
	limit, err := intArg(args[0])
	if err != nil {
		return nil, err
	}
	offset, err := intArg(args[1])
	if err != nil {
		return nil, err
	}
	return NewColumnPagination(limit, offset)
}
