package filter

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Page caps how many rows a scan returns. Cells always pass; the row count
// advances in FilterRow, rows past the page size are dropped, and the filter
// reports exhaustion once the page is full. The budget spans the whole scan,
// so Reset leaves it alone.
type Page struct {
	Base
	size int
	rows int
}

func NewPage(size int) (*Page, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: page size %d is negative", ErrInvalidArgument, size)
	}
	return &Page{size: size}, nil
}

func (f *Page) Kind() Kind { return KindPage }

func (f *Page) FilterAllRemaining() bool { return f.rows >= f.size }

func (f *Page) FilterRow() bool {
	f.rows++
	return f.rows > f.size
}

func (f *Page) MarshalBinary() ([]byte, error) {
	payload := protowire.AppendTag(nil, 1, protowire.VarintType)
	payload = protowire.AppendVarint(payload, uint64(f.size))
	return marshalEnvelope(KindPage, payload), nil
}

func (f *Page) String() string { return fmt.Sprintf("page %d", f.size) }

func parsePage(payload []byte) (Filter, error) {
	size, err := oneVarintField(payload)
	if err != nil {
		return nil, err
	}
	if size > math.MaxInt {
		return nil, fmt.Errorf("page size %d out of range", size)
	}
	return NewPage(int(size))
}

func pageFromArgs(args [][]byte) (Filter, error) {
	if err := arity("page", args, 1); err != nil {
		return nil, err
	}
	size, err := intArg(args[0])
	if err != nil {
		return nil, err
	}
	return NewPage(size)
}
