package filter

import (
	"fmt"

	"github.com/gernest/sift/cell"
	"github.com/gernest/sift/compare"
)

// Row excludes whole rows whose key satisfies the comparison. The verdict is
// taken once per row in FilterRowKey; FilterCell steers past the row for
// engines that keep feeding cells anyway.
type Row struct {
	Base
	cfg      CompareConfig
	filtered bool
}

func NewRow(op Op, cmp compare.Comparator) (*Row, error) {
	cfg, err := NewCompareConfig(op, cmp)
	if err != nil {
		return nil, err
	}
	return &Row{cfg: cfg}, nil
}

func (f *Row) Kind() Kind { return KindRow }

func (f *Row) FilterRowKey(row []byte) bool {
	f.filtered = f.cfg.Matches(row)
	return f.filtered
}

func (f *Row) FilterCell(cell.Cell) ReturnCode {
	if f.filtered {
		return NextRow
	}
	return Include
}

func (f *Row) Reset() { f.filtered = false }

func (f *Row) MarshalBinary() ([]byte, error) {
	return marshalEnvelope(KindRow, f.cfg.marshal()), nil
}

func (f *Row) String() string {
	return fmt.Sprintf("row %s %s", f.cfg.Op, f.cfg.Cmp.Name())
}

func parseRow(payload []byte) (Filter, error) {
	cfg, err := unmarshalCompareConfig(payload)
	if err != nil {
		return nil, err
	}
	return &Row{cfg: cfg}, nil
}

func rowFromArgs(args [][]byte) (Filter, error) {
	cfg, err := ExtractCompareArgs(args)
	if err != nil {
		return nil, err
	}
	return &Row{cfg: cfg}, nil
}
