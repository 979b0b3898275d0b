package filter

import "github.com/gernest/sift/cell"

// FirstKeyOnly includes just the first cell of every row and steers the
// scan straight to the next row afterwards. Existence checks and row key
// listings use it to avoid touching the rest of the row.
type FirstKeyOnly struct {
	Base
	found bool
}

func NewFirstKeyOnly() *FirstKeyOnly { return &FirstKeyOnly{} }

func (f *FirstKeyOnly) Kind() Kind { return KindFirstKeyOnly }

func (f *FirstKeyOnly) FilterCell(cell.Cell) ReturnCode {
	if f.found {
		return NextRow
	}
	f.found = true
	return Include
}

func (f *FirstKeyOnly) Reset() { f.found = false }

func (f *FirstKeyOnly) MarshalBinary() ([]byte, error) {
	return marshalEnvelope(KindFirstKeyOnly, nil), nil
}

func (f *FirstKeyOnly) String() string { return "firstkeyonly" }

func parseFirstKeyOnly([]byte) (Filter, error) {
	return NewFirstKeyOnly(), nil
}

func firstKeyOnlyFromArgs(args [][]byte) (Filter, error) {
	if err := arity("firstkeyonly", args, 0); err != nil {
		return nil, err
	}
	return NewFirstKeyOnly(), nil
}
