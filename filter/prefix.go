package filter

import (
	"bytes"
	"fmt"
)

// Prefix keeps only rows whose key starts with the configured prefix. Rows
// arrive in order, so once one sorts past the prefix range the filter
// reports exhaustion and the scan can stop early.
type Prefix struct {
	Base
	prefix []byte
	passed bool
}

func NewPrefix(prefix []byte) (*Prefix, error) {
	if len(prefix) == 0 {
		return nil, fmt.Errorf("%w: empty row prefix", ErrInvalidArgument)
	}
	return &Prefix{prefix: bytes.Clone(prefix)}, nil
}

func (f *Prefix) Kind() Kind { return KindPrefix }

func (f *Prefix) FilterRowKey(row []byte) bool {
	if bytes.HasPrefix(row, f.prefix) {
		return false
	}
	n := min(len(row), len(f.prefix))
	if bytes.Compare(row[:n], f.prefix[:n]) > 0 {
		f.passed = true
	}
	return true
}

// FilterAllRemaining flips once the scan has moved beyond the last possible
// prefixed row. Reset leaves it alone: passing the range is a property of
// the scan, not of a row.
func (f *Prefix) FilterAllRemaining() bool { return f.passed }

func (f *Prefix) MarshalBinary() ([]byte, error) {
	payload := appendBytesField(nil, 1, f.prefix)
	return marshalEnvelope(KindPrefix, payload), nil
}

func (f *Prefix) String() string { return fmt.Sprintf("prefix %q", f.prefix) }

func parsePrefix(payload []byte) (Filter, error) {
	prefix, err := oneBytesField(payload)
	if err != nil {
		return nil, err
	}
	return NewPrefix(prefix)
}

func prefixFromArgs(args [][]byte) (Filter, error) {
	if err := arity("prefix", args, 1); err != nil {
		return nil, err
	}
	return NewPrefix(args[0])
}
