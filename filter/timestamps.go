package filter

import (
	"fmt"
	"slices"

	"github.com/gernest/roaring"
	"github.com/gernest/sift/cell"
	"google.golang.org/protobuf/encoding/protowire"
)

// Timestamps keeps only cells at an exact set of versions. Membership checks
// go through a roaring bitmap; once a cell's version drops below the
// smallest wanted one the rest of the column can be skipped, since versions
// arrive newest first.
type Timestamps struct {
	Base
	set  *roaring.Bitmap
	vals []uint64
}

func NewTimestamps(ts ...uint64) (*Timestamps, error) {
	if len(ts) == 0 {
		return nil, fmt.Errorf("%w: no timestamps", ErrInvalidArgument)
	}
	vals := slices.Clone(ts)
	slices.Sort(vals)
	vals = slices.Compact(vals)
	f := &Timestamps{set: roaring.NewBitmap(), vals: vals}
	for _, t := range vals {
		f.set.DirectAdd(t)
	}
	return f, nil
}

func (f *Timestamps) Kind() Kind { return KindTimestamps }

func (f *Timestamps) FilterCell(c cell.Cell) ReturnCode {
	if f.set.Contains(c.Ts) {
		return Include
	}
	if c.Ts < f.vals[0] {
		return NextColumn
	}
	return Skip
}

func (f *Timestamps) MarshalBinary() ([]byte, error) {
	var payload []byte
	for _, t := range f.vals {
		payload = protowire.AppendTag(payload, 1, protowire.VarintType)
		payload = protowire.AppendVarint(payload, t)
	}
	return marshalEnvelope(KindTimestamps, payload), nil
}

func (f *Timestamps) String() string { return fmt.Sprintf("timestamps %v", f.vals) }

func parseTimestamps(payload []byte) (Filter, error) {
	var ts []uint64
	r := fieldReader{data: payload}
	for {
		num, typ, ok := r.next()
		if !ok {
			break
		}
		if num == 1 && typ == protowire.VarintType {
			ts = append(ts, r.varint())
			continue
		}
		r.skip(num, typ)
	}
	if r.err != nil {
		return nil, r.err
	}
	return NewTimestamps(ts...)
}

func timestampsFromArgs(args [][]byte) (Filter, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: timestamps takes at least 1 argument", ErrInvalidArgument)
	}
	ts := make([]uint64, len(args))
	for i, a := range args {
		n, err := intArg(a)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: negative timestamp %d", ErrInvalidArgument, n)
		}
		ts[i] = uint64(n)
	}
	return NewTimestamps(ts...)
}
