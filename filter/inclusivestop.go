package filter

import (
	"bytes"
	"fmt"
)

// InclusiveStop keeps rows up to and including the stop row, then reports
// exhaustion. It closes the usual half open scan range from the other side.
type InclusiveStop struct {
	Base
	stop []byte
	done bool
}

func NewInclusiveStop(stop []byte) (*InclusiveStop, error) {
	if len(stop) == 0 {
		return nil, fmt.Errorf("%w: empty stop row", ErrInvalidArgument)
	}
	return &InclusiveStop{stop: bytes.Clone(stop)}, nil
}

func (f *InclusiveStop) Kind() Kind { return KindInclusiveStop }

func (f *InclusiveStop) FilterRowKey(row []byte) bool {
	if bytes.Compare(row, f.stop) > 0 {
		f.done = true
	}
	return f.done
}

// FilterAllRemaining stays set across Reset; the stop row is a scan level
// property.
func (f *InclusiveStop) FilterAllRemaining() bool { return f.done }

func (f *InclusiveStop) MarshalBinary() ([]byte, error) {
	payload := appendBytesField(nil, 1, f.stop)
	return marshalEnvelope(KindInclusiveStop, payload), nil
}

func (f *InclusiveStop) String() string { return fmt.Sprintf("inclusivestop %q", f.stop) }

func parseInclusiveStop(payload []byte) (Filter, error) {
	stop, err := oneBytesField(payload)
	if err != nil {
		return nil, err
	}
	return NewInclusiveStop(stop)
}

func inclusiveStopFromArgs(args [][]byte) (Filter, error) {
	if err := arity("inclusivestop", args, 1); err != nil {
		return nil, err
	}
	return NewInclusiveStop(args[0])
}
