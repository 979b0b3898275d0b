package filter

import (
	"fmt"

	"github.com/gernest/sift/cell"
	"github.com/gernest/sift/compare"
)

// Value excludes cells whose value satisfies the configured comparison: a
// match skips the cell, everything else passes. It holds no evaluation
// state, so it never exhausts and Reset has nothing to clear.
type Value struct {
	Base
	cfg CompareConfig
}

func NewValue(op Op, cmp compare.Comparator) (*Value, error) {
	cfg, err := NewCompareConfig(op, cmp)
	if err != nil {
		return nil, err
	}
	return &Value{cfg: cfg}, nil
}

func (f *Value) Kind() Kind { return KindValue }

func (f *Value) FilterCell(c cell.Cell) ReturnCode {
	if f.cfg.Matches(c.Value) {
		return Skip
	}
	return Include
}

func (f *Value) MarshalBinary() ([]byte, error) {
	return marshalEnvelope(KindValue, f.cfg.marshal()), nil
}

func (f *Value) String() string {
	return fmt.Sprintf("value %s %s", f.cfg.Op, f.cfg.Cmp.Name())
}

func parseValue(payload []byte) (Filter, error) {
	cfg, err := unmarshalCompareConfig(payload)
	if err != nil {
		return nil, err
	}
	return &Value{cfg: cfg}, nil
}

func valueFromArgs(args [][]byte) (Filter, error) {
	cfg, err := ExtractCompareArgs(args)
	if err != nil {
		return nil, err
	}
	return &Value{cfg: cfg}, nil
}
