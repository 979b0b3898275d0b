package filter

import (
	"fmt"

	"github.com/gernest/sift/cell"
	"github.com/gernest/sift/compare"
)

// Family excludes cells whose family satisfies the comparison.
type Family struct {
	Base
	cfg CompareConfig
}

func NewFamily(op Op, cmp compare.Comparator) (*Family, error) {
	cfg, err := NewCompareConfig(op, cmp)
	if err != nil {
		return nil, err
	}
	return &Family{cfg: cfg}, nil
}

func (f *Family) Kind() Kind { return KindFamily }

func (f *Family) FilterCell(c cell.Cell) ReturnCode {
	if f.cfg.Matches(c.Family) {
		return Skip
	}
	return Include
}

func (f *Family) MarshalBinary() ([]byte, error) {
	return marshalEnvelope(KindFamily, f.cfg.marshal()), nil
}

func (f *Family) String() string {
	return fmt.Sprintf("family %s %s", f.cfg.Op, f.cfg.Cmp.Name())
}

func parseFamily(payload []byte) (Filter, error) {
	cfg, err := unmarshalCompareConfig(payload)
	if err != nil {
		return nil, err
	}
	return &Family{cfg: cfg}, nil
}

func familyFromArgs(args [][]byte) (Filter, error) {
	cfg, err := ExtractCompareArgs(args)
	if err != nil {
		return nil, err
	}
	return &Family{cfg: cfg}, nil
}
