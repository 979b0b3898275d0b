package filter

import (
	"fmt"

	"github.com/gernest/sift/cell"
	"github.com/gernest/sift/compare"
)

// Qualifier excludes cells whose qualifier satisfies the comparison.
type Qualifier struct {
	Base
	cfg CompareConfig
}

func NewQualifier(op Op, cmp compare.Comparator) (*Qualifier, error) {
	cfg, err := NewCompareConfig(op, cmp)
	if err != nil {
		return nil, err
	}
	return &Qualifier{cfg: cfg}, nil
}

func (f *Qualifier) Kind() Kind { return KindQualifier }

func (f *Qualifier) FilterCell(c cell.Cell) ReturnCode {
	if f.cfg.Matches(c.Qualifier) {
		return Skip
	}
	return Include
}

func (f *Qualifier) MarshalBinary() ([]byte, error) {
	return marshalEnvelope(KindQualifier, f.cfg.marshal()), nil
}

func (f *Qualifier) String() string {
	return fmt.Sprintf("qualifier %s %s", f.cfg.Op, f.cfg.Cmp.Name())
}

func parseQualifier(payload []byte) (Filter, error) {
	cfg, err := unmarshalCompareConfig(payload)
	if err != nil {
		return nil, err
	}
	return &Qualifier{cfg: cfg}, nil
}

func qualifierFromArgs(args [][]byte) (Filter, error) {
	cfg, err := ExtractCompareArgs(args)
	if err != nil {
		return nil, err
	}
	return &Qualifier{cfg: cfg}, nil
}
