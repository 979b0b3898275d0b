package filter

import (
	"fmt"

	"github.com/gernest/sift/compare"
	"google.golang.org/protobuf/encoding/protowire"
)

// CompareConfig pairs a comparison operator with a comparator. Comparison
// filters hold one and share its rule: the condition holds when the operator
// accepts the comparator's ordering of the cell bytes, and matching cells
// are the ones those filters exclude.
type CompareConfig struct {
	Op  Op
	Cmp compare.Comparator
}

// NewCompareConfig validates the pair up front.
func NewCompareConfig(op Op, cmp compare.Comparator) (CompareConfig, error) {
	if !op.Valid() {
		return CompareConfig{}, fmt.Errorf("%w: unknown comparison operator %d", ErrInvalidArgument, op)
	}
	if cmp == nil {
		return CompareConfig{}, fmt.Errorf("%w: nil comparator", ErrInvalidArgument)
	}
	return CompareConfig{Op: op, Cmp: cmp}, nil
}

// Matches reports whether the configured condition holds for v.
func (c CompareConfig) Matches(v []byte) bool {
	return c.Op.Holds(c.Cmp.Compare(v))
}

func (c CompareConfig) equal(o CompareConfig) bool {
	return c.Op == o.Op && compare.Equal(c.Cmp, o.Cmp)
}

func (c CompareConfig) marshal() []byte {
	b := protowire.AppendTag(nil, 1, protowire.BytesType)
	b = protowire.AppendString(b, c.Op.String())
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, compare.Marshal(c.Cmp))
	return b
}

func unmarshalCompareConfig(payload []byte) (CompareConfig, error) {
	var opName string
	var cmpBytes []byte
	var sawCmp bool
	r := fieldReader{data: payload}
	for {
		num, typ, ok := r.next()
		if !ok {
			break
		}
		switch {
		case num == 1 && typ == protowire.BytesType:
			opName = string(r.bytes())
		case num == 2 && typ == protowire.BytesType:
			cmpBytes = r.bytes()
			sawCmp = true
		default:
			r.skip(num, typ)
		}
	}
	if r.err != nil {
		return CompareConfig{}, r.err
	}
	if !sawCmp {
		return CompareConfig{}, fmt.Errorf("missing comparator")
	}
	op, err := ParseOp(opName)
	if err != nil {
		return CompareConfig{}, err
	}
	cmp, err := compare.Unmarshal(cmpBytes)
	if err != nil {
		return CompareConfig{}, err
	}
	return CompareConfig{Op: op, Cmp: cmp}, nil
}

// ExtractCompareArgs is the shared argument rule for comparison filters:
// exactly an operator and a comparator of the form kind:operand.
func ExtractCompareArgs(args [][]byte) (CompareConfig, error) {
	if len(args) != 2 {
		return CompareConfig{}, fmt.Errorf("%w: comparison filters take 2 arguments, got %d", ErrInvalidArgument, len(args))
	}
	op, err := ParseOp(string(args[0]))
	if err != nil {
		return CompareConfig{}, err
	}
	cmp, err := compare.Parse(args[1])
	if err != nil {
		return CompareConfig{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return CompareConfig{Op: op, Cmp: cmp}, nil
}
