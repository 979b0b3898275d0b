package compare

import (
	"bytes"
	"fmt"
)

// BitOp selects the bitwise operation a Bit comparator applies.
type BitOp byte

const (
	And BitOp = 1 + iota
	Or
	Xor
)

func (op BitOp) String() string {
	switch op {
	case And:
		return "and"
	case Or:
		return "or"
	case Xor:
		return "xor"
	}
	return fmt.Sprintf("bitop(%d)", byte(op))
}

// ParseBitOp maps the textual operation names to BitOp values.
func ParseBitOp(s string) (BitOp, error) {
	switch s {
	case "and":
		return And, nil
	case "or":
		return Or, nil
	case "xor":
		return Xor, nil
	}
	return 0, fmt.Errorf("unknown bit op %q", s)
}

// Bit combines v with a fixed mask of the same length. Compare reports 0
// when any byte of the combined result is non zero and 1 otherwise,
// including on a length mismatch. Equality operators only.
type Bit struct {
	mask []byte
	op   BitOp
}

func NewBit(op BitOp, mask []byte) (*Bit, error) {
	switch op {
	case And, Or, Xor:
	default:
		return nil, fmt.Errorf("unknown bit op %d", op)
	}
	return &Bit{mask: bytes.Clone(mask), op: op}, nil
}

func (c *Bit) Name() string { return "bit" }

func (c *Bit) Compare(v []byte) int {
	if len(v) != len(c.mask) {
		return 1
	}
	for i := len(v) - 1; i >= 0; i-- {
		var r byte
		switch c.op {
		case And:
			r = v[i] & c.mask[i]
		case Or:
			r = v[i] | c.mask[i]
		case Xor:
			r = v[i] ^ c.mask[i]
		}
		if r != 0 {
			return 0
		}
	}
	return 1
}

func (c *Bit) payload() []byte {
	return append([]byte{byte(c.op)}, c.mask...)
}

func parseBit(payload []byte) (Comparator, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("empty bit payload")
	}
	return NewBit(BitOp(payload[0]), payload[1:])
}
