package compare

import (
	"encoding/binary"
	"fmt"
)

// Long orders v as a big endian two's complement int64. Values that are not
// exactly 8 bytes order below every long, which keeps the ordering total.
type Long struct {
	n int64
}

func NewLong(n int64) *Long { return &Long{n: n} }

func (c *Long) Name() string { return "long" }

func (c *Long) Compare(v []byte) int {
	if len(v) != 8 {
		return -1
	}
	x := int64(binary.BigEndian.Uint64(v))
	switch {
	case x < c.n:
		return -1
	case x > c.n:
		return 1
	}
	return 0
}

func (c *Long) payload() []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(c.n))
}

func parseLong(payload []byte) (Comparator, error) {
	if len(payload) != 8 {
		return nil, fmt.Errorf("long payload is %d bytes, want 8", len(payload))
	}
	return NewLong(int64(binary.BigEndian.Uint64(payload))), nil
}
