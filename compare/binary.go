package compare

import "bytes"

// Binary orders v lexicographically against the reference.
type Binary struct {
	ref []byte
}

func NewBinary(ref []byte) *Binary {
	return &Binary{ref: bytes.Clone(ref)}
}

func (c *Binary) Name() string { return "binary" }

func (c *Binary) Compare(v []byte) int { return bytes.Compare(v, c.ref) }

func (c *Binary) payload() []byte { return c.ref }

func parseBinary(payload []byte) (Comparator, error) {
	return NewBinary(payload), nil
}

// BinaryPrefix orders only the leading len(ref) bytes of v against the
// reference, so any value extending the reference compares equal to it.
type BinaryPrefix struct {
	ref []byte
}

func NewBinaryPrefix(ref []byte) *BinaryPrefix {
	return &BinaryPrefix{ref: bytes.Clone(ref)}
}

func (c *BinaryPrefix) Name() string { return "binaryprefix" }

func (c *BinaryPrefix) Compare(v []byte) int {
	if len(v) > len(c.ref) {
		v = v[:len(c.ref)]
	}
	return bytes.Compare(v, c.ref)
}

func (c *BinaryPrefix) payload() []byte { return c.ref }

func parseBinaryPrefix(payload []byte) (Comparator, error) {
	return NewBinaryPrefix(payload), nil
}
