// Package compare holds the comparator side of the filtering protocol. A
// comparator wraps a fixed reference operand and orders cell bytes against
// it; filters only ever see the resulting three way ordering.
package compare

import (
	"bytes"
	"fmt"
	"strconv"

	"google.golang.org/protobuf/encoding/protowire"
)

// Comparator orders cell bytes against its reference operand. Compare
// reports the ordering of v relative to the reference: negative when v sorts
// before it, zero when they match, positive when v sorts after it.
// Comparators are immutable after construction and safe for concurrent use.
type Comparator interface {
	Name() string
	Compare(v []byte) int

	// payload is the comparator's private wire form, opaque to everything
	// outside this package.
	payload() []byte
}

type parseFn func(payload []byte) (Comparator, error)

var registry = map[string]parseFn{
	"binary":       parseBinary,
	"binaryprefix": parseBinaryPrefix,
	"long":         parseLong,
	"substring":    parseSubstring,
	"regexp":       parseRegexp,
	"bit":          parseBit,
	"null":         parseNull,
}

// Marshal encodes c as a name tagged envelope. The payload layout belongs to
// the comparator kind and carries no meaning outside this package.
func Marshal(c Comparator) []byte {
	b := protowire.AppendTag(nil, 1, protowire.BytesType)
	b = protowire.AppendString(b, c.Name())
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, c.payload())
	return b
}

// Unmarshal rebuilds a comparator from Marshal output.
func Unmarshal(data []byte) (Comparator, error) {
	var name string
	var payload []byte
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		data = data[n:]
		if typ != protowire.BytesType {
			return nil, fmt.Errorf("comparator field %d has wire type %d", num, typ)
		}
		v, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		data = data[n:]
		switch num {
		case 1:
			name = string(v)
		case 2:
			payload = v
		}
	}
	parse, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown comparator %q", name)
	}
	return parse(payload)
}

// Equal reports whether two comparators serialize identically, the only
// equality the protocol defines for them.
func Equal(a, b Comparator) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Name() == b.Name() && bytes.Equal(a.payload(), b.payload())
}

// Parse builds a comparator from its textual form kind:operand, the shape
// comparator arguments take in filter argument lists. The bit kind nests its
// operation as bit:op:mask.
func Parse(spec []byte) (Comparator, error) {
	kind, operand, ok := bytes.Cut(spec, []byte{':'})
	if !ok {
		return nil, fmt.Errorf("comparator %q is not of the form kind:operand", spec)
	}
	switch string(kind) {
	case "binary":
		return NewBinary(operand), nil
	case "binaryprefix":
		return NewBinaryPrefix(operand), nil
	case "long":
		n, err := strconv.ParseInt(string(operand), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("long operand %q: %v", operand, err)
		}
		return NewLong(n), nil
	case "substring":
		return NewSubstring(string(operand)), nil
	case "regexp":
		return NewRegexp(string(operand))
	case "bit":
		opName, mask, ok := bytes.Cut(operand, []byte{':'})
		if !ok {
			return nil, fmt.Errorf("bit operand %q is not of the form op:mask", operand)
		}
		op, err := ParseBitOp(string(opName))
		if err != nil {
			return nil, err
		}
		return NewBit(op, mask)
	case "null":
		return NewNull(), nil
	}
	return nil, fmt.Errorf("unknown comparator kind %q", kind)
}
