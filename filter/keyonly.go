package filter

import (
	"encoding/binary"
	"fmt"

	"github.com/gernest/sift/cell"
	"google.golang.org/protobuf/encoding/protowire"
)

// KeyOnly includes every cell but strips the value on the way out,
// optionally replacing it with the big endian length of the original so
// callers can still size what they skipped.
type KeyOnly struct {
	Base
	lenAsVal bool
}

func NewKeyOnly(lenAsVal bool) *KeyOnly { return &KeyOnly{lenAsVal: lenAsVal} }

func (f *KeyOnly) Kind() Kind { return KindKeyOnly }

func (f *KeyOnly) TransformCell(c cell.Cell) cell.Cell {
	if f.lenAsVal {
		c.Value = binary.BigEndian.AppendUint32(nil, uint32(len(c.Value)))
	} else {
		c.Value = nil
	}
	return c
}

func (f *KeyOnly) MarshalBinary() ([]byte, error) {
	payload := protowire.AppendTag(nil, 1, protowire.VarintType)
	payload = protowire.AppendVarint(payload, protowire.EncodeBool(f.lenAsVal))
	return marshalEnvelope(KindKeyOnly, payload), nil
}

func (f *KeyOnly) String() string { return fmt.Sprintf("keyonly lenAsVal=%t", f.lenAsVal) }

func parseKeyOnly(payload []byte) (Filter, error) {
	v, err := oneVarintField(payload)
	if err != nil {
		return nil, err
	}
	return NewKeyOnly(protowire.DecodeBool(v)), nil
}

func keyOnlyFromArgs(args [][]byte) (Filter, error) {
	switch len(args) {
	case 0:
		return NewKeyOnly(false), nil
	case 1:
		lenAsVal, err := boolArg(args[0])
		if err != nil {
			return nil, err
		}
		return NewKeyOnly(lenAsVal), nil
	}
	return nil, fmt.Errorf("%w: keyonly takes 0 or 1 arguments, got %d", ErrInvalidArgument, len(args))
}
