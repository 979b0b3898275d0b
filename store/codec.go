package store

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/gernest/sift/cell"
)

// Cell keys concatenate the row, family and qualifier as escaped segments
// followed by the bitwise complement of the version, so lexicographic key
// order is exactly scan order: row, family, qualifier ascending, newest
// version first.
//
// Escaping: a 0x00 content byte becomes 0x00 0xFF and every segment ends
// with the terminator 0x00 0x01. The terminator sorts below any content,
// which keeps a segment ordered before its extensions.

const (
	escByte  = 0x00
	escFill  = 0xFF
	termByte = 0x01
)

var errCorruptKey = errors.New("store: corrupt cell key")

func appendEscaped(dst, seg []byte) []byte {
	for _, b := range seg {
		if b == escByte {
			dst = append(dst, escByte, escFill)
			continue
		}
		dst = append(dst, b)
	}
	return append(dst, escByte, termByte)
}

func consumeSegment(b []byte) (seg, rest []byte, err error) {
	for i := 0; i < len(b); i++ {
		if b[i] != escByte {
			seg = append(seg, b[i])
			continue
		}
		if i+1 >= len(b) {
			return nil, nil, errCorruptKey
		}
		switch b[i+1] {
		case escFill:
			seg = append(seg, escByte)
			i++
		case termByte:
			return seg, b[i+2:], nil
		default:
			return nil, nil, errCorruptKey
		}
	}
	return nil, nil, errCorruptKey
}

// EncodeKey builds the storage key for c. The value bytes are carried
// separately.
func EncodeKey(c cell.Cell) []byte {
	b := appendEscaped(nil, c.Row)
	b = appendEscaped(b, c.Family)
	b = appendEscaped(b, c.Qualifier)
	return binary.BigEndian.AppendUint64(b, ^c.Ts)
}

// DecodeKey inverts EncodeKey.
func DecodeKey(key []byte) (cell.Cell, error) {
	var c cell.Cell
	var err error
	if c.Row, key, err = consumeSegment(key); err != nil {
		return cell.Cell{}, err
	}
	if c.Family, key, err = consumeSegment(key); err != nil {
		return cell.Cell{}, err
	}
	if c.Qualifier, key, err = consumeSegment(key); err != nil {
		return cell.Cell{}, err
	}
	if len(key) != 8 {
		return cell.Cell{}, errCorruptKey
	}
	c.Ts = ^binary.BigEndian.Uint64(key)
	return c, nil
}

// RowPrefix returns the encoded prefix shared by every cell of row.
func RowPrefix(row []byte) []byte {
	return appendEscaped(nil, row)
}

// ColumnPrefix returns the encoded prefix shared by every version of a
// column.
func ColumnPrefix(row, family, qualifier []byte) []byte {
	b := appendEscaped(nil, row)
	b = appendEscaped(b, family)
	return appendEscaped(b, qualifier)
}

// PrefixSuccessor returns the smallest key sorting after every key that
// starts with prefix, or nil when there is none.
func PrefixSuccessor(prefix []byte) []byte {
	for i := len(prefix) - 1; i >= 0; i-- {
		if prefix[i] != 0xFF {
			out := bytes.Clone(prefix[:i+1])
			out[i]++
			return out
		}
	}
	return nil
}
