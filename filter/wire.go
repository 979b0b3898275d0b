package filter

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// The binary form is a two field envelope: the kind as a varint in field 1
// and the kind's own payload as bytes in field 2. Payload layouts live next
// to each filter kind.

func marshalEnvelope(k Kind, payload []byte) []byte {
	b := protowire.AppendTag(nil, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(k))
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, payload)
	return b
}

// Unmarshal rebuilds a filter from MarshalBinary output. The result is
// always active, whatever state the source filter was in when encoded.
// Failures are always a *DeserializationError.
func Unmarshal(data []byte) (Filter, error) {
	var kind uint64
	var payload []byte
	var sawKind bool
	r := fieldReader{data: data}
	for {
		num, typ, ok := r.next()
		if !ok {
			break
		}
		switch {
		case num == 1 && typ == protowire.VarintType:
			kind = r.varint()
			sawKind = true
		case num == 2 && typ == protowire.BytesType:
			payload = r.bytes()
		default:
			r.skip(num, typ)
		}
	}
	if r.err != nil {
		return nil, &DeserializationError{Err: r.err}
	}
	if !sawKind {
		return nil, &DeserializationError{Err: fmt.Errorf("missing filter kind")}
	}
	v, ok := variants[Kind(kind)]
	if !ok {
		return nil, &DeserializationError{Err: fmt.Errorf("unknown filter kind %d", kind)}
	}
	f, err := v.parse(payload)
	if err != nil {
		return nil, &DeserializationError{Kind: v.name, Err: err}
	}
	return f, nil
}

func appendBytesField(dst []byte, num protowire.Number, v []byte) []byte {
	dst = protowire.AppendTag(dst, num, protowire.BytesType)
	return protowire.AppendBytes(dst, v)
}

// oneBytesField reads a payload holding a single bytes field 1.
func oneBytesField(payload []byte) ([]byte, error) {
	var out []byte
	var saw bool
	r := fieldReader{data: payload}
	for {
		num, typ, ok := r.next()
		if !ok {
			break
		}
		if num == 1 && typ == protowire.BytesType {
			out = r.bytes()
			saw = true
			continue
		}
		r.skip(num, typ)
	}
	if r.err != nil {
		return nil, r.err
	}
	if !saw {
		return nil, fmt.Errorf("missing field")
	}
	return out, nil
}

// oneVarintField reads a payload holding a single varint field 1.
func oneVarintField(payload []byte) (uint64, error) {
	var out uint64
	var saw bool
	r := fieldReader{data: payload}
	for {
		num, typ, ok := r.next()
		if !ok {
			break
		}
		if num == 1 && typ == protowire.VarintType {
			out = r.varint()
			saw = true
			continue
		}
		r.skip(num, typ)
	}
	if r.err != nil {
		return 0, r.err
	}
	if !saw {
		return 0, fmt.Errorf("missing field")
	}
	return out, nil
}

// fieldReader walks protowire fields, latching the first decode error.
type fieldReader struct {
	data []byte
	err  error
}

func (r *fieldReader) next() (protowire.Number, protowire.Type, bool) {
	if r.err != nil || len(r.data) == 0 {
		return 0, 0, false
	}
	num, typ, n := protowire.ConsumeTag(r.data)
	if n < 0 {
		r.err = protowire.ParseError(n)
		return 0, 0, false
	}
	r.data = r.data[n:]
	return num, typ, true
}

func (r *fieldReader) varint() uint64 {
	v, n := protowire.ConsumeVarint(r.data)
	if n < 0 {
		r.err = protowire.ParseError(n)
		return 0
	}
	r.data = r.data[n:]
	return v
}

func (r *fieldReader) fixed32() uint32 {
	v, n := protowire.ConsumeFixed32(r.data)
	if n < 0 {
		r.err = protowire.ParseError(n)
		return 0
	}
	r.data = r.data[n:]
	return v
}

func (r *fieldReader) bytes() []byte {
	v, n := protowire.ConsumeBytes(r.data)
	if n < 0 {
		r.err = protowire.ParseError(n)
		return nil
	}
	r.data = r.data[n:]
	return v
}

func (r *fieldReader) skip(num protowire.Number, typ protowire.Type) {
	n := protowire.ConsumeFieldValue(num, typ, r.data)
	if n < 0 {
		r.err = protowire.ParseError(n)
		return
	}
	r.data = r.data[n:]
}
