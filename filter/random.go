package filter

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/gernest/sift/cell"
	"google.golang.org/protobuf/encoding/protowire"
)

// RandomRow includes each row with the configured chance, tossing one coin
// per row in FilterRowKey. A chance at or below 0 drops everything, 1 and
// above keeps everything; both degenerate forms stay deterministic for
// callers that want a hard switch.
type RandomRow struct {
	Base
	chance   float32
	filtered bool
}

func NewRandomRow(chance float32) (*RandomRow, error) {
	if math.IsNaN(float64(chance)) {
		return nil, fmt.Errorf("%w: chance is NaN", ErrInvalidArgument)
	}
	return &RandomRow{chance: chance}, nil
}

func (f *RandomRow) Kind() Kind { return KindRandomRow }

func (f *RandomRow) FilterRowKey([]byte) bool {
	switch {
	case f.chance <= 0:
		f.filtered = true
	case f.chance >= 1:
		f.filtered = false
	default:
		f.filtered = rand.Float32() >= f.chance
	}
	return f.filtered
}

func (f *RandomRow) FilterCell(cell.Cell) ReturnCode {
	if f.filtered {
		return NextRow
	}
	return Include
}

func (f *RandomRow) Reset() { f.filtered = false }

func (f *RandomRow) MarshalBinary() ([]byte, error) {
	payload := protowire.AppendTag(nil, 1, protowire.Fixed32Type)
	payload = protowire.AppendFixed32(payload, math.Float32bits(f.chance))
	return marshalEnvelope(KindRandomRow, payload), nil
}

func (f *RandomRow) String() string { return fmt.Sprintf("randomrow %.3f", f.chance) }

func parseRandomRow(payload []byte) (Filter, error) {
	var bits uint32
	var saw bool
	r := fieldReader{data: payload}
	for {
		num, typ, ok := r.next()
		if !ok {
			break
		}
		if num == 1 && typ == protowire.Fixed32Type {
			bits = r.fixed32()
			saw = true
			continue
		}
		r.skip(num, typ)
	}
	if r.err != nil {
		return nil, r.err
	}
	if !saw {
		return nil, fmt.Errorf("missing chance")
	}
	return NewRandomRow(math.Float32frombits(bits))
}

func randomRowFromArgs(args [][]byte) (Filter, error) {
	if err := arity("randomrow", args, 1); err != nil {
		return nil, err
	}
	chance, err := strconv.ParseFloat(string(args[0]), 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a float", ErrInvalidArgument, args[0])
	}
	return NewRandomRow(float32(chance))
}
