package filter

import (
	"fmt"
	"math"

	"github.com/gernest/sift/cell"
	"google.golang.org/protobuf/encoding/protowire"
)

// Counting caps how many cells a single row lookup returns. Every cell past
// the limit is skipped, and the filter reports exhaustion from the first
// excess cell on. The count spans rows, so multi row scans must reset
// between rows; the intended use is point lookups.
type Counting struct {
	Base
	limit int
	count int
}

// NewCounting builds the filter. The limit must be non negative; zero is
// legal and skips everything immediately.
func NewCounting(limit int) (*Counting, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: counting limit %d is negative", ErrInvalidArgument, limit)
	}
	return &Counting{limit: limit}, nil
}

func (f *Counting) Kind() Kind { return KindCounting }

// Limit returns the configured cap.
func (f *Counting) Limit() int { return f.limit }

func (f *Counting) FilterCell(cell.Cell) ReturnCode {
	f.count++
	if f.FilterAllRemaining() {
		return Skip
	}
	return Include
}

func (f *Counting) FilterAllRemaining() bool { return f.count > f.limit }

func (f *Counting) Reset() { f.count = 0 }

func (f *Counting) MarshalBinary() ([]byte, error) {
	payload := protowire.AppendTag(nil, 1, protowire.VarintType)
	payload = protowire.AppendVarint(payload, uint64(f.limit))
	return marshalEnvelope(KindCounting, payload), nil
}

func (f *Counting) String() string { return fmt.Sprintf("counting %d", f.limit) }

func parseCounting(payload []byte) (Filter, error) {
	limit, err := oneVarintField(payload)
	if err != nil {
		return nil, err
	}
	if limit > math.MaxInt {
		return nil, fmt.Errorf("limit %d out of range", limit)
	}
	return NewCounting(int(limit))
}

func countingFromArgs(args [][]byte) (Filter, error) {
	if err := arity("counting", args, 1); err != nil {
		return nil, err
	}
	limit, err := intArg(args[0])
	if err != nil {
		return nil, err
	}
	return NewCounting(limit)
}
