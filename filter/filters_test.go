package filter

import (
	"math"
	"testing"

	"github.com/gernest/sift/cell"
	"github.com/gernest/sift/compare"
	"github.com/stretchr/testify/require"
)

func TestPrefix(t *testing.T) {
	f, err := NewPrefix([]byte("app-"))
	require.NoError(t, err)

	require.False(t, f.FilterRowKey([]byte("app-1")))
	require.False(t, f.FilterAllRemaining())

	// Before the prefix range: excluded but the scan keeps going.
	require.True(t, f.FilterRowKey([]byte("aaa")))
	require.False(t, f.FilterAllRemaining())

	// Past the range: rows are ordered, nothing else can match.
	require.True(t, f.FilterRowKey([]byte("zoo")))
	require.True(t, f.FilterAllRemaining())

	// Exhaustion is a scan property and survives the per row reset.
	f.Reset()
	require.True(t, f.FilterAllRemaining())

	_, err = NewPrefix(nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPrefixShortRow(t *testing.T) {
	f, err := NewPrefix([]byte("app-"))
	require.NoError(t, err)
	require.True(t, f.FilterRowKey([]byte("ap")))
	require.False(t, f.FilterAllRemaining())
	require.True(t, f.FilterRowKey([]byte("b")))
	require.True(t, f.FilterAllRemaining())
}

func TestInclusiveStop(t *testing.T) {
	f, err := NewInclusiveStop([]byte("m"))
	require.NoError(t, err)
	require.False(t, f.FilterRowKey([]byte("a")))
	require.False(t, f.FilterRowKey([]byte("m")))
	require.False(t, f.FilterAllRemaining())
	require.True(t, f.FilterRowKey([]byte("n")))
	require.True(t, f.FilterAllRemaining())
}

func TestPage(t *testing.T) {
	f, err := NewPage(2)
	require.NoError(t, err)

	require.Equal(t, Include, f.FilterCell(tcell("any")))
	require.False(t, f.FilterRow())
	require.False(t, f.FilterAllRemaining())
	require.False(t, f.FilterRow())
	require.True(t, f.FilterAllRemaining())
	require.True(t, f.FilterRow())

	zero, err := NewPage(0)
	require.NoError(t, err)
	require.True(t, zero.FilterAllRemaining())

	_, err = NewPage(-1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFirstKeyOnly(t *testing.T) {
	f := NewFirstKeyOnly()
	require.Equal(t, Include, f.FilterCell(tcell("q1")))
	require.Equal(t, NextRow, f.FilterCell(tcell("q2")))
	f.Reset()
	require.Equal(t, Include, f.FilterCell(tcell("q1")))
}

func TestKeyOnly(t *testing.T) {
	c := vcell("payload")

	strip := NewKeyOnly(false)
	got := strip.TransformCell(c)
	require.Empty(t, got.Value)
	require.Equal(t, c.Qualifier, got.Qualifier)

	sized := NewKeyOnly(true)
	got = sized.TransformCell(c)
	require.Equal(t, []byte{0, 0, 0, 7}, got.Value)

	// The source cell is untouched.
	require.Equal(t, []byte("payload"), c.Value)
}

func TestColumnPagination(t *testing.T) {
	f, err := NewColumnPagination(2, 1)
	require.NoError(t, err)

	require.Equal(t, NextColumn, f.FilterCell(tcell("q1")))
	require.Equal(t, IncludeAndNextColumn, f.FilterCell(tcell("q2")))
	require.Equal(t, IncludeAndNextColumn, f.FilterCell(tcell("q3")))
	require.Equal(t, NextRow, f.FilterCell(tcell("q4")))

	f.Reset()
	require.Equal(t, NextColumn, f.FilterCell(tcell("q1")))

	_, err = NewColumnPagination(-1, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewColumnPagination(1, -1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPageRoundTripLargeSize(t *testing.T) {
	f, err := NewPage(math.MaxInt)
	require.NoError(t, err)
	b, err := f.MarshalBinary()
	require.NoError(t, err)
	got, err := Unmarshal(b)
	require.NoError(t, err)
	require.True(t, Equal(f, got))
}

func TestColumnPaginationRoundTripLargeWindow(t *testing.T) {
	f, err := NewColumnPagination(math.MaxInt, 0)
	require.NoError(t, err)
	b, err := f.MarshalBinary()
	require.NoError(t, err)
	got, err := Unmarshal(b)
	require.NoError(t, err)
	require.True(t, Equal(f, got))
}

func TestColumnRange(t *testing.T) {
	f, err := NewColumnRange([]byte("b"), true, []byte("d"), false)
	require.NoError(t, err)

	require.Equal(t, SeekUsingHint, f.FilterCell(tcell("a")))
	hint := f.NextCellHint(tcell("a"))
	require.Equal(t, []byte("r"), hint.Row)
	require.Equal(t, []byte("b"), hint.Qualifier)

	require.Equal(t, Include, f.FilterCell(tcell("b")))
	require.Equal(t, Include, f.FilterCell(tcell("c")))
	require.Equal(t, NextRow, f.FilterCell(tcell("d")))

	open, err := NewColumnRange(nil, false, nil, false)
	require.NoError(t, err)
	require.Equal(t, Include, open.FilterCell(tcell("anything")))

	exclusiveMin, err := NewColumnRange([]byte("b"), false, []byte("d"), true)
	require.NoError(t, err)
	require.Equal(t, Skip, exclusiveMin.FilterCell(tcell("b")))
	require.Equal(t, Include, exclusiveMin.FilterCell(tcell("d")))

	_, err = NewColumnRange([]byte("z"), true, []byte("a"), true)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewColumnRange([]byte("a"), true, []byte("a"), false)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTimestamps(t *testing.T) {
	f, err := NewTimestamps(5, 9)
	require.NoError(t, err)

	at := func(ts uint64) cell.Cell {
		c := tcell("q")
		c.Ts = ts
		return c
	}
	require.Equal(t, Include, f.FilterCell(at(9)))
	require.Equal(t, Skip, f.FilterCell(at(7)))
	require.Equal(t, Include, f.FilterCell(at(5)))
	require.Equal(t, NextColumn, f.FilterCell(at(3)))

	_, err = NewTimestamps()
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = FromArguments("timestamps", [][]byte{[]byte("-4")})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRandomRow(t *testing.T) {
	never, err := NewRandomRow(0)
	require.NoError(t, err)
	require.True(t, never.FilterRowKey([]byte("r")))
	require.Equal(t, NextRow, never.FilterCell(tcell("q")))

	always, err := NewRandomRow(1)
	require.NoError(t, err)
	require.False(t, always.FilterRowKey([]byte("r")))
	require.Equal(t, Include, always.FilterCell(tcell("q")))

	_, err = NewRandomRow(float32(math.NaN()))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRowFilter(t *testing.T) {
	f, err := NewRow(EQ, compare.NewBinary([]byte("drop")))
	require.NoError(t, err)

	require.True(t, f.FilterRowKey([]byte("drop")))
	require.Equal(t, NextRow, f.FilterCell(tcell("q")))

	f.Reset()
	require.False(t, f.FilterRowKey([]byte("keep")))
	require.Equal(t, Include, f.FilterCell(tcell("q")))
}

func TestQualifierAndFamily(t *testing.T) {
	q, err := NewQualifier(EQ, compare.NewBinary([]byte("secret")))
	require.NoError(t, err)
	require.Equal(t, Skip, q.FilterCell(tcell("secret")))
	require.Equal(t, Include, q.FilterCell(tcell("public")))

	fam, err := NewFamily(NEQ, compare.NewBinary([]byte("f")))
	require.NoError(t, err)
	require.Equal(t, Include, fam.FilterCell(tcell("q")))
	other := tcell("q")
	other.Family = []byte("g")
	require.Equal(t, Skip, fam.FilterCell(other))
}
