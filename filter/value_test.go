package filter

import (
	"testing"

	"github.com/gernest/sift/cell"
	"github.com/gernest/sift/compare"
	"github.com/stretchr/testify/require"
)

func vcell(value string) cell.Cell {
	return cell.Cell{
		Row:       []byte("r"),
		Family:    []byte("f"),
		Qualifier: []byte("q"),
		Ts:        1,
		Value:     []byte(value),
	}
}

func TestValueSkipsMatches(t *testing.T) {
	f, err := NewValue(EQ, compare.NewBinary([]byte("x")))
	require.NoError(t, err)

	require.Equal(t, Skip, f.FilterCell(vcell("x")))
	require.Equal(t, Include, f.FilterCell(vcell("y")))
	require.False(t, f.FilterAllRemaining())

	// Stateless: reset changes nothing, the verdict stays per cell.
	f.Reset()
	require.Equal(t, Skip, f.FilterCell(vcell("x")))
	require.False(t, f.FilterAllRemaining())
}

func TestValueOperators(t *testing.T) {
	// Reference "m"; the skipped set is the cells matching the operator.
	cases := []struct {
		op   Op
		skip []string
		keep []string
	}{
		{LT, []string{"a"}, []string{"m", "z"}},
		{LE, []string{"a", "m"}, []string{"z"}},
		{EQ, []string{"m"}, []string{"a", "z"}},
		{NEQ, []string{"a", "z"}, []string{"m"}},
		{GE, []string{"m", "z"}, []string{"a"}},
		{GT, []string{"z"}, []string{"a", "m"}},
		{NOOP, nil, []string{"a", "m", "z"}},
	}
	for _, c := range cases {
		t.Run(c.op.String(), func(t *testing.T) {
			f, err := NewValue(c.op, compare.NewBinary([]byte("m")))
			require.NoError(t, err)
			for _, v := range c.skip {
				require.Equal(t, Skip, f.FilterCell(vcell(v)), "value %q", v)
			}
			for _, v := range c.keep {
				require.Equal(t, Include, f.FilterCell(vcell(v)), "value %q", v)
			}
		})
	}
}

func TestValueSubstring(t *testing.T) {
	f, err := NewValue(EQ, compare.NewSubstring("need"))
	require.NoError(t, err)
	require.Equal(t, Skip, f.FilterCell(vcell("a needle")))
	require.Equal(t, Include, f.FilterCell(vcell("haystack")))
}

func TestValueConstruction(t *testing.T) {
	_, err := NewValue(Op(42), compare.NewBinary([]byte("x")))
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewValue(EQ, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestValueRoundTrip(t *testing.T) {
	re, err := compare.NewRegexp(`^x+$`)
	require.NoError(t, err)
	bit, err := compare.NewBit(compare.And, []byte{0x0f})
	require.NoError(t, err)

	cmps := []compare.Comparator{
		compare.NewBinary([]byte("x")),
		compare.NewBinaryPrefix([]byte("pre")),
		compare.NewLong(123),
		compare.NewSubstring("sub"),
		re,
		bit,
		compare.NewNull(),
	}
	for _, cmp := range cmps {
		t.Run(cmp.Name(), func(t *testing.T) {
			f, err := NewValue(NEQ, cmp)
			require.NoError(t, err)
			b, err := f.MarshalBinary()
			require.NoError(t, err)
			got, err := Unmarshal(b)
			require.NoError(t, err)
			require.True(t, Equal(f, got))
		})
	}
}

func TestValueArgs(t *testing.T) {
	f, err := FromArguments("value", [][]byte{[]byte("="), []byte("binary:x")})
	require.NoError(t, err)
	require.Equal(t, Skip, f.FilterCell(vcell("x")))
	require.Equal(t, Include, f.FilterCell(vcell("y")))

	_, err = FromArguments("value", [][]byte{[]byte("=")})
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = FromArguments("value", [][]byte{[]byte("<>"), []byte("binary:x")})
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = FromArguments("value", [][]byte{[]byte("="), []byte("nope:x")})
	require.ErrorIs(t, err, ErrInvalidArgument)
}
