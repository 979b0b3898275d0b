package filter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func args(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}

func TestFromArguments(t *testing.T) {
	cases := []struct {
		name string
		in   [][]byte
		kind Kind
	}{
		{"counting", args("2"), KindCounting},
		{"value", args("=", "binary:x"), KindValue},
		{"qualifier", args("!=", "substring:tmp"), KindQualifier},
		{"family", args("=", "binary:f"), KindFamily},
		{"row", args("<", "binary:m"), KindRow},
		{"prefix", args("app-"), KindPrefix},
		{"inclusivestop", args("zz"), KindInclusiveStop},
		{"page", args("10"), KindPage},
		{"firstkeyonly", nil, KindFirstKeyOnly},
		{"keyonly", nil, KindKeyOnly},
		{"keyonly", args("true"), KindKeyOnly},
		{"columnpagination", args("5", "2"), KindColumnPagination},
		{"columnrange", args("a", "true", "m", "false"), KindColumnRange},
		{"timestamps", args("3", "9"), KindTimestamps},
		{"randomrow", args("0.25"), KindRandomRow},
		{"expr", args(`ts > 100`), KindExpr},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := FromArguments(c.name, c.in)
			require.NoError(t, err)
			require.Equal(t, c.kind, f.Kind())
			require.False(t, f.FilterAllRemaining())
		})
	}
}

func TestFromArgumentsRejects(t *testing.T) {
	cases := []struct {
		name string
		in   [][]byte
	}{
		{"bogus", nil},
		{"counting", args("one")},
		{"counting", args("1", "2")},
		{"value", args("=")},
		{"value", args("~", "binary:x")},
		{"value", args("=", "binary")},
		{"prefix", args()},
		{"page", args("x")},
		{"keyonly", args("maybe")},
		{"columnpagination", args("5")},
		{"columnrange", args("a", "yes", "m", "false")},
		{"columnrange", args("a", "true")},
		{"randomrow", args("often")},
		{"expr", args("a ==")},
		{"firstkeyonly", args("extra")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := FromArguments(c.name, c.in)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}
