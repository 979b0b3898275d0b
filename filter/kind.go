package filter

import "fmt"

// Kind identifies a concrete filter variant on the wire and at the argument
// boundary. The set is closed; dispatch tables below are the one place a new
// kind has to register.
type Kind uint8

const (
	KindCounting Kind = 1 + iota
	KindValue
	KindQualifier
	KindFamily
	KindRow
	KindPrefix
	KindInclusiveStop
	KindPage
	KindFirstKeyOnly
	KindKeyOnly
	KindColumnPagination
	KindColumnRange
	KindTimestamps
	KindRandomRow
	KindExpr
)

type variant struct {
	name     string
	parse    func(payload []byte) (Filter, error)
	fromArgs func(args [][]byte) (Filter, error)
}

var variants = map[Kind]variant{
	KindCounting:         {name: "counting", parse: parseCounting, fromArgs: countingFromArgs},
	KindValue:            {name: "value", parse: parseValue, fromArgs: valueFromArgs},
	KindQualifier:        {name: "qualifier", parse: parseQualifier, fromArgs: qualifierFromArgs},
	KindFamily:           {name: "family", parse: parseFamily, fromArgs: familyFromArgs},
	KindRow:              {name: "row", parse: parseRow, fromArgs: rowFromArgs},
	KindPrefix:           {name: "prefix", parse: parsePrefix, fromArgs: prefixFromArgs},
	KindInclusiveStop:    {name: "inclusivestop", parse: parseInclusiveStop, fromArgs: inclusiveStopFromArgs},
	KindPage:             {name: "page", parse: parsePage, fromArgs: pageFromArgs},
	KindFirstKeyOnly:     {name: "firstkeyonly", parse: parseFirstKeyOnly, fromArgs: firstKeyOnlyFromArgs},
	KindKeyOnly:          {name: "keyonly", parse: parseKeyOnly, fromArgs: keyOnlyFromArgs},
	KindColumnPagination: {name: "columnpagination", parse: parseColumnPagination, fromArgs: columnPaginationFromArgs},
	KindColumnRange:      {name: "columnrange", parse: parseColumnRange, fromArgs: columnRangeFromArgs},
	KindTimestamps:       {name: "timestamps", parse: parseTimestamps, fromArgs: timestampsFromArgs},
	KindRandomRow:        {name: "randomrow", parse: parseRandomRow, fromArgs: randomRowFromArgs},
	KindExpr:             {name: "expr", parse: parseExpr, fromArgs: exprFromArgs},
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(variants))
	for k, v := range variants {
		m[v.name] = k
	}
	return m
}()

func (k Kind) String() string {
	if v, ok := variants[k]; ok {
		return v.name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}
