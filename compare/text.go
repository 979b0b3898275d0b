package compare

import (
	"strings"

	"github.com/grafana/regexp"
)

// Substring reports 0 when the reference occurs anywhere in v, case
// insensitively, and 1 otherwise. Only the equality operators give it a
// meaningful reading.
type Substring struct {
	sub string
}

func NewSubstring(sub string) *Substring {
	return &Substring{sub: strings.ToLower(sub)}
}

func (c *Substring) Name() string { return "substring" }

func (c *Substring) Compare(v []byte) int {
	if strings.Contains(strings.ToLower(string(v)), c.sub) {
		return 0
	}
	return 1
}

func (c *Substring) payload() []byte { return []byte(c.sub) }

func parseSubstring(payload []byte) (Comparator, error) {
	return NewSubstring(string(payload)), nil
}

// Regexp reports 0 when the pattern matches v and 1 otherwise. Equality
// operators only.
type Regexp struct {
	re *regexp.Regexp
}

func NewRegexp(pattern string) (*Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regexp{re: re}, nil
}

func (c *Regexp) Name() string { return "regexp" }

func (c *Regexp) Compare(v []byte) int {
	if c.re.Match(v) {
		return 0
	}
	return 1
}

func (c *Regexp) payload() []byte { return []byte(c.re.String()) }

func parseRegexp(payload []byte) (Comparator, error) {
	return NewRegexp(string(payload))
}
