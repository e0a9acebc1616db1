package value

import (
	"regexp"
	"strings"
)

// Regex wraps a compiled pattern. The compilation and translation from the
// spec's regex subset into Go's RE2 syntax happens in pkg/regex; this type
// is just the printable Value carrier.
type Regex struct {
	Source   string
	Compiled *regexp.Regexp
}

func NewRegex(source string, compiled *regexp.Regexp) *Regex {
	return &Regex{Source: source, Compiled: compiled}
}

func (r *Regex) Kind() Kind { return KindRegex }
func (r *Regex) Equals(other Value) bool {
	o, ok := other.(*Regex)

	return ok && o.Source == r.Source
}

func (r *Regex) WriteTo(sb *strings.Builder, _ PrintMode) {
	sb.WriteByte('#')
	sb.WriteByte('"')
	sb.WriteString(r.Source)
	sb.WriteByte('"')
}

// Matcher is the stateful result of re-matcher: it remembers the subject
// string and the last-searched offset so re-find can be called repeatedly
// to walk successive matches.
type Matcher struct {
	Pattern    *Regex
	Subject    string
	Pos        int
	Done       bool
	LastGroups []string // captures of the most recent successful match, for re-groups
}

func NewMatcher(pattern *Regex, subject string) *Matcher {
	return &Matcher{Pattern: pattern, Subject: subject}
}

func (m *Matcher) Kind() Kind        { return KindMatcher }
func (m *Matcher) Equals(Value) bool { return false }
func (m *Matcher) WriteTo(sb *strings.Builder, _ PrintMode) {
	sb.WriteString("#<matcher>")
}
