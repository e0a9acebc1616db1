package regex

import "github.com/chaploud/clj-runtime/internal/value"

// GroupsToValue turns a FindStringSubmatch result into the Value the
// built-ins surface: a bare Str when there were no capture groups, else a
// Vector of Str (empty Str for a group that did not participate).
func GroupsToValue(groups []string) value.Value {
	if len(groups) == 1 {
		return value.Str(groups[0])
	}
	elems := make([]value.Value, len(groups))
	for i, g := range groups {
		elems[i] = value.Str(g)
	}

	return value.NewVector(elems...)
}

// Matches implements re-matches: the pattern must match the whole subject.
func Matches(pattern *value.Regex, subject string) value.Value {
	loc := pattern.Compiled.FindStringSubmatchIndex(subject)
	if loc == nil || loc[0] != 0 || loc[1] != len(subject) {
		return value.Nil{}
	}

	return GroupsToValue(submatchStrings(subject, loc))
}

// Find implements re-find against a bare string: the first match anywhere.
func Find(pattern *value.Regex, subject string) value.Value {
	groups := pattern.Compiled.FindStringSubmatch(subject)
	if groups == nil {
		return value.Nil{}
	}

	return GroupsToValue(groups)
}

// FindFromMatcher implements re-find against a stateful Matcher, advancing
// its position past the match (or past one byte, on a zero-width match) so
// repeated calls walk successive matches left to right.
func FindFromMatcher(m *value.Matcher) value.Value {
	if m.Done || m.Pos > len(m.Subject) {
		return value.Nil{}
	}
	loc := m.Pattern.Compiled.FindStringSubmatchIndex(m.Subject[m.Pos:])
	if loc == nil {
		m.Done = true

		return value.Nil{}
	}
	groups := submatchStrings(m.Subject[m.Pos:], loc)
	m.LastGroups = groups
	start, end := loc[0]+m.Pos, loc[1]+m.Pos
	if end == start {
		m.Pos = end + 1
	} else {
		m.Pos = end
	}
	if m.Pos > len(m.Subject) {
		m.Done = true
	}

	return GroupsToValue(groups)
}

func submatchStrings(subject string, loc []int) []string {
	n := len(loc) / 2
	out := make([]string, n)
	for i := 0; i < n; i++ {
		s, e := loc[2*i], loc[2*i+1]
		if s < 0 || e < 0 {
			out[i] = ""

			continue
		}
		out[i] = subject[s:e]
	}

	return out
}

// Seq implements re-seq: a LazySeq that realises to the full list of
// matches. Go's regexp has no incremental match API cheaper than scanning
// the whole subject, so this defers the whole scan rather than producing a
// genuinely cell-by-cell lazy walk.
func Seq(pattern *value.Regex, subject string) *value.LazySeq {
	return value.NewLazySeq(func() (value.Value, error) {
		all := pattern.Compiled.FindAllStringSubmatch(subject, -1)
		if len(all) == 0 {
			return value.EmptyList, nil
		}
		elems := make([]value.Value, len(all))
		for i, groups := range all {
			elems[i] = GroupsToValue(groups)
		}

		return value.NewList(elems...), nil
	})
}
