package regex

import (
	"strings"

	"github.com/chaploud/clj-runtime/internal/value"
)

// ExpandReplacement expands $0-$9 group references and \c literal escapes
// in replacement against the groups captured by a single match (groups[0]
// is the whole match). Go's regexp.ReplaceAll uses a different ($name or
// ${name}) syntax, so this is hand-rolled to match the Perl-ish $0-$9
// convention.
func ExpandReplacement(replacement string, groups []string) string {
	var sb strings.Builder
	runes := []rune(replacement)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '\\' && i+1 < len(runes):
			sb.WriteRune(runes[i+1])
			i++
		case c == '$' && i+1 < len(runes) && runes[i+1] >= '0' && runes[i+1] <= '9':
			idx := int(runes[i+1] - '0')
			if idx < len(groups) {
				sb.WriteString(groups[idx])
			}
			i++
		default:
			sb.WriteRune(c)
		}
	}

	return sb.String()
}

// ReplaceAll substitutes every match of pattern in subject, expanding
// replacement against each match's own capture groups.
func ReplaceAll(pattern, subject, replacement string) (string, error) {
	compiled, err := Compile(pattern)
	if err != nil {
		return "", err
	}

	return ReplacePattern(compiled, subject, replacement), nil
}

// ReplacePattern substitutes every match of pattern in subject, expanding
// replacement against each match's own capture groups. A zero-width match
// advances the scan by one byte so it can't stall on an empty pattern.
func ReplacePattern(pattern *value.Regex, subject, replacement string) string {
	var sb strings.Builder
	last, pos := 0, 0
	for pos <= len(subject) {
		loc := pattern.Compiled.FindStringSubmatchIndex(subject[pos:])
		if loc == nil {
			break
		}
		start, end := loc[0]+pos, loc[1]+pos
		sb.WriteString(subject[last:start])
		groups := submatchStrings(subject[pos:], loc)
		sb.WriteString(ExpandReplacement(replacement, groups))
		last = end
		if end == start {
			pos = end + 1
		} else {
			pos = end
		}
	}
	sb.WriteString(subject[last:])

	return sb.String()
}

// ReplaceFirstPattern substitutes only the first match of pattern in
// subject.
func ReplaceFirstPattern(pattern *value.Regex, subject, replacement string) string {
	loc := pattern.Compiled.FindStringSubmatchIndex(subject)
	if loc == nil {
		return subject
	}
	groups := submatchStrings(subject, loc)
	var sb strings.Builder
	sb.WriteString(subject[:loc[0]])
	sb.WriteString(ExpandReplacement(replacement, groups))
	sb.WriteString(subject[loc[1]:])

	return sb.String()
}
