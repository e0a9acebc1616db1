package regex

import (
	"regexp"

	"github.com/chaploud/clj-runtime/internal/corerr"
	"github.com/chaploud/clj-runtime/internal/value"
)

// Compile parses source as a regex pattern and returns the Value wrapping
// it. The subset accepted is RE2's, so translation is a pass
// through the standard library compiler; any construct RE2 rejects
// (lookaround, backreferences) surfaces as the same TypeError used for any
// other invalid pattern.
func Compile(source string) (*value.Regex, error) {
	compiled, err := regexp.Compile(source)
	if err != nil {
		return nil, corerr.Wrap(corerr.Type, "re-pattern", err, "invalid regex pattern %q", source)
	}

	return value.NewRegex(source, compiled), nil
}
