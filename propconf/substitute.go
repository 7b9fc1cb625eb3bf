package propconf

import (
	"slices"
	"strings"
)

// maxSubstitutionPasses bounds the fixed-point iteration of !{name}
// substitution.
const maxSubstitutionPasses = 64

// substituteTokens replaces !{name} tokens with subs[name] until a pass
// changes nothing. Names are applied in sorted order within a pass.
// Unmatched tokens stay literal.
func substituteTokens(value string, subs map[string]string) (string, error) {
	if len(subs) == 0 || !strings.Contains(value, "!{") {
		return value, nil
	}

	names := make([]string, 0, len(subs))
	for name := range subs {
		names = append(names, name)
	}
	slices.Sort(names)

	for range maxSubstitutionPasses {
		previous := value
		for _, name := range names {
			value = strings.ReplaceAll(value, "!{"+name+"}", subs[name])
		}
		if value == previous {
			return value, nil
		}
	}

	return value, ErrSubstitutionLimit
}
