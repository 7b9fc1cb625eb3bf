package resolver

import "strings"

// placeholder is one ${name} token; value[start:end] is the whole token.
type placeholder struct {
	start, end int
	name       string
}

// scanPlaceholders finds ${name} tokens left to right. Names are non-empty
// and contain neither "${" nor "}". Unterminated and empty tokens are left
// as literal text.
func scanPlaceholders(s string) []placeholder {
	var out []placeholder
	i := 0
	for i < len(s) {
		open := strings.Index(s[i:], "${")
		if open < 0 {
			break
		}
		open += i
		nameStart := open + 2

		closing := strings.IndexByte(s[nameStart:], '}')
		if closing < 0 {
			break
		}
		closing += nameStart

		// "${a${b}}": restart from the innermost opening.
		if inner := strings.Index(s[nameStart:closing], "${"); inner >= 0 {
			i = nameStart + inner
			continue
		}

		if name := s[nameStart:closing]; name != "" {
			out = append(out, placeholder{start: open, end: closing + 1, name: name})
		}
		i = closing + 1
	}
	return out
}

// Variables returns the distinct placeholder names of value in order of
// first appearance.
func Variables(value string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, p := range scanPlaceholders(value) {
		if !seen[p.name] {
			seen[p.name] = true
			names = append(names, p.name)
		}
	}
	return names
}

// substitute rebuilds s replacing every token with its binding. Inserted text
// is never rescanned.
func substitute(s string, tokens []placeholder, bindings map[string]string) string {
	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, t := range tokens {
		b.WriteString(s[last:t.start])
		b.WriteString(bindings[t.name])
		last = t.end
	}
	b.WriteString(s[last:])
	return b.String()
}
