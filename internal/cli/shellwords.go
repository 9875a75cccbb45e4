package cli

import "unicode"

// splitWords splits a shell-like op string into words, handling basic
// quoting. Single quotes, double quotes and backslash escapes (outside
// single quotes) are supported; an empty quoted string yields an empty word.
func splitWords(s string) ([]string, error) {
	var out []string
	var cur []rune
	inSingle := false
	inDouble := false
	escaped := false
	quoted := false

	flush := func() {
		if len(cur) == 0 && !quoted {
			return
		}
		out = append(out, string(cur))
		cur = cur[:0]
		quoted = false
	}

	for _, r := range s {
		if escaped {
			cur = append(cur, r)
			escaped = false
			continue
		}

		if r == '\\' && !inSingle {
			escaped = true
			continue
		}

		if r == '\'' && !inDouble {
			inSingle = !inSingle
			quoted = true
			continue
		}

		if r == '"' && !inSingle {
			inDouble = !inDouble
			quoted = true
			continue
		}

		if !inSingle && !inDouble && unicode.IsSpace(r) {
			flush()
			continue
		}

		cur = append(cur, r)
	}

	if inSingle || inDouble {
		return nil, usageErrorf("unterminated quote in %q", s)
	}
	flush()
	return out, nil
}
