package hybrid

import "strings"

// skipString returns the index just past the string literal starting at
// src[i]. src[i] must be a quote character; backslash escapes are
// honored for all three quote kinds.
func skipString(src string, i int) int {
	quote := src[i]
	i++
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
			continue
		case quote:
			return i + 1
		}
		i++
	}
	return len(src)
}

// skipLineComment returns the index of the newline ending the //
// comment at src[i], or len(src) when the comment closes the input.
func skipLineComment(src string, i int) int {
	for i < len(src) && src[i] != '\n' {
		i++
	}
	return i
}

// skipBlockComment returns the index just past the block comment
// opening at src[i].
func skipBlockComment(src string, i int) int {
	end := strings.Index(src[i+2:], "*/")
	if end < 0 {
		return len(src)
	}
	return i + 2 + end + 2
}

// matchingParen returns the index of the parenthesis closing
// src[open], skipping string literals, or -1 when unbalanced.
func matchingParen(src string, open int) int {
	depth := 0
	i := open
	for i < len(src) {
		switch src[i] {
		case '\'', '"', '`':
			i = skipString(src, i)
			continue
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
		i++
	}
	return -1
}

// splitTopLevel splits s on commas outside any bracket nesting or
// string literal. Parts come back trimmed.
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	start := 0
	i := 0
	for i < len(s) {
		switch s[i] {
		case '\'', '"', '`':
			i = skipString(s, i)
			continue
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
		i++
	}
	tail := strings.TrimSpace(s[start:])
	if tail == "" && len(parts) == 0 {
		return nil
	}
	return append(parts, tail)
}

// jsUnquote decodes a quoted JavaScript string literal.
func jsUnquote(lit string) (string, bool) {
	if len(lit) < 2 {
		return "", false
	}
	quote := lit[0]
	if (quote != '\'' && quote != '"' && quote != '`') || lit[len(lit)-1] != quote {
		return "", false
	}
	body := lit[1 : len(lit)-1]
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", false
		}
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(body[i])
		}
	}
	return b.String(), true
}

// firstLine truncates s to its first line and at most max bytes, for
// error messages that quote source text.
func firstLine(s string, max int) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	if len(s) > max {
		s = s[:max] + "..."
	}
	return s
}
