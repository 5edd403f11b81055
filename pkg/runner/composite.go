// Package runner executes deterministic test programs as supervised
// child processes and collects their output, report, and artifacts.
package runner

import (
	"regexp"
	"strings"
)

// CompositeTitle is the test title given to a flow program merged with
// its connection prelude. Flow step indices reported against a
// composite are offset by the prelude's step count.
const CompositeTitle = "Connection + Flow"

// Region marker comments inside a composite body. Plain comments, no
// fence characters, so step-header parsing never mistakes them for
// step boundaries.
const (
	preludeMarker = "// Connection + Flow: connection prelude"
	flowMarker    = "// Connection + Flow: flow steps"
)

// testDeclRe locates the main test declaration. Matches test(...) and
// it(...), not test.describe(...).
var testDeclRe = regexp.MustCompile(`\b(?:test|it)\s*\(`)

// BuildComposite merges a connection prelude into a flow program. The
// prelude's test body is injected at the top of the flow's test body,
// bracketed by region markers, and the flow test is retitled to
// CompositeTitle. When either program's structure cannot be recognized
// the two programs are concatenated so the prelude still runs first.
func BuildComposite(connectionCode, flowCode string) string {
	cOpen, cClose, ok := TestBodyBounds(connectionCode)
	if !ok {
		return concatenate(connectionCode, flowCode)
	}
	prelude := strings.TrimSpace(connectionCode[cOpen+1 : cClose])
	if prelude == "" {
		return flowCode
	}

	retitled := retitleTest(flowCode, CompositeTitle)
	fOpen, _, ok := TestBodyBounds(retitled)
	if !ok {
		return concatenate(connectionCode, flowCode)
	}

	var b strings.Builder
	b.Grow(len(retitled) + len(prelude) + 128)
	b.WriteString(retitled[:fOpen+1])
	b.WriteString("\n  ")
	b.WriteString(preludeMarker)
	b.WriteString("\n")
	b.WriteString(prelude)
	b.WriteString("\n\n  ")
	b.WriteString(flowMarker)
	b.WriteString(retitled[fOpen+1:])
	return b.String()
}

func concatenate(connectionCode, flowCode string) string {
	return strings.TrimRight(connectionCode, "\n") + "\n\n" + flowCode
}

// TestBodyBounds locates the body of the main test declaration: the
// first opening brace after the declaration's callback marker and its
// matching close brace, tracked by balance. Braces inside string
// literals and comments do not count. Returns the byte offsets of the
// two braces; ok is false when no declaration or balanced body exists.
func TestBodyBounds(src string) (open, end int, ok bool) {
	loc := testDeclRe.FindStringIndex(src)
	if loc == nil {
		return 0, 0, false
	}

	open = bodyBrace(src, loc[1])
	if open < 0 {
		return 0, 0, false
	}

	depth := 0
	for s := newCodeScanner(src, open); s.next(); {
		switch s.ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return open, s.pos, true
			}
		}
	}
	return 0, 0, false
}

// bodyBrace scans from offset for the opening brace of the callback
// body: the first '{' whose preceding code is ')' (function body) or
// '=>' (arrow body). Braces before that point belong to arguments,
// destructured parameters or an options object, and are skipped.
func bodyBrace(src string, from int) int {
	prev := byte(0) // last significant code byte
	arrow := false  // prev two bytes were "=>"
	for s := newCodeScanner(src, from); s.next(); {
		switch ch := s.ch; {
		case ch == '{':
			if prev == ')' || arrow {
				return s.pos
			}
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			continue
		default:
			arrow = ch == '>' && prev == '='
		}
		prev = s.ch
	}
	return -1
}

// retitleTest replaces the title literal of the main test declaration.
// The source is returned unchanged when no quoted title follows the
// declaration.
func retitleTest(src, title string) string {
	loc := testDeclRe.FindStringIndex(src)
	if loc == nil {
		return src
	}

	start := -1
	var quote byte
	for i := loc[1]; i < len(src); i++ {
		c := src[i]
		if c == '\'' || c == '"' || c == '`' {
			start = i
			quote = c
			break
		}
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return src
		}
	}
	if start < 0 {
		return src
	}

	for i := start + 1; i < len(src); i++ {
		if src[i] == '\\' {
			i++
			continue
		}
		if src[i] == quote {
			return src[:start+1] + title + src[i:]
		}
	}
	return src
}

// codeScanner iterates the significant bytes of a source string,
// skipping string literals (single, double, backtick, with backslash
// escapes) and comments (line and block). pos/ch expose the current
// byte after each next().
type codeScanner struct {
	src string
	pos int
	ch  byte
}

func newCodeScanner(src string, from int) *codeScanner {
	return &codeScanner{src: src, pos: from - 1}
}

func (s *codeScanner) next() bool {
	for s.pos++; s.pos < len(s.src); s.pos++ {
		c := s.src[s.pos]
		switch c {
		case '\'', '"', '`':
			s.skipString(c)
		case '/':
			if s.pos+1 < len(s.src) && s.src[s.pos+1] == '/' {
				s.skipLineComment()
			} else if s.pos+1 < len(s.src) && s.src[s.pos+1] == '*' {
				s.skipBlockComment()
			} else {
				s.ch = c
				return true
			}
		default:
			s.ch = c
			return true
		}
	}
	return false
}

func (s *codeScanner) skipString(quote byte) {
	for s.pos++; s.pos < len(s.src); s.pos++ {
		switch s.src[s.pos] {
		case '\\':
			s.pos++
		case quote:
			return
		}
	}
}

func (s *codeScanner) skipLineComment() {
	for ; s.pos < len(s.src); s.pos++ {
		if s.src[s.pos] == '\n' {
			s.pos-- // newline is significant, re-read it
			return
		}
	}
}

func (s *codeScanner) skipBlockComment() {
	for s.pos += 2; s.pos+1 < len(s.src); s.pos++ {
		if s.src[s.pos] == '*' && s.src[s.pos+1] == '/' {
			s.pos++
			return
		}
	}
	s.pos = len(s.src)
}
