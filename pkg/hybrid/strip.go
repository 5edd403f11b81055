package hybrid

import (
	"regexp"
	"strings"
)

// The TypeScript surface forms generators leave behind: variable type
// annotations, `as` casts, and call-site generics. Each is erased
// textually; anything deeper fails compilation instead.
var (
	varAnnotationRe = regexp.MustCompile(`\b((?:let|const|var)\s+[A-Za-z_$][\w$]*)\s*:\s*[^=;\n]+?\s*(=|;|\n|$)`)
	asCastRe        = regexp.MustCompile(`\s+as\s+[A-Za-z_$][\w$]*(?:\s*\.\s*[A-Za-z_$][\w$]*)*(?:\s*<[^<>]*>)?(?:\s*\[\s*\])*`)
	genericCallRe   = regexp.MustCompile(`([A-Za-z_$][\w$]*)<[\w$\s,.\[\]<>]+>\(`)
)

// StripTypes removes TypeScript-style annotations from a step body so
// the statement engine sees plain JavaScript. String literals and
// comments pass through untouched.
func StripTypes(src string) string {
	var out strings.Builder
	var code strings.Builder
	flush := func() {
		if code.Len() == 0 {
			return
		}
		out.WriteString(stripCode(code.String()))
		code.Reset()
	}
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '\'' || c == '"' || c == '`':
			flush()
			j := skipString(src, i)
			out.WriteString(src[i:j])
			i = j
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			flush()
			j := skipLineComment(src, i)
			out.WriteString(src[i:j])
			i = j
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			flush()
			j := skipBlockComment(src, i)
			out.WriteString(src[i:j])
			i = j
		default:
			code.WriteByte(c)
			i++
		}
	}
	flush()
	return out.String()
}

func stripCode(code string) string {
	code = varAnnotationRe.ReplaceAllString(code, "$1 $2")
	code = asCastRe.ReplaceAllString(code, "")
	code = genericCallRe.ReplaceAllString(code, "$1(")
	return code
}
