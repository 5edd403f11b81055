package hybrid

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dappsmith/conductor/pkg/runner"
)

// Step is one marked region of a spec body. Header keeps the marker
// lines verbatim so a parsed program reserializes byte-for-byte.
type Step struct {
	Number      int
	Description string
	Header      string
	Body        string
}

// headerRe matches one step marker: a fence line of at least three =
// (ASCII or box-drawing), the `// STEP <n>: <description>` line, and an
// optional closing fence. Generators vary the fence width and casing.
var headerRe = regexp.MustCompile(`(?mi)^[ \t]*//[ \t]*[=═]{3,}[ \t]*\r?\n[ \t]*//[ \t]*STEP[ \t]+(\d+)[ \t]*:(.*?)[ \t]*(?:\r?\n|$)(?:[ \t]*//[ \t]*[=═]{3,}[ \t]*(?:\r?\n|$))?`)

// ParseSteps splits a spec body into its marked steps. A body without
// markers is a single step numbered 1 so every spec stays runnable.
func ParseSteps(body string) []Step {
	locs := headerRe.FindAllStringSubmatchIndex(body, -1)
	if len(locs) == 0 {
		return []Step{{Number: 1, Body: body}}
	}
	steps := make([]Step, 0, len(locs))
	for i, loc := range locs {
		end := len(body)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		num, _ := strconv.Atoi(body[loc[2]:loc[3]])
		steps = append(steps, Step{
			Number:      num,
			Description: strings.TrimSpace(body[loc[4]:loc[5]]),
			Header:      body[loc[0]:loc[1]],
			Body:        body[loc[1]:end],
		})
	}
	return steps
}

// Reserialize concatenates headers and bodies back into a spec body.
// Parsing the result yields the same step list.
func Reserialize(steps []Step) string {
	var b strings.Builder
	for _, s := range steps {
		b.WriteString(s.Header)
		b.WriteString(s.Body)
	}
	return b.String()
}

// stepRegion is the byte span of one step's body within a full spec
// program, header excluded.
type stepRegion struct {
	number     int
	start, end int
}

// stepRegions locates every step body inside code. When code carries a
// test declaration the search is bounded to its body so patches never
// touch the wrapper.
func stepRegions(code string) []stepRegion {
	lo, hi := 0, len(code)
	if open, end, ok := runner.TestBodyBounds(code); ok {
		lo, hi = open+1, end
	}
	segment := code[lo:hi]
	locs := headerRe.FindAllStringSubmatchIndex(segment, -1)
	if len(locs) == 0 {
		return []stepRegion{{number: 1, start: lo, end: hi}}
	}
	regions := make([]stepRegion, 0, len(locs))
	for i, loc := range locs {
		end := hi
		if i+1 < len(locs) {
			end = lo + locs[i+1][0]
		}
		num, _ := strconv.Atoi(segment[loc[2]:loc[3]])
		regions = append(regions, stepRegion{number: num, start: lo + loc[1], end: end})
	}
	return regions
}
