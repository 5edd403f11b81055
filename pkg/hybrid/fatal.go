package hybrid

import "regexp"

// Fatal failure classes. A fatal failure aborts the run before any
// recovery: an agent cannot fix broken spec code or an unreachable
// dApp, and retrying would only burn planner budget.
const (
	FatalCodeBug = "code-bug"
	FatalNetwork = "network"
)

var (
	codeBugRe = regexp.MustCompile(`ReferenceError|SyntaxError|TypeError|Cannot find module`)
	networkRe = regexp.MustCompile(`net::ERR_|ECONNREFUSED|ENOTFOUND|ETIMEDOUT`)
)

// FatalClass matches failure text against the fatal patterns and
// reports the class when one hits.
func FatalClass(s string) (string, bool) {
	switch {
	case codeBugRe.MatchString(s):
		return FatalCodeBug, true
	case networkRe.MatchString(s):
		return FatalNetwork, true
	}
	return "", false
}
