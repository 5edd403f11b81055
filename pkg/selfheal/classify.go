package selfheal

import (
	"strings"

	"github.com/dappsmith/conductor/pkg/models"
)

// classPatterns drive the failure classifier. Checked in order; the
// first class with a matching substring wins. Wallet and selector
// symptoms outrank timeout because a stuck wallet popup or a vanished
// element usually surfaces as a timeout too.
var classPatterns = []struct {
	class    string
	patterns []string
}{
	{models.FailureWallet, []string{
		"wallet", "metamask", "user rejected", "signature", "insufficient funds", "nonce",
	}},
	{models.FailureSelector, []string{
		"selector", "locator", "no node found", "not visible",
		"element is not attached", "waiting for element", "strict mode violation",
	}},
	{models.FailureAssertion, []string{
		"assert", "expect(", "expected", "tohavetext", "tobevisible", "received:",
	}},
	{models.FailureNetwork, []string{
		"net::", "econnrefused", "enotfound", "dns", "socket hang up",
		"fetch failed", "502", "503",
	}},
	{models.FailureTimeout, []string{
		"timeout", "timed out", "exceeded",
	}},
}

// Classify buckets a failure by case-insensitive substring heuristics
// over the combined error and log text.
func Classify(text string) string {
	t := strings.ToLower(text)
	for _, c := range classPatterns {
		for _, p := range c.patterns {
			if strings.Contains(t, p) {
				return c.class
			}
		}
	}
	return models.FailureUnknown
}

// matchedHints returns every pattern the text matched, across all
// classes. Secondary matches give the generator more to work with than
// the single winning class.
func matchedHints(text string) []string {
	t := strings.ToLower(text)
	var hints []string
	for _, c := range classPatterns {
		for _, p := range c.patterns {
			if strings.Contains(t, p) {
				hints = append(hints, p)
			}
		}
	}
	return hints
}
