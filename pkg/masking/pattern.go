package masking

import (
	"log/slog"
	"regexp"
	"slices"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// resolvedPatterns holds the resolved set of maskers and patterns for a masking operation.
type resolvedPatterns struct {
	codeMaskerNames []string           // Names of code-based maskers to apply
	regexPatterns   []*CompiledPattern // Compiled regex patterns to apply
}

// patternDef is the source form of a built-in pattern.
type patternDef struct {
	Pattern     string
	Replacement string
	Description string
}

// builtinPatterns defines the regex-based maskers. Wallet material leads:
// anything the wallet extension, the dApp, or a test program might echo
// into logs, tool results, or error messages.
var builtinPatterns = map[string]patternDef{
	"seed_phrase": {
		Pattern:     `\b(?:[a-z]{3,12} ){23}[a-z]{3,12}\b|\b(?:[a-z]{3,12} ){11}[a-z]{3,12}\b`,
		Replacement: `__MASKED_SEED_PHRASE__`,
		Description: "12 or 24 word mnemonic phrases",
	},
	"mnemonic_field": {
		Pattern:     `(?i)["']?(?:mnemonic|seed[_-]?phrase)["']?\s*[:=]\s*["']([a-z][a-z ]{18,})["']`,
		Replacement: `"mnemonic": "__MASKED_SEED_PHRASE__"`,
		Description: "Labelled mnemonic or seed phrase fields",
	},
	"eth_private_key": {
		Pattern:     `\b(?:0x)?[0-9a-fA-F]{64}\b`,
		Replacement: `__MASKED_PRIVATE_KEY__`,
		Description: "32-byte hex private keys",
	},
	"anthropic_key": {
		Pattern:     `\bsk-ant-[A-Za-z0-9_\-]{16,}\b`,
		Replacement: `__MASKED_API_KEY__`,
		Description: "Anthropic API keys",
	},
	"api_key": {
		Pattern:     `(?i)api[_-]?key["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{16,})["']?`,
		Replacement: `api_key: __MASKED_API_KEY__`,
		Description: "Labelled API keys",
	},
	"token": {
		Pattern:     `(?i)(?:bearer\s+|token["']?\s*[:=]\s*["']?)([A-Za-z0-9_\-\.]{20,})["']?`,
		Replacement: `token: __MASKED_TOKEN__`,
		Description: "Bearer and access tokens",
	},
	"password": {
		Pattern:     `(?i)password["']?\s*[:=]\s*["']?([^\s"']{6,})["']?`,
		Replacement: `password: __MASKED_PASSWORD__`,
		Description: "Labelled passwords",
	},
}

// codeMaskerList names the code-based maskers that pattern groups may reference.
var codeMaskerList = []string{"keystore"}

// builtinPatternGroups maps group names to their member patterns. Members
// may be regex pattern names or code-based masker names.
var builtinPatternGroups = map[string][]string{
	"wallet": {"keystore", "seed_phrase", "mnemonic_field", "eth_private_key", "anthropic_key", "token"},
	"basic":  {"api_key", "token", "password"},
	"all":    {"keystore", "seed_phrase", "mnemonic_field", "eth_private_key", "anthropic_key", "api_key", "token", "password"},
}

// compileBuiltinPatterns compiles all built-in regex patterns.
// Invalid patterns are logged and skipped.
func (s *Service) compileBuiltinPatterns() {
	for name, pattern := range builtinPatterns {
		compiled, err := regexp.Compile(pattern.Pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		s.patterns[name] = &CompiledPattern{
			Name:        name,
			Regex:       compiled,
			Replacement: pattern.Replacement,
			Description: pattern.Description,
		}
	}
}

// resolvePatternsFromGroup resolves a single pattern group name into resolvedPatterns.
func (s *Service) resolvePatternsFromGroup(groupName string) *resolvedPatterns {
	seen := make(map[string]bool)
	resolved := &resolvedPatterns{}

	groupPatterns, ok := s.patternGroups[groupName]
	if !ok {
		return resolved
	}

	for _, name := range groupPatterns {
		if seen[name] {
			continue
		}
		seen[name] = true
		s.addToResolved(resolved, name)
	}

	return resolved
}

// addToResolved adds a pattern name to the resolved set, categorizing it as
// either a code masker or a regex pattern.
func (s *Service) addToResolved(resolved *resolvedPatterns, name string) {
	// Check if it's a code-based masker
	if slices.Contains(codeMaskerList, name) {
		resolved.codeMaskerNames = append(resolved.codeMaskerNames, name)
		return
	}

	// Otherwise, look up in compiled regex patterns
	if cp, ok := s.patterns[name]; ok {
		resolved.regexPatterns = append(resolved.regexPatterns, cp)
	}
}
