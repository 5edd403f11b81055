package masking

import (
	"log/slog"
	"strings"

	"github.com/dappsmith/conductor/pkg/config"
)

// Service applies secret masking to run logs, agent tool results, and
// artifact text. Created once at application startup (singleton).
// Thread-safe and stateless aside from compiled patterns.
type Service struct {
	enabled       bool
	patternGroup  string
	patterns      map[string]*CompiledPattern // Compiled built-in patterns
	patternGroups map[string][]string         // Group name → pattern names
	codeMaskers   map[string]Masker           // Registered code-based maskers
}

// NewService creates a masking service with compiled patterns and registered
// maskers. All patterns are compiled eagerly at creation time. Invalid
// patterns are logged and skipped.
func NewService(cfg *config.LogMaskingDefaults) *Service {
	s := &Service{
		patterns:      make(map[string]*CompiledPattern),
		patternGroups: builtinPatternGroups,
		codeMaskers:   make(map[string]Masker),
	}
	if cfg != nil {
		s.enabled = cfg.Enabled
		s.patternGroup = cfg.PatternGroup
	}
	if s.patternGroup == "" {
		s.patternGroup = "wallet"
	}

	// 1. Compile all built-in regex patterns
	s.compileBuiltinPatterns()

	// 2. Register code-based maskers
	s.registerMasker(&KeystoreMasker{})

	slog.Info("Masking service initialized",
		"builtin_patterns", len(builtinPatterns),
		"compiled_patterns", len(s.patterns),
		"code_maskers", len(s.codeMaskers),
		"enabled", s.enabled,
		"pattern_group", s.patternGroup)

	return s
}

// MaskToolResult applies masking to agent tool result content before it is
// sent to the model or persisted. Returns masked content. On masking failure,
// returns a redaction notice (fail-closed): key material must never reach the
// model context.
func (s *Service) MaskToolResult(content string) string {
	if !s.enabled || content == "" {
		return content
	}

	resolved := s.resolvePatternsFromGroup(s.patternGroup)
	if len(resolved.codeMaskerNames) == 0 && len(resolved.regexPatterns) == 0 {
		return content
	}

	masked, err := s.applyMasking(content, resolved)
	if err != nil {
		slog.Error("Masking failed, redacting content (fail-closed)", "error", err)
		return "[REDACTED: data masking failure — tool result could not be safely processed]"
	}

	return masked
}

// MaskLogs applies masking to captured run output. Returns masked data.
// On masking failure, returns original data (fail-open for logs): losing a
// run's logs is worse than the residual exposure risk of our own store.
func (s *Service) MaskLogs(data string) string {
	if !s.enabled || data == "" {
		return data
	}

	resolved := s.resolvePatternsFromGroup(s.patternGroup)
	if len(resolved.codeMaskerNames) == 0 && len(resolved.regexPatterns) == 0 {
		return data
	}

	masked, err := s.applyMasking(data, resolved)
	if err != nil {
		slog.Error("Log masking failed, continuing with unmasked data (fail-open)",
			"error", err)
		return data
	}

	return masked
}

// MaskLiterals replaces exact known plaintext values (e.g. the seed phrase
// injected into a sandbox environment) regardless of pattern matching.
// Literals shorter than 6 characters are skipped to avoid shredding output.
func (s *Service) MaskLiterals(content string, literals []string) string {
	if !s.enabled || content == "" {
		return content
	}
	for _, lit := range literals {
		if len(lit) < 6 {
			continue
		}
		content = strings.ReplaceAll(content, lit, "__MASKED_SECRET__")
	}
	return content
}

// Enabled reports whether masking is active.
func (s *Service) Enabled() bool {
	return s.enabled
}

// applyMasking applies code-based maskers then regex patterns to content.
func (s *Service) applyMasking(content string, resolved *resolvedPatterns) (string, error) {
	masked := content

	// Phase 1: Code-based maskers (more specific, structural awareness)
	for _, maskerName := range resolved.codeMaskerNames {
		masker, ok := s.codeMaskers[maskerName]
		if !ok {
			continue
		}
		if masker.AppliesTo(masked) {
			masked = masker.Mask(masked)
		}
	}

	// Phase 2: Regex patterns (general sweep)
	for _, pattern := range resolved.regexPatterns {
		masked = pattern.Regex.ReplaceAllString(masked, pattern.Replacement)
	}

	return masked, nil
}

// registerMasker registers a code-based masker by its name.
func (s *Service) registerMasker(m Masker) {
	s.codeMaskers[m.Name()] = m
}
