package masking

import (
	"encoding/json"
	"strings"
)

// MaskedKeystoreValue is the replacement string for masked wallet keystore values.
const MaskedKeystoreValue = "[MASKED_KEYSTORE_DATA]"

// keystoreSensitiveFields are JSON keys whose values hold key material in
// wallet keystore files and extension state dumps. Matched case-insensitively.
var keystoreSensitiveFields = map[string]bool{
	"ciphertext": true,
	"mac":        true,
	"iv":         true,
	"salt":       true,
	"mnemonic":   true,
	"seed":       true,
	"seedphrase": true,
	"privatekey": true,
	"vault":      true,
}

// KeystoreMasker masks key material in wallet keystore JSON (the encrypted
// vault format browser wallets persist) and in extension state dumps that
// embed a mnemonic, while leaving ordinary JSON test output untouched.
type KeystoreMasker struct{}

// Name returns the unique identifier for this masker.
func (m *KeystoreMasker) Name() string { return "keystore" }

// AppliesTo performs a lightweight check on whether this masker should process the data.
func (m *KeystoreMasker) AppliesTo(data string) bool {
	lower := strings.ToLower(data)
	return strings.Contains(lower, "ciphertext") ||
		strings.Contains(lower, "mnemonic") ||
		strings.Contains(lower, "\"vault\"")
}

// Mask applies keystore masking logic.
// Returns original data on parse/processing errors (defensive).
func (m *KeystoreMasker) Mask(data string) string {
	trimmed := strings.TrimSpace(data)
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return data // Not JSON — regex patterns handle plain text
	}

	var doc any
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return data // Parse error — return original (defensive)
	}

	if !maskKeystoreValues(doc) {
		return data // Nothing to mask
	}

	result, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return data // Serialization error — return original (defensive)
	}

	// Preserve trailing newline if original had one
	output := string(result)
	if strings.HasSuffix(data, "\n") {
		output += "\n"
	}

	return output
}

// maskKeystoreValues walks a decoded JSON document and replaces the values of
// sensitive fields. Returns true if any value was masked.
func maskKeystoreValues(node any) bool {
	anyMasked := false

	switch v := node.(type) {
	case map[string]any:
		for key, val := range v {
			if keystoreSensitiveFields[strings.ToLower(key)] {
				v[key] = MaskedKeystoreValue
				anyMasked = true
				continue
			}
			if maskKeystoreValues(val) {
				anyMasked = true
			}
		}
	case []any:
		for _, item := range v {
			if maskKeystoreValues(item) {
				anyMasked = true
			}
		}
	}

	return anyMasked
}
