package masking

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeystoreMasker_AppliesTo(t *testing.T) {
	m := &KeystoreMasker{}

	assert.True(t, m.AppliesTo(`{"crypto":{"ciphertext":"abc"}}`))
	assert.True(t, m.AppliesTo(`{"Mnemonic": "word word"}`))
	assert.True(t, m.AppliesTo(`{"data":{"vault":"blob"}}`))
	assert.False(t, m.AppliesTo(`{"status": "passed", "duration_ms": 1200}`))
	assert.False(t, m.AppliesTo("plain log line"))
}

func TestKeystoreMasker_MasksVaultFile(t *testing.T) {
	m := &KeystoreMasker{}
	input := `{
  "version": 3,
  "id": "f0e4c2f7",
  "crypto": {
    "cipher": "aes-128-ctr",
    "ciphertext": "AABBCCDDEEFF",
    "cipherparams": {"iv": "00112233"},
    "kdf": "scrypt",
    "kdfparams": {"salt": "55667788", "n": 8192},
    "mac": "99AABBCC"
  }
}`

	result := m.Mask(input)

	assert.NotContains(t, result, "AABBCCDDEEFF")
	assert.NotContains(t, result, "00112233")
	assert.NotContains(t, result, "55667788")
	assert.NotContains(t, result, "99AABBCC")
	assert.Contains(t, result, MaskedKeystoreValue)

	// Non-sensitive fields survive and the output is still valid JSON.
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &doc))
	assert.Equal(t, "aes-128-ctr", doc["crypto"].(map[string]any)["cipher"])
	assert.Equal(t, float64(3), doc["version"])
}

func TestKeystoreMasker_MasksNestedMnemonic(t *testing.T) {
	m := &KeystoreMasker{}
	input := `{"state": {"accounts": [{"address": "0xabc", "mnemonic": "` + testSeedPhrase + `"}]}}`

	result := m.Mask(input)

	assert.NotContains(t, result, testSeedPhrase)
	assert.Contains(t, result, "0xabc", "Addresses are not key material")
}

func TestKeystoreMasker_InvalidJSONReturnsOriginal(t *testing.T) {
	m := &KeystoreMasker{}
	input := `{"ciphertext": truncated...`

	assert.Equal(t, input, m.Mask(input), "Parse failures must return the original (defensive)")
}

func TestKeystoreMasker_PlainTextReturnsOriginal(t *testing.T) {
	m := &KeystoreMasker{}
	input := "log mentions ciphertext but is not JSON"

	assert.Equal(t, input, m.Mask(input))
}

func TestKeystoreMasker_NothingToMask(t *testing.T) {
	m := &KeystoreMasker{}
	input := `{"status": "ok", "ciphertext_reference": true}`

	assert.Equal(t, input, m.Mask(input), "No sensitive keys present, original returned untouched")
}

func TestKeystoreMasker_PreservesTrailingNewline(t *testing.T) {
	m := &KeystoreMasker{}
	input := `{"mnemonic": "secret words here now ok"}` + "\n"

	result := m.Mask(input)

	assert.NotEqual(t, input, result)
	assert.True(t, result[len(result)-1] == '\n')
}
