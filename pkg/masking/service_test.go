package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dappsmith/conductor/pkg/config"
)

const testSeedPhrase = "abandon ability able about above absent absorb abstract absurd abuse access accident"

// newTestService creates a Service with masking enabled for the given pattern group.
func newTestService(t *testing.T, group string) *Service {
	t.Helper()
	return NewService(&config.LogMaskingDefaults{Enabled: true, PatternGroup: group})
}

func TestNewService(t *testing.T) {
	svc := NewService(&config.LogMaskingDefaults{Enabled: true, PatternGroup: "wallet"})

	assert.NotNil(t, svc)
	assert.NotEmpty(t, svc.patterns, "Should have compiled patterns")
	assert.NotEmpty(t, svc.codeMaskers, "Should have registered code maskers")
	assert.Contains(t, svc.codeMaskers, "keystore")
}

func TestNewService_NilConfig(t *testing.T) {
	svc := NewService(nil)

	require.NotNil(t, svc)
	assert.False(t, svc.Enabled())

	content := "mnemonic: \"" + testSeedPhrase + "\""
	assert.Equal(t, content, svc.MaskLogs(content), "Disabled service should pass content through")
}

func TestMaskToolResult_EmptyContent(t *testing.T) {
	svc := newTestService(t, "wallet")
	assert.Empty(t, svc.MaskToolResult(""))
}

func TestMaskToolResult_Disabled(t *testing.T) {
	svc := NewService(&config.LogMaskingDefaults{Enabled: false, PatternGroup: "wallet"})
	content := `password: "FAKE-S3CRET-PASS-NOT-REAL"`
	assert.Equal(t, content, svc.MaskToolResult(content), "Content should pass through when masking disabled")
}

func TestMaskToolResult_UnknownGroup(t *testing.T) {
	svc := newTestService(t, "nonexistent-group")
	content := `password: "FAKE-S3CRET-PASS-NOT-REAL"`
	assert.Equal(t, content, svc.MaskToolResult(content), "Unknown group resolves to nothing")
}

func TestMaskToolResult_MasksSeedPhrase(t *testing.T) {
	svc := newTestService(t, "wallet")
	content := "Wallet restored from: " + testSeedPhrase + "\nstatus: ok"

	result := svc.MaskToolResult(content)

	assert.NotContains(t, result, testSeedPhrase, "Seed phrase should be masked")
	assert.Contains(t, result, "__MASKED_SEED_PHRASE__")
	assert.Contains(t, result, "status: ok", "Non-sensitive content should be preserved")
}

func TestMaskToolResult_MasksPrivateKey(t *testing.T) {
	svc := newTestService(t, "wallet")
	key := "0xaabbccddeeff00112233445566778899aabbccddeeff00112233445566778899"
	content := "signer loaded " + key

	result := svc.MaskToolResult(content)

	assert.NotContains(t, result, key)
	assert.Contains(t, result, "__MASKED_PRIVATE_KEY__")
}

func TestMaskToolResult_MasksAnthropicKey(t *testing.T) {
	svc := newTestService(t, "wallet")
	content := "env ANTHROPIC_API_KEY=sk-ant-REDACTED"

	result := svc.MaskToolResult(content)

	assert.NotContains(t, result, "sk-ant-REDACTED")
	assert.Contains(t, result, "__MASKED_API_KEY__")
}

func TestMaskLogs_MasksMnemonicField(t *testing.T) {
	svc := newTestService(t, "wallet")
	content := `restoring wallet state {"mnemonic": "` + testSeedPhrase + `"}`

	result := svc.MaskLogs(content)

	assert.NotContains(t, result, testSeedPhrase)
	assert.Contains(t, result, "__MASKED_SEED_PHRASE__")
}

func TestMaskLogs_BasicGroup(t *testing.T) {
	svc := newTestService(t, "basic")
	content := `api_key: "sk-FAKE-NOT-REAL-API-KEY-XXXX"
password: "FAKE-S3CRET-PASS-NOT-REAL"
debug: true`

	result := svc.MaskLogs(content)

	assert.NotContains(t, result, "sk-FAKE-NOT-REAL-API-KEY-XXXX")
	assert.NotContains(t, result, "FAKE-S3CRET-PASS-NOT-REAL")
	assert.Contains(t, result, "__MASKED_API_KEY__")
	assert.Contains(t, result, "__MASKED_PASSWORD__")
	assert.Contains(t, result, "debug: true")
}

func TestMaskLogs_PreservesOrdinaryOutput(t *testing.T) {
	svc := newTestService(t, "wallet")
	content := `[chromium] navigated to http://localhost:3000
[test] Connect button visible
[test] PASS swap flow (4.2s)`

	result := svc.MaskLogs(content)

	assert.Equal(t, content, result, "Ordinary test output should pass through unchanged")
}

func TestMaskLiterals(t *testing.T) {
	svc := newTestService(t, "wallet")
	content := "typed phrase word by word: " + testSeedPhrase

	result := svc.MaskLiterals(content, []string{testSeedPhrase})

	assert.NotContains(t, result, testSeedPhrase)
	assert.Contains(t, result, "__MASKED_SECRET__")
}

func TestMaskLiterals_SkipsShortLiterals(t *testing.T) {
	svc := newTestService(t, "wallet")
	content := "the ok result"

	result := svc.MaskLiterals(content, []string{"ok"})

	assert.Equal(t, content, result, "Short literals would shred output and must be skipped")
}

func TestMaskToolResult_KeystoreJSON(t *testing.T) {
	svc := newTestService(t, "wallet")
	content := `{"version": 3, "crypto": {"ciphertext": "deadbeefcafe", "cipherparams": {"iv": "0011223344"}, "mac": "facefeed"}}`

	result := svc.MaskToolResult(content)

	assert.NotContains(t, result, "deadbeefcafe")
	assert.NotContains(t, result, "facefeed")
	assert.Contains(t, result, MaskedKeystoreValue)
	assert.Contains(t, result, `"version": 3`, "Non-sensitive structure should survive")
}
