package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCipher_RoundTrip(t *testing.T) {
	cipher, err := NewSeedCipher("test-wallet-kek")
	require.NoError(t, err)

	seed := "abandon ability absorb acoustic acquire adjust advance aerobic airport alcohol almost amateur"
	sealed, err := cipher.Seal(seed)
	require.NoError(t, err)
	assert.NotContains(t, sealed, "abandon", "sealed seed must not leak plaintext")

	opened, err := cipher.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, seed, opened)

	// Fresh nonce per seal.
	sealed2, err := cipher.Seal(seed)
	require.NoError(t, err)
	assert.NotEqual(t, sealed, sealed2)
}

func TestSeedCipher_WrongKey(t *testing.T) {
	a, err := NewSeedCipher("kek-a")
	require.NoError(t, err)
	b, err := NewSeedCipher("kek-b")
	require.NoError(t, err)

	sealed, err := a.Seal("secret phrase")
	require.NoError(t, err)

	_, err = b.Open(sealed)
	assert.Error(t, err)
}

func TestSeedCipher_RequiresKEK(t *testing.T) {
	_, err := NewSeedCipher("")
	assert.Error(t, err)
}

func TestSeedCipher_HexKEK(t *testing.T) {
	// 64 hex chars are used verbatim as the 32-byte key.
	kek := strings.Repeat("ab", 32)
	cipher, err := NewSeedCipher(kek)
	require.NoError(t, err)

	sealed, err := cipher.Seal("phrase")
	require.NoError(t, err)
	opened, err := cipher.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "phrase", opened)
}

func TestGenerateSeedPhrase(t *testing.T) {
	phrase, err := GenerateSeedPhrase()
	require.NoError(t, err)
	assert.Len(t, strings.Fields(phrase), 12)
}

func TestDeriveAddress(t *testing.T) {
	addr := DeriveAddress("Abandon Ability  Absorb")
	assert.True(t, strings.HasPrefix(addr, "0x"))
	assert.Len(t, addr, 42)

	// Case and whitespace normalize to the same address.
	assert.Equal(t, addr, DeriveAddress("abandon ability absorb"))
	assert.NotEqual(t, addr, DeriveAddress("abandon ability acoustic"))
}
