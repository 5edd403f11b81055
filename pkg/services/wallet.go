package services

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// SeedCipher seals and opens wallet seed phrases with AES-256-GCM.
// The key is taken from WALLET_KEK: either 64 hex characters used
// verbatim as the 32-byte key, or an arbitrary passphrase stretched
// through SHA-256.
type SeedCipher struct {
	key []byte
}

// NewSeedCipher derives the sealing key from the configured KEK.
func NewSeedCipher(kek string) (*SeedCipher, error) {
	if kek == "" {
		return nil, errors.New("wallet KEK is required")
	}
	if len(kek) == 64 {
		if raw, err := hex.DecodeString(kek); err == nil {
			return &SeedCipher{key: raw}, nil
		}
	}
	sum := sha256.Sum256([]byte(kek))
	return &SeedCipher{key: sum[:]}, nil
}

// Seal encrypts the plaintext seed. Output is base64(nonce || ciphertext).
func (c *SeedCipher) Seal(seed string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to init cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to init GCM: %w", err)
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	sealed := gcm.Seal(nonce, nonce, []byte(seed), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a sealed seed produced by Seal.
func (c *SeedCipher) Open(sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("failed to decode sealed seed: %w", err)
	}
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to init cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to init GCM: %w", err)
	}
	if len(raw) < gcm.NonceSize() {
		return "", errors.New("sealed seed too short")
	}
	nonce, ciphertext := raw[:gcm.NonceSize()], raw[gcm.NonceSize():]
	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to open sealed seed: %w", err)
	}
	return string(plain), nil
}

// seedWords is the vocabulary for generated seed phrases. Chain-level
// key derivation happens inside the wallet extension in the sandbox;
// the platform only stores, seals, and injects the phrase.
var seedWords = []string{
	"abandon", "ability", "absorb", "acoustic", "acquire", "adjust", "advance", "aerobic",
	"airport", "alcohol", "almost", "amateur", "ancient", "animal", "antenna", "apology",
	"arctic", "arrange", "artist", "asset", "athlete", "atom", "auction", "autumn",
	"balance", "bamboo", "bargain", "basket", "beach", "benefit", "bicycle", "biology",
	"blanket", "blossom", "border", "bounce", "bracket", "bridge", "broccoli", "bubble",
	"budget", "burden", "cabbage", "cactus", "camera", "canvas", "capital", "carbon",
	"castle", "catalog", "caution", "celery", "century", "certain", "chapter", "cherry",
	"chicken", "chimney", "chronic", "cinnamon", "citizen", "clarify", "climate", "cluster",
	"coconut", "collect", "comfort", "concert", "confirm", "copper", "coral", "cotton",
	"country", "coyote", "cradle", "crater", "credit", "cricket", "crystal", "culture",
	"curious", "current", "cushion", "custom", "damage", "dawn", "debate", "decade",
	"decline", "decorate", "deliver", "deposit", "desert", "design", "detail", "device",
	"diagram", "diamond", "digital", "dinner", "disorder", "distance", "document", "dolphin",
	"domain", "donkey", "double", "dragon", "drastic", "drift", "duck", "dune",
	"eagle", "early", "earth", "echo", "ecology", "edge", "effort", "elbow",
	"elder", "electric", "elegant", "elephant", "elevator", "embrace", "emerge", "emotion",
}

// GenerateSeedPhrase produces a fresh 12-word seed phrase.
func GenerateSeedPhrase() (string, error) {
	words := make([]string, 12)
	max := big.NewInt(int64(len(seedWords)))
	for i := range words {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate seed phrase: %w", err)
		}
		words[i] = seedWords[n.Int64()]
	}
	return strings.Join(words, " "), nil
}

// DeriveAddress maps a seed phrase to the stable address identifier the
// platform exposes. The value is a digest of the normalized phrase; the
// chain-accurate account address is whatever the wallet extension
// derives when the phrase is imported at sandbox bootstrap.
func DeriveAddress(seed string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(seed)), " ")
	sum := sha256.Sum256([]byte(normalized))
	return "0x" + hex.EncodeToString(sum[12:32])
}
