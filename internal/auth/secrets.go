package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"math/big"
)

const apiKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateApiKey returns a cryptographically random alphanumeric key string
// of the given length.
func GenerateApiKey(length int) (string, error) {
	key := make([]byte, length)
	max := big.NewInt(int64(len(apiKeyAlphabet)))
	for i := range key {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		key[i] = apiKeyAlphabet[n.Int64()]
	}
	return string(key), nil
}

// GenerateResetToken returns a random 64-byte reset token as hex plaintext
// together with the SHA-256 hash that gets persisted. The plaintext is only
// ever embedded in the reset link; storage keeps the hash.
func GenerateResetToken() (plaintext string, hash string, err error) {
	raw := make([]byte, 64)
	if _, err = rand.Read(raw); err != nil {
		return "", "", err
	}
	plaintext = hex.EncodeToString(raw)
	hash = HashResetToken(plaintext)
	return plaintext, hash, nil
}

// HashResetToken computes the stored form of a plaintext reset token.
func HashResetToken(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// ResetTokenMatches compares a stored token hash with the hash of a supplied
// plaintext in constant time.
func ResetTokenMatches(storedHash, plaintext string) bool {
	supplied := HashResetToken(plaintext)
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(supplied)) == 1
}
