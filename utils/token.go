package utils

import (
	"crypto/rand"
	"fmt"
)

const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandomToken generates a secure random token of the specified length
// from a lowercase base36 alphabet.
func RandomToken(length int) (string, error) {
	randomBytes := make([]byte, length)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	token := make([]byte, length)
	for i, b := range randomBytes {
		token[i] = tokenAlphabet[int(b)%len(tokenAlphabet)]
	}
	return string(token), nil
}
