package generator

import (
	"crypto/rand"
	"encoding/hex"
)

// CodeBytes is the number of random bytes behind a generated short code.
const CodeBytes = 4

// GenerateCode returns n random bytes rendered as 2*n lowercase hex characters.
func GenerateCode(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
