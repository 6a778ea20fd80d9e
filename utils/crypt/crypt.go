package crypt

import (
	"crypto/sha256"
	"encoding/base64"
)

// HashSHA256Base64 returns the standard Base64 encoding of the SHA-256 digest.
// The gateway expects Base64, not hex.
func HashSHA256Base64(dataString string) string {
	h := sha256.New()
	h.Write([]byte(dataString))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// SecureCompare reports whether two strings are equal without leaking the
// position of the first differing byte. A length mismatch returns false
// immediately; length is not secret here.
func SecureCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	var diff byte
	for i := 0; i < len(a); i++ {
		diff |= a[i] ^ b[i]
	}

	return diff == 0
}
