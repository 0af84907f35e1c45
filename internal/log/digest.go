package log

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

// digestBytes is the number of hash bytes kept by Digest.
const digestBytes = 6

// Digest returns a short SHA3-256 fingerprint of value for log correlation.
// Surrounding whitespace is ignored, so " abc " and "abc" share a digest.
func Digest(value string) string {
	sum := sha3.Sum256([]byte(strings.TrimSpace(value)))
	return hex.EncodeToString(sum[:digestBytes])
}
