package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash returns the hex SHA-256 digest of s.
func Hash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// SumBytes is Hash for a byte slice.
func SumBytes(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

// Key builds a stable cache key from its parts. Parts are joined with a separator
// that cannot occur in any of them after escaping, so ("a|b","c") and ("a","b|c") differ.
func Key(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = strings.ReplaceAll(p, "|", `\|`)
	}
	return Hash(strings.Join(escaped, "|"))
}
