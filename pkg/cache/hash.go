package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// hashKey returns "prefix:" followed by the SHA-256 of the JSON-encoded parts.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return prefix + ":" + hex.EncodeToString(sum[:])
}

// Hash returns the 64-character hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashStrings hashes a list of strings. The list boundaries are part of the
// hash, so ["ab","c"] and ["a","bc"] differ.
func HashStrings(items []string) string {
	return Hash([]byte(strings.Join(items, "\x00") + "\x00"))
}
