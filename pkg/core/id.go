package core

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// DeriveID computes a stable 16-hex-character identifier from the ordered
// parts, joined with "|". Identical parts always yield the identical id
// across runs and processes. The truncation defeats collision-resistance
// guarantees, so this is strictly a lookup key, never a security token.
func DeriveID(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])[:16]
}
