// Package cache is the optional memoization layer callers may compose on
// top of the pure engines. Entries are keyed by a stable hash of the
// inputs, so results never need invalidation: a changed snapshot simply
// hashes to a new key, and stale entries age out via TTL.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Cache stores serialized engine results.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Key derives a stable cache key from the JSON form of the inputs.
func Key(prefix string, inputs ...any) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, in := range inputs {
		// Encoding into a hash cannot fail for plain data structs.
		_ = enc.Encode(in)
	}
	return prefix + ":" + hex.EncodeToString(h.Sum(nil))
}
