// Package cache provides the short-lived response cache used by the evidence
// source clients. Entries are raw response payloads keyed by source and query.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for response caching.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
}

// Key builds a cache key from a source name and the query it was asked.
func Key(source, query string) string {
	hash := sha256.Sum256([]byte(query))
	return "letterrush:v1:" + source + ":" + hex.EncodeToString(hash[:])
}
