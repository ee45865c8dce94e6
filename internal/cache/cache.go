// Package cache stores finished classification reports so that
// resubmitting the same text does not re-run model inference.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage interface for serialized reports
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from the raw submitted text. Hashing keeps
// arbitrary-length news text out of file names and memory keys.
func Key(rawText string) string {
	sum := sha256.Sum256([]byte(rawText))
	return "verinews:v1:" + hex.EncodeToString(sum[:])
}
