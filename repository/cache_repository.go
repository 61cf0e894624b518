package repository

import "time"

// CacheRepository is a string key-value cache with per-entry expiry.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
}
