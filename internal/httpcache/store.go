// Package httpcache provides the response cache backing the Etherscan
// client's transport. Two stores are available: a process-local memory
// store and a file-backed store persisted in the platform temp
// directory. Both enforce the same per-entry expiry semantics; backend
// selection never changes caching behavior.
package httpcache

import "time"

// Store describes a cache of raw HTTP response bodies keyed by the
// full outgoing request.
type Store interface {
	// Get returns the cached body for the key if a non-expired entry
	// exists.
	Get(key string) ([]byte, bool)
	// Set stores the body under the key until the given expiry time,
	// replacing any existing entry (last writer wins).
	Set(key string, body []byte, expiresAt time.Time) error
}

// Entry is a cached response body and its expiry timestamp.
type Entry struct {
	Body      []byte    `json:"body"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (e Entry) expired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}
