// Package kvstore provides the expiring key-value mapping backing the OTP
// subsystem: OTP records, reverse code lookups and resend rate-limit markers.
//
// Two backends implement the same contract: an in-memory store for a single
// process (tests, offline development) and a Redis-backed store for shared
// multi-process deployments. Logical expiry is enforced on read paths; there
// is no background sweeper.
package kvstore

import (
	"context"
	"time"
)

// TTLMissing is returned by TTL for keys that do not exist (or have
// logically expired). It mirrors the Redis TTL convention of -2.
const TTLMissing = -2 * time.Second

// Store is an expiring key-value mapping. Per-key operations are atomic;
// nothing serializes operations across keys.
type Store interface {
	// Set writes value under key with the given TTL, replacing any
	// previous value and its expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Get returns the value for key and whether it exists. Expired
	// entries are evicted before answering.
	Get(ctx context.Context, key string) (string, bool, error)
	// Exists reports whether key holds a live value.
	Exists(ctx context.Context, key string) (bool, error)
	// TTL returns the remaining lifetime for key, or TTLMissing for
	// absent (including expired) keys.
	TTL(ctx context.Context, key string) (time.Duration, error)
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
