// Package kvstore provides the durable key-value substrate the ledger persists to.
// Values are opaque strings; the store gateway decides their encoding.
package kvstore

import (
	"fmt"
	"regexp"
)

// KV is a string key-value store.
type KV interface {
	// Get returns the value for key, or ok=false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Set overwrites the value stored under key.
	Set(key, value string) error
	// Close releases underlying resources.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

var keyRe = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// ValidKey reports whether key can be used with every backend.
func ValidKey(key string) error {
	if !keyRe.MatchString(key) {
		return fmt.Errorf("invalid key %q: only letters, digits, '_', '.' and '-' are allowed", key)
	}
	return nil
}

// Open creates the backend named by backend. location is the data directory for
// the file backend and the database path for sqlite; it is ignored for memory.
func Open(backend, location string) (KV, error) {
	switch backend {
	case BackendFile:
		return NewFile(location)
	case BackendSQLite:
		return OpenSQLite(location)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
