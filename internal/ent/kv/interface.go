package kv

import "github.com/dgraph-io/badger/v2"

// KeyVal is a key-value store.
type KeyVal interface {
	// Open opens a key-value store.
	Open() error

	// Close closes a key-value store.
	Close() error

	// GetTransaction returns a read-write transaction object.
	GetTransaction() (*badger.Txn, error)

	// GetValue returns a value for a key, or nil if the key is absent.
	GetValue(key []byte) ([]byte, error)
}
