package kvio

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v2"
	"github.com/gnames/gnsys"
	"github.com/gnames/kvdata/internal/ent/kv"
)

// ErrNotOpen is returned when the store is used before Open.
var ErrNotOpen = errors.New("key-value store is not open")

type kvio struct {
	dir          string
	maxTableSize int64
	db           *badger.DB
}

// Option type allows to change settings of the key-value store.
type Option func(*kvio)

// OptMaxTableSize sets the size of badger tables. Smaller tables also
// limit the size of a single transaction.
func OptMaxTableSize(i int64) Option {
	return func(k *kvio) {
		k.maxTableSize = i
	}
}

// New prepares an empty directory for a key-value store. Data left from
// previous runs is removed.
func New(dir string, opts ...Option) (kv.KeyVal, error) {
	err := gnsys.MakeDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot create key-value dir %s: %w", dir, err)
	}

	err = gnsys.CleanDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot clean key-value dir %s: %w", dir, err)
	}

	res := kvio{dir: dir}
	for _, opt := range opts {
		opt(&res)
	}
	return &res, nil
}

// Open opens a key-value store.
func (k *kvio) Open() error {
	if k.db != nil {
		slog.Warn("Key-value store is already open", "dir", k.dir)
		return nil
	}
	options := badger.DefaultOptions(k.dir)
	options.Logger = nil
	options.SyncWrites = false
	if k.maxTableSize > 0 {
		options = options.WithMaxTableSize(k.maxTableSize)
	}

	db, err := badger.Open(options)
	if err != nil {
		return err
	}
	k.db = db
	return nil
}

// Close closes a key-value store.
func (k *kvio) Close() error {
	if k.db == nil {
		return nil
	}
	err := k.db.Close()
	k.db = nil
	return err
}

// GetTransaction returns a read-write transaction.
func (k *kvio) GetTransaction() (*badger.Txn, error) {
	if k.db == nil {
		return nil, ErrNotOpen
	}
	return k.db.NewTransaction(true), nil
}

// GetValue returns a copy of the value for a key. Missing key gives nil
// value and nil error.
func (k *kvio) GetValue(key []byte) ([]byte, error) {
	if k.db == nil {
		return nil, ErrNotOpen
	}
	txn := k.db.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}
