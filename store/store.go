package store

import (
	"github.com/iov-one/msig/errors"
	dbm "github.com/tendermint/tendermint/libs/db"
)

// KVStore is the storage interface used by buckets and the configuration.
type KVStore interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Delete(key []byte) error
	// Keys returns all keys starting with given prefix in ascending
	// order.
	Keys(prefix []byte) ([][]byte, error)
}

// DB is a KVStore backed by a tendermint database.
type DB struct {
	db dbm.DB
}

var _ KVStore = (*DB)(nil)

// Open returns a database persisted in given directory. The directory is
// created if it does not exist.
func Open(dir string) (*DB, error) {
	db, err := dbm.NewGoLevelDB("msig", dir)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrState, "open database in %q: %s", dir, err)
	}
	return &DB{db: db}, nil
}

// NewMemory returns a database that keeps all data in memory.
func NewMemory() *DB {
	return &DB{db: dbm.NewMemDB()}
}

// Get returns the value stored under given key or nil.
func (d *DB) Get(key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "key")
	}
	return d.db.Get(key), nil
}

func (d *DB) Set(key, value []byte) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if value == nil {
		return errors.Wrap(errors.ErrEmpty, "value")
	}
	d.db.SetSync(key, value)
	return nil
}

func (d *DB) Delete(key []byte) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	d.db.DeleteSync(key)
	return nil
}

func (d *DB) Keys(prefix []byte) ([][]byte, error) {
	it := dbm.IteratePrefix(d.db, prefix)
	defer it.Close()

	var keys [][]byte
	for ; it.Valid(); it.Next() {
		k := it.Key()
		cp := make([]byte, len(k))
		copy(cp, k)
		keys = append(keys, cp)
	}
	return keys, nil
}

// Close releases the database.
func (d *DB) Close() {
	d.db.Close()
}
