package gconf

import (
	"io/ioutil"

	"github.com/iov-one/msig/errors"
)

// ReadStore is a subset of store.KVStore.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is a subset of store.KVStore.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// Save will Validate the object, before writing it to a special "configuration"
// singleton for that package name.
func Save(db Store, pkg string, src ValidMarshaler) error {
	key := confKey(pkg)
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validation: key %q", key)
	}
	raw, err := src.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal: key %q", key)
	}
	return db.Set(key, raw)
}

// ValidMarshaler is implemented by object that can serialize itself to a binary
// representation. You must add your own Validate method.
type ValidMarshaler interface {
	Marshal() ([]byte, error)
	Validate() error
}

// Load reads the configuration of given package. ErrNotFound is returned if
// the configuration was never saved.
func Load(db ReadStore, pkg string, dst Unmarshaler) error {
	key := confKey(pkg)
	raw, err := db.Get(key)
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "key %q", key)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "unmarshal: key %q", key)
	}
	return nil
}

// Unmarshaler is implemented by object that can load their state from given
// binary representation.
type Unmarshaler interface {
	Unmarshal([]byte) error
}

type Configuration interface {
	ValidMarshaler
	Unmarshaler
}

// LoadFile reads the configuration from given file. The configuration must
// be valid.
func LoadFile(path string, dst Configuration) error {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrapf(errors.ErrNotFound, "read %q: %s", path, err)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "unmarshal %q", path)
	}
	if err := dst.Validate(); err != nil {
		return errors.Wrapf(err, "validation %q", path)
	}
	return nil
}

func confKey(pkg string) []byte {
	return []byte("_c:" + pkg)
}
