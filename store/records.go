package store

import (
	"bytes"

	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/txjson"
	"github.com/tendermint/tendermint/libs/log"
)

const recordBucket = "rec"

var recordPrefix = []byte(recordBucket + ":")

// RecordBucket keeps transaction records serialized to JSON. Each record is
// identified by a sequence value.
type RecordBucket struct {
	db  KVStore
	seq Sequence
}

// NewRecordBucket returns a bucket that stores records in given database.
func NewRecordBucket(db KVStore) *RecordBucket {
	return &RecordBucket{
		db:  db,
		seq: NewSequence(recordBucket, "id"),
	}
}

// Save stores given record under a new identifier. All messages of the
// record must be of a known type.
func (b *RecordBucket) Save(r *txjson.Record) (uint64, error) {
	raw, err := txjson.EncodeRecord(r)
	if err != nil {
		return 0, errors.Wrap(err, "encode")
	}
	id, err := b.seq.NextInt(b.db)
	if err != nil {
		return 0, errors.Wrap(err, "next id")
	}
	if err := b.db.Set(recordKey(id), raw); err != nil {
		return 0, errors.Wrap(err, "set")
	}
	return id, nil
}

// Raw returns the serialized record.
func (b *RecordBucket) Raw(id uint64) ([]byte, error) {
	raw, err := b.db.Get(recordKey(id))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "record %d", id)
	}
	return raw, nil
}

// Load returns the record with given identifier. Either all messages of the
// record are decoded or an error is returned.
func (b *RecordBucket) Load(id uint64) (*txjson.Record, error) {
	raw, err := b.Raw(id)
	if err != nil {
		return nil, err
	}
	r, err := txjson.ParseRecord(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "record %d", id)
	}
	return r, nil
}

// List returns identifiers of all stored records in ascending order.
func (b *RecordBucket) List() ([]uint64, error) {
	keys, err := b.db.Keys(recordPrefix)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(keys))
	for _, k := range keys {
		id, err := DecodeSequence(bytes.TrimPrefix(k, recordPrefix))
		if err != nil {
			return nil, errors.Wrapf(errors.ErrModel, "key %q: %s", k, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Delete removes the record with given identifier.
func (b *RecordBucket) Delete(id uint64) error {
	if _, err := b.Raw(id); err != nil {
		return err
	}
	return b.db.Delete(recordKey(id))
}

// Summary returns the number of messages of each type in the record with
// given identifier. A record that cannot be decoded has an empty summary and
// the failure is logged.
func (b *RecordBucket) Summary(logger log.Logger, id uint64) ([]txjson.MsgTypeCount, error) {
	raw, err := b.Raw(id)
	if err != nil {
		return nil, err
	}
	return txjson.CountMessageTypes(logger.With("record", id), raw), nil
}

func recordKey(id uint64) []byte {
	return append(append([]byte{}, recordPrefix...), EncodeSequence(id)...)
}
