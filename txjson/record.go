package txjson

import (
	"bytes"
	"encoding/json"

	"github.com/iov-one/msig"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/gas"
	"github.com/iov-one/msig/registry"
	"github.com/tendermint/tendermint/libs/log"
)

// Record is a transaction that is being built or is collecting signatures.
// The order of messages is the order of execution.
type Record struct {
	AccountNumber uint64
	Sequence      uint64
	ChainID       string
	Msgs          []msig.Msg
	Fee           *gas.Fee
	Memo          string
}

// NewRecord returns a record for given chain containing given messages. The
// fee is not set.
func NewRecord(chainID string, msgs ...msig.Msg) *Record {
	return &Record{ChainID: chainID, Msgs: msgs}
}

// Validate returns an error if the record cannot be signed, because it lacks
// a chain, messages or a fee, or because any of its messages is invalid.
func (r *Record) Validate() error {
	if r == nil {
		return errors.Wrap(errors.ErrEmpty, "record")
	}
	var errs error
	if r.ChainID == "" {
		errs = errors.AppendField(errs, "ChainID", errors.ErrEmpty)
	}
	if len(r.Msgs) == 0 {
		errs = errors.AppendField(errs, "Msgs", errors.ErrEmpty)
	}
	for i, m := range r.Msgs {
		if m == nil {
			errs = errors.AppendField(errs, fieldMsg(i), errors.ErrEmpty)
			continue
		}
		if !registry.IsKnown(m.Path()) {
			errs = errors.AppendField(errs, fieldMsg(i), errors.Wrap(errors.ErrUnknownMsgType, m.Path()))
			continue
		}
		errs = errors.AppendField(errs, fieldMsg(i), m.Validate())
	}
	errs = errors.AppendField(errs, "Fee", r.Fee.Validate())
	return errs
}

// EstimateGas returns the gas estimate of all messages of this record.
func (r *Record) EstimateGas() (uint64, error) {
	return gas.TotalCost(gas.MsgTypes(r.Msgs))
}

// SetFee replaces the fee with one calculated from given limit and price.
// Zero limit means the estimate. Any fee granter or payer is preserved.
func (r *Record) SetFee(limit uint64, price gas.Price) error {
	if limit == 0 {
		n, err := r.EstimateGas()
		if err != nil {
			return errors.Wrap(err, "estimate gas")
		}
		limit = n
	}
	if limit > uint64(gas.MaxLimit) {
		return errors.Field("GasLimit", errors.ErrInput, "must not be greater than %d", gas.MaxLimit)
	}
	fee := gas.CalculateFee(limit, price)
	if r.Fee != nil {
		fee.Granter = r.Fee.Granter
		fee.Payer = r.Fee.Payer
	}
	r.Fee = &fee
	return nil
}

// recordJSON is the serialized form of a record.
type recordJSON struct {
	AccountNumber uint64        `json:"accountNumber"`
	Sequence      uint64        `json:"sequence"`
	ChainID       string        `json:"chainId"`
	Msgs          *[]EncodedMsg `json:"msgs"`
	Fee           *gas.Fee      `json:"fee"`
	Memo          string        `json:"memo"`
}

// EncodeRecord returns the JSON representation of given record. All
// messages must be of a known type.
func EncodeRecord(r *Record) ([]byte, error) {
	if r == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "record")
	}
	msgs := make([]EncodedMsg, len(r.Msgs))
	for i, m := range r.Msgs {
		enc, err := EncodeMsg(m)
		if err != nil {
			return nil, errors.Wrap(err, fieldMsg(i))
		}
		msgs[i] = enc
	}
	raw, err := json.Marshal(recordJSON{
		AccountNumber: r.AccountNumber,
		Sequence:      r.Sequence,
		ChainID:       r.ChainID,
		Msgs:          &msgs,
		Fee:           r.Fee,
		Memo:          r.Memo,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return raw, nil
}

// ParseRecord decodes the JSON representation of a record. Either all
// messages are decoded or an error is returned.
func ParseRecord(raw []byte) (*Record, error) {
	var in recordJSON
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "malformed record: %s", err)
	}
	if in.Msgs == nil {
		return nil, errors.Wrap(errors.ErrInput, "malformed record: no msgs list")
	}
	msgs, err := decodeMsgs(*in.Msgs)
	if err != nil {
		return nil, err
	}
	return &Record{
		AccountNumber: in.AccountNumber,
		Sequence:      in.Sequence,
		ChainID:       in.ChainID,
		Msgs:          msgs,
		Fee:           in.Fee,
		Memo:          in.Memo,
	}, nil
}

func decodeMsgs(encoded []EncodedMsg) ([]msig.Msg, error) {
	msgs := make([]msig.Msg, len(encoded))
	for i, enc := range encoded {
		m, err := DecodeMsg(enc)
		if err != nil {
			return nil, errors.Wrap(err, fieldMsg(i))
		}
		msgs[i] = m
	}
	return msgs, nil
}

// DecodeRecord is ParseRecord for callers that only need to know whether a
// record could be loaded. The failure reason is logged and nil is returned.
// A nil result never means an empty transaction.
func DecodeRecord(logger log.Logger, raw []byte) *Record {
	r, err := ParseRecord(raw)
	if err != nil {
		logger.Error("cannot decode transaction record", "err", err)
		return nil
	}
	return r
}

// RecordFromRawMsgs returns a record with the metadata of given template and
// the messages decoded from a JSON array of encoded messages.
func RecordFromRawMsgs(raw []byte, tmpl Record) (*Record, error) {
	if v := bytes.TrimSpace(raw); len(v) == 0 || v[0] != '[' {
		return nil, errors.Wrap(errors.ErrInput, "messages must be a JSON array")
	}
	var encoded []EncodedMsg
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "malformed messages: %s", err)
	}
	msgs, err := decodeMsgs(encoded)
	if err != nil {
		return nil, err
	}
	tmpl.Msgs = msgs
	return &tmpl, nil
}

// MsgTypeCount is the number of messages of a single type.
type MsgTypeCount struct {
	MsgType string
	Count   int
}

// CountMessageTypes returns the number of messages of every type present in
// the serialized record, using the short type names and ordered by the first
// occurrence. The result is empty if the record cannot be decoded.
func CountMessageTypes(logger log.Logger, raw []byte) []MsgTypeCount {
	r := DecodeRecord(logger, raw)
	if r == nil {
		return nil
	}
	var counts []MsgTypeCount
	index := make(map[string]int)
	for _, m := range r.Msgs {
		name := registry.ShortName(m.Path())
		i, ok := index[name]
		if !ok {
			i = len(counts)
			index[name] = i
			counts = append(counts, MsgTypeCount{MsgType: name})
		}
		counts[i].Count++
	}
	return counts
}

// SummarizeMessageTypes returns the number of messages of every type present
// in the serialized record, keyed by the short type name. The result is empty
// if the record cannot be decoded.
func SummarizeMessageTypes(logger log.Logger, raw []byte) map[string]int {
	summary := make(map[string]int)
	for _, c := range CountMessageTypes(logger, raw) {
		summary[c.MsgType] = c.Count
	}
	return summary
}

func fieldMsg(i int) string {
	return errors.Path("Msgs", i)
}
