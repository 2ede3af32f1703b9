package msig

import (
	"bytes"
	"encoding/json"

	"github.com/gogo/protobuf/jsonpb"
	"github.com/iov-one/msig/errors"
)

// Codec is the capability bundle of a single message type.
type Codec interface {
	// New returns a zero value message with all defaults set.
	New() Msg
	// FromPartial builds a message from a subset of its fields, keyed by
	// the camelCase JSON names. Missing fields keep their default value.
	// Unknown fields are rejected.
	FromPartial(fields map[string]interface{}) (Msg, error)
	// ToJSON returns the canonical JSON representation of given message.
	ToJSON(Msg) (json.RawMessage, error)
	// FromJSON decodes the canonical JSON representation of a message.
	FromJSON(json.RawMessage) (Msg, error)
}

// NewCodec returns a codec for the message type identified by path. The
// constructor must return a new, zero value instance on every call.
func NewCodec(path string, ctor func() Msg) Codec {
	return &codec{path: path, ctor: ctor}
}

type codec struct {
	path string
	ctor func() Msg
}

var _ Codec = (*codec)(nil)

// marshaler produces the same representation as the protobuf JSON mapping
// used by cosmjs: camelCase names, default values omitted.
var marshaler = jsonpb.Marshaler{}

func (c *codec) New() Msg {
	return c.ctor()
}

func (c *codec) FromPartial(fields map[string]interface{}) (Msg, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return c.FromJSON(raw)
}

func (c *codec) ToJSON(msg Msg) (json.RawMessage, error) {
	if msg == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "message")
	}
	if p := msg.Path(); p != c.path {
		return nil, errors.Wrapf(errors.ErrType, "codec %s cannot encode %s", c.path, p)
	}
	var buf bytes.Buffer
	if err := marshaler.Marshal(&buf, msg); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "encode %s: %s", c.path, err)
	}
	return buf.Bytes(), nil
}

func (c *codec) FromJSON(raw json.RawMessage) (Msg, error) {
	msg := c.ctor()
	u := jsonpb.Unmarshaler{AllowUnknownFields: false}
	if err := u.Unmarshal(bytes.NewReader(raw), msg); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "decode %s: %s", c.path, err)
	}
	return msg, nil
}
