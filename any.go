package msig

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/msig/errors"
)

// Any contains an arbitrary serialized protocol message along with the type
// URL that describes the type of the serialized message. It is wire
// compatible with google.protobuf.Any, but its JSON representation is a
// plain object with the typeUrl and base64 encoded value attributes.
type Any struct {
	TypeUrl string `protobuf:"bytes,1,opt,name=type_url,json=typeUrl,proto3" json:"type_url,omitempty"`
	Value   []byte `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *Any) Reset()         { *m = Any{} }
func (m *Any) String() string { return proto.CompactTextString(m) }
func (*Any) ProtoMessage()    {}

// Pack serializes given message into an Any container.
func Pack(msg Msg) (*Any, error) {
	if msg == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "message")
	}
	raw, err := proto.Marshal(msg)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot serialize %s: %s", msg.Path(), err)
	}
	return &Any{TypeUrl: msg.Path(), Value: raw}, nil
}

// Validate returns an error if the container does not declare a type.
func (m *Any) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrEmpty, "any")
	}
	if m.TypeUrl == "" {
		return errors.Field("TypeUrl", errors.ErrEmpty, "required")
	}
	return nil
}
