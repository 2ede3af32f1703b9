package txjson

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/msig"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/registry"
	"github.com/iov-one/msig/x/authz"
)

// TxBody is the cosmos.tx.v1beta1.TxBody message, the part of a
// transaction that every signer commits to.
type TxBody struct {
	Messages []*msig.Any `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages,omitempty"`
	Memo     string      `protobuf:"bytes,2,opt,name=memo,proto3" json:"memo,omitempty"`
}

func (m *TxBody) Reset()         { *m = TxBody{} }
func (m *TxBody) String() string { return proto.CompactTextString(m) }
func (*TxBody) ProtoMessage()    {}

// Body returns the transaction body of given record.
func Body(r *Record) (*TxBody, error) {
	if r == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "record")
	}
	msgs, err := packAll(r.Msgs)
	if err != nil {
		return nil, err
	}
	return &TxBody{Messages: msgs, Memo: r.Memo}, nil
}

// BodyBytes returns the protobuf serialized transaction body of given
// record, ready to be handed over to a signer.
func BodyBytes(r *Record) ([]byte, error) {
	body, err := Body(r)
	if err != nil {
		return nil, err
	}
	raw, err := proto.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return raw, nil
}

// AsExec returns a copy of given record with all messages wrapped into a
// single authz exec message, to be executed on behalf of their signers by
// the grantee. The fee is copied unchanged and most likely must be
// recalculated.
func AsExec(grantee string, r *Record) (*Record, error) {
	if r == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "record")
	}
	if len(r.Msgs) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "no messages to execute")
	}
	msgs, err := packAll(r.Msgs)
	if err != nil {
		return nil, err
	}
	exec := &authz.MsgExec{Grantee: grantee, Msgs: msgs}
	if err := exec.Validate(); err != nil {
		return nil, err
	}
	cp := *r
	cp.Msgs = []msig.Msg{exec}
	return &cp, nil
}

func packAll(msgs []msig.Msg) ([]*msig.Any, error) {
	res := make([]*msig.Any, len(msgs))
	for i, m := range msgs {
		if m == nil || !registry.IsKnown(m.Path()) {
			return nil, errors.Wrap(errors.ErrUnknownMsgType, fieldMsg(i))
		}
		a, err := msig.Pack(m)
		if err != nil {
			return nil, errors.Wrap(err, fieldMsg(i))
		}
		res[i] = a
	}
	return res, nil
}
