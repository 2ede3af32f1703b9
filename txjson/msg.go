package txjson

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/gogo/protobuf/types"
	"github.com/iov-one/msig"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/registry"
	"github.com/iov-one/msig/x/authz"
)

// EncodedMsg is the JSON representation of a single transaction message.
type EncodedMsg struct {
	TypeUrl string          `json:"typeUrl"`
	Value   json.RawMessage `json:"value"`
}

// EncodeMsg returns the JSON representation of given message.
func EncodeMsg(msg msig.Msg) (EncodedMsg, error) {
	if msg == nil {
		return EncodedMsg{}, errors.Wrap(errors.ErrEmpty, "message")
	}
	c, err := registry.Resolve(msg.Path())
	if err != nil {
		return EncodedMsg{}, err
	}
	raw, err := c.ToJSON(msg)
	if err != nil {
		return EncodedMsg{}, err
	}
	return EncodedMsg{TypeUrl: msg.Path(), Value: raw}, nil
}

// DecodeMsg returns the message represented by given JSON.
func DecodeMsg(enc EncodedMsg) (msig.Msg, error) {
	c, err := registry.Resolve(enc.TypeUrl)
	if err != nil {
		return nil, err
	}
	if v := bytes.TrimSpace(enc.Value); len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return nil, errors.Wrapf(errors.ErrInput, "%s: no value", enc.TypeUrl)
	}
	if enc.TypeUrl == authz.PathMsgGrant {
		return decodeGrant(enc.Value)
	}
	return c.FromJSON(enc.Value)
}

// decodeGrant copies the authorization of a grant message without
// interpreting it. The authorization type declared by the grant does not
// have to be a type known to this application, so only its type URL and the
// opaque payload are taken. Any other attribute of the grant is ignored.
func decodeGrant(raw json.RawMessage) (msig.Msg, error) {
	var in struct {
		Granter string `json:"granter"`
		Grantee string `json:"grantee"`
		Grant   *struct {
			Authorization *struct {
				TypeUrl string `json:"typeUrl"`
				Value   []byte `json:"value"`
			} `json:"authorization"`
			Expiration *string `json:"expiration"`
		} `json:"grant"`
	}
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "decode %s: %s", authz.PathMsgGrant, err)
	}

	msg := &authz.MsgGrant{
		Granter: in.Granter,
		Grantee: in.Grantee,
	}
	if in.Grant == nil {
		return msg, nil
	}
	msg.Grant = &authz.Grant{}
	if a := in.Grant.Authorization; a != nil {
		msg.Grant.Authorization = &msig.Any{
			TypeUrl: a.TypeUrl,
			Value:   a.Value,
		}
	}
	if exp := in.Grant.Expiration; exp != nil {
		t, err := time.Parse(time.RFC3339Nano, *exp)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "decode %s expiration: %s", authz.PathMsgGrant, err)
		}
		ts, err := types.TimestampProto(t)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "decode %s expiration: %s", authz.PathMsgGrant, err)
		}
		msg.Grant.Expiration = ts
	}
	return msg, nil
}
