package txjson

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/gogo/protobuf/types"
	"github.com/iov-one/msig"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/msigtest"
	"github.com/iov-one/msig/msigtest/assert"
	"github.com/iov-one/msig/msigtest/fixture"
	"github.com/iov-one/msig/registry"
	"github.com/iov-one/msig/x/authz"
	"github.com/iov-one/msig/x/bank"
)

// burnMsg is a message of a type that is not supported.
type burnMsg struct {
	bank.MsgSend
}

func (burnMsg) Path() string { return "/cosmos.bank.v1beta1.MsgBurn" }

func TestMsgRoundTrip(t *testing.T) {
	for _, msg := range fixture.All() {
		t.Run(registry.ShortName(msg.Path()), func(t *testing.T) {
			enc, err := EncodeMsg(msg)
			assert.Nil(t, err)
			assert.Equal(t, msg.Path(), enc.TypeUrl)

			got, err := DecodeMsg(enc)
			assert.Nil(t, err)
			assert.MsgEqual(t, msg, got)
		})
	}
}

func TestUnknownMsgType(t *testing.T) {
	_, err := EncodeMsg(&burnMsg{})
	assert.IsErr(t, errors.ErrUnknownMsgType, err)

	_, err = DecodeMsg(EncodedMsg{
		TypeUrl: "/cosmos.bank.v1beta1.MsgBurn",
		Value:   json.RawMessage(`{"fromAddress":"` + msigtest.Alice + `"}`),
	})
	assert.IsErr(t, errors.ErrUnknownMsgType, err)

	_, err = DecodeMsg(EncodedMsg{Value: json.RawMessage(`{}`)})
	assert.IsErr(t, errors.ErrUnknownMsgType, err)
}

func TestDecodeMalformedMsg(t *testing.T) {
	cases := map[string]EncodedMsg{
		"no value": {
			TypeUrl: bank.PathMsgSend,
		},
		"null value": {
			TypeUrl: bank.PathMsgSend,
			Value:   json.RawMessage(`null`),
		},
		"unknown attribute": {
			TypeUrl: bank.PathMsgSend,
			Value:   json.RawMessage(`{"fromAddress":"a","sender":"b"}`),
		},
		"wrong attribute type": {
			TypeUrl: bank.PathMsgSend,
			Value:   json.RawMessage(`{"amount":"1000uatom"}`),
		},
		"not an object": {
			TypeUrl: bank.PathMsgSend,
			Value:   json.RawMessage(`[1, 2]`),
		},
		"grant with an authorization that is not base64": {
			TypeUrl: authz.PathMsgGrant,
			Value:   json.RawMessage(`{"grant":{"authorization":{"typeUrl":"/x","value":{"a":1}}}}`),
		},
		"grant with a broken expiration": {
			TypeUrl: authz.PathMsgGrant,
			Value:   json.RawMessage(`{"grant":{"expiration":"tomorrow"}}`),
		},
	}

	for testName, enc := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := DecodeMsg(enc)
			assert.IsErr(t, errors.ErrInput, err)
		})
	}
}

func TestDecodeGrantCopiesAuthorization(t *testing.T) {
	payload := []byte("opaque authorization payload")
	raw := `{
		"granter": "` + msigtest.Alice + `",
		"grantee": "` + msigtest.Bob + `",
		"grant": {
			"authorization": {
				"typeUrl": "/cosmos.bank.v1beta1.SendAuthorization",
				"value": "` + base64.StdEncoding.EncodeToString(payload) + `",
				"spendLimit": [{"denom": "uatom", "amount": "10"}]
			},
			"expiration": "2030-01-01T00:00:00Z",
			"comment": "not a grant attribute"
		}
	}`

	// The general descriptor rejects the attributes it does not know.
	c, err := registry.Resolve(authz.PathMsgGrant)
	assert.Nil(t, err)
	_, err = c.FromJSON(json.RawMessage(raw))
	assert.IsErr(t, errors.ErrInput, err)

	msg, err := DecodeMsg(EncodedMsg{TypeUrl: authz.PathMsgGrant, Value: json.RawMessage(raw)})
	assert.Nil(t, err)
	want := &authz.MsgGrant{
		Granter: msigtest.Alice,
		Grantee: msigtest.Bob,
		Grant: &authz.Grant{
			Authorization: &msig.Any{
				TypeUrl: "/cosmos.bank.v1beta1.SendAuthorization",
				Value:   payload,
			},
			Expiration: &types.Timestamp{Seconds: 1893456000},
		},
	}
	assert.MsgEqual(t, want, msg)
}

func TestDecodeGrantWithoutOptionalAttributes(t *testing.T) {
	cases := map[string]struct {
		raw  string
		want *authz.MsgGrant
	}{
		"no grant": {
			raw:  `{"granter":"` + msigtest.Alice + `"}`,
			want: &authz.MsgGrant{Granter: msigtest.Alice},
		},
		"no authorization": {
			raw:  `{"grant":{}}`,
			want: &authz.MsgGrant{Grant: &authz.Grant{}},
		},
		"no expiration": {
			raw: `{"grant":{"authorization":{"typeUrl":"/x"}}}`,
			want: &authz.MsgGrant{Grant: &authz.Grant{
				Authorization: &msig.Any{TypeUrl: "/x"},
			}},
		},
		"null expiration": {
			raw: `{"grant":{"authorization":{"typeUrl":"/x"},"expiration":null}}`,
			want: &authz.MsgGrant{Grant: &authz.Grant{
				Authorization: &msig.Any{TypeUrl: "/x"},
			}},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg, err := DecodeMsg(EncodedMsg{TypeUrl: authz.PathMsgGrant, Value: json.RawMessage(tc.raw)})
			assert.Nil(t, err)
			assert.MsgEqual(t, tc.want, msg)
		})
	}
}
