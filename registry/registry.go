/*
Package registry is the single source of truth of all supported message
types. The set is closed: it is declared once, at compile time, and cannot
be altered at runtime.
*/
package registry

import (
	"sort"
	"strings"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/msig"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/x/authz"
	"github.com/iov-one/msig/x/bank"
	"github.com/iov-one/msig/x/cyber"
	"github.com/iov-one/msig/x/distribution"
	"github.com/iov-one/msig/x/gov"
	"github.com/iov-one/msig/x/ibc"
	"github.com/iov-one/msig/x/staking"
	"github.com/iov-one/msig/x/vesting"
	"github.com/iov-one/msig/x/wasm"
)

var codecs = map[string]msig.Codec{
	bank.PathMsgSend: msig.NewCodec(bank.PathMsgSend,
		func() msig.Msg { return &bank.MsgSend{} }),
	bank.PathMsgMultiSend: msig.NewCodec(bank.PathMsgMultiSend,
		func() msig.Msg { return &bank.MsgMultiSend{} }),

	staking.PathMsgDelegate: msig.NewCodec(staking.PathMsgDelegate,
		func() msig.Msg { return &staking.MsgDelegate{} }),
	staking.PathMsgUndelegate: msig.NewCodec(staking.PathMsgUndelegate,
		func() msig.Msg { return &staking.MsgUndelegate{} }),
	staking.PathMsgBeginRedelegate: msig.NewCodec(staking.PathMsgBeginRedelegate,
		func() msig.Msg { return &staking.MsgBeginRedelegate{} }),

	distribution.PathMsgFundCommunityPool: msig.NewCodec(distribution.PathMsgFundCommunityPool,
		func() msig.Msg { return &distribution.MsgFundCommunityPool{} }),
	distribution.PathMsgSetWithdrawAddress: msig.NewCodec(distribution.PathMsgSetWithdrawAddress,
		func() msig.Msg { return &distribution.MsgSetWithdrawAddress{} }),
	distribution.PathMsgWithdrawDelegatorReward: msig.NewCodec(distribution.PathMsgWithdrawDelegatorReward,
		func() msig.Msg { return &distribution.MsgWithdrawDelegatorReward{} }),

	vesting.PathMsgCreateVestingAccount: msig.NewCodec(vesting.PathMsgCreateVestingAccount,
		func() msig.Msg { return &vesting.MsgCreateVestingAccount{} }),

	gov.PathMsgVote: msig.NewCodec(gov.PathMsgVote,
		func() msig.Msg { return &gov.MsgVote{} }),

	ibc.PathMsgTransfer: msig.NewCodec(ibc.PathMsgTransfer,
		func() msig.Msg { return &ibc.MsgTransfer{} }),

	wasm.PathMsgInstantiateContract: msig.NewCodec(wasm.PathMsgInstantiateContract,
		func() msig.Msg { return &wasm.MsgInstantiateContract{} }),
	wasm.PathMsgInstantiateContract2: msig.NewCodec(wasm.PathMsgInstantiateContract2,
		func() msig.Msg { return &wasm.MsgInstantiateContract2{} }),
	wasm.PathMsgUpdateAdmin: msig.NewCodec(wasm.PathMsgUpdateAdmin,
		func() msig.Msg { return &wasm.MsgUpdateAdmin{} }),
	wasm.PathMsgExecuteContract: msig.NewCodec(wasm.PathMsgExecuteContract,
		func() msig.Msg { return &wasm.MsgExecuteContract{} }),
	wasm.PathMsgMigrateContract: msig.NewCodec(wasm.PathMsgMigrateContract,
		func() msig.Msg { return &wasm.MsgMigrateContract{} }),

	cyber.PathMsgCyberlink: msig.NewCodec(cyber.PathMsgCyberlink,
		func() msig.Msg { return &cyber.MsgCyberlink{} }),
	cyber.PathMsgInvestmint: msig.NewCodec(cyber.PathMsgInvestmint,
		func() msig.Msg { return &cyber.MsgInvestmint{} }),

	authz.PathMsgGrant: msig.NewCodec(authz.PathMsgGrant,
		func() msig.Msg { return &authz.MsgGrant{} }),
	authz.PathMsgRevoke: msig.NewCodec(authz.PathMsgRevoke,
		func() msig.Msg { return &authz.MsgRevoke{} }),
	authz.PathMsgExec: msig.NewCodec(authz.PathMsgExec,
		func() msig.Msg { return &authz.MsgExec{} }),
}

// Resolve returns the codec of the message type identified by given type
// URL. ErrUnknownMsgType is returned if the type is not supported.
func Resolve(typeURL string) (msig.Codec, error) {
	c, ok := codecs[typeURL]
	if !ok {
		return nil, errors.Wrap(errors.ErrUnknownMsgType, typeURL)
	}
	return c, nil
}

// IsKnown returns true if given type URL belongs to the set of supported
// message types.
func IsKnown(typeURL string) bool {
	_, ok := codecs[typeURL]
	return ok
}

// TypeURLs returns the sorted list of all supported message types.
func TypeURLs() []string {
	urls := make([]string, 0, len(codecs))
	for u := range codecs {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}

const shortNameSep = ".Msg"

// ShortName returns the human readable name of a message type, which is the
// part of the type URL that follows the ".Msg" separator. For example, it is
// "Send" for "/cosmos.bank.v1beta1.MsgSend". If given type URL does not
// contain the separator, it is returned unchanged.
func ShortName(typeURL string) string {
	chunks := strings.Split(typeURL, shortNameSep)
	if len(chunks) < 2 {
		return typeURL
	}
	return chunks[1]
}

// Unpack decodes the binary payload of given container into a message of the
// declared type.
func Unpack(a *msig.Any) (msig.Msg, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	c, err := Resolve(a.TypeUrl)
	if err != nil {
		return nil, err
	}
	msg := c.New()
	if err := proto.Unmarshal(a.Value, msg); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot unpack %s: %s", a.TypeUrl, err)
	}
	return msg, nil
}
