// Package fixture provides valid sample messages of every supported message
// type.
package fixture

import (
	"github.com/gogo/protobuf/types"
	"github.com/iov-one/msig"
	"github.com/iov-one/msig/coin"
	"github.com/iov-one/msig/msigtest"
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

// Send returns a single denomination send from Alice to Bob.
func Send(amount int64) *bank.MsgSend {
	return &bank.MsgSend{
		FromAddress: msigtest.Alice,
		ToAddress:   msigtest.Bob,
		Amount:      []*coin.Coin{coin.NewCoin(amount, "uatom")},
	}
}

// MultiSend returns a balanced multi send.
func MultiSend() *bank.MsgMultiSend {
	return &bank.MsgMultiSend{
		Inputs: []*bank.Input{
			{Address: msigtest.Alice, Coins: []*coin.Coin{coin.NewCoin(30, "uatom")}},
		},
		Outputs: []*bank.Output{
			{Address: msigtest.Bob, Coins: []*coin.Coin{coin.NewCoin(10, "uatom")}},
			{Address: msigtest.Carol, Coins: []*coin.Coin{coin.NewCoin(20, "uatom")}},
		},
	}
}

// Grant returns a generic vote authorization from Alice to Bob, valid until
// the beginning of 2030.
func Grant() *authz.MsgGrant {
	auth, err := msig.Pack(&authz.GenericAuthorization{Msg: gov.PathMsgVote})
	if err != nil {
		panic(err)
	}
	return &authz.MsgGrant{
		Granter: msigtest.Alice,
		Grantee: msigtest.Bob,
		Grant: &authz.Grant{
			Authorization: auth,
			Expiration:    &types.Timestamp{Seconds: 1893456000},
		},
	}
}

// All returns one valid message of every supported type, in the order of
// the type table.
func All() []msig.Msg {
	vote, err := msig.Pack(&gov.MsgVote{ProposalId: 7, Voter: msigtest.Alice, Option: gov.VoteOptionYes})
	if err != nil {
		panic(err)
	}

	return []msig.Msg{
		Send(1000),
		MultiSend(),
		&staking.MsgDelegate{
			DelegatorAddress: msigtest.Alice,
			ValidatorAddress: msigtest.ValOne,
			Amount:           coin.NewCoin(5000000, "uatom"),
		},
		&staking.MsgUndelegate{
			DelegatorAddress: msigtest.Alice,
			ValidatorAddress: msigtest.ValOne,
			Amount:           coin.NewCoin(1000000, "uatom"),
		},
		&staking.MsgBeginRedelegate{
			DelegatorAddress:    msigtest.Alice,
			ValidatorSrcAddress: msigtest.ValOne,
			ValidatorDstAddress: msigtest.ValTwo,
			Amount:              coin.NewCoin(2000000, "uatom"),
		},
		&distribution.MsgFundCommunityPool{
			Amount:    []*coin.Coin{coin.NewCoin(100, "uatom")},
			Depositor: msigtest.Alice,
		},
		&distribution.MsgSetWithdrawAddress{
			DelegatorAddress: msigtest.Alice,
			WithdrawAddress:  msigtest.Carol,
		},
		&distribution.MsgWithdrawDelegatorReward{
			DelegatorAddress: msigtest.Alice,
			ValidatorAddress: msigtest.ValTwo,
		},
		&vesting.MsgCreateVestingAccount{
			FromAddress: msigtest.Alice,
			ToAddress:   msigtest.Carol,
			Amount:      []*coin.Coin{coin.NewCoin(42, "uatom")},
			EndTime:     1893456000,
			Delayed:     true,
		},
		&gov.MsgVote{
			ProposalId: 101,
			Voter:      msigtest.Alice,
			Option:     gov.VoteOptionNoWithVeto,
		},
		&ibc.MsgTransfer{
			SourcePort:       "transfer",
			SourceChannel:    "channel-141",
			Token:            coin.NewCoin(10, "uatom"),
			Sender:           msigtest.Alice,
			Receiver:         msigtest.Osmo,
			TimeoutHeight:    &ibc.Height{RevisionNumber: 1, RevisionHeight: 12000000},
			TimeoutTimestamp: 1700000000000000000,
			Memo:             "ibc memo",
		},
		&wasm.MsgInstantiateContract{
			Sender: msigtest.Alice,
			Admin:  msigtest.Alice,
			CodeId: 12,
			Label:  "counter",
			Msg:    []byte(`{"count":0}`),
			Funds:  []*coin.Coin{coin.NewCoin(1, "uatom")},
		},
		&wasm.MsgInstantiateContract2{
			Sender: msigtest.Alice,
			CodeId: 12,
			Label:  "counter",
			Msg:    []byte(`{"count":1}`),
			Salt:   []byte("salt"),
			FixMsg: true,
		},
		&wasm.MsgUpdateAdmin{
			Sender:   msigtest.Alice,
			NewAdmin: msigtest.Bob,
			Contract: msigtest.Wasm,
		},
		&wasm.MsgExecuteContract{
			Sender:   msigtest.Alice,
			Contract: msigtest.Wasm,
			Msg:      []byte(`{"increment":{}}`),
		},
		&wasm.MsgMigrateContract{
			Sender:   msigtest.Alice,
			Contract: msigtest.Wasm,
			CodeId:   13,
			Msg:      []byte(`{}`),
		},
		&cyber.MsgCyberlink{
			Neuron: msigtest.Bostrom,
			Links: []*cyber.Link{
				{From: msigtest.ParticleOne, To: msigtest.ParticleTwo},
			},
		},
		&cyber.MsgInvestmint{
			Neuron:   msigtest.Bostrom,
			Amount:   coin.NewCoin(1000000, "hydrogen"),
			Resource: cyber.ResourceVolt,
			Length:   86400,
		},
		Grant(),
		&authz.MsgRevoke{
			Granter:    msigtest.Alice,
			Grantee:    msigtest.Bob,
			MsgTypeUrl: gov.PathMsgVote,
		},
		&authz.MsgExec{
			Grantee: msigtest.Bob,
			Msgs:    []*msig.Any{vote},
		},
	}
}
