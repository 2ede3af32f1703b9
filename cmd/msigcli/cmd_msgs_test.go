package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/iov-one/msig"
	"github.com/iov-one/msig/coin"
	"github.com/iov-one/msig/crypto/bech32"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/msigtest"
	"github.com/iov-one/msig/msigtest/assert"
	"github.com/iov-one/msig/msigtest/fixture"
	"github.com/iov-one/msig/x/authz"
	"github.com/iov-one/msig/x/cyber"
	"github.com/iov-one/msig/x/distribution"
	"github.com/iov-one/msig/x/gov"
	"github.com/iov-one/msig/x/staking"
)

const bostromChain = `{
	"chainId": "bostrom",
	"registryName": "bostrom",
	"addressPrefix": "bostrom",
	"gasPrice": "0.01boot",
	"assets": [{"base": "boot", "display": "BOOT", "exponent": 0}]
}`

func TestMessageBuilders(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()
	bostrom := mustCreateFile(t, dir, bostromChain)

	cases := map[string]struct {
		Cmd  func(io.Reader, io.Writer, []string) error
		Args []string
		Want msig.Msg
	}{
		"send tokens in display units": {
			Cmd:  cmdSendTokens,
			Args: []string{"-from", msigtest.Alice, "-to", msigtest.Bob, "-amount", "0.001ATOM"},
			Want: fixture.Send(1000),
		},
		"multi send": {
			Cmd: cmdMultiSend,
			Args: []string{
				"-in", msigtest.Alice + "=30uatom",
				"-out", msigtest.Bob + "=10uatom",
				"-out", msigtest.Carol + "=20uatom",
			},
			Want: fixture.MultiSend(),
		},
		"delegate": {
			Cmd:  cmdDelegate,
			Args: []string{"-delegator", msigtest.Alice, "-validator", msigtest.ValOne, "-amount", "5ATOM"},
			Want: &staking.MsgDelegate{
				DelegatorAddress: msigtest.Alice,
				ValidatorAddress: msigtest.ValOne,
				Amount:           coin.NewCoin(5000000, "uatom"),
			},
		},
		"undelegate": {
			Cmd:  cmdUndelegate,
			Args: []string{"-delegator", msigtest.Alice, "-validator", msigtest.ValOne, "-amount", "1000000uatom"},
			Want: &staking.MsgUndelegate{
				DelegatorAddress: msigtest.Alice,
				ValidatorAddress: msigtest.ValOne,
				Amount:           coin.NewCoin(1000000, "uatom"),
			},
		},
		"redelegate": {
			Cmd:  cmdRedelegate,
			Args: []string{"-delegator", msigtest.Alice, "-src", msigtest.ValOne, "-dst", msigtest.ValTwo, "-amount", "2ATOM"},
			Want: &staking.MsgBeginRedelegate{
				DelegatorAddress:    msigtest.Alice,
				ValidatorSrcAddress: msigtest.ValOne,
				ValidatorDstAddress: msigtest.ValTwo,
				Amount:              coin.NewCoin(2000000, "uatom"),
			},
		},
		"withdraw reward": {
			Cmd:  cmdWithdrawReward,
			Args: []string{"-delegator", msigtest.Alice, "-validator", msigtest.ValTwo},
			Want: &distribution.MsgWithdrawDelegatorReward{
				DelegatorAddress: msigtest.Alice,
				ValidatorAddress: msigtest.ValTwo,
			},
		},
		"vote": {
			Cmd:  cmdVote,
			Args: []string{"-proposal", "101", "-voter", msigtest.Alice, "-option", "veto"},
			Want: &gov.MsgVote{
				ProposalId: 101,
				Voter:      msigtest.Alice,
				Option:     gov.VoteOptionNoWithVeto,
			},
		},
		"grant": {
			Cmd:  cmdGrant,
			Args: []string{"-granter", msigtest.Alice, "-grantee", msigtest.Bob, "-msg-type", gov.PathMsgVote, "-expiration", "2030-01-01T00:00:00Z"},
			Want: fixture.Grant(),
		},
		"revoke": {
			Cmd:  cmdRevoke,
			Args: []string{"-granter", msigtest.Alice, "-grantee", msigtest.Bob, "-msg-type", gov.PathMsgVote},
			Want: &authz.MsgRevoke{
				Granter:    msigtest.Alice,
				Grantee:    msigtest.Bob,
				MsgTypeUrl: gov.PathMsgVote,
			},
		},
		"cyberlink": {
			Cmd:  cmdCyberlink,
			Args: []string{"-chain", bostrom, "-neuron", msigtest.Bostrom, "-link", msigtest.ParticleOne + ":" + msigtest.ParticleTwo},
			Want: &cyber.MsgCyberlink{
				Neuron: msigtest.Bostrom,
				Links:  []*cyber.Link{{From: msigtest.ParticleOne, To: msigtest.ParticleTwo}},
			},
		},
		"investmint": {
			Cmd:  cmdInvestmint,
			Args: []string{"-chain", bostrom, "-neuron", msigtest.Bostrom, "-amount", "1000000hydrogen", "-resource", cyber.ResourceAmpere, "-length", "86400"},
			Want: &cyber.MsgInvestmint{
				Neuron:   msigtest.Bostrom,
				Amount:   coin.NewCoin(1000000, "hydrogen"),
				Resource: cyber.ResourceAmpere,
				Length:   86400,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			args := append([]string{"-db", ""}, tc.Args...)
			rec := mustParseRecord(t, runCmd(t, tc.Cmd, "", args...))
			if len(rec.Msgs) != 1 {
				t.Fatalf("want one message, got %d", len(rec.Msgs))
			}
			assert.MsgEqual(t, tc.Want, rec.Msgs[0])
			if rec.Fee != nil {
				t.Fatalf("want no fee, got %v", rec.Fee)
			}
		})
	}
}

func TestMessageBuildersRejectInvalidInput(t *testing.T) {
	cases := map[string]struct {
		Cmd       func(io.Reader, io.Writer, []string) error
		Args      []string
		WantField string
		WantErr   *errors.Error
	}{
		"address of another chain": {
			Cmd:       cmdSendTokens,
			Args:      []string{"-from", msigtest.Alice, "-to", msigtest.Osmo, "-amount", "1uatom"},
			WantField: "ToAddress",
			WantErr:   bech32.ErrAddress,
		},
		"account address used as a validator": {
			Cmd:       cmdDelegate,
			Args:      []string{"-delegator", msigtest.Alice, "-validator", msigtest.Bob, "-amount", "1uatom"},
			WantField: "ValidatorAddress",
			WantErr:   bech32.ErrAddress,
		},
		"amount below the base unit": {
			Cmd:       cmdSendTokens,
			Args:      []string{"-from", msigtest.Alice, "-to", msigtest.Bob, "-amount", "0.0000001ATOM"},
			WantField: "Amount",
			WantErr:   errors.ErrAmount,
		},
		"zero amount": {
			Cmd:       cmdSendTokens,
			Args:      []string{"-from", msigtest.Alice, "-to", msigtest.Bob, "-amount", "0uatom"},
			WantField: "Amount",
			WantErr:   errors.ErrAmount,
		},
		"unbalanced multi send": {
			Cmd: cmdMultiSend,
			Args: []string{
				"-in", msigtest.Alice + "=30uatom",
				"-out", msigtest.Bob + "=10uatom",
			},
			WantField: "Outputs",
			WantErr:   errors.ErrAmount,
		},
		"malformed multi send output": {
			Cmd: cmdMultiSend,
			Args: []string{
				"-in", msigtest.Alice + "=30uatom",
				"-out", msigtest.Bob,
			},
			WantField: "Outputs.0",
			WantErr:   errors.ErrInput,
		},
		"unknown vote option": {
			Cmd:       cmdVote,
			Args:      []string{"-proposal", "1", "-voter", msigtest.Alice, "-option", "maybe"},
			WantField: "Option",
			WantErr:   errors.ErrInput,
		},
		"grant to self": {
			Cmd:       cmdGrant,
			Args:      []string{"-granter", msigtest.Alice, "-grantee", msigtest.Alice, "-msg-type", gov.PathMsgVote},
			WantField: "Grantee",
			WantErr:   errors.ErrInput,
		},
		"grant without message type": {
			Cmd:       cmdGrant,
			Args:      []string{"-granter", msigtest.Alice, "-grantee", msigtest.Bob},
			WantField: "MsgTypeUrl",
			WantErr:   errors.ErrEmpty,
		},
		"self link": {
			Cmd:       cmdCyberlink,
			Args:      []string{"-neuron", msigtest.Alice, "-link", msigtest.ParticleOne + ":" + msigtest.ParticleOne},
			WantField: "Links.0",
			WantErr:   errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var out bytes.Buffer
			args := append([]string{"-db", ""}, tc.Args...)
			err := tc.Cmd(strings.NewReader(""), &out, args)
			if err == nil {
				t.Fatalf("want error, got %s", out.String())
			}
			assert.FieldError(t, err, tc.WantField, tc.WantErr)
			if out.Len() != 0 {
				t.Fatalf("want no output, got %s", out.String())
			}
		})
	}
}
