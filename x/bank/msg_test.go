package bank

import (
	"testing"

	"github.com/iov-one/msig/coin"
	"github.com/iov-one/msig/crypto/bech32"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/msigtest"
	"github.com/iov-one/msig/msigtest/assert"
)

func TestValidateMsgSend(t *testing.T) {
	cases := map[string]struct {
		msg      *MsgSend
		wantFrom *errors.Error
		wantTo   *errors.Error
		wantAmnt *errors.Error
	}{
		"valid": {
			msg: &MsgSend{
				FromAddress: msigtest.Alice,
				ToAddress:   msigtest.Bob,
				Amount:      []*coin.Coin{coin.NewCoin(10, "uatom")},
			},
		},
		"many denominations": {
			msg: &MsgSend{
				FromAddress: msigtest.Alice,
				ToAddress:   msigtest.Bostrom,
				Amount:      []*coin.Coin{coin.NewCoin(10, "uatom"), coin.NewCoin(1, "boot")},
			},
		},
		"empty message": {
			msg:      &MsgSend{},
			wantFrom: errors.ErrEmpty,
			wantTo:   errors.ErrEmpty,
			wantAmnt: errors.ErrEmpty,
		},
		"invalid recipient": {
			msg: &MsgSend{
				FromAddress: msigtest.Alice,
				ToAddress:   "cosmos1notanaddress",
				Amount:      []*coin.Coin{coin.NewCoin(10, "uatom")},
			},
			wantTo: bech32.ErrAddress,
		},
		"zero amount": {
			msg: &MsgSend{
				FromAddress: msigtest.Alice,
				ToAddress:   msigtest.Bob,
				Amount:      []*coin.Coin{coin.NewCoin(0, "uatom")},
			},
			wantAmnt: errors.ErrAmount,
		},
		"invalid denomination": {
			msg: &MsgSend{
				FromAddress: msigtest.Alice,
				ToAddress:   msigtest.Bob,
				Amount:      []*coin.Coin{coin.NewCoin(1, "$")},
			},
			wantAmnt: errors.ErrCurrency,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			assert.FieldError(t, err, "FromAddress", tc.wantFrom)
			assert.FieldError(t, err, "ToAddress", tc.wantTo)
			assert.FieldError(t, err, "Amount", tc.wantAmnt)
		})
	}
}

func TestValidateMsgMultiSend(t *testing.T) {
	cases := map[string]struct {
		msg     *MsgMultiSend
		wantErr *errors.Error
		field   string
	}{
		"balanced": {
			msg: &MsgMultiSend{
				Inputs: []*Input{
					{Address: msigtest.Alice, Coins: []*coin.Coin{coin.NewCoin(30, "uatom"), coin.NewCoin(2, "ustake")}},
				},
				Outputs: []*Output{
					{Address: msigtest.Bob, Coins: []*coin.Coin{coin.NewCoin(10, "uatom")}},
					{Address: msigtest.Carol, Coins: []*coin.Coin{coin.NewCoin(20, "uatom"), coin.NewCoin(2, "ustake")}},
				},
			},
		},
		"zero amounts": {
			msg: &MsgMultiSend{
				Inputs: []*Input{
					{Address: msigtest.Alice, Coins: []*coin.Coin{coin.NewCoin(0, "uboot")}},
				},
				Outputs: []*Output{
					{Address: msigtest.Bob, Coins: []*coin.Coin{coin.NewCoin(0, "uboot")}},
				},
			},
		},
		"input without coins": {
			msg: &MsgMultiSend{
				Inputs: []*Input{
					{Address: msigtest.Alice},
				},
				Outputs: []*Output{
					{Address: msigtest.Bob, Coins: []*coin.Coin{coin.NewCoin(0, "uboot")}},
				},
			},
			wantErr: errors.ErrEmpty,
			field:   "Inputs.0.Coins",
		},
		"outputs exceed inputs": {
			msg: &MsgMultiSend{
				Inputs: []*Input{
					{Address: msigtest.Alice, Coins: []*coin.Coin{coin.NewCoin(30, "uatom")}},
				},
				Outputs: []*Output{
					{Address: msigtest.Bob, Coins: []*coin.Coin{coin.NewCoin(31, "uatom")}},
				},
			},
			wantErr: errors.ErrAmount,
			field:   "Outputs",
		},
		"denomination missing from outputs": {
			msg: &MsgMultiSend{
				Inputs: []*Input{
					{Address: msigtest.Alice, Coins: []*coin.Coin{coin.NewCoin(30, "uatom"), coin.NewCoin(1, "ustake")}},
				},
				Outputs: []*Output{
					{Address: msigtest.Bob, Coins: []*coin.Coin{coin.NewCoin(30, "uatom")}},
				},
			},
			wantErr: errors.ErrAmount,
			field:   "Outputs",
		},
		"no inputs": {
			msg: &MsgMultiSend{
				Outputs: []*Output{
					{Address: msigtest.Bob, Coins: []*coin.Coin{coin.NewCoin(30, "uatom")}},
				},
			},
			wantErr: errors.ErrEmpty,
			field:   "Inputs",
		},
		"invalid output address": {
			msg: &MsgMultiSend{
				Inputs: []*Input{
					{Address: msigtest.Alice, Coins: []*coin.Coin{coin.NewCoin(30, "uatom")}},
				},
				Outputs: []*Output{
					{Address: "bob", Coins: []*coin.Coin{coin.NewCoin(30, "uatom")}},
				},
			},
			wantErr: bech32.ErrAddress,
			field:   "Outputs.0.Address",
		},
		"negative input": {
			msg: &MsgMultiSend{
				Inputs: []*Input{
					{Address: msigtest.Alice, Coins: []*coin.Coin{{Denom: "uatom", Amount: "-1"}}},
				},
				Outputs: []*Output{
					{Address: msigtest.Bob, Coins: []*coin.Coin{coin.NewCoin(1, "uatom")}},
				},
			},
			wantErr: errors.ErrAmount,
			field:   "Inputs.0.Coins.0.Amount",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
				return
			}
			assert.FieldError(t, err, tc.field, tc.wantErr)
		})
	}
}
