package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/msig"
	"github.com/iov-one/msig/coin"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/gas"
	"github.com/iov-one/msig/msigtest"
	"github.com/iov-one/msig/msigtest/assert"
	"github.com/iov-one/msig/msigtest/fixture"
	"github.com/iov-one/msig/registry"
	"github.com/iov-one/msig/txjson"
	"github.com/iov-one/msig/x/authz"
)

func TestCmdNewTx(t *testing.T) {
	input := messagesJSON(t, fixture.Send(1), fixture.MultiSend())
	out := runCmd(t, cmdNewTx, input,
		"-db", "",
		"-account-number", "5",
		"-sequence", "2",
		"-memo", "payroll",
		"-gas-price", "0.1uatom",
	)
	rec := mustParseRecord(t, out)
	assert.Equal(t, uint64(5), rec.AccountNumber)
	assert.Equal(t, uint64(2), rec.Sequence)
	assert.Equal(t, "cosmoshub-4", rec.ChainID)
	assert.Equal(t, "payroll", rec.Memo)
	assert.MsgEqual(t, fixture.Send(1), rec.Msgs[0])
	assert.MsgEqual(t, fixture.MultiSend(), rec.Msgs[1])
	// Estimate is 100000 + 100000 + 4200000.
	assert.Equal(t, &gas.Fee{
		Amount: []*coin.Coin{coin.NewCoin(440000, "uatom")},
		Gas:    "4400000",
	}, rec.Fee)

	out = runCmd(t, cmdNewTx, input, "-db", "", "-chain-id", "theta-testnet-001", "-gas-limit", "1000")
	rec = mustParseRecord(t, out)
	assert.Equal(t, "theta-testnet-001", rec.ChainID)
	assert.Equal(t, &gas.Fee{
		Amount: []*coin.Coin{coin.NewCoin(25, "uatom")},
		Gas:    "1000",
	}, rec.Fee)
}

func TestCmdNewTxInvalidInput(t *testing.T) {
	valid := messagesJSON(t, fixture.Send(1))

	cases := map[string]struct {
		Input     string
		Args      []string
		WantErr   *errors.Error
		WantField string
	}{
		"not an array": {
			Input:   `{"typeUrl": "/cosmos.bank.v1beta1.MsgSend"}`,
			WantErr: errors.ErrInput,
		},
		"unknown message type": {
			Input:   `[{"typeUrl": "/cosmos.bank.v1beta1.MsgBurn", "value": {}}]`,
			WantErr: errors.ErrUnknownMsgType,
		},
		"negative gas limit": {
			Input:     valid,
			Args:      []string{"-gas-limit", "-1"},
			WantErr:   errors.ErrInput,
			WantField: "GasLimit",
		},
		"gas limit above the safe integer": {
			Input:     valid,
			Args:      []string{"-gas-limit", "9007199254740992"},
			WantErr:   errors.ErrInput,
			WantField: "GasLimit",
		},
		"invalid gas price": {
			Input:     valid,
			Args:      []string{"-gas-price", "cheap"},
			WantErr:   errors.ErrInput,
			WantField: "GasPrice",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var out bytes.Buffer
			args := append([]string{"-db", ""}, tc.Args...)
			err := cmdNewTx(strings.NewReader(tc.Input), &out, args)
			assert.IsErr(t, tc.WantErr, err)
			if tc.WantField != "" {
				assert.FieldError(t, err, tc.WantField, tc.WantErr)
			}
		})
	}
}

func TestPipeline(t *testing.T) {
	var stream bytes.Buffer
	stream.WriteString(runCmd(t, cmdSendTokens, "", "-db", "", "-from", msigtest.Alice, "-to", msigtest.Bob, "-amount", "1ATOM"))
	stream.WriteString(runCmd(t, cmdVote, "", "-db", "", "-proposal", "7", "-voter", msigtest.Alice, "-option", "yes"))

	tx := runCmd(t, cmdConcat, stream.String())
	tx = runCmd(t, cmdWithFee, tx, "-db", "", "-payer", msigtest.Carol)
	tx = runCmd(t, cmdWithAccount, tx, "-account-number", "42", "-memo", "weekly")

	rec := mustParseRecord(t, tx)
	if len(rec.Msgs) != 2 {
		t.Fatalf("want two messages, got %d", len(rec.Msgs))
	}
	assert.Equal(t, fixture.Send(1000000).Path(), rec.Msgs[0].Path())
	assert.Equal(t, uint64(42), rec.AccountNumber)
	assert.Equal(t, uint64(0), rec.Sequence)
	assert.Equal(t, "weekly", rec.Memo)
	assert.Equal(t, &gas.Fee{
		Amount: []*coin.Coin{coin.NewCoin(7500, "uatom")},
		Gas:    "300000",
		Payer:  msigtest.Carol,
	}, rec.Fee)
	assert.Nil(t, rec.Validate())

	assert.Equal(t, "300000\n", runCmd(t, cmdGas, tx))
	assert.Equal(t, "Send\t1\nVote\t1\n", runCmd(t, cmdSummary, tx))

	view := runCmd(t, cmdView, tx, "-db", "")
	for _, want := range []string{
		"Fee:            0.0075 ATOM\n",
		"Fee payer:      " + msigtest.Carol + "\n",
		"Message 2 of 2: /cosmos.gov.v1beta1.MsgVote\n",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("missing %q in\n%s", want, view)
		}
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(runCmd(t, cmdBodyBytes, tx)))
	assert.Nil(t, err)
	var body txjson.TxBody
	assert.Nil(t, proto.Unmarshal(raw, &body))
	assert.Equal(t, "weekly", body.Memo)
	for i, a := range body.Messages {
		m, err := registry.Unpack(a)
		assert.Nil(t, err)
		assert.MsgEqual(t, rec.Msgs[i], m)
	}

	hexBody := strings.TrimSpace(runCmd(t, cmdBodyBytes, tx, "-encoding", "hex"))
	assert.Equal(t, len(raw)*2, len(hexBody))

	exec := mustParseRecord(t, runCmd(t, cmdAsExec, tx, "-db", "", "-grantee", msigtest.Bob))
	msg, ok := exec.Msgs[0].(*authz.MsgExec)
	if !ok {
		t.Fatalf("want exec message, got %T", exec.Msgs[0])
	}
	assert.Equal(t, msigtest.Bob, msg.Grantee)
	assert.Equal(t, 2, len(msg.Msgs))
}

func TestCmdConcatRejectsMixedChains(t *testing.T) {
	first := runCmd(t, cmdSendTokens, "", "-db", "", "-from", msigtest.Alice, "-to", msigtest.Bob, "-amount", "1uatom")
	second := runCmd(t, cmdWithAccount, first, "-chain-id", "other-1")

	var out bytes.Buffer
	err := cmdConcat(strings.NewReader(first+second), &out, nil)
	assert.IsErr(t, errors.ErrState, err)

	err = cmdConcat(strings.NewReader(""), &out, nil)
	if err == nil {
		t.Fatal("want empty input rejected")
	}
}

func TestCmdSummaryOfBrokenRecord(t *testing.T) {
	input := `{"msgs": [
		{"typeUrl": "/cosmos.bank.v1beta1.MsgSend", "value": {}},
		{"typeUrl": "/cosmos.bank.v1beta1.MsgBurn", "value": {}}
	]}`
	assert.Equal(t, "", runCmd(t, cmdSummary, input))

	var out bytes.Buffer
	err := cmdGas(strings.NewReader(input), &out, nil)
	assert.IsErr(t, errors.ErrUnknownMsgType, err)
}

func TestCmdTypes(t *testing.T) {
	out := runCmd(t, cmdTypes, "")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, len(registry.TypeURLs()), len(lines))
	if !strings.Contains(out, "/cosmos.bank.v1beta1.MsgMultiSend\t4200000\n") {
		t.Fatalf("multi send cost missing in\n%s", out)
	}
}

// messagesJSON returns the JSON array of given messages as accepted by the
// new-tx command.
func messagesJSON(t testing.TB, msgs ...msig.Msg) string {
	t.Helper()
	encoded := make([]txjson.EncodedMsg, len(msgs))
	for i, m := range msgs {
		enc, err := txjson.EncodeMsg(m)
		assert.Nil(t, err)
		encoded[i] = enc
	}
	raw, err := json.Marshal(encoded)
	assert.Nil(t, err)
	return string(raw)
}
