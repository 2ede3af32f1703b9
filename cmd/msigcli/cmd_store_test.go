package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iov-one/msig/coin"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/msigtest"
	"github.com/iov-one/msig/msigtest/assert"
)

const testnetChain = `{
	"chainId": "testnet-1",
	"registryName": "cosmoshubtestnet",
	"addressPrefix": "cosmos",
	"gasPrice": "0.5uatom",
	"assets": [{"base": "uatom", "display": "ATOM", "exponent": 6}]
}`

func TestStoreCommands(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()
	db := []string{"-db", dir}

	// Without any configuration stored the default chain is used.
	shown := runCmd(t, cmdChainConfig, "", "-db", dir, "-show")
	if !strings.Contains(shown, `"chainId":"cosmoshub-4"`) {
		t.Fatalf("want default chain, got %s", shown)
	}

	runCmd(t, cmdChainConfig, testnetChain, db...)
	shown = runCmd(t, cmdChainConfig, "", "-db", dir, "-show")
	if !strings.Contains(shown, `"chainId":"testnet-1"`) {
		t.Fatalf("want stored chain, got %s", shown)
	}

	tx := runCmd(t, cmdSendTokens, "", "-db", dir, "-from", msigtest.Alice, "-to", msigtest.Bob, "-amount", "2ATOM")
	tx = runCmd(t, cmdWithFee, tx, db...)
	rec := mustParseRecord(t, tx)
	assert.Equal(t, "testnet-1", rec.ChainID)
	assert.Equal(t, []*coin.Coin{coin.NewCoin(100000, "uatom")}, rec.Fee.Amount)

	assert.Equal(t, "1\n", runCmd(t, cmdSave, tx, db...))
	assert.Equal(t, "2\n", runCmd(t, cmdSave, tx, db...))
	assert.Equal(t, "1\tSend:1\n2\tSend:1\n", runCmd(t, cmdList, "", db...))

	loaded := runCmd(t, cmdLoad, "", "-db", dir, "-id", "2")
	assert.Equal(t, tx, loaded)

	runCmd(t, cmdDelete, "", "-db", dir, "-id", "1")
	assert.Equal(t, "2\tSend:1\n", runCmd(t, cmdList, "", db...))

	var out bytes.Buffer
	err := cmdLoad(strings.NewReader(""), &out, []string{"-db", dir, "-id", "1"})
	assert.IsErr(t, errors.ErrNotFound, err)
	err = cmdDelete(strings.NewReader(""), &out, []string{"-db", dir, "-id", "1"})
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestCmdChainConfigRejectsInvalid(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	cases := map[string]struct {
		Input   string
		WantErr *errors.Error
	}{
		"unknown attribute": {
			Input:   `{"chainId": "x", "addressPrefix": "cosmos", "gasPrice": "1uatom", "rpc": "http://localhost"}`,
			WantErr: errors.ErrInput,
		},
		"missing chain id": {
			Input:   `{"addressPrefix": "cosmos", "gasPrice": "1uatom"}`,
			WantErr: errors.ErrEmpty,
		},
		"not json": {
			Input:   `chainId: x`,
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var out bytes.Buffer
			err := cmdChainConfig(strings.NewReader(tc.Input), &out, []string{"-db", dir})
			assert.IsErr(t, tc.WantErr, err)
		})
	}

	// Nothing was stored.
	shown := runCmd(t, cmdChainConfig, "", "-db", dir, "-show")
	if !strings.Contains(shown, `"chainId":"cosmoshub-4"`) {
		t.Fatalf("want default chain, got %s", shown)
	}
}

func TestCmdSaveRejectsInvalidInput(t *testing.T) {
	dir, cleanup := tempDir(t)
	defer cleanup()

	var out bytes.Buffer
	err := cmdSave(strings.NewReader(`{"chainId": "cosmoshub-4"}`), &out, []string{"-db", dir})
	assert.IsErr(t, errors.ErrInput, err)
	err = cmdSave(strings.NewReader(""), &out, []string{"-db", dir})
	if err == nil {
		t.Fatal("want empty input rejected")
	}
}
