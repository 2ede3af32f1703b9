package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/iov-one/msig/coin"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/gconf"
	"github.com/iov-one/msig/x/bank"
)

func cmdSendTokens(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction for transfering funds from the source account to the
destination account.
		`)
		fl.PrintDefaults()
	}
	var (
		fromFl   = fl.String("from", "", "A source account address that the funds are send from.")
		toFl     = fl.String("to", "", "A destination account address that the funds are send to.")
		amountFl = fl.String("amount", "", "Comma separated amounts, in base or display units, that are to be transferred, for example 1.5ATOM.")
	)
	chainFl, dbFl := chainFlags(fl)
	fl.Parse(args)

	chain, err := loadChain(*chainFl, *dbFl)
	if err != nil {
		return err
	}
	amount, err := parseAmount(chain, *amountFl)
	if err != nil {
		return err
	}

	var errs error
	errs = errors.AppendField(errs, "FromAddress", chain.CheckAddress(*fromFl))
	errs = errors.AppendField(errs, "ToAddress", chain.CheckAddress(*toFl))
	if errs != nil {
		return errs
	}

	msg, err := buildMsg(bank.PathMsgSend, map[string]interface{}{
		"fromAddress": *fromFl,
		"toAddress":   *toFl,
		"amount":      amount,
	})
	if err != nil {
		return err
	}
	return writeMsg(output, chain, msg)
}

func cmdMultiSend(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction for transfering funds from many accounts to many accounts
at once. Each input and output is given as "<address>=<amounts>". Total amount
of each denomination must be the same on both sides.
		`)
		fl.PrintDefaults()
	}
	var (
		inputsFl  = flStrings(fl, "in", "An account and the amounts it sends. Can be repeated.")
		outputsFl = flStrings(fl, "out", "An account and the amounts it receives. Can be repeated.")
	)
	chainFl, dbFl := chainFlags(fl)
	fl.Parse(args)

	chain, err := loadChain(*chainFl, *dbFl)
	if err != nil {
		return err
	}

	var errs error
	inputs := make([]*bank.Input, 0, len(*inputsFl))
	for i, raw := range *inputsFl {
		addr, coins, err := parseTransfer(chain, raw)
		if err != nil {
			errs = errors.AppendField(errs, errors.Path("Inputs", i), err)
			continue
		}
		inputs = append(inputs, &bank.Input{Address: addr, Coins: coins})
	}
	outputs := make([]*bank.Output, 0, len(*outputsFl))
	for i, raw := range *outputsFl {
		addr, coins, err := parseTransfer(chain, raw)
		if err != nil {
			errs = errors.AppendField(errs, errors.Path("Outputs", i), err)
			continue
		}
		outputs = append(outputs, &bank.Output{Address: addr, Coins: coins})
	}
	if errs != nil {
		return errs
	}

	msg, err := buildMsg(bank.PathMsgMultiSend, map[string]interface{}{
		"inputs":  inputs,
		"outputs": outputs,
	})
	if err != nil {
		return err
	}
	return writeMsg(output, chain, msg)
}

// parseTransfer parses a multi send input or output declaration.
func parseTransfer(chain *gconf.Chain, raw string) (string, []*coin.Coin, error) {
	chunks := strings.SplitN(raw, "=", 2)
	if len(chunks) != 2 {
		return "", nil, errors.Wrapf(errors.ErrInput, "want <address>=<amounts>, got %q", raw)
	}
	addr := strings.TrimSpace(chunks[0])
	if err := chain.CheckAddress(addr); err != nil {
		return "", nil, errors.Field("Address", err, "")
	}
	coins, err := parseAmount(chain, chunks[1])
	if err != nil {
		return "", nil, errors.Field("Coins", err, "")
	}
	if len(coins) == 0 {
		return "", nil, errors.Field("Coins", errors.ErrEmpty, "amount required")
	}
	return addr, coins, nil
}
