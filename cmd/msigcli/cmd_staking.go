package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/x/distribution"
	"github.com/iov-one/msig/x/staking"
)

func cmdDelegate(input io.Reader, output io.Writer, args []string) error {
	return delegation(staking.PathMsgDelegate, `
Create a transaction for delegating funds to a validator.
		`, output, args)
}

func cmdUndelegate(input io.Reader, output io.Writer, args []string) error {
	return delegation(staking.PathMsgUndelegate, `
Create a transaction for undelegating funds from a validator.
		`, output, args)
}

// delegation creates a delegate or undelegate message. Both share the same
// set of attributes.
func delegation(typeURL, usage string, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), usage)
		fl.PrintDefaults()
	}
	var (
		delegatorFl = fl.String("delegator", "", "Address of the delegator account.")
		validatorFl = fl.String("validator", "", "Operator address of the validator.")
		amountFl    = fl.String("amount", "", "Amount in base or display units, for example 1.5ATOM.")
	)
	chainFl, dbFl := chainFlags(fl)
	fl.Parse(args)

	chain, err := loadChain(*chainFl, *dbFl)
	if err != nil {
		return err
	}
	amount, err := parseSingleAmount(chain, *amountFl)
	if err != nil {
		return err
	}

	var errs error
	errs = errors.AppendField(errs, "DelegatorAddress", chain.CheckAddress(*delegatorFl))
	errs = errors.AppendField(errs, "ValidatorAddress", chain.CheckValidatorAddress(*validatorFl))
	if errs != nil {
		return errs
	}

	msg, err := buildMsg(typeURL, map[string]interface{}{
		"delegatorAddress": *delegatorFl,
		"validatorAddress": *validatorFl,
		"amount":           amount,
	})
	if err != nil {
		return err
	}
	return writeMsg(output, chain, msg)
}

func cmdRedelegate(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction for moving delegated funds from one validator to another.
		`)
		fl.PrintDefaults()
	}
	var (
		delegatorFl = fl.String("delegator", "", "Address of the delegator account.")
		srcFl       = fl.String("src", "", "Operator address of the validator that funds are currently delegated to.")
		dstFl       = fl.String("dst", "", "Operator address of the validator that funds are to be delegated to.")
		amountFl    = fl.String("amount", "", "Amount in base or display units, for example 1.5ATOM.")
	)
	chainFl, dbFl := chainFlags(fl)
	fl.Parse(args)

	chain, err := loadChain(*chainFl, *dbFl)
	if err != nil {
		return err
	}
	amount, err := parseSingleAmount(chain, *amountFl)
	if err != nil {
		return err
	}

	var errs error
	errs = errors.AppendField(errs, "DelegatorAddress", chain.CheckAddress(*delegatorFl))
	errs = errors.AppendField(errs, "ValidatorSrcAddress", chain.CheckValidatorAddress(*srcFl))
	errs = errors.AppendField(errs, "ValidatorDstAddress", chain.CheckValidatorAddress(*dstFl))
	if errs != nil {
		return errs
	}

	msg, err := buildMsg(staking.PathMsgBeginRedelegate, map[string]interface{}{
		"delegatorAddress":    *delegatorFl,
		"validatorSrcAddress": *srcFl,
		"validatorDstAddress": *dstFl,
		"amount":              amount,
	})
	if err != nil {
		return err
	}
	return writeMsg(output, chain, msg)
}

func cmdWithdrawReward(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction for withdrawing the staking reward of a delegation.
		`)
		fl.PrintDefaults()
	}
	var (
		delegatorFl = fl.String("delegator", "", "Address of the delegator account.")
		validatorFl = fl.String("validator", "", "Operator address of the validator.")
	)
	chainFl, dbFl := chainFlags(fl)
	fl.Parse(args)

	chain, err := loadChain(*chainFl, *dbFl)
	if err != nil {
		return err
	}

	var errs error
	errs = errors.AppendField(errs, "DelegatorAddress", chain.CheckAddress(*delegatorFl))
	errs = errors.AppendField(errs, "ValidatorAddress", chain.CheckValidatorAddress(*validatorFl))
	if errs != nil {
		return errs
	}

	msg, err := buildMsg(distribution.PathMsgWithdrawDelegatorReward, map[string]interface{}{
		"delegatorAddress": *delegatorFl,
		"validatorAddress": *validatorFl,
	})
	if err != nil {
		return err
	}
	return writeMsg(output, chain, msg)
}
