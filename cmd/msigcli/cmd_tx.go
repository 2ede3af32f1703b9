package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/gas"
	"github.com/iov-one/msig/gconf"
	"github.com/iov-one/msig/txjson"
)

func cmdNewTx(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Read a JSON array of messages and create a transaction containing them. Each
message is an object with the "typeUrl" and the "value" attributes. The fee is
calculated from the gas limit and the gas price.
		`)
		fl.PrintDefaults()
	}
	var (
		accountFl  = fl.Uint64("account-number", 0, "Account number of the signing account.")
		sequenceFl = fl.Uint64("sequence", 0, "Sequence of the signing account.")
		chainIDFl  = fl.String("chain-id", "", "Chain identifier. Defaults to the configured chain.")
		memoFl     = fl.String("memo", "", "A short message attached to the transaction.")
	)
	feeFl := feeFlags(fl)
	chainFl, dbFl := chainFlags(fl)
	fl.Parse(args)

	chain, err := loadChain(*chainFl, *dbFl)
	if err != nil {
		return err
	}

	raw, err := ioutil.ReadAll(input)
	if err != nil {
		return fmt.Errorf("cannot read messages: %s", err)
	}
	tmpl := txjson.Record{
		AccountNumber: *accountFl,
		Sequence:      *sequenceFl,
		ChainID:       chain.ChainID,
		Memo:          *memoFl,
	}
	if *chainIDFl != "" {
		tmpl.ChainID = *chainIDFl
	}
	rec, err := txjson.RecordFromRawMsgs(raw, tmpl)
	if err != nil {
		return err
	}
	if err := feeFl.apply(rec, chain); err != nil {
		return err
	}
	return writeRecord(output, rec)
}

func cmdConcat(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Read any number of transactions and create a single transaction containing all
their messages, in the order they were read. Account, sequence, chain and memo
are taken from the first transaction. The fee is dropped and must be set again
using the with-fee command.
		`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	recs, err := readRecords(input)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		return fmt.Errorf("no input data")
	}

	res := *recs[0]
	res.Fee = nil
	res.Msgs = nil
	for i, r := range recs {
		if r.ChainID != res.ChainID {
			return errors.Wrapf(errors.ErrState, "transaction %d is for chain %q, not %q", i+1, r.ChainID, res.ChainID)
		}
		res.Msgs = append(res.Msgs, r.Msgs...)
	}
	return writeRecord(output, &res)
}

func cmdWithFee(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Modify given transaction and attach a fee calculated from the gas limit and the
gas price. If a transaction already has a fee set, overwrite it with a new
value.
		`)
		fl.PrintDefaults()
	}
	var (
		granterFl = fl.String("granter", "", "Optional address of an account that granted the fee allowance.")
		payerFl   = fl.String("payer", "", "Optional address of the fee payer. If not provided the first signer pays.")
	)
	feeFl := feeFlags(fl)
	chainFl, dbFl := chainFlags(fl)
	fl.Parse(args)

	chain, err := loadChain(*chainFl, *dbFl)
	if err != nil {
		return err
	}
	var errs error
	if *granterFl != "" {
		errs = errors.AppendField(errs, "Granter", chain.CheckAddress(*granterFl))
	}
	if *payerFl != "" {
		errs = errors.AppendField(errs, "Payer", chain.CheckAddress(*payerFl))
	}
	if errs != nil {
		return errs
	}

	rec, err := readRecord(input)
	if err != nil {
		return err
	}
	if err := feeFl.apply(rec, chain); err != nil {
		return err
	}
	if *granterFl != "" {
		rec.Fee.Granter = *granterFl
	}
	if *payerFl != "" {
		rec.Fee.Payer = *payerFl
	}
	return writeRecord(output, rec)
}

func cmdWithAccount(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Modify given transaction and set the signing account details. Only attributes
given as arguments are changed.
		`)
		fl.PrintDefaults()
	}
	var (
		accountFl  = fl.Uint64("account-number", 0, "Account number of the signing account.")
		sequenceFl = fl.Uint64("sequence", 0, "Sequence of the signing account.")
		chainIDFl  = fl.String("chain-id", "", "Chain identifier.")
		memoFl     = fl.String("memo", "", "A short message attached to the transaction.")
	)
	fl.Parse(args)

	rec, err := readRecord(input)
	if err != nil {
		return err
	}
	set := flagsSet(fl)
	if set["account-number"] {
		rec.AccountNumber = *accountFl
	}
	if set["sequence"] {
		rec.Sequence = *sequenceFl
	}
	if set["chain-id"] {
		rec.ChainID = *chainIDFl
	}
	if set["memo"] {
		rec.Memo = *memoFl
	}
	return writeRecord(output, rec)
}

// feeFlag is the gas limit and the gas price given as command line
// arguments.
type feeFlag struct {
	limit *string
	price *string
}

func feeFlags(fl *flag.FlagSet) feeFlag {
	return feeFlag{
		limit: fl.String("gas-limit", "", "Gas limit of the transaction. Defaults to the estimate."),
		price: fl.String("gas-price", "", "Gas price, for example 0.025uatom. Defaults to the configured chain price."),
	}
}

// apply sets the fee of given record.
func (f feeFlag) apply(rec *txjson.Record, chain *gconf.Chain) error {
	var limit uint64
	if *f.limit != "" {
		n, err := gas.ParseLimit(*f.limit)
		if err != nil {
			return err
		}
		limit = n
	}
	price, err := chain.Price()
	if *f.price != "" {
		price, err = gas.ParsePrice(*f.price)
	}
	if err != nil {
		return err
	}
	return rec.SetFee(limit, price)
}
