package main

import (
	"encoding/base64"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/iov-one/msig/gas"
	"github.com/iov-one/msig/registry"
	"github.com/iov-one/msig/txjson"
	"github.com/iov-one/msig/view"
)

func cmdGas(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Read a transaction and print the estimated amount of gas it consumes.
		`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	rec, err := readRecord(input)
	if err != nil {
		return err
	}
	n, err := rec.EstimateGas()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, n)
	return err
}

func cmdSummary(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Read a transaction and print how many messages of each type it contains. A
transaction that cannot be decoded has no summary.
		`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	raw, err := ioutil.ReadAll(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction: %s", err)
	}
	for _, c := range txjson.CountMessageTypes(logger, raw) {
		if _, err := fmt.Fprintf(output, "%s\t%d\n", c.MsgType, c.Count); err != nil {
			return err
		}
	}
	return nil
}

func cmdView(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Decode and display transaction summary. Before signing you should check what
kind of operation are you authorizing.
		`)
		fl.PrintDefaults()
	}
	chainFl, dbFl := chainFlags(fl)
	fl.Parse(args)

	chain, err := loadChain(*chainFl, *dbFl)
	if err != nil {
		return err
	}
	rec, err := readRecord(input)
	if err != nil {
		return err
	}
	return view.Render(output, rec, chain)
}

func cmdBodyBytes(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Read a transaction and print the protobuf serialized transaction body, as it is
signed by each signer.
		`)
		fl.PrintDefaults()
	}
	var (
		encodingFl = fl.String("encoding", "base64", "Output encoding: base64 or hex.")
	)
	fl.Parse(args)

	var encode func([]byte) string
	switch *encodingFl {
	case "base64":
		encode = base64.StdEncoding.EncodeToString
	case "hex":
		encode = hex.EncodeToString
	default:
		flagDie("unknown encoding %q", *encodingFl)
	}

	rec, err := readRecord(input)
	if err != nil {
		return err
	}
	raw, err := txjson.BodyBytes(rec)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, encode(raw))
	return err
}

func cmdTypes(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print all supported message types together with their gas cost.
		`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	for _, typeURL := range registry.TypeURLs() {
		cost, err := gas.CostOf(typeURL)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(output, "%s\t%d\n", typeURL, cost); err != nil {
			return err
		}
	}
	return nil
}
