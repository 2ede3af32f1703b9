package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/x/cyber"
)

func cmdCyberlink(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction for linking particles of the knowledge graph. Each link is
given as "<from particle>:<to particle>".
		`)
		fl.PrintDefaults()
	}
	var (
		neuronFl = fl.String("neuron", "", "Address of the neuron account that creates the links.")
		linksFl  = flStrings(fl, "link", "A link between two particles. Can be repeated.")
	)
	chainFl, dbFl := chainFlags(fl)
	fl.Parse(args)

	chain, err := loadChain(*chainFl, *dbFl)
	if err != nil {
		return err
	}
	if err := chain.CheckAddress(*neuronFl); err != nil {
		return errors.Field("Neuron", err, "")
	}

	links := make([]*cyber.Link, 0, len(*linksFl))
	for i, raw := range *linksFl {
		chunks := strings.SplitN(raw, ":", 2)
		if len(chunks) != 2 {
			return errors.Field(fmt.Sprintf("Links.%d", i), errors.ErrInput, "want <from>:<to>, got %q", raw)
		}
		links = append(links, &cyber.Link{
			From: strings.TrimSpace(chunks[0]),
			To:   strings.TrimSpace(chunks[1]),
		})
	}

	msg, err := buildMsg(cyber.PathMsgCyberlink, map[string]interface{}{
		"neuron": *neuronFl,
		"links":  links,
	})
	if err != nil {
		return err
	}
	return writeMsg(output, chain, msg)
}

func cmdInvestmint(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction for locking tokens and minting a resource.
		`)
		fl.PrintDefaults()
	}
	var (
		neuronFl   = fl.String("neuron", "", "Address of the neuron account that invests.")
		amountFl   = fl.String("amount", "", "Amount of tokens to lock, for example 1000000hydrogen.")
		resourceFl = fl.String("resource", cyber.ResourceVolt, fmt.Sprintf("Resource to mint: %s or %s.", cyber.ResourceVolt, cyber.ResourceAmpere))
		lengthFl   = fl.Uint64("length", 0, "Length of the investment in seconds.")
	)
	chainFl, dbFl := chainFlags(fl)
	fl.Parse(args)

	chain, err := loadChain(*chainFl, *dbFl)
	if err != nil {
		return err
	}
	if err := chain.CheckAddress(*neuronFl); err != nil {
		return errors.Field("Neuron", err, "")
	}
	amount, err := parseSingleAmount(chain, *amountFl)
	if err != nil {
		return err
	}

	msg, err := buildMsg(cyber.PathMsgInvestmint, map[string]interface{}{
		"neuron":   *neuronFl,
		"amount":   amount,
		"resource": *resourceFl,
		"length":   *lengthFl,
	})
	if err != nil {
		return err
	}
	return writeMsg(output, chain, msg)
}
