package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/x/gov"
)

func cmdVote(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction for casting a vote on a governance proposal.
		`)
		fl.PrintDefaults()
	}
	var (
		proposalFl = fl.Uint64("proposal", 0, "Identifier of the proposal.")
		voterFl    = fl.String("voter", "", "Address of the voting account.")
		optionFl   = fl.String("option", "", "Vote option: yes, no, abstain or veto.")
	)
	chainFl, dbFl := chainFlags(fl)
	fl.Parse(args)

	option, err := gov.ParseVoteOption(*optionFl)
	if err != nil {
		return errors.Field("Option", err, "")
	}

	chain, err := loadChain(*chainFl, *dbFl)
	if err != nil {
		return err
	}
	if err := chain.CheckAddress(*voterFl); err != nil {
		return errors.Field("Voter", err, "")
	}

	msg, err := buildMsg(gov.PathMsgVote, map[string]interface{}{
		"proposalId": *proposalFl,
		"voter":      *voterFl,
		"option":     option.String(),
	})
	if err != nil {
		return err
	}
	return writeMsg(output, chain, msg)
}
