package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/txjson"
	"github.com/iov-one/msig/x/authz"
)

func cmdGrant(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction that authorizes the grantee to execute messages of a
single type on behalf of the granter.
		`)
		fl.PrintDefaults()
	}
	var (
		granterFl = fl.String("granter", "", "Address of the account that gives the authorization.")
		granteeFl = fl.String("grantee", "", "Address of the account that receives the authorization.")
		msgTypeFl = fl.String("msg-type", "", "Type URL of the message that the grantee can execute, for example /cosmos.gov.v1beta1.MsgVote.")
		expFl     = flTime(fl, "expiration", nil, "Optional expiration time of the authorization, in RFC3339 format.")
	)
	chainFl, dbFl := chainFlags(fl)
	fl.Parse(args)

	chain, err := loadChain(*chainFl, *dbFl)
	if err != nil {
		return err
	}

	var errs error
	errs = errors.AppendField(errs, "Granter", chain.CheckAddress(*granterFl))
	errs = errors.AppendField(errs, "Grantee", chain.CheckAddress(*granteeFl))
	if *msgTypeFl == "" {
		errs = errors.AppendField(errs, "MsgTypeUrl", errors.ErrEmpty)
	}
	if errs != nil {
		return errs
	}

	// The authorization is an opaque payload with its own type and cannot
	// be described with JSON attributes.
	grant, err := authz.NewGenericGrant(*msgTypeFl, expFl.Time())
	if err != nil {
		return err
	}
	msg := &authz.MsgGrant{
		Granter: *granterFl,
		Grantee: *granteeFl,
		Grant:   grant,
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid Grant message")
	}
	return writeMsg(output, chain, msg)
}

func cmdRevoke(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a transaction that revokes an authorization given to the grantee.
		`)
		fl.PrintDefaults()
	}
	var (
		granterFl = fl.String("granter", "", "Address of the account that gave the authorization.")
		granteeFl = fl.String("grantee", "", "Address of the account that received the authorization.")
		msgTypeFl = fl.String("msg-type", "", "Type URL of the authorized message.")
	)
	chainFl, dbFl := chainFlags(fl)
	fl.Parse(args)

	chain, err := loadChain(*chainFl, *dbFl)
	if err != nil {
		return err
	}

	var errs error
	errs = errors.AppendField(errs, "Granter", chain.CheckAddress(*granterFl))
	errs = errors.AppendField(errs, "Grantee", chain.CheckAddress(*granteeFl))
	if errs != nil {
		return errs
	}

	msg, err := buildMsg(authz.PathMsgRevoke, map[string]interface{}{
		"granter":    *granterFl,
		"grantee":    *granteeFl,
		"msgTypeUrl": *msgTypeFl,
	})
	if err != nil {
		return err
	}
	return writeMsg(output, chain, msg)
}

func cmdAsExec(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Read a transaction and wrap all its messages into a single exec message. The
grantee executes them on behalf of the accounts that authorized it. The fee is
copied and most likely must be recalculated using the with-fee command.
		`)
		fl.PrintDefaults()
	}
	var (
		granteeFl = fl.String("grantee", "", "Address of the account that executes the messages.")
	)
	chainFl, dbFl := chainFlags(fl)
	fl.Parse(args)

	chain, err := loadChain(*chainFl, *dbFl)
	if err != nil {
		return err
	}
	if err := chain.CheckAddress(*granteeFl); err != nil {
		return errors.Field("Grantee", err, "")
	}

	rec, err := readRecord(input)
	if err != nil {
		return err
	}
	exec, err := txjson.AsExec(*granteeFl, rec)
	if err != nil {
		return err
	}
	return writeRecord(output, exec)
}
