package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/iov-one/msig/gconf"
	"github.com/iov-one/msig/store"
)

func cmdSave(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Read a transaction and store it in the database. The identifier of the stored
transaction is printed.
		`)
		fl.PrintDefaults()
	}
	var (
		dbFl = fl.String("db", homeDir(), "Directory of the database.")
	)
	fl.Parse(args)

	rec, err := readRecord(input)
	if err != nil {
		return err
	}
	db, err := openStore(*dbFl)
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := store.NewRecordBucket(db).Save(rec)
	if err != nil {
		return err
	}
	if err := rec.Validate(); err != nil {
		logger.Info("saved transaction cannot be signed yet", "id", id, "err", err)
	}
	_, err = fmt.Fprintln(output, id)
	return err
}

func cmdLoad(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print a transaction stored in the database.
		`)
		fl.PrintDefaults()
	}
	var (
		dbFl = fl.String("db", homeDir(), "Directory of the database.")
		idFl = fl.Uint64("id", 0, "Identifier of the transaction.")
	)
	fl.Parse(args)

	db, err := openStore(*dbFl)
	if err != nil {
		return err
	}
	defer db.Close()

	rec, err := store.NewRecordBucket(db).Load(*idFl)
	if err != nil {
		return err
	}
	return writeRecord(output, rec)
}

func cmdList(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print identifiers of all transactions stored in the database, together with
the summary of their messages.
		`)
		fl.PrintDefaults()
	}
	var (
		dbFl = fl.String("db", homeDir(), "Directory of the database.")
	)
	fl.Parse(args)

	db, err := openStore(*dbFl)
	if err != nil {
		return err
	}
	defer db.Close()

	b := store.NewRecordBucket(db)
	ids, err := b.List()
	if err != nil {
		return err
	}
	for _, id := range ids {
		counts, err := b.Summary(logger, id)
		if err != nil {
			return err
		}
		summary := make([]string, len(counts))
		for i, c := range counts {
			summary[i] = fmt.Sprintf("%s:%d", c.MsgType, c.Count)
		}
		if len(summary) == 0 {
			summary = []string{"none"}
		}
		if _, err := fmt.Fprintf(output, "%d\t%s\n", id, strings.Join(summary, " ")); err != nil {
			return err
		}
	}
	return nil
}

func cmdDelete(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Remove a transaction from the database.
		`)
		fl.PrintDefaults()
	}
	var (
		dbFl = fl.String("db", homeDir(), "Directory of the database.")
		idFl = fl.Uint64("id", 0, "Identifier of the transaction.")
	)
	fl.Parse(args)

	db, err := openStore(*dbFl)
	if err != nil {
		return err
	}
	defer db.Close()
	return store.NewRecordBucket(db).Delete(*idFl)
}

func cmdChainConfig(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Read the chain configuration in JSON format and store it in the database. All
commands use the stored configuration unless a configuration file is given.
Use -show to print the configuration currently in use instead.
		`)
		fl.PrintDefaults()
	}
	var (
		dbFl   = fl.String("db", homeDir(), "Directory of the database.")
		showFl = fl.Bool("show", false, "Print the configuration instead of storing it.")
	)
	fl.Parse(args)

	if *showFl {
		chain, err := loadChain("", *dbFl)
		if err != nil {
			return err
		}
		raw, err := chain.Marshal()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(output, "%s\n", raw)
		return err
	}

	raw, err := ioutil.ReadAll(input)
	if err != nil {
		return fmt.Errorf("cannot read chain configuration: %s", err)
	}
	var chain gconf.Chain
	if err := chain.Unmarshal(raw); err != nil {
		return err
	}
	db, err := openStore(*dbFl)
	if err != nil {
		return err
	}
	defer db.Close()
	return gconf.Save(db, gconf.ChainPkg, &chain)
}
