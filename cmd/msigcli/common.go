package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"regexp"
	"strings"

	"github.com/iov-one/msig"
	"github.com/iov-one/msig/coin"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/gconf"
	"github.com/iov-one/msig/registry"
	"github.com/iov-one/msig/store"
	"github.com/iov-one/msig/txjson"
)

// readRecord reads a single transaction record.
func readRecord(r io.Reader) (*txjson.Record, error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read transaction: %s", err)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, fmt.Errorf("no input data")
	}
	rec, err := txjson.ParseRecord(raw)
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode transaction")
	}
	return rec, nil
}

// readRecords reads a stream of transaction records until the end of the
// input.
func readRecords(r io.Reader) ([]*txjson.Record, error) {
	var recs []*txjson.Record
	dec := json.NewDecoder(r)
	for {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if err == io.EOF {
				return recs, nil
			}
			return nil, fmt.Errorf("cannot read transaction %d: %s", len(recs)+1, err)
		}
		rec, err := txjson.ParseRecord(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot decode transaction %d", len(recs)+1)
		}
		recs = append(recs, rec)
	}
}

// writeRecord serializes the record. Each record is written in a single
// line.
func writeRecord(w io.Writer, rec *txjson.Record) error {
	raw, err := txjson.EncodeRecord(rec)
	if err != nil {
		return errors.Wrap(err, "cannot encode transaction")
	}
	_, err = fmt.Fprintf(w, "%s\n", raw)
	return err
}

// chainFlags registers flags that select the chain configuration.
func chainFlags(fl *flag.FlagSet) (file, db *string) {
	file = fl.String("chain", env("MSIGCLI_CHAIN", ""), "Path to a JSON file with the chain configuration. If not given, the configuration stored in the database is used.")
	db = fl.String("db", homeDir(), "Directory of the database.")
	return file, db
}

// loadChain returns the chain configuration. A configuration file takes
// precedence over the one stored in the database. If neither is available,
// the default configuration is used.
func loadChain(file, dbDir string) (*gconf.Chain, error) {
	var c gconf.Chain
	if file != "" {
		if err := gconf.LoadFile(file, &c); err != nil {
			return nil, errors.Wrap(err, "cannot load chain configuration")
		}
		return &c, nil
	}
	if dbDir == "" {
		return gconf.DefaultChain(), nil
	}
	if _, err := os.Stat(dbDir); err != nil {
		return gconf.DefaultChain(), nil
	}
	db, err := store.Open(dbDir)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	switch err := gconf.Load(db, gconf.ChainPkg, &c); {
	case err == nil:
		return &c, nil
	case errors.ErrNotFound.Is(err):
		logger.Debug("no chain configuration stored, using default", "db", dbDir)
		return gconf.DefaultChain(), nil
	default:
		return nil, fmt.Errorf("cannot load chain configuration: %s", err)
	}
}

var amountRx = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)\s*([a-zA-Z][a-zA-Z0-9/:._-]{2,127})$`)

// parseAmount parses a comma separated list of amounts. Each amount is
// given in base or in display units, for example 1000uatom or 1.5ATOM.
func parseAmount(chain *gconf.Chain, raw string) ([]*coin.Coin, error) {
	var coins []*coin.Coin
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m := amountRx.FindStringSubmatch(part)
		if m == nil {
			return nil, errors.Field("Amount", errors.ErrInput, "invalid amount %q", part)
		}
		c, err := chain.BaseCoin(m[1], m[2])
		if err != nil {
			return nil, err
		}
		coins = append(coins, c)
	}
	return coins, nil
}

// parseSingleAmount is parseAmount that requires exactly one coin.
func parseSingleAmount(chain *gconf.Chain, raw string) (*coin.Coin, error) {
	coins, err := parseAmount(chain, raw)
	if err != nil {
		return nil, err
	}
	if len(coins) != 1 {
		return nil, errors.Field("Amount", errors.ErrInput, "exactly one amount required, got %d", len(coins))
	}
	return coins[0], nil
}

// buildMsg creates a message of given type from its attributes, keyed by
// the JSON names, and validates it.
func buildMsg(typeURL string, fields map[string]interface{}) (msig.Msg, error) {
	c, err := registry.Resolve(typeURL)
	if err != nil {
		return nil, err
	}
	msg, err := c.FromPartial(fields)
	if err != nil {
		return nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid %s message", registry.ShortName(typeURL))
	}
	return msg, nil
}

// writeMsg writes a record containing the single given message.
func writeMsg(w io.Writer, chain *gconf.Chain, msg msig.Msg) error {
	return writeRecord(w, txjson.NewRecord(chain.ChainID, msg))
}

// openStore opens the database in given directory.
func openStore(dir string) (*store.DB, error) {
	if dir == "" {
		return nil, fmt.Errorf("database directory required")
	}
	db, err := store.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot open database: %s", err)
	}
	return db, nil
}
