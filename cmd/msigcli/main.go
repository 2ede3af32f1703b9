package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/iov-one/msig"
	"github.com/iov-one/msig/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// commands is a register of all availables commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// When a cmd function is called it is given stdin, stdout and command line
// arguments except the program name and this command name. It is the
// responsibility of the command function to parse the arguments.
//
// A command function is an independent runable that is taking input and output
// being stdin and stdout. A command function is expected to read and write
// only to provided input and output. In a special case of an invalid argument
// a message to os.Stderr and os.Exit(2) call are allowed.
//
// Transaction records are read and written as JSON so that the commands can
// be combined into a pipeline. For example, to create a transaction with two
// transfers and a fee based on the gas estimate:
//
//   $ (msigcli send-tokens -from $ALICE -to $BOB -amount 1ATOM; \
//       msigcli send-tokens -from $ALICE -to $CAROL -amount 2ATOM) \
//       | msigcli concat \
//       | msigcli with-fee \
//       | msigcli save
//
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"as-exec":         cmdAsExec,
	"body-bytes":      cmdBodyBytes,
	"chain-config":    cmdChainConfig,
	"concat":          cmdConcat,
	"cyberlink":       cmdCyberlink,
	"delegate":        cmdDelegate,
	"delete":          cmdDelete,
	"gas":             cmdGas,
	"grant":           cmdGrant,
	"investmint":      cmdInvestmint,
	"list":            cmdList,
	"load":            cmdLoad,
	"multi-send":      cmdMultiSend,
	"new-tx":          cmdNewTx,
	"redelegate":      cmdRedelegate,
	"revoke":          cmdRevoke,
	"save":            cmdSave,
	"send-tokens":     cmdSendTokens,
	"summary":         cmdSummary,
	"types":           cmdTypes,
	"undelegate":      cmdUndelegate,
	"version":         cmdVersion,
	"view":            cmdView,
	"vote":            cmdVote,
	"with-account":    cmdWithAccount,
	"with-fee":        cmdWithFee,
	"withdraw-reward": cmdWithdrawReward,
}

// logger is used by commands to report problems that do not stop the
// command from completing.
var logger log.Logger = log.NewNopLogger()

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s is a command line client for building multisig transactions.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	l, err := newLogger(os.Stderr, env("MSIGCLI_LOG_LEVEL", "info"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger = l.With("cmd", os.Args[1])

	// Skip two first arguments. Second argument is the command name that
	// we just consumed.
	if err := execute(run, os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs given command. A panic is returned as an error.
func execute(run func(io.Reader, io.Writer, []string) error, input io.Reader, output io.Writer, args []string) (err error) {
	defer errors.Recover(&err)
	return run(input, output, args)
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

// newLogger returns a logger writing to given output that drops all entries
// below given level.
func newLogger(w io.Writer, level string) (log.Logger, error) {
	allowed, err := log.AllowLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %s", err)
	}
	l := log.NewTMLogger(log.NewSyncWriter(w)).With("module", "msigcli")
	return log.NewFilter(l, allowed), nil
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	_, err := fmt.Fprintln(out, msig.Version())
	return err
}
