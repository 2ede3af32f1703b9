package gas

import (
	"github.com/iov-one/msig"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/x/authz"
	"github.com/iov-one/msig/x/bank"
	"github.com/iov-one/msig/x/cyber"
	"github.com/iov-one/msig/x/distribution"
	"github.com/iov-one/msig/x/gov"
	"github.com/iov-one/msig/x/ibc"
	"github.com/iov-one/msig/x/staking"
	"github.com/iov-one/msig/x/vesting"
	"github.com/iov-one/msig/x/wasm"
)

// TxFlatGas is the cost of a transaction regardless of its messages.
const TxFlatGas uint64 = 100000

var costs = map[string]uint64{
	bank.PathMsgSend:      100000,
	bank.PathMsgMultiSend: 4200000,

	staking.PathMsgDelegate:        400000,
	staking.PathMsgUndelegate:      400000,
	staking.PathMsgBeginRedelegate: 400000,

	distribution.PathMsgFundCommunityPool:       100000,
	distribution.PathMsgSetWithdrawAddress:      100000,
	distribution.PathMsgWithdrawDelegatorReward: 100000,

	vesting.PathMsgCreateVestingAccount: 100000,

	gov.PathMsgVote: 100000,

	ibc.PathMsgTransfer: 180000,

	wasm.PathMsgInstantiateContract:  150000,
	wasm.PathMsgInstantiateContract2: 150000,
	wasm.PathMsgUpdateAdmin:          150000,
	wasm.PathMsgExecuteContract:      150000,
	wasm.PathMsgMigrateContract:      150000,

	cyber.PathMsgCyberlink:  420000,
	cyber.PathMsgInvestmint: 420000,

	authz.PathMsgGrant:  420000,
	authz.PathMsgRevoke: 420000,
	authz.PathMsgExec:   420000,
}

// CostOf returns the gas cost of a single message of given type.
func CostOf(typeURL string) (uint64, error) {
	n, ok := costs[typeURL]
	if !ok {
		return 0, errors.Wrapf(errors.ErrUnknownMsgType, "no gas cost for %s", typeURL)
	}
	return n, nil
}

// TotalCost returns the gas estimate of a transaction containing messages of
// given types. Every element is charged, so repeated types are charged
// repeatedly. A single unknown type fails the whole estimation.
func TotalCost(typeURLs []string) (uint64, error) {
	total := TxFlatGas
	for _, u := range typeURLs {
		n, err := CostOf(u)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// MsgTypes returns the type URLs of given messages, preserving the order.
func MsgTypes(msgs []msig.Msg) []string {
	types := make([]string, len(msgs))
	for i, m := range msgs {
		types[i] = m.Path()
	}
	return types
}

// Costs returns a copy of the cost table.
func Costs() map[string]uint64 {
	cp := make(map[string]uint64, len(costs))
	for k, v := range costs {
		cp[k] = v
	}
	return cp
}
