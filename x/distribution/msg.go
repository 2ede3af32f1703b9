package distribution

import (
	"github.com/iov-one/msig"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/x"
)

const (
	PathMsgFundCommunityPool       = "/cosmos.distribution.v1beta1.MsgFundCommunityPool"
	PathMsgSetWithdrawAddress      = "/cosmos.distribution.v1beta1.MsgSetWithdrawAddress"
	PathMsgWithdrawDelegatorReward = "/cosmos.distribution.v1beta1.MsgWithdrawDelegatorReward"
)

var (
	_ msig.Msg = (*MsgFundCommunityPool)(nil)
	_ msig.Msg = (*MsgSetWithdrawAddress)(nil)
	_ msig.Msg = (*MsgWithdrawDelegatorReward)(nil)
)

func (MsgFundCommunityPool) Path() string {
	return PathMsgFundCommunityPool
}

func (m *MsgFundCommunityPool) Validate() error {
	var errs error
	errs = x.AppendAddress(errs, "Depositor", m.Depositor)
	errs = errors.AppendField(errs, "Amount", x.ValidateFunds(m.Amount, true))
	return errs
}

func (MsgSetWithdrawAddress) Path() string {
	return PathMsgSetWithdrawAddress
}

func (m *MsgSetWithdrawAddress) Validate() error {
	var errs error
	errs = x.AppendAddress(errs, "DelegatorAddress", m.DelegatorAddress)
	errs = x.AppendAddress(errs, "WithdrawAddress", m.WithdrawAddress)
	return errs
}

func (MsgWithdrawDelegatorReward) Path() string {
	return PathMsgWithdrawDelegatorReward
}

func (m *MsgWithdrawDelegatorReward) Validate() error {
	var errs error
	errs = x.AppendAddress(errs, "DelegatorAddress", m.DelegatorAddress)
	errs = x.AppendAddress(errs, "ValidatorAddress", m.ValidatorAddress)
	return errs
}
