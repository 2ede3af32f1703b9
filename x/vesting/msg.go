package vesting

import (
	"github.com/iov-one/msig"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/x"
)

const PathMsgCreateVestingAccount = "/cosmos.vesting.v1beta1.MsgCreateVestingAccount"

var _ msig.Msg = (*MsgCreateVestingAccount)(nil)

func (MsgCreateVestingAccount) Path() string {
	return PathMsgCreateVestingAccount
}

func (m *MsgCreateVestingAccount) Validate() error {
	var errs error
	errs = x.AppendAddress(errs, "FromAddress", m.FromAddress)
	errs = x.AppendAddress(errs, "ToAddress", m.ToAddress)
	errs = errors.AppendField(errs, "Amount", x.ValidateFunds(m.Amount, true))
	if m.EndTime <= 0 {
		errs = errors.AppendField(errs, "EndTime", errors.Wrap(errors.ErrInput, "must be a positive unix time"))
	}
	return errs
}
