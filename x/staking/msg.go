package staking

import (
	"github.com/iov-one/msig"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/x"
)

const (
	PathMsgDelegate        = "/cosmos.staking.v1beta1.MsgDelegate"
	PathMsgUndelegate      = "/cosmos.staking.v1beta1.MsgUndelegate"
	PathMsgBeginRedelegate = "/cosmos.staking.v1beta1.MsgBeginRedelegate"
)

var (
	_ msig.Msg = (*MsgDelegate)(nil)
	_ msig.Msg = (*MsgUndelegate)(nil)
	_ msig.Msg = (*MsgBeginRedelegate)(nil)
)

func (MsgDelegate) Path() string {
	return PathMsgDelegate
}

func (m *MsgDelegate) Validate() error {
	var errs error
	errs = x.AppendAddress(errs, "DelegatorAddress", m.DelegatorAddress)
	errs = x.AppendAddress(errs, "ValidatorAddress", m.ValidatorAddress)
	errs = errors.AppendField(errs, "Amount", x.ValidateAmount(m.Amount))
	return errs
}

func (MsgUndelegate) Path() string {
	return PathMsgUndelegate
}

func (m *MsgUndelegate) Validate() error {
	var errs error
	errs = x.AppendAddress(errs, "DelegatorAddress", m.DelegatorAddress)
	errs = x.AppendAddress(errs, "ValidatorAddress", m.ValidatorAddress)
	errs = errors.AppendField(errs, "Amount", x.ValidateAmount(m.Amount))
	return errs
}

func (MsgBeginRedelegate) Path() string {
	return PathMsgBeginRedelegate
}

func (m *MsgBeginRedelegate) Validate() error {
	var errs error
	errs = x.AppendAddress(errs, "DelegatorAddress", m.DelegatorAddress)
	errs = x.AppendAddress(errs, "ValidatorSrcAddress", m.ValidatorSrcAddress)
	errs = x.AppendAddress(errs, "ValidatorDstAddress", m.ValidatorDstAddress)
	if m.ValidatorSrcAddress != "" && m.ValidatorSrcAddress == m.ValidatorDstAddress {
		errs = errors.AppendField(errs, "ValidatorDstAddress",
			errors.Wrap(errors.ErrInput, "cannot redelegate to the same validator"))
	}
	errs = errors.AppendField(errs, "Amount", x.ValidateAmount(m.Amount))
	return errs
}
