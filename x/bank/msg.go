package bank

import (
	"github.com/iov-one/msig"
	"github.com/iov-one/msig/coin"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/x"
)

const (
	PathMsgSend      = "/cosmos.bank.v1beta1.MsgSend"
	PathMsgMultiSend = "/cosmos.bank.v1beta1.MsgMultiSend"
)

// Ensure we implement the Msg interface
var (
	_ msig.Msg = (*MsgSend)(nil)
	_ msig.Msg = (*MsgMultiSend)(nil)
)

func (MsgSend) Path() string {
	return PathMsgSend
}

func (m *MsgSend) Validate() error {
	var errs error
	errs = x.AppendAddress(errs, "FromAddress", m.FromAddress)
	errs = x.AppendAddress(errs, "ToAddress", m.ToAddress)
	errs = errors.AppendField(errs, "Amount", x.ValidateFunds(m.Amount, true))
	return errs
}

func (MsgMultiSend) Path() string {
	return PathMsgMultiSend
}

// Validate ensures that every participant address is valid and that the
// total of all inputs is equal to the total of all outputs for every
// denomination.
func (m *MsgMultiSend) Validate() error {
	var errs error
	if len(m.Inputs) == 0 {
		errs = errors.AppendField(errs, "Inputs", errors.ErrEmpty)
	}
	if len(m.Outputs) == 0 {
		errs = errors.AppendField(errs, "Outputs", errors.ErrEmpty)
	}

	var ins, outs []*coin.Coin
	for i, in := range m.Inputs {
		if in == nil {
			errs = errors.AppendField(errs, errors.Path("Inputs", i), errors.ErrEmpty)
			continue
		}
		name := errors.Path("Inputs", i)
		errs = x.AppendAddress(errs, name+".Address", in.Address)
		errs = errors.AppendField(errs, name+".Coins", x.ValidateCoinList(in.Coins))
		ins = append(ins, in.Coins...)
	}
	for i, out := range m.Outputs {
		if out == nil {
			errs = errors.AppendField(errs, errors.Path("Outputs", i), errors.ErrEmpty)
			continue
		}
		name := errors.Path("Outputs", i)
		errs = x.AppendAddress(errs, name+".Address", out.Address)
		errs = errors.AppendField(errs, name+".Coins", x.ValidateCoinList(out.Coins))
		outs = append(outs, out.Coins...)
	}
	if errs != nil {
		return errs
	}

	inSum, err := coin.Sum(ins...)
	if err != nil {
		return errors.Field("Inputs", err, "")
	}
	outSum, err := coin.Sum(outs...)
	if err != nil {
		return errors.Field("Outputs", err, "")
	}
	if !coin.EqualSums(inSum, outSum) {
		return errors.Field("Outputs", errors.ErrAmount, "sum of inputs and outputs must be equal")
	}
	return nil
}
