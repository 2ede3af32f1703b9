package wasm

import (
	"encoding/json"

	"github.com/iov-one/msig"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/x"
)

const (
	PathMsgInstantiateContract  = "/cosmwasm.wasm.v1.MsgInstantiateContract"
	PathMsgInstantiateContract2 = "/cosmwasm.wasm.v1.MsgInstantiateContract2"
	PathMsgUpdateAdmin          = "/cosmwasm.wasm.v1.MsgUpdateAdmin"
	PathMsgExecuteContract      = "/cosmwasm.wasm.v1.MsgExecuteContract"
	PathMsgMigrateContract      = "/cosmwasm.wasm.v1.MsgMigrateContract"
)

const (
	maxLabelSize = 128
	maxSaltSize  = 64
)

var (
	_ msig.Msg = (*MsgInstantiateContract)(nil)
	_ msig.Msg = (*MsgInstantiateContract2)(nil)
	_ msig.Msg = (*MsgUpdateAdmin)(nil)
	_ msig.Msg = (*MsgExecuteContract)(nil)
	_ msig.Msg = (*MsgMigrateContract)(nil)
)

func (MsgInstantiateContract) Path() string {
	return PathMsgInstantiateContract
}

func (m *MsgInstantiateContract) Validate() error {
	errs := validateInstantiate(m.Sender, m.Admin, m.CodeId, m.Label, m.Msg)
	return errors.AppendField(errs, "Funds", x.ValidateFunds(m.Funds, false))
}

func (MsgInstantiateContract2) Path() string {
	return PathMsgInstantiateContract2
}

func (m *MsgInstantiateContract2) Validate() error {
	errs := validateInstantiate(m.Sender, m.Admin, m.CodeId, m.Label, m.Msg)
	errs = errors.AppendField(errs, "Funds", x.ValidateFunds(m.Funds, false))
	switch n := len(m.Salt); {
	case n == 0:
		errs = errors.AppendField(errs, "Salt", errors.ErrEmpty)
	case n > maxSaltSize:
		errs = errors.AppendField(errs, "Salt", errors.Wrapf(errors.ErrInput, "longer than %d bytes", maxSaltSize))
	}
	return errs
}

func validateInstantiate(sender, admin string, codeID uint64, label string, msg []byte) error {
	var errs error
	errs = x.AppendAddress(errs, "Sender", sender)
	if admin != "" {
		errs = x.AppendAddress(errs, "Admin", admin)
	}
	if codeID == 0 {
		errs = errors.AppendField(errs, "CodeId", errors.ErrEmpty)
	}
	switch {
	case label == "":
		errs = errors.AppendField(errs, "Label", errors.ErrEmpty)
	case len(label) > maxLabelSize:
		errs = errors.AppendField(errs, "Label", errors.Wrapf(errors.ErrInput, "longer than %d characters", maxLabelSize))
	}
	errs = errors.AppendField(errs, "Msg", validateContractMsg(msg))
	return errs
}

func (MsgUpdateAdmin) Path() string {
	return PathMsgUpdateAdmin
}

func (m *MsgUpdateAdmin) Validate() error {
	var errs error
	errs = x.AppendAddress(errs, "Sender", m.Sender)
	errs = x.AppendAddress(errs, "NewAdmin", m.NewAdmin)
	errs = x.AppendAddress(errs, "Contract", m.Contract)
	return errs
}

func (MsgExecuteContract) Path() string {
	return PathMsgExecuteContract
}

func (m *MsgExecuteContract) Validate() error {
	var errs error
	errs = x.AppendAddress(errs, "Sender", m.Sender)
	errs = x.AppendAddress(errs, "Contract", m.Contract)
	errs = errors.AppendField(errs, "Msg", validateContractMsg(m.Msg))
	errs = errors.AppendField(errs, "Funds", x.ValidateFunds(m.Funds, false))
	return errs
}

func (MsgMigrateContract) Path() string {
	return PathMsgMigrateContract
}

func (m *MsgMigrateContract) Validate() error {
	var errs error
	errs = x.AppendAddress(errs, "Sender", m.Sender)
	errs = x.AppendAddress(errs, "Contract", m.Contract)
	if m.CodeId == 0 {
		errs = errors.AppendField(errs, "CodeId", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Msg", validateContractMsg(m.Msg))
	return errs
}

// validateContractMsg ensures the payload is a JSON object, as required by
// CosmWasm contracts.
func validateContractMsg(msg []byte) error {
	if len(msg) == 0 {
		return errors.ErrEmpty
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(msg, &obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "not a JSON object: %s", err)
	}
	return nil
}
