package ibc

import (
	"regexp"

	"github.com/iov-one/msig"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/x"
)

const PathMsgTransfer = "/ibc.applications.transfer.v1.MsgTransfer"

var _ msig.Msg = (*MsgTransfer)(nil)

// isIdentifier matches port and channel identifiers as defined by ICS 24.
var isIdentifier = regexp.MustCompile(`^[a-zA-Z0-9._+\-#\[\]<>]{2,128}$`).MatchString

func (MsgTransfer) Path() string {
	return PathMsgTransfer
}

// Validate checks the local part of the transfer only. The receiver lives on
// another chain and therefore only has to be present.
func (m *MsgTransfer) Validate() error {
	var errs error
	if !isIdentifier(m.SourcePort) {
		errs = errors.AppendField(errs, "SourcePort", errors.Wrapf(errors.ErrInput, "invalid port identifier %q", m.SourcePort))
	}
	if !isIdentifier(m.SourceChannel) {
		errs = errors.AppendField(errs, "SourceChannel", errors.Wrapf(errors.ErrInput, "invalid channel identifier %q", m.SourceChannel))
	}
	errs = errors.AppendField(errs, "Token", x.ValidateAmount(m.Token))
	errs = x.AppendAddress(errs, "Sender", m.Sender)
	if m.Receiver == "" {
		errs = errors.AppendField(errs, "Receiver", errors.ErrEmpty)
	}
	if m.TimeoutTimestamp == 0 && (m.TimeoutHeight == nil || m.TimeoutHeight.RevisionHeight == 0) {
		errs = errors.AppendField(errs, "TimeoutTimestamp", errors.Wrap(errors.ErrEmpty, "either timeout height or timestamp must be set"))
	}
	return errs
}
