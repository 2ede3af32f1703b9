package gov

import (
	"strings"

	"github.com/iov-one/msig"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/x"
)

const PathMsgVote = "/cosmos.gov.v1beta1.MsgVote"

var _ msig.Msg = (*MsgVote)(nil)

func (MsgVote) Path() string {
	return PathMsgVote
}

func (m *MsgVote) Validate() error {
	var errs error
	if m.ProposalId == 0 {
		errs = errors.AppendField(errs, "ProposalId", errors.ErrEmpty)
	}
	errs = x.AppendAddress(errs, "Voter", m.Voter)
	errs = errors.AppendField(errs, "Option", m.Option.Validate())
	return errs
}

// Validate returns an error if this is not one of the options a voter can
// choose.
func (o VoteOption) Validate() error {
	if o == VoteOptionUnspecified {
		return errors.Wrap(errors.ErrEmpty, "vote option")
	}
	if _, ok := VoteOption_name[int32(o)]; !ok {
		return errors.Wrapf(errors.ErrInput, "unknown vote option %d", o)
	}
	return nil
}

// ParseVoteOption returns the vote option for given name. Both the full
// enum name (VOTE_OPTION_YES) and the short form (yes) are accepted, case
// insensitive. "veto" is an alias for "no_with_veto".
func ParseVoteOption(s string) (VoteOption, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "VETO" {
		name = "NO_WITH_VETO"
	}
	if !strings.HasPrefix(name, "VOTE_OPTION_") {
		name = "VOTE_OPTION_" + name
	}
	n, ok := VoteOption_value[name]
	if !ok || n == int32(VoteOptionUnspecified) {
		return VoteOptionUnspecified, errors.Wrapf(errors.ErrInput, "unknown vote option %q", s)
	}
	return VoteOption(n), nil
}
