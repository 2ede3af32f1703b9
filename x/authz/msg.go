package authz

import (
	"time"

	"github.com/gogo/protobuf/proto"
	"github.com/gogo/protobuf/types"
	"github.com/iov-one/msig"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/x"
)

const (
	PathMsgGrant  = "/cosmos.authz.v1beta1.MsgGrant"
	PathMsgRevoke = "/cosmos.authz.v1beta1.MsgRevoke"
	PathMsgExec   = "/cosmos.authz.v1beta1.MsgExec"

	PathGenericAuthorization = "/cosmos.authz.v1beta1.GenericAuthorization"
)

var (
	_ msig.Msg = (*MsgGrant)(nil)
	_ msig.Msg = (*MsgRevoke)(nil)
	_ msig.Msg = (*MsgExec)(nil)
	_ msig.Msg = (*GenericAuthorization)(nil)
)

func (GenericAuthorization) Path() string {
	return PathGenericAuthorization
}

func (m *GenericAuthorization) Validate() error {
	if m.Msg == "" {
		return errors.Field("Msg", errors.ErrEmpty, "message type URL required")
	}
	return nil
}

// NewGenericGrant returns a grant of a generic authorization for given
// message type. Zero expiration time means no expiration.
func NewGenericGrant(msgTypeURL string, expiration time.Time) (*Grant, error) {
	auth, err := msig.Pack(&GenericAuthorization{Msg: msgTypeURL})
	if err != nil {
		return nil, errors.Wrap(err, "authorization")
	}
	g := &Grant{Authorization: auth}
	if !expiration.IsZero() {
		ts, err := types.TimestampProto(expiration)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInput, err.Error())
		}
		g.Expiration = ts
	}
	return g, nil
}

// UnpackGeneric returns the generic authorization carried by given grant.
// ErrType is returned if the grant carries any other authorization kind.
func (g *Grant) UnpackGeneric() (*GenericAuthorization, error) {
	if g == nil || g.Authorization == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "authorization")
	}
	if g.Authorization.TypeUrl != PathGenericAuthorization {
		return nil, errors.Wrapf(errors.ErrType, "not a generic authorization: %s", g.Authorization.TypeUrl)
	}
	var auth GenericAuthorization
	if err := proto.Unmarshal(g.Authorization.Value, &auth); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return &auth, nil
}

func (g *Grant) Validate() error {
	if g == nil {
		return errors.ErrEmpty
	}
	var errs error
	errs = errors.AppendField(errs, "Authorization", g.Authorization.Validate())
	if g.Expiration != nil {
		if _, err := types.TimestampFromProto(g.Expiration); err != nil {
			errs = errors.AppendField(errs, "Expiration", errors.Wrap(errors.ErrInput, err.Error()))
		}
	}
	return errs
}

func (MsgGrant) Path() string {
	return PathMsgGrant
}

func (m *MsgGrant) Validate() error {
	var errs error
	errs = x.AppendAddress(errs, "Granter", m.Granter)
	errs = x.AppendAddress(errs, "Grantee", m.Grantee)
	if m.Granter != "" && m.Granter == m.Grantee {
		errs = errors.AppendField(errs, "Grantee", errors.Wrap(errors.ErrInput, "granter and grantee cannot be the same"))
	}
	errs = errors.AppendField(errs, "Grant", m.Grant.Validate())
	return errs
}

func (MsgRevoke) Path() string {
	return PathMsgRevoke
}

func (m *MsgRevoke) Validate() error {
	var errs error
	errs = x.AppendAddress(errs, "Granter", m.Granter)
	errs = x.AppendAddress(errs, "Grantee", m.Grantee)
	if m.MsgTypeUrl == "" {
		errs = errors.AppendField(errs, "MsgTypeUrl", errors.ErrEmpty)
	}
	return errs
}

func (MsgExec) Path() string {
	return PathMsgExec
}

// Validate checks the envelope only. Inner messages are opaque at this level
// and must be unpacked to be validated.
func (m *MsgExec) Validate() error {
	var errs error
	errs = x.AppendAddress(errs, "Grantee", m.Grantee)
	if len(m.Msgs) == 0 {
		errs = errors.AppendField(errs, "Msgs", errors.ErrEmpty)
	}
	for i, a := range m.Msgs {
		errs = errors.AppendField(errs, errors.Path("Msgs", i), a.Validate())
	}
	return errs
}
