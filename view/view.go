/*
Package view renders transaction records in a form meant to be reviewed by
a human before signing.
*/
package view

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gogo/protobuf/types"
	"github.com/iov-one/msig"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/gconf"
	"github.com/iov-one/msig/registry"
	"github.com/iov-one/msig/txjson"
	"github.com/iov-one/msig/x/authz"
	"github.com/iov-one/msig/x/bank"
)

// Render writes the review of given record. Amounts are printed in display
// units of the given chain assets. Chain can be nil, in which case amounts
// are printed in base units.
func Render(w io.Writer, r *txjson.Record, chain *gconf.Chain) error {
	if r == nil {
		return errors.Wrap(errors.ErrEmpty, "record")
	}
	if chain == nil {
		chain = &gconf.Chain{}
	}
	p := &printer{w: w, chain: chain}

	p.field("", "Chain", r.ChainID)
	p.field("", "Account number", fmt.Sprint(r.AccountNumber))
	p.field("", "Sequence", fmt.Sprint(r.Sequence))
	if r.Memo != "" {
		p.field("", "Memo", r.Memo)
	}
	if r.Fee == nil {
		p.field("", "Fee", "none")
	} else {
		p.field("", "Fee", chain.DisplayCoins(r.Fee.Amount))
		p.field("", "Gas limit", r.Fee.Gas)
		if r.Fee.Granter != "" {
			p.field("", "Fee granter", r.Fee.Granter)
		}
		if r.Fee.Payer != "" {
			p.field("", "Fee payer", r.Fee.Payer)
		}
	}
	if n, err := r.EstimateGas(); err == nil {
		p.field("", "Estimated gas", fmt.Sprint(n))
	}

	for i, m := range r.Msgs {
		p.line("")
		if m == nil {
			p.line("Message %d of %d: missing", i+1, len(r.Msgs))
			continue
		}
		p.line("Message %d of %d: %s", i+1, len(r.Msgs), m.Path())
		p.msg("  ", m)
	}
	return p.err
}

// printer writes formatted lines and keeps the first write error.
type printer struct {
	w     io.Writer
	chain *gconf.Chain
	err   error
}

func (p *printer) line(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) field(indent, name, value string) {
	p.line("%s%-15s %s", indent, name+":", value)
}

func (p *printer) msg(indent string, m msig.Msg) {
	switch m := m.(type) {
	case *bank.MsgMultiSend:
		p.multiSend(indent, m)
	case *authz.MsgGrant:
		p.grant(indent, m)
	case *authz.MsgExec:
		p.exec(indent, m)
	default:
		p.json(indent, m)
	}
}

func (p *printer) multiSend(indent string, m *bank.MsgMultiSend) {
	p.line("%sInputs:", indent)
	for _, in := range m.Inputs {
		p.line("%s  %s  %s", indent, in.Address, p.chain.DisplayCoins(in.Coins))
	}
	p.line("%sOutputs:", indent)
	for _, out := range m.Outputs {
		p.line("%s  %s  %s", indent, out.Address, p.chain.DisplayCoins(out.Coins))
	}
}

func (p *printer) grant(indent string, m *authz.MsgGrant) {
	p.field(indent, "Granter", m.Granter)
	p.field(indent, "Grantee", m.Grantee)

	var auth *msig.Any
	var exp *types.Timestamp
	if m.Grant != nil {
		auth = m.Grant.Authorization
		exp = m.Grant.Expiration
	}

	if auth == nil || auth.TypeUrl == "" {
		p.field(indent, "Authorization", "Unknown")
	} else {
		p.field(indent, "Authorization", auth.TypeUrl)
	}
	p.field(indent, "Payload", payload(m.Grant))

	if exp == nil {
		p.field(indent, "Expiration", "No expiration")
	} else if t, err := types.TimestampFromProto(exp); err != nil {
		p.field(indent, "Expiration", "invalid: "+err.Error())
	} else {
		p.field(indent, "Expiration", t.UTC().Format("2006-01-02 15:04:05 MST"))
	}
}

// payload returns the printable form of the authorization payload. Generic
// authorizations are printed as the message type they allow, anything else
// as the base64 of the opaque value.
func payload(g *authz.Grant) string {
	if g == nil || g.Authorization == nil || len(g.Authorization.Value) == 0 {
		return "none"
	}
	if generic, err := g.UnpackGeneric(); err == nil {
		return "allows " + generic.Msg
	}
	return base64.StdEncoding.EncodeToString(g.Authorization.Value)
}

func (p *printer) exec(indent string, m *authz.MsgExec) {
	p.field(indent, "Grantee", m.Grantee)
	for i, a := range m.Msgs {
		if a == nil {
			p.line("%sExecute %d of %d: missing", indent, i+1, len(m.Msgs))
			continue
		}
		p.line("%sExecute %d of %d: %s", indent, i+1, len(m.Msgs), a.TypeUrl)
		inner, err := registry.Unpack(a)
		if err != nil {
			p.field(indent+"  ", "Cannot decode", err.Error())
			continue
		}
		p.msg(indent+"  ", inner)
	}
}

func (p *printer) json(indent string, m msig.Msg) {
	c, err := registry.Resolve(m.Path())
	if err != nil {
		p.field(indent, "Cannot display", err.Error())
		return
	}
	raw, err := c.ToJSON(m)
	if err != nil {
		p.field(indent, "Cannot display", err.Error())
		return
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, indent, "  "); err != nil {
		p.field(indent, "Cannot display", err.Error())
		return
	}
	p.line("%s%s", indent, strings.TrimSpace(pretty.String()))
}
