package cyber

import (
	"github.com/iov-one/msig"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/x"
)

const (
	PathMsgCyberlink  = "/cyber.graph.v1beta1.MsgCyberlink"
	PathMsgInvestmint = "/cyber.resources.v1beta1.MsgInvestmint"
)

const (
	// ParticleSize is the length of an IPFS CIDv0 content identifier.
	ParticleSize = 46

	ResourceVolt   = "millivolt"
	ResourceAmpere = "milliampere"
)

var (
	_ msig.Msg = (*MsgCyberlink)(nil)
	_ msig.Msg = (*MsgInvestmint)(nil)
)

func (MsgCyberlink) Path() string {
	return PathMsgCyberlink
}

func (m *MsgCyberlink) Validate() error {
	var errs error
	errs = x.AppendAddress(errs, "Neuron", m.Neuron)
	if len(m.Links) == 0 {
		errs = errors.AppendField(errs, "Links", errors.ErrEmpty)
	}
	for i, l := range m.Links {
		errs = errors.AppendField(errs, errors.Path("Links", i), l.Validate())
	}
	return errs
}

// Validate returns an error if any of the particles is not a content
// identifier or if the link points to itself.
func (l *Link) Validate() error {
	if l == nil {
		return errors.ErrEmpty
	}
	var errs error
	errs = errors.AppendField(errs, "From", validateParticle(l.From))
	errs = errors.AppendField(errs, "To", validateParticle(l.To))
	if errs == nil && l.From == l.To {
		errs = errors.Field("To", errors.ErrInput, "cannot link a particle to itself")
	}
	return errs
}

func validateParticle(p string) error {
	if len(p) != ParticleSize {
		return errors.Wrapf(errors.ErrInput, "failed particle hash validation: want %d characters, got %d", ParticleSize, len(p))
	}
	return nil
}

func (MsgInvestmint) Path() string {
	return PathMsgInvestmint
}

func (m *MsgInvestmint) Validate() error {
	var errs error
	errs = x.AppendAddress(errs, "Neuron", m.Neuron)
	errs = errors.AppendField(errs, "Amount", x.ValidateAmount(m.Amount))
	if m.Resource != ResourceVolt && m.Resource != ResourceAmpere {
		errs = errors.AppendField(errs, "Resource",
			errors.Wrapf(errors.ErrInput, "resource must be %s or %s", ResourceVolt, ResourceAmpere))
	}
	if m.Length == 0 {
		errs = errors.AppendField(errs, "Length", errors.ErrEmpty)
	}
	return errs
}
