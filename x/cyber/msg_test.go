package cyber

import (
	"testing"

	"github.com/iov-one/msig"
	"github.com/iov-one/msig/coin"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/msigtest"
	"github.com/iov-one/msig/msigtest/assert"
)

func TestValidateMsgs(t *testing.T) {
	cases := map[string]struct {
		msg     msig.Msg
		field   string
		wantErr *errors.Error
	}{
		"cyberlink": {
			msg: &MsgCyberlink{
				Neuron: msigtest.Bostrom,
				Links:  []*Link{{From: msigtest.ParticleOne, To: msigtest.ParticleTwo}},
			},
		},
		"cyberlink without links": {
			msg:     &MsgCyberlink{Neuron: msigtest.Bostrom},
			field:   "Links",
			wantErr: errors.ErrEmpty,
		},
		"short particle": {
			msg: &MsgCyberlink{
				Neuron: msigtest.Bostrom,
				Links:  []*Link{{From: msigtest.ParticleOne, To: "QmShort"}},
			},
			field:   "Links.0",
			wantErr: errors.ErrInput,
		},
		"self link": {
			msg: &MsgCyberlink{
				Neuron: msigtest.Bostrom,
				Links:  []*Link{{From: msigtest.ParticleOne, To: msigtest.ParticleOne}},
			},
			field:   "Links.0",
			wantErr: errors.ErrInput,
		},
		"investmint volts": {
			msg: &MsgInvestmint{
				Neuron:   msigtest.Bostrom,
				Amount:   coin.NewCoin(1000, "hydrogen"),
				Resource: ResourceVolt,
				Length:   86400,
			},
		},
		"investmint unknown resource": {
			msg: &MsgInvestmint{
				Neuron:   msigtest.Bostrom,
				Amount:   coin.NewCoin(1000, "hydrogen"),
				Resource: "volt",
				Length:   86400,
			},
			field:   "Resource",
			wantErr: errors.ErrInput,
		},
		"investmint without length": {
			msg: &MsgInvestmint{
				Neuron:   msigtest.Bostrom,
				Amount:   coin.NewCoin(1000, "hydrogen"),
				Resource: ResourceAmpere,
			},
			field:   "Length",
			wantErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
				return
			}
			assert.FieldError(t, err, tc.field, tc.wantErr)
		})
	}
}
