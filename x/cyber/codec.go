package cyber

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/msig/coin"
)

// Link is a directed edge between two particles of the knowledge graph.
type Link struct {
	From string `protobuf:"bytes,1,opt,name=from,proto3" json:"from,omitempty"`
	To   string `protobuf:"bytes,2,opt,name=to,proto3" json:"to,omitempty"`
}

func (m *Link) Reset()         { *m = Link{} }
func (m *Link) String() string { return proto.CompactTextString(m) }
func (*Link) ProtoMessage()    {}

// MsgCyberlink submits links between particles on behalf of a neuron.
type MsgCyberlink struct {
	Neuron string  `protobuf:"bytes,1,opt,name=neuron,proto3" json:"neuron,omitempty"`
	Links  []*Link `protobuf:"bytes,2,rep,name=links,proto3" json:"links,omitempty"`
}

func (m *MsgCyberlink) Reset()         { *m = MsgCyberlink{} }
func (m *MsgCyberlink) String() string { return proto.CompactTextString(m) }
func (*MsgCyberlink) ProtoMessage()    {}

// MsgInvestmint locks tokens for a given length of time in order to mint
// resources: volts (bandwidth) or amperes (rank).
type MsgInvestmint struct {
	Neuron   string     `protobuf:"bytes,1,opt,name=neuron,proto3" json:"neuron,omitempty"`
	Amount   *coin.Coin `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Resource string     `protobuf:"bytes,3,opt,name=resource,proto3" json:"resource,omitempty"`
	// Length of the investment in seconds.
	Length uint64 `protobuf:"varint,4,opt,name=length,proto3" json:"length,omitempty"`
}

func (m *MsgInvestmint) Reset()         { *m = MsgInvestmint{} }
func (m *MsgInvestmint) String() string { return proto.CompactTextString(m) }
func (*MsgInvestmint) ProtoMessage()    {}
