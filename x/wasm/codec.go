package wasm

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/msig/coin"
)

// MsgInstantiateContract create a new smart contract instance for the given
// code id.
type MsgInstantiateContract struct {
	Sender string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Admin  string `protobuf:"bytes,2,opt,name=admin,proto3" json:"admin,omitempty"`
	CodeId uint64 `protobuf:"varint,3,opt,name=code_id,json=codeId,proto3" json:"code_id,omitempty"`
	Label  string `protobuf:"bytes,4,opt,name=label,proto3" json:"label,omitempty"`
	// Msg is the JSON encoded message passed to the contract.
	Msg   []byte       `protobuf:"bytes,5,opt,name=msg,proto3" json:"msg,omitempty"`
	Funds []*coin.Coin `protobuf:"bytes,6,rep,name=funds,proto3" json:"funds,omitempty"`
}

func (m *MsgInstantiateContract) Reset()         { *m = MsgInstantiateContract{} }
func (m *MsgInstantiateContract) String() string { return proto.CompactTextString(m) }
func (*MsgInstantiateContract) ProtoMessage()    {}

// MsgInstantiateContract2 create a new smart contract instance for the given
// code id with a predictable address.
type MsgInstantiateContract2 struct {
	Sender string       `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Admin  string       `protobuf:"bytes,2,opt,name=admin,proto3" json:"admin,omitempty"`
	CodeId uint64       `protobuf:"varint,3,opt,name=code_id,json=codeId,proto3" json:"code_id,omitempty"`
	Label  string       `protobuf:"bytes,4,opt,name=label,proto3" json:"label,omitempty"`
	Msg    []byte       `protobuf:"bytes,5,opt,name=msg,proto3" json:"msg,omitempty"`
	Funds  []*coin.Coin `protobuf:"bytes,6,rep,name=funds,proto3" json:"funds,omitempty"`
	// Salt is an arbitrary value provided by the sender. Size can be 1 to
	// 64 bytes.
	Salt   []byte `protobuf:"bytes,7,opt,name=salt,proto3" json:"salt,omitempty"`
	FixMsg bool   `protobuf:"varint,8,opt,name=fix_msg,json=fixMsg,proto3" json:"fix_msg,omitempty"`
}

func (m *MsgInstantiateContract2) Reset()         { *m = MsgInstantiateContract2{} }
func (m *MsgInstantiateContract2) String() string { return proto.CompactTextString(m) }
func (*MsgInstantiateContract2) ProtoMessage()    {}

// MsgUpdateAdmin sets a new admin for a smart contract.
type MsgUpdateAdmin struct {
	Sender   string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	NewAdmin string `protobuf:"bytes,2,opt,name=new_admin,json=newAdmin,proto3" json:"new_admin,omitempty"`
	Contract string `protobuf:"bytes,3,opt,name=contract,proto3" json:"contract,omitempty"`
}

func (m *MsgUpdateAdmin) Reset()         { *m = MsgUpdateAdmin{} }
func (m *MsgUpdateAdmin) String() string { return proto.CompactTextString(m) }
func (*MsgUpdateAdmin) ProtoMessage()    {}

// MsgExecuteContract submits the given message data to a smart contract.
type MsgExecuteContract struct {
	Sender   string       `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Contract string       `protobuf:"bytes,2,opt,name=contract,proto3" json:"contract,omitempty"`
	Msg      []byte       `protobuf:"bytes,3,opt,name=msg,proto3" json:"msg,omitempty"`
	Funds    []*coin.Coin `protobuf:"bytes,5,rep,name=funds,proto3" json:"funds,omitempty"`
}

func (m *MsgExecuteContract) Reset()         { *m = MsgExecuteContract{} }
func (m *MsgExecuteContract) String() string { return proto.CompactTextString(m) }
func (*MsgExecuteContract) ProtoMessage()    {}

// MsgMigrateContract runs a code upgrade/ downgrade for a smart contract.
type MsgMigrateContract struct {
	Sender   string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Contract string `protobuf:"bytes,2,opt,name=contract,proto3" json:"contract,omitempty"`
	CodeId   uint64 `protobuf:"varint,3,opt,name=code_id,json=codeId,proto3" json:"code_id,omitempty"`
	Msg      []byte `protobuf:"bytes,4,opt,name=msg,proto3" json:"msg,omitempty"`
}

func (m *MsgMigrateContract) Reset()         { *m = MsgMigrateContract{} }
func (m *MsgMigrateContract) String() string { return proto.CompactTextString(m) }
func (*MsgMigrateContract) ProtoMessage()    {}
