package msig

import (
	"github.com/gogo/protobuf/proto"
)

// Msg is a single protocol message that can be part of a transaction.
//
// Each implementation is a protobuf message (encoded by gogo/protobuf using
// reflection over the struct tags) that knows its own type URL.
type Msg interface {
	proto.Message

	// Path returns the protobuf type URL of this message, for example
	// "/cosmos.bank.v1beta1.MsgSend". It is the message type identifier
	// used by the registry, the gas table and the JSON codec.
	Path() string

	// Validate performs a sanity check of the message content. It does
	// not consult any chain state.
	Validate() error
}
