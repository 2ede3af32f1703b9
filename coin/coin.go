package coin

import (
	"regexp"
	"strings"

	"cosmossdk.io/math"
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/msig/errors"
)

// Coin is the cosmos.base.v1beta1.Coin message. The amount is an arbitrary
// precision non-negative integer kept in its decimal string form, so that no
// precision is lost while a value travels between encodings.
type Coin struct {
	Denom  string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
	Amount string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Coin) Reset()         { *m = Coin{} }
func (m *Coin) String() string { return proto.CompactTextString(m) }
func (*Coin) ProtoMessage()    {}

// IsDenom is the RegExp to ensure valid denominations. It accepts both native
// (uatom) and derived (ibc/27394F..., factory/cosmos1.../utoken) names.
var IsDenom = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9/:._-]{2,127}$`).MatchString

var coinFormatRx = regexp.MustCompile(`^([0-9]+)\s*([a-zA-Z][a-zA-Z0-9/:._-]{2,127})$`)

// NewCoin returns a new coin instance.
func NewCoin(amount int64, denom string) *Coin {
	return &Coin{Denom: denom, Amount: math.NewInt(amount).String()}
}

// ParseCoin parses a coin in the "<amount><denom>" format, for example
// "1000uatom". Whitespace between the amount and the denomination is
// allowed.
func ParseCoin(raw string) (*Coin, error) {
	m := coinFormatRx.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid coin format %q", raw)
	}
	amount, ok := math.NewIntFromString(m[1])
	if !ok {
		return nil, errors.Wrapf(errors.ErrAmount, "invalid amount %q", m[1])
	}
	return &Coin{Denom: m[2], Amount: amount.String()}, nil
}

// AmountInt returns the amount as an arbitrary precision integer.
func (m *Coin) AmountInt() (math.Int, error) {
	if m.Amount == "" {
		return math.ZeroInt(), nil
	}
	n, ok := math.NewIntFromString(m.Amount)
	if !ok {
		return math.Int{}, errors.Wrapf(errors.ErrAmount, "not an integer: %q", m.Amount)
	}
	return n, nil
}

// Validate returns an error if the coin denomination is not valid or the
// amount is not a non-negative integer.
func (m *Coin) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrEmpty, "coin")
	}
	var errs error
	if !IsDenom(m.Denom) {
		errs = errors.AppendField(errs, "Denom", errors.Wrapf(errors.ErrCurrency, "invalid denomination %q", m.Denom))
	}
	if n, err := m.AmountInt(); err != nil {
		errs = errors.AppendField(errs, "Amount", err)
	} else if n.IsNegative() {
		errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "negative"))
	}
	return errs
}

// IsZero returns true if the amount is not set or is zero.
func (m *Coin) IsZero() bool {
	n, err := m.AmountInt()
	return err == nil && n.IsZero()
}

// Format returns the "<amount><denom>" representation that can be parsed back
// using ParseCoin.
func (m *Coin) Format() string {
	if m == nil {
		return ""
	}
	amount := m.Amount
	if amount == "" {
		amount = "0"
	}
	return amount + m.Denom
}
