package gas

import (
	"regexp"
	"strconv"
	"strings"

	"cosmossdk.io/math"
	"github.com/iov-one/msig/coin"
	"github.com/iov-one/msig/errors"
)

// MaxLimit is the highest gas limit accepted. It is the largest integer that
// a JSON number can represent without losing precision (2^53 - 1).
const MaxLimit int64 = 1<<53 - 1

// ValidateLimit returns an error if given gas limit is not a positive
// integer no larger than MaxLimit. The error is a GasLimit field error.
func ValidateLimit(n int64) error {
	if n <= 0 {
		return errors.Field("GasLimit", errors.ErrInput, "must be a positive integer, got %d", n)
	}
	if n > MaxLimit {
		return errors.Field("GasLimit", errors.ErrInput, "must not be greater than %d, got %d", MaxLimit, n)
	}
	return nil
}

// ParseLimit parses the decimal representation of a gas limit.
func ParseLimit(raw string) (uint64, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Field("GasLimit", errors.ErrInput, "not an integer: %q", raw)
	}
	if err := ValidateLimit(n); err != nil {
		return 0, err
	}
	return uint64(n), nil
}

// Price is the amount of a token paid for a single unit of gas.
type Price struct {
	Amount math.LegacyDec
	Denom  string
}

var priceRx = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)([a-zA-Z][a-zA-Z0-9/:._-]{2,127})$`)

// ParsePrice parses a gas price in the "<decimal amount><denom>" format, for
// example "0.025uatom".
func ParsePrice(raw string) (Price, error) {
	m := priceRx.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return Price{}, errors.Field("GasPrice", errors.ErrInput, "invalid gas price %q", raw)
	}
	amount, err := math.LegacyNewDecFromStr(m[1])
	if err != nil {
		return Price{}, errors.Field("GasPrice", errors.ErrInput, "invalid amount %q: %s", m[1], err)
	}
	return Price{Amount: amount, Denom: m[2]}, nil
}

func (p Price) String() string {
	if p.Amount.IsNil() {
		return "0" + p.Denom
	}
	return p.Amount.String() + p.Denom
}

// Fee is the fee declaration of a transaction, as used by the amino JSON
// signing document.
type Fee struct {
	Amount  []*coin.Coin `json:"amount"`
	Gas     string       `json:"gas"`
	Granter string       `json:"granter,omitempty"`
	Payer   string       `json:"payer,omitempty"`
}

// Validate returns an error if the fee amount or the gas limit is invalid.
func (f *Fee) Validate() error {
	if f == nil {
		return errors.Wrap(errors.ErrEmpty, "fee")
	}
	var errs error
	for i, c := range f.Amount {
		errs = errors.AppendField(errs, errors.Path("Amount", i), c.Validate())
	}
	if _, err := ParseLimit(f.Gas); err != nil {
		errs = errors.Append(errs, err)
	}
	return errs
}

// Limit returns the gas limit declared by this fee.
func (f *Fee) Limit() (uint64, error) {
	return ParseLimit(f.Gas)
}

// CalculateFee returns the fee of a transaction with given gas limit. The
// amount is rounded up to the nearest integer.
func CalculateFee(limit uint64, price Price) Fee {
	amount := price.Amount.MulInt(math.NewIntFromUint64(limit)).Ceil().TruncateInt()
	return Fee{
		Amount: []*coin.Coin{{Denom: price.Denom, Amount: amount.String()}},
		Gas:    strconv.FormatUint(limit, 10),
	}
}
