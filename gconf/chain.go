package gconf

import (
	"bytes"
	"encoding/json"
	"strings"

	"cosmossdk.io/math"
	"github.com/iov-one/msig/coin"
	"github.com/iov-one/msig/crypto/bech32"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/gas"
)

// ChainPkg is the name the chain configuration is saved under.
const ChainPkg = "chain"

// maxExponent is the highest asset exponent that a decimal amount can
// represent exactly.
const maxExponent = 18

// Asset describes how a base denomination is presented to a human.
type Asset struct {
	// Base is the on chain denomination, for example uatom.
	Base string `json:"base"`
	// Display is the denomination used when presenting amounts, for
	// example ATOM.
	Display string `json:"display"`
	// Exponent is the number of decimal places between the display and
	// the base unit.
	Exponent uint32 `json:"exponent"`
}

// Chain is the configuration of the network that transactions are built
// for.
type Chain struct {
	ChainID       string  `json:"chainId"`
	RegistryName  string  `json:"registryName"`
	AddressPrefix string  `json:"addressPrefix"`
	GasPrice      string  `json:"gasPrice"`
	Assets        []Asset `json:"assets"`
}

var _ Configuration = (*Chain)(nil)

// DefaultChain returns the configuration of the Cosmos Hub.
func DefaultChain() *Chain {
	return &Chain{
		ChainID:       "cosmoshub-4",
		RegistryName:  "cosmoshub",
		AddressPrefix: "cosmos",
		GasPrice:      "0.025uatom",
		Assets: []Asset{
			{Base: "uatom", Display: "ATOM", Exponent: 6},
		},
	}
}

func (c *Chain) Validate() error {
	if c == nil {
		return errors.Wrap(errors.ErrEmpty, "chain")
	}
	var errs error
	if c.ChainID == "" {
		errs = errors.AppendField(errs, "ChainID", errors.ErrEmpty)
	}
	if c.AddressPrefix == "" {
		errs = errors.AppendField(errs, "AddressPrefix", errors.ErrEmpty)
	} else if c.AddressPrefix != strings.ToLower(c.AddressPrefix) {
		errs = errors.AppendField(errs, "AddressPrefix", errors.Wrap(errors.ErrInput, "must be lower case"))
	}
	if _, err := gas.ParsePrice(c.GasPrice); err != nil {
		errs = errors.Append(errs, err)
	}

	bases := make(map[string]bool)
	for i, a := range c.Assets {
		field := errors.Path("Assets", i)
		switch {
		case !coin.IsDenom(a.Base):
			errs = errors.AppendField(errs, field+".Base", errors.ErrCurrency)
		case bases[a.Base]:
			errs = errors.AppendField(errs, field+".Base", errors.ErrDuplicate)
		}
		bases[a.Base] = true
		if a.Display == "" {
			errs = errors.AppendField(errs, field+".Display", errors.ErrEmpty)
		}
		if a.Exponent > maxExponent {
			errs = errors.AppendField(errs, field+".Exponent",
				errors.Wrapf(errors.ErrInput, "must not be greater than %d", maxExponent))
		}
		if j, ok := c.displayCollision(i); ok {
			errs = errors.AppendField(errs, field+".Display",
				errors.Wrapf(errors.ErrDuplicate, "ambiguous with asset %d", j))
		}
	}
	return errs
}

// displayCollision returns the index of another asset that a lookup by the
// display denomination of the i-th asset could resolve to instead.
// Display denominations are matched ignoring case.
func (c *Chain) displayCollision(i int) (int, bool) {
	display := c.Assets[i].Display
	if display == "" {
		return 0, false
	}
	for j, other := range c.Assets {
		if j == i {
			continue
		}
		if strings.EqualFold(display, other.Base) {
			return j, true
		}
		if j < i && strings.EqualFold(display, other.Display) {
			return j, true
		}
	}
	return 0, false
}

func (c *Chain) Marshal() ([]byte, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return raw, nil
}

// Unmarshal decodes the JSON representation of the chain configuration.
// Unknown attributes are rejected.
func (c *Chain) Unmarshal(raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var cp Chain
	if err := dec.Decode(&cp); err != nil {
		return errors.Wrapf(errors.ErrInput, "chain: %s", err)
	}
	*c = cp
	return nil
}

// Price returns the default gas price of this chain.
func (c *Chain) Price() (gas.Price, error) {
	return gas.ParsePrice(c.GasPrice)
}

// CheckAddress returns an error if given address does not belong to this
// chain.
func (c *Chain) CheckAddress(addr string) error {
	return bech32.CheckAddress(addr, c.AddressPrefix)
}

// CheckValidatorAddress returns an error if given address is not a validator
// operator address of this chain.
func (c *Chain) CheckValidatorAddress(addr string) error {
	return bech32.CheckAddress(addr, c.AddressPrefix+"valoper")
}

// Asset returns the asset matching given denomination. Both the base and
// the display denomination are matched, the latter ignoring case. A valid
// chain has no display denomination that matches another asset.
func (c *Chain) Asset(denom string) (Asset, bool) {
	for _, a := range c.Assets {
		if a.Base == denom || strings.EqualFold(a.Display, denom) {
			return a, true
		}
	}
	return Asset{}, false
}

// BaseCoin converts an amount expressed in given denomination into a coin
// of the base denomination. If the denomination is not a display
// denomination of any asset, it is used as is and the amount must be an
// integer. An amount that is not representable in base units is rejected.
func (c *Chain) BaseCoin(amount, denom string) (*coin.Coin, error) {
	d, err := math.LegacyNewDecFromStr(strings.TrimSpace(amount))
	if err != nil {
		return nil, errors.Field("Amount", errors.ErrAmount, "not a decimal: %q", amount)
	}
	if d.IsNegative() {
		return nil, errors.Field("Amount", errors.ErrAmount, "must not be negative")
	}

	base := denom
	if a, ok := c.Asset(denom); ok {
		base = a.Base
		if a.Base != denom {
			d = d.MulInt(pow10(a.Exponent))
		}
	}
	if !d.IsInteger() {
		return nil, errors.Field("Amount", errors.ErrAmount, "%s%s is a fraction of the base unit", amount, denom)
	}
	res := &coin.Coin{Denom: base, Amount: d.TruncateInt().String()}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

// DisplayCoin returns the printable form of given base coin. Denominations
// without an asset are printed unchanged.
func (c *Chain) DisplayCoin(bc *coin.Coin) string {
	if bc == nil {
		return ""
	}
	a, ok := c.Asset(bc.Denom)
	if !ok || a.Base != bc.Denom {
		return bc.Amount + " " + bc.Denom
	}
	n, err := bc.AmountInt()
	if err != nil {
		return bc.Amount + " " + bc.Denom
	}
	d := math.LegacyNewDecFromInt(n).QuoInt(pow10(a.Exponent))
	return trimDec(d.String()) + " " + a.Display
}

// DisplayCoins returns the printable form of all given coins.
func (c *Chain) DisplayCoins(cs []*coin.Coin) string {
	if len(cs) == 0 {
		return "none"
	}
	res := make([]string, len(cs))
	for i, bc := range cs {
		res[i] = c.DisplayCoin(bc)
	}
	return strings.Join(res, ", ")
}

func pow10(exp uint32) math.Int {
	return math.NewIntWithDecimal(1, int(exp))
}

// trimDec removes insignificant zeros of a decimal representation.
func trimDec(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}
