package coin

import (
	"sort"
	"strconv"
	"strings"

	"cosmossdk.io/math"
	"github.com/iov-one/msig/errors"
)

// Coins represents a list of coins. Order is preserved as given.
type Coins []*Coin

// ParseCoins parses a comma separated list of coins, for example
// "100uatom,5ustake". An empty string is an empty list.
func ParseCoins(raw string) (Coins, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var res Coins
	for i, chunk := range strings.Split(raw, ",") {
		c, err := ParseCoin(chunk)
		if err != nil {
			return nil, errors.Wrapf(err, "coin %d", i)
		}
		res = append(res, c)
	}
	return res, nil
}

// Validate returns all errors of all coins from the list. An empty list is
// valid.
func (cs Coins) Validate() error {
	var errs error
	for i, c := range cs {
		errs = errors.AppendField(errs, strconv.Itoa(i), c.Validate())
	}
	return errs
}

// Format returns a comma separated representation that can be parsed back by
// ParseCoins.
func (cs Coins) Format() string {
	chunks := make([]string, len(cs))
	for i, c := range cs {
		chunks[i] = c.Format()
	}
	return strings.Join(chunks, ",")
}

// Sum adds up given coins by denomination.
func Sum(coins ...*Coin) (map[string]math.Int, error) {
	sum := make(map[string]math.Int)
	for _, c := range coins {
		if c == nil {
			continue
		}
		n, err := c.AmountInt()
		if err != nil {
			return nil, err
		}
		if prev, ok := sum[c.Denom]; ok {
			total, err := prev.SafeAdd(n)
			if err != nil {
				return nil, errors.Wrapf(errors.ErrOverflow, "sum of %s", c.Denom)
			}
			sum[c.Denom] = total
		} else {
			sum[c.Denom] = n
		}
	}
	return sum, nil
}

// EqualSums returns true if both sums hold the same amount of every
// denomination. A denomination with a zero amount is the same as a missing
// one.
func EqualSums(a, b map[string]math.Int) bool {
	for denom, n := range a {
		m, ok := b[denom]
		if !ok {
			m = math.ZeroInt()
		}
		if !n.Equal(m) {
			return false
		}
	}
	for denom, m := range b {
		if _, ok := a[denom]; !ok && !m.IsZero() {
			return false
		}
	}
	return true
}

// Denoms returns the sorted list of denominations present in the sum.
func Denoms(sum map[string]math.Int) []string {
	denoms := make([]string, 0, len(sum))
	for d := range sum {
		denoms = append(denoms, d)
	}
	sort.Strings(denoms)
	return denoms
}
