package coin

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/msigtest/assert"
)

func TestParseCoin(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    *Coin
		wantErr *errors.Error
	}{
		"native denomination": {
			raw:  "1000uatom",
			want: &Coin{Denom: "uatom", Amount: "1000"},
		},
		"whitespace is allowed": {
			raw:  " 42 ustake ",
			want: &Coin{Denom: "ustake", Amount: "42"},
		},
		"ibc denomination": {
			raw:  "7ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2",
			want: &Coin{Denom: "ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2", Amount: "7"},
		},
		"leading zeros are normalized": {
			raw:  "007uatom",
			want: &Coin{Denom: "uatom", Amount: "7"},
		},
		"amount beyond int64": {
			raw:  "123456789012345678901234567890boot",
			want: &Coin{Denom: "boot", Amount: "123456789012345678901234567890"},
		},
		"decimal amount": {
			raw:     "1.5uatom",
			wantErr: errors.ErrInput,
		},
		"negative amount": {
			raw:     "-1uatom",
			wantErr: errors.ErrInput,
		},
		"missing denomination": {
			raw:     "100",
			wantErr: errors.ErrInput,
		},
		"denomination too short": {
			raw:     "100ab",
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ParseCoin(tc.raw)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestCoinValidate(t *testing.T) {
	cases := map[string]struct {
		coin       *Coin
		wantDenom  *errors.Error
		wantAmount *errors.Error
	}{
		"valid": {
			coin: NewCoin(10, "uatom"),
		},
		"zero amount is valid": {
			coin: &Coin{Denom: "uatom"},
		},
		"bad denomination": {
			coin:      &Coin{Denom: "1atom", Amount: "1"},
			wantDenom: errors.ErrCurrency,
		},
		"negative amount": {
			coin:       &Coin{Denom: "uatom", Amount: "-1"},
			wantAmount: errors.ErrAmount,
		},
		"not an integer": {
			coin:       &Coin{Denom: "uatom", Amount: "0.1"},
			wantAmount: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.coin.Validate()
			assert.FieldError(t, err, "Denom", tc.wantDenom)
			assert.FieldError(t, err, "Amount", tc.wantAmount)
		})
	}
}

func TestParseCoins(t *testing.T) {
	cs, err := ParseCoins("100uatom, 5ustake,100uatom")
	assert.Nil(t, err)
	assert.Equal(t, "100uatom,5ustake,100uatom", cs.Format())
	assert.Nil(t, cs.Validate())

	cs, err = ParseCoins("")
	assert.Nil(t, err)
	assert.Equal(t, 0, len(cs))

	_, err = ParseCoins("100uatom,foo")
	assert.IsErr(t, errors.ErrInput, err)
}

func TestSum(t *testing.T) {
	sum, err := Sum(NewCoin(1, "uatom"), NewCoin(2, "ustake"), NewCoin(3, "uatom"), nil)
	assert.Nil(t, err)
	assert.Equal(t, []string{"uatom", "ustake"}, Denoms(sum))
	if !sum["uatom"].Equal(math.NewInt(4)) {
		t.Fatalf("unexpected uatom sum: %s", sum["uatom"])
	}
	if !sum["ustake"].Equal(math.NewInt(2)) {
		t.Fatalf("unexpected ustake sum: %s", sum["ustake"])
	}

	_, err = Sum(&Coin{Denom: "uatom", Amount: "x"})
	assert.IsErr(t, errors.ErrAmount, err)

	// 2^255 is the largest power of two an amount can hold.
	huge := &Coin{Denom: "uatom", Amount: "57896044618658097711785492504343953926634992332820282019728792003956564819968"}
	_, err = Sum(huge, NewCoin(1, "ustake"), huge)
	assert.IsErr(t, errors.ErrOverflow, err)
}

func TestEqualSums(t *testing.T) {
	a, _ := Sum(NewCoin(4, "uatom"), NewCoin(0, "ustake"))
	b, _ := Sum(NewCoin(1, "uatom"), NewCoin(3, "uatom"))
	c, _ := Sum(NewCoin(4, "uatom"), NewCoin(1, "ustake"))

	if !EqualSums(a, b) || !EqualSums(b, a) {
		t.Fatal("zero amount denomination must not matter")
	}
	if EqualSums(b, c) || EqualSums(c, b) {
		t.Fatal("missing denomination must matter")
	}
}
