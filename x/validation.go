/*
Package x contains validation helpers shared by all message packages. Each
subpackage declares the messages of a single protocol area.
*/
package x

import (
	"strconv"

	"github.com/iov-one/msig/coin"
	"github.com/iov-one/msig/crypto/bech32"
	"github.com/iov-one/msig/errors"
)

// ValidateAddress returns an error if given address is not a bech32 string.
// The human readable part is not checked, because it depends on the chain.
func ValidateAddress(addr string) error {
	return bech32.CheckAddress(addr, "")
}

// AppendAddress is a shortcut for an address field validation.
func AppendAddress(errs error, fieldName, addr string) error {
	return errors.AppendField(errs, fieldName, ValidateAddress(addr))
}

// ValidateAmount returns an error if given coin is missing, invalid or not
// positive.
func ValidateAmount(c *coin.Coin) error {
	if c == nil {
		return errors.Wrap(errors.ErrEmpty, "amount")
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if c.IsZero() {
		return errors.Wrap(errors.ErrAmount, "must be greater than zero")
	}
	return nil
}

// ValidateFunds returns an error if any of given coins is invalid. If
// required is true, the list must not be empty and every coin must be
// positive.
func ValidateFunds(cs []*coin.Coin, required bool) error {
	if required && len(cs) == 0 {
		return errors.Wrap(errors.ErrEmpty, "at least one coin required")
	}
	var errs error
	for i, c := range cs {
		var err error
		if required {
			err = ValidateAmount(c)
		} else if c == nil {
			err = errors.Wrap(errors.ErrEmpty, "coin")
		} else {
			err = c.Validate()
		}
		errs = errors.AppendField(errs, strconv.Itoa(i), err)
	}
	return errs
}

// ValidateCoinList returns an error if the list is empty or any of given
// coins is invalid. Zero amounts are accepted.
func ValidateCoinList(cs []*coin.Coin) error {
	if len(cs) == 0 {
		return errors.Wrap(errors.ErrEmpty, "at least one coin required")
	}
	var errs error
	for i, c := range cs {
		errs = errors.AppendField(errs, strconv.Itoa(i), c.Validate())
	}
	return errs
}
