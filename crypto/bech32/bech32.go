package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/msig/errors"
)

// ErrAddress is returned when an account, validator or contract address is
// not a valid bech32 string for the expected chain.
var ErrAddress = errors.Register(150, "invalid address")

// Decode converts given bech32 encoded representation into raw payload and a
// human readable part.
func Decode(raw string) (string, []byte, error) {
	hrp, payload, err := bech32.Decode(raw)
	if err != nil {
		return "", nil, errors.Wrap(err, "bech32 decode")
	}
	payload, err = bech32.ConvertBits(payload, 5, 8, false)
	if err != nil {
		return "", nil, errors.Wrap(err, "convert bits")
	}
	return hrp, payload, nil
}

// Encode converts given bytes into bech32 encoded representation.
func Encode(hrp string, payload []byte) ([]byte, error) {
	payload, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return nil, errors.Wrap(err, "convert bits")
	}
	raw, err := bech32.Encode(hrp, payload)
	if err != nil {
		return nil, errors.Wrap(err, "bech32 encode")
	}
	return []byte(raw), nil
}

// CheckAddress returns an error if given address is not a bech32 string or
// its human readable part is not the expected prefix. Use an empty prefix to
// accept any human readable part.
//
// Validator operator addresses use the "<prefix>valoper" human readable part
// and must be checked with that full prefix.
func CheckAddress(addr, prefix string) error {
	if addr == "" {
		return errors.Wrap(errors.ErrEmpty, "address")
	}
	hrp, payload, err := Decode(addr)
	if err != nil {
		return errors.Wrapf(ErrAddress, "%q: %s", addr, err)
	}
	if len(payload) == 0 {
		return errors.Wrapf(ErrAddress, "%q: no payload", addr)
	}
	if prefix != "" && hrp != prefix {
		return errors.Wrapf(ErrAddress, "%q: want %q prefix, got %q", addr, prefix, hrp)
	}
	return nil
}
