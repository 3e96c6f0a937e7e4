// Package address derives storage addresses from seeds.
//
// An address is SHA3-256 over a domain tag, the length-prefixed seeds and a
// one-byte bump. A candidate is only accepted when it is not a valid
// edwards25519 point, so no private key can ever exist for it and only the
// store itself can write there. The bump search runs from 255 down to 0; the
// first accepted bump is canonical and doubles as the proof of derivation.
package address

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"
)

const (
	Size = 32

	MaxSeeds      = 16
	MaxSeedLength = 32

	domainTag = "todokeeper/derived-address/v1"
)

var (
	ErrMaxSeeds      = errors.New("too many seeds")
	ErrMaxSeedLength = errors.New("seed too long")
	ErrOnCurve       = errors.New("derived address lies on the curve")
	ErrNoViableBump  = errors.New("no viable bump found")
	ErrInvalid       = errors.New("invalid address")
)

// Address is a 32-byte storage location.
type Address [Size]byte

func (a Address) String() string { return hex.EncodeToString(a[:]) }

func (a Address) Bytes() []byte { return append([]byte(nil), a[:]...) }

func (a Address) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Address) UnmarshalText(b []byte) error {
	p, err := Parse(string(b))
	if err != nil {
		return err
	}
	*a = p
	return nil
}

// Parse decodes a hex address.
func Parse(s string) (Address, error) {
	var a Address
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != Size {
		return a, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	copy(a[:], b)
	return a, nil
}

// FromBytes copies b into an Address.
func FromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != Size {
		return a, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalid, Size, len(b))
	}
	copy(a[:], b)
	return a, nil
}

func checkSeeds(seeds [][]byte) error {
	if len(seeds) > MaxSeeds {
		return ErrMaxSeeds
	}
	for _, s := range seeds {
		if len(s) > MaxSeedLength {
			return fmt.Errorf("%w: %d bytes", ErrMaxSeedLength, len(s))
		}
	}
	return nil
}

func hashSeeds(seeds [][]byte, bump uint8) Address {
	h := sha3.New256()
	h.Write([]byte(domainTag))
	var l [8]byte
	for _, s := range seeds {
		binary.BigEndian.PutUint64(l[:], uint64(len(s)))
		h.Write(l[:])
		h.Write(s)
	}
	h.Write([]byte{bump})
	var a Address
	copy(a[:], h.Sum(nil))
	return a
}

// OnCurve reports whether b decodes as an edwards25519 point.
func OnCurve(b [Size]byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b[:])
	return err == nil
}

// CreateAddress computes the address for seeds under a known bump.
func CreateAddress(seeds [][]byte, bump uint8) (Address, error) {
	if err := checkSeeds(seeds); err != nil {
		return Address{}, err
	}
	a := hashSeeds(seeds, bump)
	if OnCurve(a) {
		return Address{}, ErrOnCurve
	}
	return a, nil
}

// FindAddress searches for the canonical bump of seeds.
func FindAddress(seeds [][]byte) (Address, uint8, error) {
	if err := checkSeeds(seeds); err != nil {
		return Address{}, 0, err
	}
	for bump := 255; bump >= 0; bump-- {
		a := hashSeeds(seeds, uint8(bump))
		if !OnCurve(a) {
			return a, uint8(bump), nil
		}
	}
	return Address{}, 0, ErrNoViableBump
}

// Verify checks that addr is the address of seeds under bump.
func Verify(addr Address, seeds [][]byte, bump uint8) bool {
	a, err := CreateAddress(seeds, bump)
	return err == nil && a == addr
}
