// Package identity models who is calling the store.
//
// An Owner is an ed25519 public key. A Verified value proves that the caller
// controls the matching private key; the todo operations accept nothing else,
// so authorization is settled before any storage is touched. Verified values
// can only be minted by this package: from a held private key, or from an
// access token the owner signed.
package identity

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
)

// OwnerSize is the length of an owner key in bytes.
const OwnerSize = ed25519.PublicKeySize

var ErrInvalidOwner = errors.New("invalid owner key")

// Owner is the 32-byte public key identifying a store owner.
type Owner [OwnerSize]byte

// ParseOwner decodes a hex-encoded owner key.
func ParseOwner(s string) (Owner, error) {
	var o Owner
	b, err := hex.DecodeString(s)
	if err != nil {
		return o, fmt.Errorf("%w: %v", ErrInvalidOwner, err)
	}
	if len(b) != OwnerSize {
		return o, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidOwner, OwnerSize, len(b))
	}
	copy(o[:], b)
	return o, nil
}

// OwnerFromPublicKey converts an ed25519 public key.
func OwnerFromPublicKey(pub ed25519.PublicKey) (Owner, error) {
	var o Owner
	if len(pub) != OwnerSize {
		return o, ErrInvalidOwner
	}
	copy(o[:], pub)
	return o, nil
}

func (o Owner) String() string { return hex.EncodeToString(o[:]) }

// Bytes returns a copy of the key bytes.
func (o Owner) Bytes() []byte { return append([]byte(nil), o[:]...) }

func (o Owner) PublicKey() ed25519.PublicKey { return ed25519.PublicKey(o.Bytes()) }

func (o Owner) IsZero() bool { return o == Owner{} }

func (o Owner) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *Owner) UnmarshalText(b []byte) error {
	parsed, err := ParseOwner(string(b))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Verified is an owner whose control of the key has been established.
// The zero value is not verified.
type Verified struct {
	owner Owner
	ok    bool
}

// Owner returns the verified owner key.
func (v Verified) Owner() Owner { return v.owner }

// Valid reports whether v was produced by a verification path.
func (v Verified) Valid() bool { return v.ok && !v.owner.IsZero() }

// FromPrivateKey trusts the holder of priv as its owner.
func FromPrivateKey(priv ed25519.PrivateKey) (Verified, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return Verified{}, ErrInvalidOwner
	}
	o, err := OwnerFromPublicKey(priv.Public().(ed25519.PublicKey))
	if err != nil {
		return Verified{}, err
	}
	return Verified{owner: o, ok: true}, nil
}

// VerifySignature verifies sig over msg by owner and returns the verified owner.
func VerifySignature(owner Owner, msg, sig []byte) (Verified, error) {
	if !ed25519.Verify(owner.PublicKey(), msg, sig) {
		return Verified{}, ErrBadSignature
	}
	return Verified{owner: owner, ok: true}, nil
}

var ErrBadSignature = errors.New("signature verification failed")
