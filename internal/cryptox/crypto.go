// Package cryptox seals small secrets, such as owner private keys, under a
// passphrase using argon2id key derivation and AES-GCM.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	SaltSize = 16
	KeySize  = 32
)

// ErrDecrypt is returned when the passphrase is wrong or the sealed data was
// modified.
var ErrDecrypt = errors.New("decryption failed")

// Sealed is a passphrase-protected secret. All fields are needed to open it.
type Sealed struct {
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

// DeriveKey stretches a passphrase into an AES-256 key.
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, KeySize)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext under passphrase with a fresh salt and nonce.
func Seal(plaintext, passphrase []byte) (*Sealed, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}

	aesgcm, err := newGCM(DeriveKey(passphrase, salt))
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return &Sealed{
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: aesgcm.Seal(nil, nonce, plaintext, nil),
	}, nil
}

// Open decrypts s with passphrase.
func Open(s *Sealed, passphrase []byte) ([]byte, error) {
	if s == nil || len(s.Salt) != SaltSize {
		return nil, fmt.Errorf("%w: malformed envelope", ErrDecrypt)
	}
	aesgcm, err := newGCM(DeriveKey(passphrase, s.Salt))
	if err != nil {
		return nil, err
	}
	if len(s.Nonce) != aesgcm.NonceSize() {
		return nil, fmt.Errorf("%w: malformed envelope", ErrDecrypt)
	}
	plaintext, err := aesgcm.Open(nil, s.Nonce, s.Ciphertext, nil)
	if err != nil {
		return nil, ErrDecrypt
	}
	return plaintext, nil
}

// Wipe zeroes b, e.g. a passphrase once it has been used.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
