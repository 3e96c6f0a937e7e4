package identity

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/todokeeper/internal/cryptox"
)

// KeyPair is an owner key pair as stored on disk.
type KeyPair struct {
	Public  Owner
	Private ed25519.PrivateKey
}

type keyFile struct {
	PublicKey  string          `json:"public_key"`
	PrivateKey string          `json:"private_key,omitempty"`
	Sealed     *cryptox.Sealed `json:"sealed_private_key,omitempty"`
}

// ErrPassphraseRequired is returned by LoadKeyPair when the key file is
// sealed and no passphrase was given.
var ErrPassphraseRequired = errors.New("key file is passphrase protected")

// GenerateKeyPair creates a new random owner key pair.
func GenerateKeyPair() (*KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	o, err := OwnerFromPublicKey(pub)
	if err != nil {
		return nil, err
	}
	return &KeyPair{Public: o, Private: priv}, nil
}

// Verified returns the key pair's owner as a verified identity.
func (k *KeyPair) Verified() (Verified, error) {
	return FromPrivateKey(k.Private)
}

// SaveKeyPair writes k to path with owner-only permissions. A non-empty
// passphrase seals the private key. It refuses to overwrite an existing file.
func SaveKeyPair(path string, k *KeyPair, passphrase []byte) error {
	kf := keyFile{PublicKey: k.Public.String()}
	if len(passphrase) > 0 {
		sealed, err := cryptox.Seal(k.Private, passphrase)
		if err != nil {
			return fmt.Errorf("seal private key: %w", err)
		}
		kf.Sealed = sealed
	} else {
		kf.PrivateKey = hex.EncodeToString(k.Private)
	}
	b, err := json.MarshalIndent(kf, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create key dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("create key file: %w", err)
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return fmt.Errorf("write key file: %w", err)
	}
	return f.Close()
}

func readKeyFile(path string) (*keyFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	var kf keyFile
	if err := json.Unmarshal(b, &kf); err != nil {
		return nil, fmt.Errorf("parse key file: %w", err)
	}
	return &kf, nil
}

// KeyFileSealed reports whether the key file at path needs a passphrase.
func KeyFileSealed(path string) (bool, error) {
	kf, err := readKeyFile(path)
	if err != nil {
		return false, err
	}
	return kf.Sealed != nil, nil
}

// LoadKeyPair reads a key file written by SaveKeyPair and checks that the
// public half matches the private key. passphrase is ignored for unsealed
// files.
func LoadKeyPair(path string, passphrase []byte) (*KeyPair, error) {
	kf, err := readKeyFile(path)
	if err != nil {
		return nil, err
	}

	var raw []byte
	switch {
	case kf.Sealed != nil:
		if len(passphrase) == 0 {
			return nil, ErrPassphraseRequired
		}
		if raw, err = cryptox.Open(kf.Sealed, passphrase); err != nil {
			return nil, fmt.Errorf("open key file: %w", err)
		}
	default:
		if raw, err = hex.DecodeString(kf.PrivateKey); err != nil {
			return nil, fmt.Errorf("parse key file: bad private key")
		}
	}
	if len(raw) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("parse key file: bad private key")
	}

	priv := ed25519.PrivateKey(raw)
	pub, err := ParseOwner(kf.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("parse key file: %w", err)
	}
	derived, _ := OwnerFromPublicKey(priv.Public().(ed25519.PublicKey))
	if derived != pub {
		return nil, fmt.Errorf("parse key file: public key does not match private key")
	}
	return &KeyPair{Public: pub, Private: priv}, nil
}

// LoadOwner reads only the public half of a key file, so it never needs a
// passphrase.
func LoadOwner(path string) (Owner, error) {
	kf, err := readKeyFile(path)
	if err != nil {
		return Owner{}, err
	}
	o, err := ParseOwner(kf.PublicKey)
	if err != nil {
		return Owner{}, fmt.Errorf("parse key file: %w", err)
	}
	return o, nil
}
