package cryptox

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(password, salt)
	key2 := DeriveKey(password, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}

	expectedHex := "34f7a1c64df63ab1ad5b5ee06e64db5713b35f81839823304db63e8e5e6a6a39"
	if hex.EncodeToString(key1) != expectedHex {
		t.Errorf("expected %s, got %s", expectedHex, hex.EncodeToString(key1))
	}
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	key1 := DeriveKey(password, []byte("salt-1"))
	key2 := DeriveKey(password, []byte("salt-2"))

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	secret := []byte("owner private key bytes")
	pass := []byte("correct horse")

	s, err := Seal(secret, pass)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if bytes.Contains(s.Ciphertext, secret) {
		t.Fatalf("ciphertext contains plaintext")
	}

	got, err := Open(s, pass)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(secret, got) {
		t.Fatalf("got %q, want %q", got, secret)
	}
}

func TestSeal_FreshSaltAndNonce(t *testing.T) {
	a, err := Seal([]byte("x"), []byte("p"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Seal([]byte("x"), []byte("p"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a.Salt, b.Salt) || bytes.Equal(a.Nonce, b.Nonce) {
		t.Fatalf("salt and nonce must differ between seals")
	}
}

func TestOpen_Failures(t *testing.T) {
	s, err := Seal([]byte("secret"), []byte("pass"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Open(s, []byte("wrong")); !errors.Is(err, ErrDecrypt) {
		t.Errorf("wrong passphrase: got %v", err)
	}

	tampered := *s
	tampered.Ciphertext = append([]byte(nil), s.Ciphertext...)
	tampered.Ciphertext[0] ^= 0xff
	if _, err := Open(&tampered, []byte("pass")); !errors.Is(err, ErrDecrypt) {
		t.Errorf("tampered ciphertext: got %v", err)
	}

	short := *s
	short.Nonce = s.Nonce[:4]
	if _, err := Open(&short, []byte("pass")); !errors.Is(err, ErrDecrypt) {
		t.Errorf("short nonce: got %v", err)
	}

	if _, err := Open(nil, []byte("pass")); !errors.Is(err, ErrDecrypt) {
		t.Errorf("nil envelope: got %v", err)
	}
}

func TestWipe(t *testing.T) {
	b := []byte("passphrase")
	Wipe(b)
	if !bytes.Equal(b, make([]byte, len(b))) {
		t.Fatalf("not wiped: %q", b)
	}
	Wipe(nil)
}
