package identity

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/cryptox"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKey(t *testing.T) *KeyPair {
	t.Helper()
	k, err := GenerateKeyPair()
	require.NoError(t, err)
	return k
}

func TestParseOwner_RoundTripAndErrors(t *testing.T) {
	k := newKey(t)

	got, err := ParseOwner(k.Public.String())
	require.NoError(t, err)
	assert.Equal(t, k.Public, got)

	_, err = ParseOwner("zz")
	assert.ErrorIs(t, err, ErrInvalidOwner)

	_, err = ParseOwner(strings.Repeat("ab", 31))
	assert.ErrorIs(t, err, ErrInvalidOwner)
}

func TestOwner_TextMarshalling(t *testing.T) {
	k := newKey(t)

	text, err := k.Public.MarshalText()
	require.NoError(t, err)

	var o Owner
	require.NoError(t, o.UnmarshalText(text))
	assert.Equal(t, k.Public, o)
	assert.Error(t, o.UnmarshalText([]byte("nope")))
}

func TestVerified_ZeroValueIsNotValid(t *testing.T) {
	var v Verified
	assert.False(t, v.Valid())
}

func TestFromPrivateKey(t *testing.T) {
	k := newKey(t)

	v, err := FromPrivateKey(k.Private)
	require.NoError(t, err)
	assert.True(t, v.Valid())
	assert.Equal(t, k.Public, v.Owner())

	_, err = FromPrivateKey(ed25519.PrivateKey{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidOwner)
}

func TestVerifySignature(t *testing.T) {
	k := newKey(t)
	msg := []byte("hello")
	sig := ed25519.Sign(k.Private, msg)

	v, err := VerifySignature(k.Public, msg, sig)
	require.NoError(t, err)
	assert.Equal(t, k.Public, v.Owner())

	_, err = VerifySignature(k.Public, []byte("other"), sig)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestToken_IssueAndVerify(t *testing.T) {
	t.Parallel()
	k := newKey(t)

	tok, err := IssueToken(k.Private, time.Minute)
	require.NoError(t, err)

	v, err := VerifyToken(tok)
	require.NoError(t, err)
	assert.True(t, v.Valid())
	assert.Equal(t, k.Public, v.Owner())
}

func TestToken_Expired(t *testing.T) {
	t.Parallel()
	k := newKey(t)

	tok, err := issueToken(k.Private, time.Now().Add(-time.Hour), time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(tok)
	if err != common.ErrTokenExpired {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestToken_SubjectMismatchFailsSignature(t *testing.T) {
	t.Parallel()
	signer := newKey(t)
	victim := newKey(t)

	// Token claims to be the victim but is signed by someone else.
	tok := jwt.NewWithClaims(jwt.SigningMethodEdDSA, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   victim.Public.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	s, err := tok.SignedString(signer.Private)
	require.NoError(t, err)

	_, err = VerifyToken(s)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestToken_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()
	k := newKey(t)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   k.Public.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	s, err := tok.SignedString(k.Public.Bytes())
	require.NoError(t, err)

	_, err = VerifyToken(s)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestToken_Garbage(t *testing.T) {
	_, err := VerifyToken("not-a-valid-jwt")
	assert.True(t, errors.Is(err, common.ErrInvalidToken))
}

func TestTokenVerifier_MaxAge(t *testing.T) {
	t.Parallel()
	k := newKey(t)
	now := time.Now()

	tv := NewTokenVerifier(5 * time.Minute)
	tv.now = func() time.Time { return now }

	long, err := issueToken(k.Private, now, time.Hour)
	require.NoError(t, err)
	_, err = tv.Verify(long)
	assert.ErrorIs(t, err, common.ErrInvalidToken, "lifetime above max age must be rejected")

	ok, err := issueToken(k.Private, now.Add(-time.Minute), 2*time.Minute)
	require.NoError(t, err)
	_, err = tv.Verify(ok)
	assert.NoError(t, err)
}

func TestTokenVerifier_ClockSkew(t *testing.T) {
	t.Parallel()
	k := newKey(t)
	now := time.Now()

	tv := NewTokenVerifier(5 * time.Minute)
	tv.now = func() time.Time { return now }

	ahead, err := issueToken(k.Private, now.Add(2*time.Second), time.Minute)
	require.NoError(t, err)
	who, err := tv.Verify(ahead)
	require.NoError(t, err, "small client clock drift must be tolerated")
	assert.Equal(t, k.Public, who.Owner())

	future, err := issueToken(k.Private, now.Add(time.Minute), time.Minute)
	require.NoError(t, err)
	_, err = tv.Verify(future)
	assert.ErrorIs(t, err, common.ErrInvalidToken, "iat far in the future is rejected")
}

func TestKeyFile_SaveLoad(t *testing.T) {
	k := newKey(t)
	path := filepath.Join(t.TempDir(), "keys", "owner.json")

	require.NoError(t, SaveKeyPair(path, k, nil))
	assert.Error(t, SaveKeyPair(path, k, nil), "must not overwrite")

	sealed, err := KeyFileSealed(path)
	require.NoError(t, err)
	assert.False(t, sealed)

	loaded, err := LoadKeyPair(path, nil)
	require.NoError(t, err)
	assert.Equal(t, k.Public, loaded.Public)
	assert.Equal(t, k.Private, loaded.Private)

	v, err := loaded.Verified()
	require.NoError(t, err)
	assert.Equal(t, k.Public, v.Owner())
}

func TestKeyFile_LoadMissing(t *testing.T) {
	_, err := LoadKeyPair(filepath.Join(t.TempDir(), "absent.json"), nil)
	assert.Error(t, err)
}

func TestKeyFile_Sealed(t *testing.T) {
	k := newKey(t)
	path := filepath.Join(t.TempDir(), "owner.json")
	pass := []byte("hunter22")

	require.NoError(t, SaveKeyPair(path, k, pass))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), hex.EncodeToString(k.Private))
	assert.Contains(t, string(raw), "sealed_private_key")

	sealed, err := KeyFileSealed(path)
	require.NoError(t, err)
	assert.True(t, sealed)

	_, err = LoadKeyPair(path, nil)
	assert.ErrorIs(t, err, ErrPassphraseRequired)

	_, err = LoadKeyPair(path, []byte("wrong"))
	assert.ErrorIs(t, err, cryptox.ErrDecrypt)

	loaded, err := LoadKeyPair(path, pass)
	require.NoError(t, err)
	assert.Equal(t, k.Private, loaded.Private)

	owner, err := LoadOwner(path)
	require.NoError(t, err, "public half is readable without a passphrase")
	assert.Equal(t, k.Public, owner)
}

func TestKeyFile_Mismatch(t *testing.T) {
	a, b := newKey(t), newKey(t)
	path := filepath.Join(t.TempDir(), "owner.json")

	body, err := json.Marshal(map[string]string{
		"public_key":  a.Public.String(),
		"private_key": hex.EncodeToString(b.Private),
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, body, 0o600))

	_, err = LoadKeyPair(path, nil)
	assert.ErrorContains(t, err, "does not match")
}
