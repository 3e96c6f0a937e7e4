package identity

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the access token body. Subject carries the hex owner key; the
// token is signed with that owner's private key, so no server secret exists.
type Claims struct {
	jwt.RegisteredClaims
}

// IssueToken signs a short-lived access token for the owner of priv.
func IssueToken(priv ed25519.PrivateKey, ttl time.Duration) (string, error) {
	return issueToken(priv, time.Now(), ttl)
}

func issueToken(priv ed25519.PrivateKey, now time.Time, ttl time.Duration) (string, error) {
	v, err := FromPrivateKey(priv)
	if err != nil {
		return "", err
	}
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   v.Owner().String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(priv)
}

// clockSkew tolerates drift between the signing client and the server.
const clockSkew = 5 * time.Second

// TokenVerifier checks owner-signed tokens.
type TokenVerifier struct {
	// MaxAge bounds both token age and lifetime. Zero disables the bound.
	MaxAge time.Duration
	now    func() time.Time
}

func NewTokenVerifier(maxAge time.Duration) *TokenVerifier {
	return &TokenVerifier{MaxAge: maxAge, now: time.Now}
}

// Verify parses tokenString, checks the EdDSA signature against the key named
// in its subject and returns the verified owner.
func (tv *TokenVerifier) Verify(tokenString string) (Verified, error) {
	now := tv.now
	if now == nil {
		now = time.Now
	}

	claims := &Claims{}
	var owner Owner
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		o, err := ParseOwner(claims.Subject)
		if err != nil {
			return nil, err
		}
		owner = o
		return o.PublicKey(), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(clockSkew),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Verified{}, common.ErrTokenExpired
		}
		return Verified{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return Verified{}, common.ErrInvalidToken
	}

	if tv.MaxAge > 0 {
		if claims.IssuedAt == nil {
			return Verified{}, fmt.Errorf("%w: missing iat", common.ErrInvalidToken)
		}
		if claims.ExpiresAt.Sub(claims.IssuedAt.Time) > tv.MaxAge {
			return Verified{}, fmt.Errorf("%w: lifetime exceeds %s", common.ErrInvalidToken, tv.MaxAge)
		}
		if now().Sub(claims.IssuedAt.Time) > tv.MaxAge {
			return Verified{}, common.ErrTokenExpired
		}
	}

	return Verified{owner: owner, ok: true}, nil
}

// VerifyToken checks tokenString without an age bound.
func VerifyToken(tokenString string) (Verified, error) {
	return NewTokenVerifier(0).Verify(tokenString)
}
