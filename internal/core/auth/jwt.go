package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrWeakKey is returned when the configured signing key is too short for
// HMAC-SHA256 use.
var ErrWeakKey = errors.New("jwt key must have at least 16 characters")

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTer issues and validates HS256 bearer tokens. A token stays valid until
// its embedded expiry; there is no revocation list.
type JWTer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func New(key, issuer, audience string, ttl time.Duration) (*JWTer, error) {
	if len(key) < 16 {
		return nil, ErrWeakKey
	}
	return &JWTer{
		secret:   []byte(key),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}, nil
}

func (j *JWTer) Issue(userID, email, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    j.issuer,
			Audience:  jwt.ClaimStrings{j.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// Parse verifies signature, issuer, audience and expiry. No leeway: a token
// minted with a zero TTL is already expired.
func (j *JWTer) Parse(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg")
		}
		return j.secret, nil
	}, jwt.WithIssuer(j.issuer), jwt.WithAudience(j.audience), jwt.WithExpirationRequired())

	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || c.Subject == "" {
		return nil, errors.New("invalid token")
	}
	return c, nil
}
