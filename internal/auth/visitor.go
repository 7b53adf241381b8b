package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const visitorTokenTTL = 365 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid visitor token")

// VisitorTokens issues and verifies signed anonymous visitor ids. The token
// subject becomes the like identity of the bearer.
type VisitorTokens struct {
	secret []byte
	now    func() time.Time
}

func NewVisitorTokens(secret string) *VisitorTokens {
	return &VisitorTokens{secret: []byte(secret), now: time.Now}
}

// Issue returns a fresh visitor id and the token carrying it.
func (v *VisitorTokens) Issue() (string, string, error) {
	id := uuid.NewString()
	now := v.now()
	claims := jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(visitorTokenTTL)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(v.secret)
	if err != nil {
		return "", "", err
	}
	return id, signed, nil
}

func (v *VisitorTokens) Verify(tokenStr string) (string, error) {
	var claims jwt.RegisteredClaims
	t, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	}, jwt.WithTimeFunc(v.now))
	if err != nil || !t.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
