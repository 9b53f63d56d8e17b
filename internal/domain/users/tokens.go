package users

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sunar87/foodgram/internal/domain"
)

// TokenIssuer signs and verifies HS256 access tokens whose subject is the
// user id. The ver claim pins the user's token version at issue time.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

type accessClaims struct {
	jwt.RegisteredClaims
	Version int64 `json:"ver"`
}

func (t *TokenIssuer) Issue(userID, version int64) (string, error) {
	now := t.now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		Version: version,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse returns the user id and token version carried by a valid token.
func (t *TokenIssuer) Parse(token string) (userID, version int64, err error) {
	claims := new(accessClaims)
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return 0, 0, &domain.UnauthorizedError{Reason: "invalid token"}
	}

	userID, err = strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, 0, &domain.UnauthorizedError{Reason: "invalid token subject"}
	}
	return userID, claims.Version, nil
}
