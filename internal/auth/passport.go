package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var errBadToken = errors.New("invalid token")

// Passport is the signed identity handed out on login and register.
type Passport struct {
	BrawlerID   uint   `json:"brawler_id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
	Bio         string `json:"bio"`
	Token       string `json:"token"`
}

// TokenIssuer signs and verifies HS256 passports.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

func (t *TokenIssuer) Issue(brawlerID uint) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(brawlerID), 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify returns the brawler id carried by a valid token.
func (t *TokenIssuer) Verify(token string) (uint, error) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		return 0, fmt.Errorf("%w: %s", errBadToken, err.Error())
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)

	if err != nil || id == 0 {
		return 0, errBadToken
	}

	return uint(id), nil
}
