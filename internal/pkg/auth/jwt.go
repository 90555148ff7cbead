package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"fastship/internal/entities"
)

var ErrInvalidAccessToken = errors.New("access token invalid or expired")

type accessClaims struct {
	jwt.RegisteredClaims

	Name string             `json:"name"`
	Role entities.ActorRole `json:"role"`
}

// JWTAccessTokens issues and verifies the bearer tokens carried on
// authenticated requests. Every token gets a jti so a logout can revoke
// it before expiry.
type JWTAccessTokens struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTAccessTokens(secret string, ttl time.Duration) *JWTAccessTokens {
	return &JWTAccessTokens{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (t *JWTAccessTokens) Issue(actor entities.Actor, name string) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		Name: name,
		Role: actor.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// Parse returns the authenticated actor, the token's jti and its expiry.
func (t *JWTAccessTokens) Parse(tokenStr string) (entities.Actor, string, time.Time, error) {
	var claims accessClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return entities.Actor{}, "", time.Time{}, ErrInvalidAccessToken
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return entities.Actor{}, "", time.Time{}, ErrInvalidAccessToken
	}

	if claims.Role != entities.RoleSeller && claims.Role != entities.RolePartner {
		return entities.Actor{}, "", time.Time{}, ErrInvalidAccessToken
	}

	var expiry time.Time
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}

	return entities.Actor{ID: id, Role: claims.Role}, claims.ID, expiry, nil
}
