package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session-token payload: the authenticated user identifier
// plus the registered issued-at and expiry instants.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// SignToken issues a compact HS256-signed session token for the provided
// user identifier, valid for ttl from now.
func SignToken(userID int64, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken checks the signature and expiry of a session token and returns
// the embedded user identifier. The signing algorithm is pinned to HS256 so a
// forged token cannot downgrade verification.
func VerifyToken(tokenString string, secret []byte) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, fmt.Errorf("parse token: %w", err)
	}

	if !token.Valid {
		return 0, ErrUnauthenticated
	}

	return claims.UserID, nil
}
