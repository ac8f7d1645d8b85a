package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims carries the identity embedded in an access token.
// Roles keep their assignment order; jti is unique per issued token.
type TokenClaims struct {
	jwt.RegisteredClaims
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// GenerateToken issues a signed HS256 bearer token for an authenticated user.
func GenerateToken(userID int64, username, email string, roles []string, config JWTConfig) (string, error) {
	now := time.Now()

	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ID:        uuid.New().String(),
			Issuer:    config.Issuer,
			Audience:  jwt.ClaimStrings{config.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(config.ExpiryHours) * time.Hour)),
		},
		Username: username,
		Email:    email,
		Roles:    roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Secret))
}

// ParseToken validates signature, expiry, issuer and audience, and returns
// the embedded claims.
func ParseToken(tokenString string, config JWTConfig) (*TokenClaims, error) {
	claims := &TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(config.Secret), nil
		},
		jwt.WithIssuer(config.Issuer),
		jwt.WithAudience(config.Audience),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// UserID parses the subject claim back into the numeric user id.
func (c *TokenClaims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}
