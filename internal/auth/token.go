package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"fundflow/internal/config/configs"
	"fundflow/internal/core/port"
)

// GenerateToken issues an HS256 bearer token for the given user id.
func GenerateToken(userID int64, cfg configs.Auth) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(cfg.TokenTTL).Unix(),
		"iss":     cfg.Issuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ValidateToken parses a bearer token and returns the user id it carries.
// Any parse or signature failure maps to ErrUnauthorized.
func ValidateToken(tokenString, secret string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, port.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, port.ErrUnauthorized
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, port.ErrUnauthorized
	}
	return int64(id), nil
}
