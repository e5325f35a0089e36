package utils

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenDataKey is the echo.Context key under which the auth middleware
// stores the verified token data.
const TokenDataKey = "tokenData"

var ErrInvalidToken = errors.New("invalid token")

type TokenData struct {
	ID         uint
	Autoridade int
}

// SignToken issues an HS256 token carrying the funcionario's id and
// autoridade. Tokens are bearer-only and carry no expiry claim.
func SignToken(data *TokenData, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"id":         data.ID,
		"autoridade": data.Autoridade,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(tokenString string, secret []byte) (*TokenData, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	// JSON numbers decode as float64.
	id, ok := claims["id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	autoridade, ok := claims["autoridade"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &TokenData{ID: uint(id), Autoridade: int(autoridade)}, nil
}

// ParseTokenDataCtx returns the token data the auth middleware attached
// to the request context.
func ParseTokenDataCtx(c echo.Context) (*TokenData, error) {
	data, ok := c.Get(TokenDataKey).(*TokenData)
	if !ok || data == nil {
		return nil, ErrInvalidToken
	}
	return data, nil
}
