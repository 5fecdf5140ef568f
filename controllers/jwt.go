package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// accessClaims é o payload mínimo do access token emitido pelo Login.
type accessClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func getJWTSecret() string {
	// env ganha do config pra poder trocar sem rebuild
	if secret := getenv("JWT_SECRET", ""); secret != "" {
		return secret
	}
	if conf.Security.JwtSecret != "" {
		return conf.Security.JwtSecret
	}
	return "CHANGE_ME"
}

func signAccessToken(userID int64, email string, now time.Time, exp time.Time) (string, error) {
	claims := accessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   jwtSubject(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(getJWTSecret()))
}

func parseAccessToken(tokenString string) (int64, error) {
	var claims accessClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(getJWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("token inválido")
	}
	id, err := parseJWTSubject(claims.Subject)
	if err != nil || id <= 0 {
		return 0, errors.New("token sem subject")
	}
	return id, nil
}

func jwtSubject(id int64) string {
	return strconv.FormatInt(id, 10)
}

func parseJWTSubject(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
