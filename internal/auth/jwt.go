package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/saulo-duarte/devops-exam/internal/config"
)

const issuer = "devops-exam"

var jwtSecret []byte

var ErrInvalidScope = errors.New("token carries no session scope")

type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

func Init() {
	secret := config.Cfg.SessionSecret
	if secret == "" {
		panic("SESSION_SECRET must be set")
	}
	jwtSecret = []byte(secret)
}

func GenerateJWT(scope string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidateJWT(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return jwtSecret, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err
	}
	if claims.Scope == "" {
		return nil, ErrInvalidScope
	}
	return claims, nil
}
