package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

type JWTServiceInterface interface {
	GenerateJWT(subject string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var secretKey = []byte("change-me")

// SetSecret installs the signing key from configuration. The default only
// exists so tests can run without wiring.
func SetSecret(secret string) {
	if secret != "" {
		secretKey = []byte(secret)
	}
}

type Claims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

type JWTService struct{}

func (s *JWTService) GenerateJWT(subject string, expirationTime time.Time) (string, error) {
	claims := Claims{
		Role: "admin",
		StandardClaims: jwt.StandardClaims{
			Subject:   subject,
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "rifas",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Role != "admin" || claims.Issuer != "rifas" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
