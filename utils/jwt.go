package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pluggedin/config"
	"pluggedin/models"
)

// Session tokens expire two days after sign-in.
const sessionTokenTTL = 48 * time.Hour

// Claims carries the signed-in profile inside the session token.
type Claims struct {
	Email       string      `json:"email"`
	DisplayName string      `json:"displayName,omitempty"`
	Role        models.Role `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signs the submitted profile into a bearer token.
func GenerateSessionToken(user *models.User) (string, error) {
	claims := &Claims{
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.AccessTokenKey))
}

// ParseSessionToken verifies the token signature and expiry and returns the
// decoded profile claims.
func ParseSessionToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.AccessTokenKey), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
