package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried in every vendor token.
type Claims struct {
	VendorID uint `json:"vendorId"`
	jwt.RegisteredClaims
}

func GenerateToken(vendorID uint, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		VendorID: vendorID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
