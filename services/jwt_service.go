package services

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminJWTClaims represents the JWT claims for admin dashboard tokens
type AdminJWTClaims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService handles admin token generation and verification
type JWTService struct {
	secretKey string
}

var jwtService *JWTService

// InitJWTService initializes the JWT service with a secret key
func InitJWTService(secretKey string) error {
	if secretKey == "" {
		return errors.New("JWT secret key cannot be empty")
	}
	jwtService = &JWTService{secretKey: secretKey}
	return nil
}

// GetJWTService returns the initialized JWT service
func GetJWTService() *JWTService {
	if jwtService == nil {
		// Fallback to environment variable if not initialized
		secretKey := os.Getenv("JWT_SECRET")
		if secretKey == "" {
			secretKey = "dev-secret-key-change-in-production"
		}
		jwtService = &JWTService{secretKey: secretKey}
	}
	return jwtService
}

// GenerateAdminJWT creates a new JWT token for an admin.
// Token expires in 7 days.
func (j *JWTService) GenerateAdminJWT(adminID, email, role string) (string, error) {
	if adminID == "" || email == "" {
		return "", errors.New("adminID and email cannot be empty")
	}

	now := time.Now()
	claims := AdminJWTClaims{
		AdminID: adminID,
		Email:   email,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "antashop-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// VerifyAdminJWT verifies and parses an admin token
func VerifyAdminJWT(tokenString string) (*AdminJWTClaims, error) {
	j := GetJWTService()

	token, err := jwt.ParseWithClaims(tokenString, &AdminJWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*AdminJWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
