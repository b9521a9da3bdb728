package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/exp/rand"
)

// Manager issues and parses the HS256 access tokens the API authenticates
// with. The signing key and TTL come from configuration.
type Manager struct {
	signingKey string
	ttl        time.Duration
}

func NewManager(signingKey string, ttl time.Duration) (*Manager, error) {
	if signingKey == "" {
		return nil, errors.New("empty signing key")
	}
	if ttl <= 0 {
		return nil, errors.New("non-positive token ttl")
	}
	return &Manager{signingKey: signingKey, ttl: ttl}, nil
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) NewJWT(userID int, username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"exp":      time.Now().Add(m.ttl).Unix(),
		"iat":      time.Now().Unix(),
	})

	return token.SignedString([]byte(m.signingKey))
}

// Parse verifies the signature and expiry and returns the embedded identity.
func (m *Manager) Parse(accessToken string) (int, string, error) {
	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.signingKey), nil
	})
	if err != nil {
		return 0, "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", errors.New("invalid token claims")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", errors.New("token has no user_id claim")
	}
	username, _ := claims["username"].(string)

	return int(userID), username, nil
}

func (m *Manager) NewRefreshToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", b), nil
}
