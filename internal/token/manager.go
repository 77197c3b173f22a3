// Package token issues and validates the JWT pair used for API access.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gestproy/config"

	"github.com/golang-jwt/jwt/v5"
)

// Token kinds carried in the "type" claim.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Manager signs and parses HS256 tokens.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewManager builds a Manager from JWT configuration.
func NewManager(cfg config.JWTConfig) *Manager {
	return &Manager{
		secret:     []byte(cfg.Secret),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
	}
}

// NewAccessToken issues a short-lived access token for the user.
func (m *Manager) NewAccessToken(userID int64) (string, error) {
	return m.sign(userID, TypeAccess, m.accessTTL)
}

// NewRefreshToken issues a long-lived refresh token for the user.
func (m *Manager) NewRefreshToken(userID int64) (string, error) {
	return m.sign(userID, TypeRefresh, m.refreshTTL)
}

func (m *Manager) sign(userID int64, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10),
		"type": tokenType,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse validates the token signature and expiry and returns the user id and
// token type.
func (m *Manager) Parse(tokenStr string) (int64, string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return 0, "", fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("unexpected claims format")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, "", fmt.Errorf("subject claim: %w", err)
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("subject claim: %w", err)
	}

	tokenType, _ := claims["type"].(string)
	if tokenType != TypeAccess && tokenType != TypeRefresh {
		return 0, "", errors.New("missing token type claim")
	}

	return userID, tokenType, nil
}
