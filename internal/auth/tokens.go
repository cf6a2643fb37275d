package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType tags a token as access or refresh. Decoding rejects tokens
// whose tag does not match the decode path, so an access token can never
// be replayed as a refresh token.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims are the signed contents of both token kinds.
type Claims struct {
	TokenType TokenType `json:"type"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates the access/refresh token pair. The two
// kinds use independent signing secrets and lifetimes: a leaked access
// secret cannot forge refresh tokens and vice versa.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenManager creates a token manager from the two secrets and lifetimes.
func NewTokenManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// CreateAccessToken issues a short-lived access token for the user.
func (m *TokenManager) CreateAccessToken(userID uuid.UUID) (string, error) {
	return m.sign(userID, TokenTypeAccess, m.accessSecret, m.accessTTL)
}

// CreateRefreshToken issues a long-lived refresh token for the user.
func (m *TokenManager) CreateRefreshToken(userID uuid.UUID) (string, error) {
	return m.sign(userID, TokenTypeRefresh, m.refreshSecret, m.refreshTTL)
}

func (m *TokenManager) sign(userID uuid.UUID, kind TokenType, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		TokenType: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// DecodeAccess validates an access token and returns the subject user id.
func (m *TokenManager) DecodeAccess(tokenString string) (uuid.UUID, error) {
	return m.decode(tokenString, TokenTypeAccess, m.accessSecret)
}

// DecodeRefresh validates a refresh token and returns the subject user id.
func (m *TokenManager) DecodeRefresh(tokenString string) (uuid.UUID, error) {
	return m.decode(tokenString, TokenTypeRefresh, m.refreshSecret)
}

func (m *TokenManager) decode(tokenString string, kind TokenType, secret []byte) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token")
	}
	if claims.TokenType != kind {
		return uuid.Nil, fmt.Errorf("unexpected token type %q", claims.TokenType)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid token subject: %w", err)
	}
	return userID, nil
}
