package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims bind a token to one game session.
type SessionClaims struct {
	GameSessionID string `json:"game_session_id"`
	jwt.RegisteredClaims
}

func NewSessionClaims(gameSessionID string, lifetime time.Duration) *SessionClaims {
	now := time.Now()
	return &SessionClaims{
		GameSessionID: gameSessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}
}

type JWT struct {
	secret        []byte
	signingMethod jwt.SigningMethod
	TokenLifetime time.Duration
}

func loadSecret() ([]byte, error) {
	secret, ok := os.LookupEnv("JWT_SECRET")
	if ok {
		return []byte(secret), nil
	}
	secretPath, ok := os.LookupEnv("JWT_SECRET_FILE")
	if !ok {
		return nil, fmt.Errorf("no JWT_SECRET or JWT_SECRET_FILE env variable set")
	}
	data, err := os.ReadFile(secretPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read JWT secret: %w", err)
	}
	return []byte(strings.TrimSpace(string(data))), nil
}

func NewJWT() (*JWT, error) {
	secret, err := loadSecret()
	if err != nil {
		return nil, err
	}
	return NewJWTWithSecret(secret)
}

func NewJWTWithSecret(secret []byte) (*JWT, error) {
	if len(secret) == 0 {
		return nil, errors.New("empty JWT secret")
	}
	j := &JWT{
		secret:        secret,
		signingMethod: jwt.SigningMethodHS256,
		TokenLifetime: time.Hour * 24,
	}
	return j, nil
}

func (j *JWT) Sign(claims jwt.Claims) (string, error) {
	return jwt.NewWithClaims(j.signingMethod, claims).SignedString(j.secret)
}

func (j *JWT) SignSession(gameSessionID string) (string, error) {
	return j.Sign(NewSessionClaims(gameSessionID, j.TokenLifetime))
}

func (j *JWT) ParseSessionClaims(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&SessionClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return j.secret, nil
		},
		jwt.WithValidMethods([]string{j.signingMethod.Alg()}),
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, fmt.Errorf("malformed claims")
	}
	return claims, nil
}
