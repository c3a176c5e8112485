package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims carry a persisted session identity. Subject holds the account id.
type IdentityClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies identity tokens with HS256.
type JWTManager struct {
	Secret []byte
	Issuer string
	// TTL of 0 issues tokens without expiry.
	TTL time.Duration
	Now func() time.Time
}

func NewJWTManager(secret, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{Secret: []byte(secret), Issuer: issuer, TTL: ttl, Now: time.Now}
}

func (m *JWTManager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m *JWTManager) Generate(c IdentityClaims) (string, error) {
	if len(m.Secret) == 0 {
		return "", errors.New("jwt secret is empty")
	}
	now := m.now()
	c.Issuer = m.Issuer
	c.IssuedAt = jwt.NewNumericDate(now)
	if m.TTL > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(m.TTL))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, &c).SignedString(m.Secret)
}

func (m *JWTManager) Parse(tokenStr string) (*IdentityClaims, error) {
	claims := &IdentityClaims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	}
	if m.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.Issuer))
	}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return m.Secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
