package jwt

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Config holds JWT manager configuration.
type Config struct {
	SecretKey string
	Issuer    string
	Audience  []string
	TTL       time.Duration
}

// Claims are the claims carried by service tokens.
type Claims struct {
	jwtlib.RegisteredClaims
}

// Manager verifies and issues HS256 tokens.
type Manager struct {
	secretKey []byte
	issuer    string
	audience  []string
	ttl       time.Duration
}
