package jwt

import "time"

const (
	// MinSecretKeyLength is the minimum HS256 secret length.
	MinSecretKeyLength = 32
	// DefaultTTL is the default token lifetime.
	DefaultTTL = 8 * time.Hour
)
