package metaads

import (
	"errors"
	"fmt"
)

var (
	// ErrAccountRequired is returned when the account ID is missing.
	ErrAccountRequired = errors.New("account ID is required")
	// ErrTokenRequired is returned when no access token is available.
	ErrTokenRequired = errors.New("access token is required")
	// ErrInvalidToken is returned when the Graph API rejects the token.
	ErrInvalidToken = errors.New("access token is invalid or expired")
)

// GraphAPIError is the error envelope returned by the Graph API.
type GraphAPIError struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	Subcode   int    `json:"error_subcode,omitempty"`
	FBTraceID string `json:"fbtrace_id,omitempty"`
}

// Error implements the error interface.
func (e *GraphAPIError) Error() string {
	return fmt.Sprintf("graph api error %d (%s): %s", e.Code, e.Type, e.Message)
}

// Unwrap maps known Graph error codes onto sentinel errors.
func (e *GraphAPIError) Unwrap() error {
	if e.Code == ErrCodeInvalidToken {
		return ErrInvalidToken
	}
	return nil
}
