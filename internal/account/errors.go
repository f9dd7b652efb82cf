package account

import "errors"

var (
	ErrAccountNotFound  = errors.New("ad account not found")
	ErrAccountExists    = errors.New("ad account is already registered")
	ErrAccountIDInvalid = errors.New("account_id must have the act_<number> form")
	ErrTokenRequired    = errors.New("access_token is required")
)
