package http

import (
	"errors"

	"metaads-srv/internal/account"
	pkgErrors "metaads-srv/pkg/errors"
)

var (
	errAccountNotFound  = pkgErrors.NewHTTPError(404, "Ad account not found")
	errAccountExists    = pkgErrors.NewHTTPError(409, "Ad account is already registered")
	errAccountIDInvalid = pkgErrors.NewHTTPError(400, "account_id must have the act_<number> form")
	errTokenRequired    = pkgErrors.NewHTTPError(400, "access_token is required")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, account.ErrAccountNotFound):
		return errAccountNotFound
	case errors.Is(err, account.ErrAccountExists):
		return errAccountExists
	case errors.Is(err, account.ErrAccountIDInvalid):
		return errAccountIDInvalid
	case errors.Is(err, account.ErrTokenRequired):
		return errTokenRequired
	default:
		return err
	}
}
