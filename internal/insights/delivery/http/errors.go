package http

import (
	"errors"

	"metaads-srv/internal/insights"
	pkgErrors "metaads-srv/pkg/errors"
)

var (
	errAccountNotFound  = pkgErrors.NewHTTPError(404, "Ad account not found")
	errRunNotFound      = pkgErrors.NewHTTPError(404, "Sync run not found")
	errInvalidDateRange = pkgErrors.NewHTTPError(400, "since/until must be YYYY-MM-DD and since must not be after until")
	errInvalidMode      = pkgErrors.NewHTTPError(400, "mode must be one of replace, append, fail")
	errInvalidFields    = pkgErrors.NewHTTPError(400, "fields must be non-empty and duplicate-free")
	errSyncInFlight     = pkgErrors.NewHTTPError(409, "A sync for this account and date range is already in flight")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, insights.ErrAccountNotFound):
		return errAccountNotFound
	case errors.Is(err, insights.ErrRunNotFound):
		return errRunNotFound
	case errors.Is(err, insights.ErrInvalidDateRange):
		return errInvalidDateRange
	case errors.Is(err, insights.ErrInvalidMode):
		return errInvalidMode
	case errors.Is(err, insights.ErrInvalidFields):
		return errInvalidFields
	case errors.Is(err, insights.ErrSyncInFlight):
		return errSyncInFlight
	default:
		return err
	}
}
