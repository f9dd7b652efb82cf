package insights

import "errors"

var (
	ErrAccountNotFound  = errors.New("ad account not found")
	ErrRunNotFound      = errors.New("sync run not found")
	ErrInvalidDateRange = errors.New("since/until must be YYYY-MM-DD and since must not be after until")
	ErrInvalidMode      = errors.New("mode must be one of replace, append, fail")
	ErrInvalidFields    = errors.New("fields must be non-empty and duplicate-free")
	ErrSyncInFlight     = errors.New("a sync for this account and date range is already in flight")
	ErrSliceNotEmpty    = errors.New("target slice already has rows and mode is fail")
	ErrRunNotQueued     = errors.New("sync run is not in QUEUED state")
)
