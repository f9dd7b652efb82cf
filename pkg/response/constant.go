package response

const (
	// DateFormat is the wire format for dates.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for datetimes.
	DateTimeFormat = "2006-01-02 15:04:05"
)

const (
	// CodeSuccess indicates a successful response.
	CodeSuccess = 0
	// CodeBadRequest indicates a malformed or invalid request.
	CodeBadRequest = 400
	// CodeUnauthorized indicates a missing or invalid credential.
	CodeUnauthorized = 401
	// CodeNotFound indicates the requested resource does not exist.
	CodeNotFound = 404
	// CodeInternal indicates an unexpected server-side failure.
	CodeInternal = 500
)
