package enum

type ErrorCode string

const (
	ApiError        ErrorCode = "ApiError"
	ValidationError ErrorCode = "ValidationError"
	Unauthorized    ErrorCode = "Unauthorized"
	NotFound        ErrorCode = "NotFound"
	TooManyRequests ErrorCode = "TooManyRequests"
)
