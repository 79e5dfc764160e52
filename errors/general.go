package errors

const (
	UnknownErrorCode        = 100_001
	InvalidPayloadErrorCode = 100_002
)

var UnknownError = new(UnknownErrorCode, "UnknownError", "unexpected error: %v")

// InvalidPayloadError indicates the request body could not be decoded
var InvalidPayloadError = new(InvalidPayloadErrorCode, "InvalidPayload", "Request body is invalid: %v")
