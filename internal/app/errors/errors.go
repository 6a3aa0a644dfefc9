package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrAPIBaseURLRequired = errors.New("api base_url is required")
	ErrAPITokenMissing    = errors.New("api token is not set")

	ErrNotFound          = errors.New("resource not found")
	ErrRequestFailed     = errors.New("request failed")
	ErrUnexpectedStatus  = errors.New("unexpected response status")
	ErrDecodeResponse    = errors.New("failed to decode response")
	ErrEncodeRequest     = errors.New("failed to encode request body")
	ErrCSRFTokenMissing  = errors.New("csrf token missing from response")
	ErrMissingCursorLink = errors.New("pagination link has no cursor parameter")

	ErrToggleInFlight  = errors.New("a state change is already in progress for this service")
	ErrToggleExhausted = errors.New("service did not reach desired state before retries ran out")

	ErrInvalidFormTransition = errors.New("invalid form state transition")
	ErrInvalidGlobPattern    = errors.New("invalid filter pattern")

	ErrWatcherClosed = errors.New("config watcher closed")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
