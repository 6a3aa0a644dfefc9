package config

import "time"

// app constants
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	Version = "0.3.1"

	ConfigFileName = "opsdeck.yaml"
	EnvFileName    = ".env"
)

// api constants
const (
	TokenEnvVar = "OPSDECK_API_TOKEN"

	DefaultRequestTimeout = 10 * time.Second

	CSRFHeader     = "X-CSRFToken"
	CSRFCookieName = "csrftoken"
	AuthHeader     = "Authorization"
)

// toggle polling constants
const (
	ToggleMaxTries = 12
	ToggleInterval = 5 * time.Second

	// SleepingStatus is the backend status marker for a stopped
	// compose-stack service.
	SleepingStatus = "SLEEPING"
)

// log query constants
const (
	DefaultPageSize   = 50
	LogBufferSize     = 2000
	DefaultOrder      = "desc"
	CursorQueryParam  = "cursor"
	RuntimeLogSegment = "RUNTIME_LOGS"
	HTTPLogSegment    = "HTTP_LOGS"
)

// watcher constants
const (
	DefaultDebounce = 300 * time.Millisecond
)
