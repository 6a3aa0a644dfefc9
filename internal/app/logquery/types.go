package logquery

import (
	"time"
)

// Log levels
const (
	LevelInfo  = "INFO"
	LevelError = "ERROR"
)

// Log sources
const (
	SourceSystem  = "SYSTEM"
	SourceService = "SERVICE"
)

// RuntimeEntry is one runtime log line of a deployment
type RuntimeEntry struct {
	ID          string    `json:"id"`
	Level       string    `json:"level"`
	Source      string    `json:"source"`
	Time        string    `json:"time"`
	Timestamp   time.Time `json:"timestamp"`
	Content     string    `json:"content"`
	ContentText string    `json:"content_text"`
	ContainerID string    `json:"container_id,omitempty"`
}

// HTTPEntry is one HTTP access log record of a service
type HTTPEntry struct {
	ID        string    `json:"id"`
	Method    string    `json:"request_method"`
	Path      string    `json:"request_path"`
	Host      string    `json:"request_host"`
	Status    int       `json:"status"`
	Duration  int64     `json:"request_duration_ns"`
	IP        string    `json:"request_ip"`
	UserAgent string    `json:"request_user_agent"`
	RequestID string    `json:"request_id"`
	Time      time.Time `json:"time"`
}

// Page is one fetched window of log entries. Next and Previous are
// opaque cursor tokens already translated into viewer direction: Next
// pages toward older entries, Previous toward newer ones. Cursor is a
// locally retained anchor for the first page, not part of the server
// response; it pins the starting window across refetches.
type Page[T any] struct {
	Results  []T
	Next     *string
	Previous *string
	Cursor   *string
}

// IsNewest reports whether this page is the newest window, the only
// page whose contents may still change as new log lines arrive
func (p Page[T]) IsNewest() bool {
	return p.Previous == nil
}
