package api

import "time"

// Paginated is the wire shape of every paginated list endpoint.
// Next and Previous are absolute URLs carrying a cursor query parameter.
type Paginated[T any] struct {
	Results  []T     `json:"results"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
}

// Project represents a project summary
type Project struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Environment represents an environment within a project
type Environment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Service represents a deployed service summary
type Service struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Image       string `json:"image"`
	Status      string `json:"status"`
	Environment string `json:"environment"`
}

// Deployment represents a single deployment of a service
type Deployment struct {
	Hash       string     `json:"hash"`
	Status     string     `json:"status"`
	QueuedAt   time.Time  `json:"queued_at"`
	StartedAt  *time.Time `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at"`
	CommitSha  string     `json:"commit_sha"`
}

// EnvVariable represents an environment variable attached to a service
type EnvVariable struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ServiceRef identifies a service within a project and environment
type ServiceRef struct {
	Project     string
	Environment string
	Service     string
}

// DeploymentRef identifies a single deployment of a service
type DeploymentRef struct {
	ServiceRef
	Hash string
}

// DesiredState is the intent of a toggle request
type DesiredState string

const (
	DesiredStart DesiredState = "start"
	DesiredStop  DesiredState = "stop"
)

// Result is the uniform outcome shape of every mutation: exactly one of
// Data or Errors is set. UserData echoes the submitted payload back to
// the form so it can re-populate fields after a failed submission.
type Result[T any] struct {
	Data     *T
	Errors   *ValidationError
	UserData any
}

// Ok reports whether the mutation succeeded
func (r Result[T]) Ok() bool {
	return r.Errors == nil
}
