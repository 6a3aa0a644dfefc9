package forms

import (
	"context"

	"opsdeck/internal/app/api"
	"opsdeck/internal/app/logquery"
	"opsdeck/internal/app/query"
	"opsdeck/internal/config/logger"
)

// EnvVarBackend is the slice of the API client the env-var form needs
type EnvVarBackend interface {
	UpsertEnvVariable(ctx context.Context, ref api.ServiceRef, v api.EnvVariable) (api.Result[api.EnvVariable], error)
}

// EnvVarForm edits one environment variable of a service. A successful
// submission invalidates the service's cache key, which cascades to its
// deployment list and log pages.
type EnvVarForm struct {
	*Form

	ref     api.ServiceRef
	backend EnvVarBackend
	cache   *query.Cache

	Value api.EnvVariable
}

// NewEnvVarForm creates an env-var editor for the given service
func NewEnvVarForm(ref api.ServiceRef, backend EnvVarBackend, cache *query.Cache, log logger.Logger) *EnvVarForm {
	return &EnvVarForm{
		Form:    NewForm([]string{"key", "value"}, log),
		ref:     ref,
		backend: backend,
		cache:   cache,
	}
}

// Submit sends the current value to the backend and completes the form
// with the outcome. Duplicate keys come back as a field-level conflict
// on "key" and render inline like any other validation error.
func (f *EnvVarForm) Submit(ctx context.Context) error {
	if err := f.begin(ctx); err != nil {
		return err
	}

	res, err := f.backend.UpsertEnvVariable(ctx, f.ref, f.Value)
	if err != nil {
		return f.complete(ctx, nil, err)
	}

	if !res.Ok() {
		if userData, ok := res.UserData.(api.EnvVariable); ok {
			f.Value = userData
		}

		return f.complete(ctx, res.Errors, nil)
	}

	f.cache.Invalidate(logquery.ServiceKey(f.ref))

	return f.complete(ctx, nil, nil)
}
