package forms

import (
	"go.uber.org/fx"

	"opsdeck/internal/app/api"
	"opsdeck/internal/app/query"
	"opsdeck/internal/config/logger"
)

// Factory builds forms bound to the shared backend and cache
type Factory struct {
	backend *api.Client
	cache   *query.Cache
	log     logger.Logger
}

// NewFactory creates a form factory
func NewFactory(backend *api.Client, cache *query.Cache, log logger.Logger) *Factory {
	return &Factory{backend: backend, cache: cache, log: log}
}

// EnvVar creates an env-var editor for the given service
func (f *Factory) EnvVar(ref api.ServiceRef) *EnvVarForm {
	return NewEnvVarForm(ref, f.backend, f.cache, f.log)
}

// Module provides the form factory
var Module = fx.Options(
	fx.Provide(NewFactory),
)
