package logquery

import (
	"context"

	"opsdeck/internal/app/api"
	"opsdeck/internal/app/query"
	"opsdeck/internal/config"
	"opsdeck/internal/config/logger"
)

// ProjectKey returns the cache key scoping a project
func ProjectKey(project string) query.Key {
	return query.NewKey("projects", project)
}

// ServiceKey returns the cache key scoping a service. Deployment lists
// and log pages nest under it, so invalidating it cascades to both.
func ServiceKey(ref api.ServiceRef) query.Key {
	return ProjectKey(ref.Project).Child(ref.Environment, "services", ref.Service)
}

// DeploymentKey returns the cache key scoping a single deployment
func DeploymentKey(ref api.DeploymentRef) query.Key {
	return ServiceKey(ref.ServiceRef).Child("deployments", ref.Hash)
}

// NewRuntimePaginator creates a paginator over the runtime logs of a
// deployment, scoped to the given filter set
func NewRuntimePaginator(c *api.Client, cache *query.Cache, log logger.Logger, ref api.DeploymentRef, filter Filter) *Paginator[RuntimeEntry] {
	prefix := DeploymentKey(ref).Child(config.RuntimeLogSegment).ChildFilter(filter)

	source := func(ctx context.Context, cursor *string) (api.Paginated[RuntimeEntry], error) {
		return api.ListPage[RuntimeEntry](ctx, c, api.DeploymentLogsPath(ref), filter.Values(), cursor)
	}

	return NewPaginator(source, cache, prefix, log)
}

// NewHTTPPaginator creates a paginator over the HTTP logs of a service,
// scoped to the given filter set
func NewHTTPPaginator(c *api.Client, cache *query.Cache, log logger.Logger, ref api.ServiceRef, filter Filter) *Paginator[HTTPEntry] {
	prefix := ServiceKey(ref).Child(config.HTTPLogSegment).ChildFilter(filter)

	source := func(ctx context.Context, cursor *string) (api.Paginated[HTTPEntry], error) {
		return api.ListPage[HTTPEntry](ctx, c, api.ServiceHTTPLogsPath(ref), filter.Values(), cursor)
	}

	return NewPaginator(source, cache, prefix, log)
}
