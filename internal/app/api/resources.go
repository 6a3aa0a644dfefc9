package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// DuplicateEnvVarDetail is the message shown when the backend rejects an
// environment variable whose key already exists on the service
const DuplicateEnvVarDetail = "An environment variable with this key already exists for this service"

// Projects fetches the first page of projects
func (c *Client) Projects(ctx context.Context) (Paginated[Project], error) {
	return getJSON[Paginated[Project]](ctx, c, "/api/projects/")
}

// Environments fetches the environments of a project
func (c *Client) Environments(ctx context.Context, project string) ([]Environment, error) {
	return getJSON[[]Environment](ctx, c, fmt.Sprintf("/api/projects/%s/environments/", url.PathEscape(project)))
}

// Services fetches the services of a project environment
func (c *Client) Services(ctx context.Context, project, environment string) ([]Service, error) {
	path := fmt.Sprintf("/api/projects/%s/%s/services/",
		url.PathEscape(project), url.PathEscape(environment))

	return getJSON[[]Service](ctx, c, path)
}

// ServiceStatus fetches the current status of a single service
func (c *Client) ServiceStatus(ctx context.Context, ref ServiceRef) (Service, error) {
	return getJSON[Service](ctx, c, serviceDetailsPath(ref))
}

// Deployments fetches the first page of deployments for a service
func (c *Client) Deployments(ctx context.Context, ref ServiceRef) (Paginated[Deployment], error) {
	return getJSON[Paginated[Deployment]](ctx, c, serviceDetailsPath(ref)+"deployments/")
}

// ToggleService submits a start/stop intent for a compose-stack service.
// The response carries no useful payload; the observed state transition
// is tracked separately by polling ServiceStatus.
func (c *Client) ToggleService(ctx context.Context, ref ServiceRef, desired DesiredState) error {
	payload := map[string]string{"desired_state": string(desired)}

	_, err := mutate[struct{}](ctx, c, http.MethodPut, serviceDetailsPath(ref)+"toggle/", payload, mutationOpts{})

	return err
}

// UpsertEnvVariable creates or updates an environment variable. A 409
// from the backend is translated into a field-level conflict on "key"
// so the form renders it inline like any other validation error.
func (c *Client) UpsertEnvVariable(ctx context.Context, ref ServiceRef, v EnvVariable) (Result[EnvVariable], error) {
	method := http.MethodPost
	path := serviceDetailsPath(ref) + "env-variables/"

	if v.ID != "" {
		method = http.MethodPut
		path += url.PathEscape(v.ID) + "/"
	}

	return mutate[EnvVariable](ctx, c, method, path, v, mutationOpts{
		conflictAttr:   "key",
		conflictDetail: DuplicateEnvVarDetail,
	})
}

// ListPage fetches one page of a cursor-paginated list endpoint. When a
// cursor is given it is added to the query; pagination links returned by
// the server are absolute URLs and can be passed back as path directly.
func ListPage[T any](ctx context.Context, c *Client, path string, query url.Values, cursor *string) (Paginated[T], error) {
	q := url.Values{}
	for k, vs := range query {
		q[k] = vs
	}

	if cursor != nil {
		q.Set("cursor", *cursor)
	}

	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	return getJSON[Paginated[T]](ctx, c, path)
}

// DeploymentLogsPath returns the runtime-logs endpoint for a deployment
func DeploymentLogsPath(ref DeploymentRef) string {
	return serviceDetailsPath(ref.ServiceRef) + "deployments/" + url.PathEscape(ref.Hash) + "/logs/"
}

// ServiceHTTPLogsPath returns the http-logs endpoint for a service
func ServiceHTTPLogsPath(ref ServiceRef) string {
	return serviceDetailsPath(ref) + "http-logs/"
}

// serviceDetailsPath returns the service-details base path for a service
func serviceDetailsPath(ref ServiceRef) string {
	return fmt.Sprintf("/api/projects/%s/%s/service-details/docker/%s/",
		url.PathEscape(ref.Project), url.PathEscape(ref.Environment), url.PathEscape(ref.Service))
}
