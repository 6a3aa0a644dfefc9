package forms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsdeck/internal/app/api"
	"opsdeck/internal/app/errors"
	"opsdeck/internal/app/logquery"
	"opsdeck/internal/app/query"
	"opsdeck/internal/config"
	"opsdeck/internal/config/logger"
)

// fakeEnvVarBackend records the last upsert and answers with a canned
// result
type fakeEnvVarBackend struct {
	result  api.Result[api.EnvVariable]
	err     error
	lastRef api.ServiceRef
	lastVar api.EnvVariable
	calls   int
}

func (f *fakeEnvVarBackend) UpsertEnvVariable(_ context.Context, ref api.ServiceRef, v api.EnvVariable) (api.Result[api.EnvVariable], error) {
	f.calls++
	f.lastRef = ref
	f.lastVar = v

	return f.result, f.err
}

func envFormRef() api.ServiceRef {
	return api.ServiceRef{Project: "acme", Environment: "production", Service: "web"}
}

func newEnvVarTestForm(t *testing.T, backend *fakeEnvVarBackend, cache *query.Cache) *EnvVarForm {
	t.Helper()

	return NewEnvVarForm(envFormRef(), backend, cache, logger.NewSilentLogger(config.DefaultConfig()))
}

func Test_EnvVarForm_Submit_Success(t *testing.T) {
	saved := api.EnvVariable{ID: "ev-1", Key: "DATABASE_URL", Value: "postgres://db"}
	backend := &fakeEnvVarBackend{result: api.Result[api.EnvVariable]{Data: &saved}}
	cache := query.NewCache()

	f := newEnvVarTestForm(t, backend, cache)
	ctx := context.Background()

	require.NoError(t, f.BeginEdit(ctx))
	f.Value = api.EnvVariable{Key: "DATABASE_URL", Value: "postgres://db"}

	require.NoError(t, f.Submit(ctx))

	assert.Equal(t, Idle, f.State())
	assert.Equal(t, envFormRef(), backend.lastRef)
	assert.Equal(t, "DATABASE_URL", backend.lastVar.Key)
}

func Test_EnvVarForm_Submit_InvalidatesServiceScope(t *testing.T) {
	saved := api.EnvVariable{ID: "ev-1", Key: "K", Value: "v"}
	backend := &fakeEnvVarBackend{result: api.Result[api.EnvVariable]{Data: &saved}}
	cache := query.NewCache()

	ref := envFormRef()
	serviceKey := logquery.ServiceKey(ref)
	cache.Set(serviceKey.Child("deployments"), "deployments-page")
	cache.Set(serviceKey.Child("deployments", "abc", "runtime-logs"), "log-page")
	cache.Set(logquery.ServiceKey(api.ServiceRef{Project: "acme", Environment: "production", Service: "worker"}), "untouched")

	f := newEnvVarTestForm(t, backend, cache)
	ctx := context.Background()

	require.NoError(t, f.BeginEdit(ctx))
	require.NoError(t, f.Submit(ctx))

	_, ok := cache.Get(serviceKey.Child("deployments"))
	assert.False(t, ok)

	_, ok = cache.Get(serviceKey.Child("deployments", "abc", "runtime-logs"))
	assert.False(t, ok)

	// Sibling services keep their cached pages.
	_, ok = cache.Get(logquery.ServiceKey(api.ServiceRef{Project: "acme", Environment: "production", Service: "worker"}))
	assert.True(t, ok)
}

func Test_EnvVarForm_Submit_ValidationFailure_RestoresUserData(t *testing.T) {
	submitted := api.EnvVariable{Key: "DATABASE_URL", Value: "postgres://db"}
	backend := &fakeEnvVarBackend{result: api.Result[api.EnvVariable]{
		Errors: &api.ValidationError{
			Errors: []api.FieldError{{Attr: "key", Code: "conflict", Detail: api.DuplicateEnvVarDetail}},
		},
		UserData: submitted,
	}}
	cache := query.NewCache()
	cache.Set(logquery.ServiceKey(envFormRef()), "page")

	f := newEnvVarTestForm(t, backend, cache)
	ctx := context.Background()

	require.NoError(t, f.BeginEdit(ctx))
	f.Value = submitted

	err := f.Submit(ctx)
	require.Error(t, err)

	assert.Equal(t, Errored, f.State())
	assert.Equal(t, submitted, f.Value)
	assert.Equal(t, 0, f.FocusedField())

	fieldErr, ok := f.ErrorFor("key")
	require.True(t, ok)
	assert.Equal(t, api.DuplicateEnvVarDetail, fieldErr.Detail)

	// A failed submission leaves cached pages intact.
	_, cached := cache.Get(logquery.ServiceKey(envFormRef()))
	assert.True(t, cached)
}

func Test_EnvVarForm_Submit_TransportFailure(t *testing.T) {
	backend := &fakeEnvVarBackend{err: errors.ErrRequestFailed}
	cache := query.NewCache()

	f := newEnvVarTestForm(t, backend, cache)
	ctx := context.Background()

	require.NoError(t, f.BeginEdit(ctx))

	err := f.Submit(ctx)
	assert.ErrorIs(t, err, errors.ErrRequestFailed)

	assert.Equal(t, Errored, f.State())
	assert.ErrorIs(t, f.SubmitError(), errors.ErrRequestFailed)
}

func Test_EnvVarForm_Submit_WithoutEditing(t *testing.T) {
	backend := &fakeEnvVarBackend{}
	cache := query.NewCache()

	f := newEnvVarTestForm(t, backend, cache)

	err := f.Submit(context.Background())
	assert.ErrorIs(t, err, errors.ErrInvalidFormTransition)
	assert.Zero(t, backend.calls)
}
