package toggle

import (
	"context"
	"fmt"
	"time"

	"opsdeck/internal/app/api"
	"opsdeck/internal/app/errors"
	"opsdeck/internal/app/notify"
	"opsdeck/internal/config"
	"opsdeck/internal/config/logger"
)

// Backend is the slice of the API client the toggler needs
//
//go:generate mockgen -source=toggle.go -destination=toggle_mock.go -package=toggle
type Backend interface {
	ToggleService(ctx context.Context, ref api.ServiceRef, desired api.DesiredState) error
	ServiceStatus(ctx context.Context, ref api.ServiceRef) (api.Service, error)
}

// Toggler submits a start/stop intent for a compose-stack service and
// then observes eventual consistency by polling its status until it
// matches the desired state or the retry budget runs out. The loop has
// no authority over the transition itself; the backend drives it.
type Toggler struct {
	backend  Backend
	guard    Guard
	notifier notify.Notifier
	log      logger.Logger
	maxTries int
	interval time.Duration
}

// NewToggler creates a toggler with the configured polling budget
func NewToggler(cfg *config.Config, backend Backend, guard Guard, notifier notify.Notifier, log logger.Logger) *Toggler {
	return &Toggler{
		backend:  backend,
		guard:    guard,
		notifier: notifier,
		log:      log.WithComponent("toggle"),
		maxTries: cfg.Toggle.MaxTries,
		interval: cfg.Toggle.Interval,
	}
}

// Toggle runs one submit-and-poll cycle. The context is the caller's
// cancellation token: the UI passes a background context so the loop
// runs to completion and always delivers a final notification, but an
// integrator that prefers teardown on navigation can pass its own.
//
// A second call for the same service while one is active is rejected
// with an informational notification and ErrToggleInFlight.
func (t *Toggler) Toggle(ctx context.Context, ref api.ServiceRef, desired api.DesiredState) error {
	resource := resourceID(ref)
	id := "toggle:" + resource

	if !t.guard.Lock(resource) {
		t.notifier.Info(id+":busy", fmt.Sprintf("%s is already being updated, hang on", ref.Service))

		return errors.ErrToggleInFlight
	}
	defer t.guard.Unlock(resource)

	t.notifier.Loading(id, loadingCopy(ref.Service, desired))

	// The loop does not gate on the submit response; the observed
	// status is the only signal that matters.
	if err := t.backend.ToggleService(ctx, ref, desired); err != nil {
		t.log.Warn().Err(err).Str("service", ref.Service).Msg("toggle submit failed, polling anyway")
	}

	return t.poll(ctx, ref, desired, id)
}

// poll fetches fresh status up to maxTries times, sleeping between
// attempts but not after the last one
func (t *Toggler) poll(ctx context.Context, ref api.ServiceRef, desired api.DesiredState, id string) error {
	for attempt := 1; attempt <= t.maxTries; attempt++ {
		status, err := t.backend.ServiceStatus(ctx, ref)
		if err != nil {
			// Fetch failure or a vanished resource means we can no
			// longer tell what is happening; give up immediately.
			t.notifier.Warning(id, fmt.Sprintf("could not verify the state of %s", ref.Service))

			return err
		}

		if observedState(status) == desired {
			t.notifier.Success(id, successCopy(ref.Service, desired))

			return nil
		}

		if attempt < t.maxTries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(t.interval):
			}
		}
	}

	t.notifier.Warning(id, exhaustedCopy(ref.Service, desired))

	return errors.ErrToggleExhausted
}

// observedState derives the current state from a status payload
func observedState(s api.Service) api.DesiredState {
	if s.Status == config.SleepingStatus {
		return api.DesiredStop
	}

	return api.DesiredStart
}

// resourceID is the guard key for a service
func resourceID(ref api.ServiceRef) string {
	return ref.Project + "/" + ref.Environment + "/" + ref.Service
}

func loadingCopy(service string, desired api.DesiredState) string {
	if desired == api.DesiredStop {
		return fmt.Sprintf("putting %s to sleep…", service)
	}

	return fmt.Sprintf("waking %s up…", service)
}

func successCopy(service string, desired api.DesiredState) string {
	if desired == api.DesiredStop {
		return fmt.Sprintf("%s is now asleep", service)
	}

	return fmt.Sprintf("%s is up and running", service)
}

func exhaustedCopy(service string, desired api.DesiredState) string {
	if desired == api.DesiredStop {
		return fmt.Sprintf("%s did not stop in time, check the deployment logs", service)
	}

	return fmt.Sprintf("%s did not come up in time, check the deployment logs", service)
}
