package forms

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"

	"opsdeck/internal/app/api"
	"opsdeck/internal/app/errors"
	"opsdeck/internal/config/logger"
)

// Form states
const (
	Idle       = "idle"
	Editing    = "editing"
	Submitting = "submitting"
	Errored    = "error"
)

// Form events
const (
	Edit    = "edit"
	Submit  = "submit"
	Succeed = "succeed"
	Fail    = "fail"
	Reset   = "reset"
)

// Form is the explicit state machine every editor form runs on.
// Transitions are driven by request completion, never by reactive
// side effects on data change.
type Form struct {
	machine *fsm.FSM
	fields  []string

	fieldErrors  *api.ValidationError
	submitErr    error
	focusedField int
}

// NewForm creates a form over the given ordered field names. The field
// order decides which field receives focus after a failed submission.
func NewForm(fields []string, log logger.Logger) *Form {
	f := &Form{
		fields:       fields,
		focusedField: 0,
	}

	f.machine = fsm.NewFSM(
		Idle,
		fsm.Events{
			{Name: Edit, Src: []string{Idle, Errored}, Dst: Editing},
			{Name: Submit, Src: []string{Editing}, Dst: Submitting},
			{Name: Succeed, Src: []string{Submitting}, Dst: Idle},
			{Name: Fail, Src: []string{Submitting}, Dst: Errored},
			{Name: Reset, Src: []string{Idle, Editing, Submitting, Errored}, Dst: Idle},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("FORM %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
		},
	)

	return f
}

// State returns the current form state
func (f *Form) State() string {
	return f.machine.Current()
}

// Editing reports whether the form currently accepts input
func (f *Form) IsEditing() bool {
	return f.machine.Current() == Editing
}

// Submitting reports whether a submission is in flight
func (f *Form) IsSubmitting() bool {
	return f.machine.Current() == Submitting
}

// BeginEdit moves the form into editing
func (f *Form) BeginEdit(ctx context.Context) error {
	if err := f.machine.Event(ctx, Edit); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidFormTransition, err)
	}

	return nil
}

// Reset clears errors and returns the form to idle
func (f *Form) Reset(ctx context.Context) {
	f.fieldErrors = nil
	f.submitErr = nil
	f.focusedField = 0

	_ = f.machine.Event(ctx, Reset)
}

// Errors returns the stored field errors of the last failed submission
func (f *Form) Errors() *api.ValidationError {
	return f.fieldErrors
}

// SubmitError returns the transport error of the last failed
// submission, if the failure was not field-addressable
func (f *Form) SubmitError() error {
	return f.submitErr
}

// FocusedField returns the index of the field that holds focus. After
// a failed submission this is the first invalid field.
func (f *Form) FocusedField() int {
	return f.focusedField
}

// ErrorFor returns the field error for the named field, if any
func (f *Form) ErrorFor(field string) (api.FieldError, bool) {
	if f.fieldErrors == nil {
		return api.FieldError{}, false
	}

	return f.fieldErrors.For(field)
}

// complete records the outcome of a submission and fires the matching
// transition. On validation failure, focus moves to the first invalid
// field in declaration order.
func (f *Form) complete(ctx context.Context, ve *api.ValidationError, err error) error {
	if err != nil {
		f.submitErr = err
		_ = f.machine.Event(ctx, Fail)

		return err
	}

	if ve != nil {
		f.fieldErrors = ve
		f.focusField(ve)
		_ = f.machine.Event(ctx, Fail)

		return ve
	}

	f.fieldErrors = nil
	f.submitErr = nil

	return f.machine.Event(ctx, Succeed)
}

// begin fires the submit transition
func (f *Form) begin(ctx context.Context) error {
	if err := f.machine.Event(ctx, Submit); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidFormTransition, err)
	}

	return nil
}

func (f *Form) focusField(ve *api.ValidationError) {
	for i, field := range f.fields {
		if _, ok := ve.For(field); ok {
			f.focusedField = i
			return
		}
	}

	f.focusedField = 0
}
