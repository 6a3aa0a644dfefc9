package services

import (
	"context"

	"github.com/looplab/fsm"
)

// FSM events
const (
	EventStart    = "start"
	EventStop     = "stop"
	EventObserved = "observed"
	EventFailed   = "failed"
)

// newServiceFSM creates the state machine driving one service row.
// User intent moves a row into a transition state; observed backend
// status moves it out.
func newServiceFSM(service *ServiceState) *fsm.FSM {
	initial := string(service.Status)

	return fsm.NewFSM(
		initial,
		fsm.Events{
			{Name: EventStart, Src: []string{string(StatusSleeping), string(StatusFailed)}, Dst: string(StatusStarting)},
			{Name: EventStop, Src: []string{string(StatusHealthy)}, Dst: string(StatusStopping)},
			{Name: EventObserved, Src: []string{string(StatusStarting)}, Dst: string(StatusHealthy)},
			{Name: EventObserved, Src: []string{string(StatusStopping)}, Dst: string(StatusSleeping)},
			{Name: EventFailed, Src: []string{string(StatusStarting), string(StatusStopping)}, Dst: string(StatusFailed)},
		},
		fsm.Callbacks{
			"enter_state": func(ctx context.Context, e *fsm.Event) {
				service.Status = Status(e.Dst)
			},
		},
	)
}
