package components

import "github.com/charmbracelet/bubbles/spinner"

// LoaderItem represents a single pending operation
type LoaderItem struct {
	Scope   string
	Message string
}

// Loader queues pending operations behind one shared spinner; the
// front of the queue provides the visible message
type Loader struct {
	Model  spinner.Model
	Active bool
	queue  []LoaderItem
}

// NewLoader creates a loader with the default spinner
func NewLoader() Loader {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	return Loader{Model: sp}
}

// Start adds a new operation to the loader queue, or updates the
// message of an existing one for the same scope
func (l *Loader) Start(scope, msg string) {
	for i := range l.queue {
		if l.queue[i].Scope == scope {
			l.queue[i].Message = msg
			return
		}
	}

	l.queue = append(l.queue, LoaderItem{Scope: scope, Message: msg})
	l.Active = true
}

// Stop removes an operation from the queue
func (l *Loader) Stop(scope string) {
	for i := 0; i < len(l.queue); i++ {
		if l.queue[i].Scope == scope {
			l.queue = append(l.queue[:i], l.queue[i+1:]...)
			break
		}
	}

	if len(l.queue) == 0 {
		l.Active = false
	}
}

// StopAll clears the entire loader queue
func (l *Loader) StopAll() {
	l.queue = nil
	l.Active = false
}

// Message returns the current loader message (front of queue)
func (l *Loader) Message() string {
	if len(l.queue) == 0 {
		return ""
	}

	return l.queue[0].Message
}

// Has checks if a scope is already in the loader queue
func (l *Loader) Has(scope string) bool {
	for _, item := range l.queue {
		if item.Scope == scope {
			return true
		}
	}

	return false
}
