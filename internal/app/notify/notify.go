package notify

import (
	"sync"
	"time"
)

// Level indicates the severity of a notification
type Level int

// Notification levels
const (
	LevelLoading Level = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

// Notification is one toast shown in the UI. Emitting again under the
// same ID replaces the existing notification in place rather than
// stacking a new one, so a loading toast upgrades to its final outcome.
type Notification struct {
	ID      string
	Level   Level
	Message string
	Time    time.Time
}

// Notifier publishes notifications to subscribers
//
//go:generate mockgen -source=notify.go -destination=notify_mock.go -package=notify
type Notifier interface {
	Loading(id, message string)
	Info(id, message string)
	Success(id, message string)
	Warning(id, message string)
	Error(id, message string)
	Dismiss(id string)
}

// Center is the process-wide notification center. Subscribers receive
// every change over a buffered channel; a slow subscriber drops updates
// rather than blocking the emitter.
type Center struct {
	mu     sync.Mutex
	active map[string]Notification
	order  []string
	subs   []chan Notification
}

// NewCenter creates an empty notification center
func NewCenter() *Center {
	return &Center{
		active: make(map[string]Notification),
	}
}

// Subscribe returns a channel receiving every emitted notification
func (c *Center) Subscribe() <-chan Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan Notification, 16)
	c.subs = append(c.subs, ch)

	return ch
}

// Active returns the live notifications in emission order
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notification, 0, len(c.order))
	for _, id := range c.order {
		if n, ok := c.active[id]; ok {
			out = append(out, n)
		}
	}

	return out
}

// Loading emits a loading notification
func (c *Center) Loading(id, message string) { c.emit(id, LevelLoading, message) }

// Info emits an informational notification
func (c *Center) Info(id, message string) { c.emit(id, LevelInfo, message) }

// Success emits a success notification
func (c *Center) Success(id, message string) { c.emit(id, LevelSuccess, message) }

// Warning emits a warning notification
func (c *Center) Warning(id, message string) { c.emit(id, LevelWarning, message) }

// Error emits an error notification
func (c *Center) Error(id, message string) { c.emit(id, LevelError, message) }

// Dismiss removes a notification
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.active[id]; !ok {
		return
	}

	delete(c.active, id)

	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Center) emit(id string, level Level, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := Notification{ID: id, Level: level, Message: message, Time: time.Now()}

	if _, exists := c.active[id]; !exists {
		c.order = append(c.order, id)
	}

	c.active[id] = n

	for _, sub := range c.subs {
		select {
		case sub <- n:
		default:
		}
	}
}
