package components

import (
	"math/rand/v2"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	empty = "○"
	full  = "●"

	blinkFPS = UITicksPerSecond

	// Spring physics parameters
	blinkAngularFrequency = 6.0
	blinkDampingRatio     = 0.8

	// Pulse timing: on for beatTicks, off for restTicks
	blinkBeatTicks = 3
	blinkRestTicks = 4

	// Position threshold for frame switching
	blinkFrameThreshold = 0.4

	blinkPositionFull  = 1.0
	blinkPositionEmpty = 0.0
)

// Blink renders a smooth pulse for services in transition, driven by
// spring physics so the dot eases in and out instead of flipping
type Blink struct {
	spring    harmonica.Spring
	position  float64
	velocity  float64
	target    float64
	active    bool
	tickCount int
	beating   bool
}

// NewBlink creates a new blink animator with a random initial offset
// so multiple pulsing services are not in lockstep
func NewBlink() *Blink {
	//nolint:gosec // weak random is fine for UI animation timing
	offset := rand.IntN(blinkBeatTicks + blinkRestTicks)

	return &Blink{
		spring:    harmonica.NewSpring(harmonica.FPS(blinkFPS), blinkAngularFrequency, blinkDampingRatio),
		tickCount: offset,
	}
}

// Start begins the pulsing animation
func (b *Blink) Start() {
	b.active = true
}

// Stop ends the animation and resets to the empty frame
func (b *Blink) Stop() {
	b.active = false
	b.target = blinkPositionEmpty
	b.position = blinkPositionEmpty
	b.velocity = blinkPositionEmpty
	b.tickCount = 0
	b.beating = false
}

// Update advances the animation, called on each UI tick
func (b *Blink) Update() {
	if !b.active {
		return
	}

	b.tickCount++

	if b.beating {
		b.target = blinkPositionFull
		if b.tickCount >= blinkBeatTicks {
			b.beating = false
			b.tickCount = 0
		}
	} else {
		b.target = blinkPositionEmpty
		if b.tickCount >= blinkRestTicks {
			b.beating = true
			b.tickCount = 0
		}
	}

	b.position, b.velocity = b.spring.Update(b.position, b.velocity, b.target)
}

// Frame returns the current frame based on the spring position
func (b *Blink) Frame() string {
	if !b.active || b.position < blinkFrameThreshold {
		return empty
	}

	return full
}

// Render returns the styled frame
func (b *Blink) Render(style lipgloss.Style) string {
	return style.Render(b.Frame())
}

// IsActive returns whether the animation is currently running
func (b *Blink) IsActive() bool {
	return b.active
}
