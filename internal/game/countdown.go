package game

import (
	"fmt"
	"sync"
)

// TimeUpMessage is shown once the countdown reaches zero.
const TimeUpMessage = "Time's up! Submit your photo quickly!"

// Snapshot is the observable state of a countdown.
type Snapshot struct {
	Remaining int    `json:"remaining"`
	Running   bool   `json:"running"`
	Display   string `json:"display"`
	Message   string `json:"message"`
}

// Countdown counts whole seconds from its total down to zero.
// It does not own a clock; something calls Tick once per second.
type Countdown struct {
	mu        sync.Mutex
	total     int
	remaining int
	running   bool
	message   string
}

func NewCountdown(seconds int) *Countdown {
	if seconds < 0 {
		seconds = 0
	}
	return &Countdown{total: seconds, remaining: seconds}
}

// Start rewinds to the full duration and runs.
func (c *Countdown) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remaining = c.total
	c.running = c.total > 0
	c.message = ""
}

// Pause stops the countdown and keeps the remaining time.
func (c *Countdown) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
}

// Tick advances one second and reports whether the countdown is still running.
// Reaching zero halts it; remaining never goes negative.
func (c *Countdown) Tick() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return false
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining == 0 {
		c.running = false
		c.message = TimeUpMessage
	}
	return c.running
}

func (c *Countdown) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Remaining: c.remaining,
		Running:   c.running,
		Display:   FormatClock(c.remaining),
		Message:   c.message,
	}
}

// FormatClock renders seconds as zero-padded MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
