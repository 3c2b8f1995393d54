package session

import "fmt"

// Countdown tracks remaining test time. The presentation layer owns
// the tick schedule; the countdown only holds state, so it never races
// with submission.
type Countdown struct {
	remaining int
	stopped   bool
}

// NewCountdown starts at the given number of seconds.
func NewCountdown(seconds int) *Countdown {
	return &Countdown{remaining: seconds}
}

// Tick decrements one second and reports whether time just ran out.
// Ticks after a stop or after expiry are no-ops.
func (c *Countdown) Tick() (expired bool) {
	if c.stopped || c.remaining <= 0 {
		return false
	}
	c.remaining--
	return c.remaining == 0
}

// Stop freezes the countdown. Used when the session submits.
func (c *Countdown) Stop() {
	c.stopped = true
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// String formats the remaining time as MM:SS.
func (c *Countdown) String() string {
	return fmt.Sprintf("%02d:%02d", c.remaining/60, c.remaining%60)
}
