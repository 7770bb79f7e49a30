// Package debounce implements a trailing-edge debouncer for Bubble Tea
// programs. Every Push restarts the quiet period; only the timer started by
// the most recent Push is allowed to fire.
package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is the quiet period used when none is configured
const DefaultDelay = 500 * time.Millisecond

// FireMsg is emitted when a debounce timer expires
type FireMsg struct {
	Seq uint64
}

// Debouncer holds the latest pushed value. The zero value is not usable;
// create one with New.
type Debouncer struct {
	delay time.Duration
	seq   uint64
	value string
}

// New creates a debouncer with the given quiet period
func New(delay time.Duration) Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return Debouncer{delay: delay}
}

// Delay returns the quiet period
func (d Debouncer) Delay() time.Duration {
	return d.delay
}

// Push records v as the latest value and returns a command that reports a
// FireMsg after the quiet period. Earlier timers become stale.
func (d *Debouncer) Push(v string) tea.Cmd {
	d.seq++
	d.value = v
	seq := d.seq
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return FireMsg{Seq: seq}
	})
}

// Fire returns the latest value when msg belongs to the most recent Push.
// Stale timers report false.
func (d Debouncer) Fire(msg FireMsg) (string, bool) {
	if msg.Seq != d.seq || d.seq == 0 {
		return "", false
	}
	return d.value, true
}
