package debounce

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFireAfterQuietPeriod(t *testing.T) {
	d := New(20 * time.Millisecond)

	start := time.Now()
	msg := d.Push("batman")()
	elapsed := time.Since(start)

	fire, ok := msg.(FireMsg)
	if !ok {
		t.Fatalf("msg = %T, want FireMsg", msg)
	}
	if elapsed < d.Delay() {
		t.Errorf("fired after %v, want at least %v", elapsed, d.Delay())
	}

	v, ok := d.Fire(fire)
	if !ok || v != "batman" {
		t.Errorf("Fire = (%q, %v), want (batman, true)", v, ok)
	}
}

func TestStaleTimerIgnored(t *testing.T) {
	d := New(time.Millisecond)

	first := d.Push("b")
	second := d.Push("ba")
	third := d.Push("bat")

	for _, cmd := range []tea.Cmd{first, second} {
		msg := cmd().(FireMsg)
		if v, ok := d.Fire(msg); ok {
			t.Errorf("stale timer seq %d fired with %q", msg.Seq, v)
		}
	}

	v, ok := d.Fire(third().(FireMsg))
	if !ok || v != "bat" {
		t.Errorf("Fire = (%q, %v), want (bat, true)", v, ok)
	}
}

func TestFireWithoutPush(t *testing.T) {
	d := New(time.Millisecond)
	if _, ok := d.Fire(FireMsg{}); ok {
		t.Error("Fire should report false before any Push")
	}
}

func TestDefaultDelay(t *testing.T) {
	if got := New(0).Delay(); got != DefaultDelay {
		t.Errorf("Delay() = %v, want %v", got, DefaultDelay)
	}
}
