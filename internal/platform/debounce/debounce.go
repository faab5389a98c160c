package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FiredMsg is delivered when a quiet window elapses. Only the message carrying
// the latest sequence for its key is current; older ones are stale.
type FiredMsg struct {
	Key   string
	Seq   uint64
	Value string
}

// Debouncer coalesces rapid inputs inside the Bubble Tea update loop. It is
// owned by one model and never touched from other goroutines.
type Debouncer struct {
	key    string
	window time.Duration
	seq    uint64
}

func New(key string, window time.Duration) *Debouncer {
	if window < 0 {
		window = 0
	}
	return &Debouncer{key: key, window: window}
}

func (d *Debouncer) Window() time.Duration {
	return d.window
}

// Push records value as the newest input and schedules its delivery. Every
// earlier pending delivery becomes stale.
func (d *Debouncer) Push(value string) tea.Cmd {
	d.seq++
	msg := FiredMsg{Key: d.key, Seq: d.seq, Value: value}
	if d.window == 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d.window, func(time.Time) tea.Msg { return msg })
}

// Accept reports whether msg is the current delivery for this debouncer and
// returns the value to apply.
func (d *Debouncer) Accept(msg FiredMsg) (string, bool) {
	if msg.Key != d.key || msg.Seq != d.seq {
		return "", false
	}
	return msg.Value, true
}

// Cancel makes any pending delivery stale.
func (d *Debouncer) Cancel() {
	d.seq++
}
