package wide

import (
	"sync/atomic"

	"github.com/wippyai/winutf8io/codepage"
)

// State is the process-wide encoding assumption.
type State uint32

const (
	// Legacy decodes application bytes with the configured legacy code page.
	Legacy State = iota
	// UTF8 decodes application bytes as UTF-8.
	UTF8
)

func (s State) String() string {
	if s == UTF8 {
		return "utf-8"
	}
	return "legacy"
}

// Mode holds the encoding state shared by every conversion of an adapter.
// It starts in Legacy and can only move to UTF8, once.
type Mode struct {
	legacy codepage.ID
	state  atomic.Uint32
}

// NewMode returns a mode in the Legacy state using legacy as its code page.
// Pass codepage.ACP to follow the system ANSI code page.
func NewMode(legacy codepage.ID) *Mode {
	return &Mode{legacy: legacy}
}

// State returns the current state.
func (m *Mode) State() State {
	return State(m.state.Load())
}

// Legacy returns the code page used while in the Legacy state.
func (m *Mode) Legacy() codepage.ID {
	return m.legacy
}

// CodePage returns the code page application bytes are assumed to be in.
func (m *Mode) CodePage() codepage.ID {
	if m.State() == UTF8 {
		return codepage.UTF8
	}
	return m.legacy
}

// SwitchToUTF8 moves the mode to UTF8. It reports whether this call made
// the transition.
func (m *Mode) SwitchToUTF8() bool {
	return m.state.CompareAndSwap(uint32(Legacy), uint32(UTF8))
}
