package wide

import (
	"sync"
	"testing"

	"github.com/wippyai/winutf8io/codepage"
)

func TestMode_StartsLegacy(t *testing.T) {
	m := NewMode(codepage.Windows1251)
	if m.State() != Legacy {
		t.Errorf("State = %v, want legacy", m.State())
	}
	if m.CodePage() != codepage.Windows1251 {
		t.Errorf("CodePage = %v, want windows-1251", m.CodePage())
	}
	if m.Legacy() != codepage.Windows1251 {
		t.Errorf("Legacy = %v, want windows-1251", m.Legacy())
	}
}

func TestMode_SwitchOnce(t *testing.T) {
	m := NewMode(codepage.ACP)
	if !m.SwitchToUTF8() {
		t.Error("first switch should report a transition")
	}
	if m.SwitchToUTF8() {
		t.Error("second switch should be a no-op")
	}
	if m.State() != UTF8 {
		t.Errorf("State = %v, want utf-8", m.State())
	}
	if m.CodePage() != codepage.UTF8 {
		t.Errorf("CodePage = %v, want utf-8", m.CodePage())
	}
}

func TestMode_ConcurrentSwitch(t *testing.T) {
	m := NewMode(codepage.ACP)
	var wg sync.WaitGroup
	var mu sync.Mutex
	transitions := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if m.SwitchToUTF8() {
				mu.Lock()
				transitions++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if transitions != 1 {
		t.Errorf("transitions = %d, want 1", transitions)
	}
}

func TestState_String(t *testing.T) {
	if Legacy.String() != "legacy" || UTF8.String() != "utf-8" {
		t.Errorf("unexpected names %q %q", Legacy, UTF8)
	}
}
