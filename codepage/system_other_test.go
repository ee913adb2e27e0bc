//go:build !windows

package codepage

import "testing"

func TestSystem_Default(t *testing.T) {
	t.Setenv(EnvVar, "")
	if got := System(); got != DefaultSystem {
		t.Errorf("System() = %v, want %v", got, DefaultSystem)
	}
}

func TestSystem_Env(t *testing.T) {
	t.Setenv(EnvVar, "shift_jis")
	if got := System(); got != ShiftJIS {
		t.Errorf("System() = %v, want %v", got, ShiftJIS)
	}
}

func TestSystem_EnvUnknown(t *testing.T) {
	t.Setenv(EnvVar, "cp99999")
	if got := System(); got != DefaultSystem {
		t.Errorf("System() = %v, want %v", got, DefaultSystem)
	}
}
