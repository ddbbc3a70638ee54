package config

import (
	"testing"
	"time"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("SUMMARIZER_PROVIDER", "claude")

	if got := GetEnvString("SUMMARIZER_PROVIDER", "openai"); got != "claude" {
		t.Errorf("got %q, want claude", got)
	}
	if got := GetEnvString("UNSET_VAR_X", "openai"); got != "openai" {
		t.Errorf("got %q, want default openai", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("OCR_DPI", "150")
	if got := GetEnvInt("OCR_DPI", 300); got != 150 {
		t.Errorf("got %d, want 150", got)
	}

	t.Setenv("OCR_DPI", "high")
	if got := GetEnvInt("OCR_DPI", 300); got != 300 {
		t.Errorf("invalid value: got %d, want default 300", got)
	}

	if got := GetEnvInt("UNSET_VAR_X", 300); got != 300 {
		t.Errorf("unset: got %d, want default 300", got)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "90s")
	if got := GetEnvDuration("REQUEST_TIMEOUT", time.Minute); got != 90*time.Second {
		t.Errorf("got %v, want 90s", got)
	}

	t.Setenv("REQUEST_TIMEOUT", "soon")
	if got := GetEnvDuration("REQUEST_TIMEOUT", time.Minute); got != time.Minute {
		t.Errorf("invalid value: got %v, want default 1m", got)
	}
}
