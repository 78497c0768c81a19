package runtime

import "testing"

func TestGetenvFallback(t *testing.T) {
	t.Setenv("RUNTIME_ENV_TEST", "")
	if got := Getenv("RUNTIME_ENV_TEST", "fallback"); got != "fallback" {
		t.Fatalf("empty var: %q", got)
	}
	t.Setenv("RUNTIME_ENV_TEST", "set")
	if got := Getenv("RUNTIME_ENV_TEST", "fallback"); got != "set" {
		t.Fatalf("set var: %q", got)
	}
}
