package fn

import "testing"

func TestOr(t *testing.T) {
	if got := Or("", "zstd", "noop"); got != "zstd" {
		t.Errorf("Expected zstd, got %q", got)
	}
	if got := Or(0, 0); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
	if got := Or[string](); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}
