package util

import "testing"

func TestTruncateForLog(t *testing.T) {
	if got := TruncateForLog("hello world", 5); got != "hello..." {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := TruncateForLog("short", 10); got != "short" {
		t.Fatalf("expected the string unchanged, got %q", got)
	}
	if got := TruncateForLog("anything", 0); got != "" {
		t.Fatalf("expected empty output for a zero limit, got %q", got)
	}
	if got := TruncateForLog("  padded  ", 10); got != "padded" {
		t.Fatalf("expected trimmed input, got %q", got)
	}
}
