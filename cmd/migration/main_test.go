package main

import "testing"

func TestParseSteps(t *testing.T) {
	if got, err := parseSteps(nil); err != nil || got != 1 {
		t.Fatalf("expected default of 1 step, got %d err=%v", got, err)
	}
	if got, err := parseSteps([]string{" 3 "}); err != nil || got != 3 {
		t.Fatalf("expected 3 steps, got %d err=%v", got, err)
	}
	for _, raw := range []string{"0", "-2", "two"} {
		if _, err := parseSteps([]string{raw}); err == nil {
			t.Fatalf("expected error for steps %q", raw)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if got, err := parseVersion("1"); err != nil || got != 1 {
		t.Fatalf("expected version 1, got %d err=%v", got, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected negative version to fail")
	}
	if got, err := parseTarget("2"); err != nil || got != 2 {
		t.Fatalf("expected target 2, got %d err=%v", got, err)
	}
	if _, err := parseTarget("x"); err == nil {
		t.Fatalf("expected non-numeric target to fail")
	}
}
