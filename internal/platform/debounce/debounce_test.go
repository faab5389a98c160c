package debounce_test

import (
	"testing"
	"time"

	"refdeck/internal/platform/debounce"
)

func TestOnlyLastValueInsideWindowIsApplied(t *testing.T) {
	t.Parallel()
	d := debounce.New("search", time.Millisecond)

	cmds := []func() any{}
	for _, value := range []string{"m", "me", "mens"} {
		cmd := d.Push(value)
		cmds = append(cmds, func() any { return cmd() })
	}

	applied := []string{}
	for _, run := range cmds {
		msg, ok := run().(debounce.FiredMsg)
		if !ok {
			t.Fatalf("expected FiredMsg")
		}
		if value, ok := d.Accept(msg); ok {
			applied = append(applied, value)
		}
	}
	if len(applied) != 1 || applied[0] != "mens" {
		t.Fatalf("expected only the final value, got %v", applied)
	}
}

func TestZeroWindowDeliversImmediately(t *testing.T) {
	t.Parallel()
	d := debounce.New("search", 0)
	msg := d.Push("theft")().(debounce.FiredMsg)
	value, ok := d.Accept(msg)
	if !ok || value != "theft" {
		t.Fatalf("expected immediate delivery, got %q %v", value, ok)
	}
}

func TestCancelAndForeignKeysAreStale(t *testing.T) {
	t.Parallel()
	d := debounce.New("search", 0)
	msg := d.Push("x")().(debounce.FiredMsg)
	d.Cancel()
	if _, ok := d.Accept(msg); ok {
		t.Fatalf("cancelled delivery should be stale")
	}

	other := debounce.New("tag", 0)
	foreign := other.Push("y")().(debounce.FiredMsg)
	if _, ok := d.Accept(foreign); ok {
		t.Fatalf("message for another key should be ignored")
	}
}
