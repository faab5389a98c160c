package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestJumpBarSubmitsFragment(t *testing.T) {
	t.Parallel()

	bar := NewJumpBar()
	bar.Open()
	bar.input.SetValue("#topic/theft")

	bar, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if bar.Visible() {
		t.Fatal("bar should close on enter")
	}
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	msg, ok := cmd().(JumpSubmitMsg)
	if !ok || msg.Fragment != "#topic/theft" {
		t.Fatalf("unexpected message %#v", cmd())
	}
}

func TestJumpBarCompletesFromHints(t *testing.T) {
	t.Parallel()

	bar := NewJumpBar()
	bar.SetHints([]string{"#topic/theft", "#topic/mens-rea"})
	bar.Open()
	bar.input.SetValue("#topic/m")

	bar, _ = bar.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := bar.input.Value(); got != "#topic/mens-rea" {
		t.Fatalf("tab should complete the first match, got %q", got)
	}
}

func TestJumpBarCancel(t *testing.T) {
	t.Parallel()

	bar := NewJumpBar()
	bar.Open()
	bar, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if bar.Visible() {
		t.Fatal("bar should close on esc")
	}
	if _, ok := cmd().(JumpCancelMsg); !ok {
		t.Fatal("expected cancel message")
	}
}
