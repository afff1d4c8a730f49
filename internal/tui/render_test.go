package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderWordLineWidth(t *testing.T) {
	out := renderWordLine("house", "ho", nil)
	if got := lipgloss.Width(out); got != 5 {
		t.Fatalf("expected width 5, got %d", got)
	}
}

func TestRenderWordLineOverflowInput(t *testing.T) {
	out := renderWordLine("tea", "teaxx", nil)
	if got := lipgloss.Width(out); got != 5 {
		t.Fatalf("expected overflow input appended, width %d", got)
	}
}

func TestRenderWordLineEmptyTarget(t *testing.T) {
	if out := renderWordLine("", "", nil); lipgloss.Width(out) != 0 {
		t.Fatalf("expected empty render for empty word, got %q", out)
	}
}
