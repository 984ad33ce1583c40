package ui

import (
	"strings"
	"testing"
)

func TestNewFooter(t *testing.T) {
	footer := NewFooter()

	if footer == nil {
		t.Fatal("NewFooter() returned nil")
	}
	if len(footer.bindings) == 0 {
		t.Error("Footer should have default bindings")
	}
}

func TestFooter_View_DefaultBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)

	view := stripANSI(footer.View())
	for _, want := range []string{"enter", "send", "ctrl+t", "tone", "ctrl+o"} {
		if !strings.Contains(view, want) {
			t.Errorf("Footer should contain %q, got: %q", want, view)
		}
	}
}

func TestFooter_View_TranslatingHidesSend(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(true, false, true)

	view := stripANSI(footer.View())
	if !strings.Contains(view, "translating") {
		t.Errorf("Footer should show the translating indicator, got: %q", view)
	}
	if strings.Contains(view, ": send") {
		t.Errorf("Send binding should be hidden while translating, got: %q", view)
	}
}

func TestFooter_View_Offline(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(false, false, false)

	view := stripANSI(footer.View())
	if !strings.Contains(view, "offline") {
		t.Errorf("Footer should show the offline indicator, got: %q", view)
	}
}

func TestFooter_View_RetryShownOnFailure(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(160)
	footer.SetContext(false, true, true)

	view := stripANSI(footer.View())
	if !strings.Contains(view, "ctrl+r") {
		t.Errorf("Footer should offer retry after a failure, got: %q", view)
	}

	footer.SetContext(false, false, true)
	view = stripANSI(footer.View())
	if strings.Contains(view, "retry translation") {
		t.Errorf("Footer should not offer retry without failures, got: %q", view)
	}
}

func TestFooter_SetBindings(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(80)
	footer.SetBindings([]KeyBinding{{Key: "x", Desc: "custom"}})

	view := stripANSI(footer.View())
	if !strings.Contains(view, "custom") {
		t.Errorf("Footer should render custom bindings, got: %q", view)
	}
}
