package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width       int
	bindings    []KeyBinding
	translating bool // whether a translation is in flight
	hasFailed   bool // whether any message has a failed translation
	connected   bool // connectivity state
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		connected: true,
		bindings: []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "shift+enter", Desc: "newline"},
			{Key: "ctrl+t", Desc: "tone"},
			{Key: "ctrl+y", Desc: "copy"},
			{Key: "ctrl+o", Desc: "toggle network"},
			{Key: "ctrl+s", Desc: "settings"},
			{Key: "ctrl+c", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(translating, hasFailed, connected bool) {
	f.translating = translating
	f.hasFailed = hasFailed
	f.connected = connected
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// View renders the footer
func (f *Footer) View() string {
	var parts []string

	if !f.connected {
		parts = append(parts, StatusErrorStyle.Render("offline"))
	}
	if f.translating {
		parts = append(parts, TranslatingStyle.Render("translating"))
	}

	for _, b := range f.bindings {
		// Sending is gated while a translation is in flight
		if b.Key == "enter" && f.translating {
			continue
		}
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	// Retry only makes sense once something has failed
	if f.hasFailed {
		key := FooterKeyStyle.Render("ctrl+r")
		desc := FooterDescStyle.Render(": retry translation")
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}
