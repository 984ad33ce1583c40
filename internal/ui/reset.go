package ui

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// ResetScreen is the forgot-password form.
type ResetScreen struct {
	email string

	form   *huh.Form
	width  int
	height int
	error  string
	sent   bool
}

// NewResetScreen creates the password-reset form.
func NewResetScreen(lastEmail string) *ResetScreen {
	s := &ResetScreen{email: lastEmail}
	s.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Description("We'll send a reset link to this address").
			Placeholder("you@example.com").
			CharLimit(ModalInputCharLimit).
			Value(&s.email),
	)).
		WithTheme(FormTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6)
	initHuhForm(s.form)
	return s
}

// SetSize sets the screen dimensions
func (s *ResetScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetError displays a validation error under the form
func (s *ResetScreen) SetError(err string) {
	s.error = err
}

// MarkSent switches the screen to its confirmation state
func (s *ResetScreen) MarkSent() {
	s.sent = true
	s.error = ""
}

// Sent reports whether the reset link was requested
func (s *ResetScreen) Sent() bool {
	return s.sent
}

// Email returns the entered email
func (s *ResetScreen) Email() string {
	return s.email
}

// Update delegates to the form
func (s *ResetScreen) Update(msg tea.Msg) (*ResetScreen, tea.Cmd) {
	if s.sent {
		return s, nil
	}
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// View renders the reset card centered on screen
func (s *ResetScreen) View() string {
	title := ModalTitleStyle.Render("Reset your password")

	var content string
	if s.sent {
		body := ModalTextStyle.
			Width(ModalWidth - 6).
			Render("Check your inbox. If an account exists for " + s.email + ", a reset link is on its way.")
		help := ModalHelpStyle.Render("Esc: back to sign in")
		content = lipgloss.JoinVertical(lipgloss.Left, title, body, help)
	} else {
		help := ModalHelpStyle.Render("Enter: send reset link  Esc: back to sign in")
		content = lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
		if s.error != "" {
			content = lipgloss.JoinVertical(lipgloss.Left, content, StatusErrorStyle.Render(s.error))
		}
	}

	card := ModalStyle.Render(content)
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, card)
}
