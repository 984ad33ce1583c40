package ui

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// LoginScreen is the sign-in form shown before the chat opens.
type LoginScreen struct {
	email    string
	password string

	form   *huh.Form
	width  int
	height int
	error  string
}

// NewLoginScreen creates the login form, optionally pre-filling the last
// used email address.
func NewLoginScreen(lastEmail string) *LoginScreen {
	s := &LoginScreen{email: lastEmail}
	s.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			CharLimit(ModalInputCharLimit).
			Value(&s.email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			CharLimit(ModalInputCharLimit).
			Value(&s.password),
	)).
		WithTheme(FormTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6)
	initHuhForm(s.form)
	return s
}

// SetSize sets the screen dimensions
func (s *LoginScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetError displays an authentication error under the form
func (s *LoginScreen) SetError(err string) {
	s.error = err
}

// Email returns the entered email
func (s *LoginScreen) Email() string {
	return s.email
}

// Password returns the entered password
func (s *LoginScreen) Password() string {
	return s.password
}

// Update delegates to the form
func (s *LoginScreen) Update(msg tea.Msg) (*LoginScreen, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// View renders the login card centered on screen
func (s *LoginScreen) View() string {
	title := ModalTitleStyle.Render("Sign in to Polyglot")
	help := ModalHelpStyle.Render("Enter: sign in  Ctrl+n: create account  Ctrl+p: forgot password")

	content := lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
	if s.error != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, StatusErrorStyle.Render(s.error))
	}

	card := ModalStyle.Render(content)
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, card)
}
