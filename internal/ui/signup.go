package ui

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/polyglotchat/polyglot/internal/message"
)

// SignupScreen is the account-creation form.
type SignupScreen struct {
	name     string
	email    string
	password string
	language string

	form   *huh.Form
	width  int
	height int
	error  string
}

// NewSignupScreen creates the signup form.
func NewSignupScreen() *SignupScreen {
	s := &SignupScreen{language: string(message.LangEnglish)}

	langOptions := make([]huh.Option[string], len(message.LanguageOptions))
	for i, opt := range message.LanguageOptions {
		langOptions[i] = huh.NewOption(opt.Label, string(opt.Language))
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Name").
			CharLimit(ModalInputCharLimit).
			Value(&s.name),
		huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			CharLimit(ModalInputCharLimit).
			Value(&s.email),
		huh.NewInput().
			Title("Password").
			Description("At least 8 characters").
			EchoMode(huh.EchoModePassword).
			CharLimit(ModalInputCharLimit).
			Value(&s.password),
		huh.NewSelect[string]().
			Title("Your language").
			Description("Messages you receive are translated into this language").
			Options(langOptions...).
			Value(&s.language),
	)).
		WithTheme(FormTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6)
	initHuhForm(s.form)
	return s
}

// SetSize sets the screen dimensions
func (s *SignupScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetError displays a validation error under the form
func (s *SignupScreen) SetError(err string) {
	s.error = err
}

// Name returns the entered display name
func (s *SignupScreen) Name() string {
	return s.name
}

// Email returns the entered email
func (s *SignupScreen) Email() string {
	return s.email
}

// Password returns the entered password
func (s *SignupScreen) Password() string {
	return s.password
}

// Language returns the chosen preferred language
func (s *SignupScreen) Language() message.Language {
	return message.Language(s.language)
}

// Update delegates to the form
func (s *SignupScreen) Update(msg tea.Msg) (*SignupScreen, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// View renders the signup card centered on screen
func (s *SignupScreen) View() string {
	title := ModalTitleStyle.Render("Create your account")
	help := ModalHelpStyle.Render("Enter: create account  Esc: back to sign in")

	content := lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
	if s.error != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, StatusErrorStyle.Render(s.error))
	}

	card := ModalStyle.Render(content)
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, card)
}
