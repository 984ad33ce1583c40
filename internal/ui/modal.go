package ui

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"slices"

	"github.com/polyglotchat/polyglot/internal/keys"
	"github.com/polyglotchat/polyglot/internal/message"
)

// ModalState is a discriminated union interface for modal-specific state.
// Each modal type implements this interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered over the screen
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()

	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	modal := ModalStyle.Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}

// initHuhForm initializes a huh form eagerly so it renders correctly
// immediately. Call this in every modal constructor after creating the form.
func initHuhForm(form *huh.Form) {
	form.Init()
}

// huhFormUpdate is the common Update logic for huh-based modals and screens.
// It intercepts Enter and Escape (handled by the app layer) and delegates
// everything else to the huh form.
func huhFormUpdate(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Enter, keys.Escape:
			return form, nil
		}
	}

	m, cmd := form.Update(msg)
	form = m.(*huh.Form)
	return form, cmd
}

// FormTheme returns a huh theme that matches the current color palette.
// Called each time a form is created to pick up the active theme colors.
func FormTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
		t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(ColorWarning).SetString(" *")
		t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(ColorWarning)

		t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(ColorPrimary).SetString("> ")
		t.Focused.NextIndicator = lipgloss.NewStyle().Foreground(ColorPrimary).MarginLeft(1).SetString("→")
		t.Focused.PrevIndicator = lipgloss.NewStyle().Foreground(ColorPrimary).MarginRight(1).SetString("←")
		t.Focused.Option = lipgloss.NewStyle().Foreground(ColorText)

		t.Focused.FocusedButton = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Foreground(ColorTextInverse).
			Background(ColorPrimary)
		t.Focused.BlurredButton = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Foreground(ColorTextMuted)

		t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(ColorPrimary)
		t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(ColorTextMuted)
		t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(ColorPrimary)
		t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(ColorText)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.NextIndicator = lipgloss.NewStyle()
		t.Blurred.PrevIndicator = lipgloss.NewStyle()

		t.Group.Title = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
		t.Group.Description = lipgloss.NewStyle().Foreground(ColorTextMuted)

		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")

		return t
	})
}

// =============================================================================
// TranslationErrorState - shown when a translation failed while offline
// =============================================================================

type TranslationErrorState struct {
	FailedCount   int
	Options       []string
	SelectedIndex int
}

func (*TranslationErrorState) modalState() {}

func (s *TranslationErrorState) Title() string { return "Translation Unavailable" }

func (s *TranslationErrorState) Help() string {
	return "↑/↓ to select, Enter to confirm, Esc to dismiss"
}

func (s *TranslationErrorState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	body := "We couldn't translate your message because the connection was lost."
	if s.FailedCount > 1 {
		body = "We couldn't translate your messages because the connection was lost."
	}
	text := ModalTextStyle.
		Width(ModalWidth - 6).
		MarginBottom(1).
		Render(body)

	var optionList string
	for i, opt := range s.Options {
		style := ListItemStyle
		prefix := "  "
		if i == s.SelectedIndex {
			style = ListSelectedStyle
			prefix = "> "
		}
		optionList += style.Render(prefix+opt) + "\n"
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, text, optionList, help)
}

func (s *TranslationErrorState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "up", "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
		case "down", "j":
			if s.SelectedIndex < len(s.Options)-1 {
				s.SelectedIndex++
			}
		}
	}
	return s, nil
}

// ShouldRetry returns true if the user selected the retry option
func (s *TranslationErrorState) ShouldRetry() bool {
	return s.SelectedIndex == 0
}

// NewTranslationErrorState creates a new TranslationErrorState
func NewTranslationErrorState(failedCount int) *TranslationErrorState {
	return &TranslationErrorState{
		FailedCount:   failedCount,
		Options:       []string{"Try Again", "Dismiss"},
		SelectedIndex: 0,
	}
}

// =============================================================================
// SettingsState - huh form for preferences
// =============================================================================

type SettingsState struct {
	// Bound form values
	selectedLanguage     string
	selectedTone         string
	selectedTheme        string
	OriginalTheme        string // to detect whether the theme changed
	NotificationsEnabled bool

	form *huh.Form
}

func (*SettingsState) modalState() {}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// GetLanguage returns the selected preferred language
func (s *SettingsState) GetLanguage() message.Language {
	return message.Language(s.selectedLanguage)
}

// GetTone returns the selected default tone
func (s *SettingsState) GetTone() message.Tone {
	return message.Tone(s.selectedTone)
}

// GetSelectedTheme returns the selected theme key
func (s *SettingsState) GetSelectedTheme() string {
	return s.selectedTheme
}

// ThemeChanged returns true if the selected theme differs from the original
func (s *SettingsState) ThemeChanged() bool {
	return s.selectedTheme != s.OriginalTheme
}

// GetNotificationsEnabled returns whether notifications are enabled
func (s *SettingsState) GetNotificationsEnabled() bool {
	return s.NotificationsEnabled
}

// NewSettingsState creates the settings form pre-populated with the current
// preferences.
func NewSettingsState(language message.Language, tone message.Tone, theme string, notifications bool) *SettingsState {
	s := &SettingsState{
		selectedLanguage:     string(language),
		selectedTone:         string(tone),
		selectedTheme:        theme,
		OriginalTheme:        theme,
		NotificationsEnabled: notifications,
	}

	langOptions := make([]huh.Option[string], len(message.LanguageOptions))
	for i, opt := range message.LanguageOptions {
		langOptions[i] = huh.NewOption(opt.Label, string(opt.Language))
	}

	toneOptions := make([]huh.Option[string], len(message.ToneOptions))
	for i, opt := range message.ToneOptions {
		toneOptions[i] = huh.NewOption(opt.Label, string(opt.Tone))
	}

	themeKeys := make([]string, len(ThemeNames))
	themeOptions := make([]huh.Option[string], len(ThemeNames))
	for i, name := range ThemeNames {
		themeKeys[i] = string(name)
		themeOptions[i] = huh.NewOption(BuiltinThemes[name].Name, string(name))
	}
	if !slices.Contains(themeKeys, s.selectedTheme) {
		s.selectedTheme = string(DefaultTheme)
		s.OriginalTheme = s.selectedTheme
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Preferred language").
			Description("Incoming messages are translated into this language").
			Options(langOptions...).
			Value(&s.selectedLanguage),
		huh.NewSelect[string]().
			Title("Default tone").
			Options(toneOptions...).
			Value(&s.selectedTone),
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.selectedTheme),
		huh.NewConfirm().
			Title("Desktop notifications").
			Affirmative("On").
			Negative("Off").
			Value(&s.NotificationsEnabled),
	)).
		WithTheme(FormTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6)
	initHuhForm(s.form)

	return s
}

// =============================================================================
// WelcomeState - first-run welcome modal
// =============================================================================

type WelcomeState struct{}

func (*WelcomeState) modalState() {}

func (s *WelcomeState) Title() string { return "Welcome to Polyglot!" }

func (s *WelcomeState) Help() string {
	return "Press Enter or Esc to continue"
}

func (s *WelcomeState) Render() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary).
		MarginBottom(1).
		Render(s.Title())

	intro := ModalTextStyle.
		Width(ModalWidth - 6).
		Render("Polyglot translates your conversations as you chat, so you and your contact can each read and write in your own language.")

	gettingStarted := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		MarginTop(1).
		Render("Getting started:")

	shortcuts := ModalTextStyle.
		Render("  enter    Send a message\n  ctrl+t   Cycle the message tone\n  ctrl+s   Open settings")

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, intro, gettingStarted, shortcuts, help)
}

func (s *WelcomeState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}

// NewWelcomeState creates a new WelcomeState
func NewWelcomeState() *WelcomeState {
	return &WelcomeState{}
}
