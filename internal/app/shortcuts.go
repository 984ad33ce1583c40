package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/polyglotchat/polyglot/internal/keys"
	"github.com/polyglotchat/polyglot/internal/logger"
	"github.com/polyglotchat/polyglot/internal/ui"
)

// handleKeyPress routes key presses. A nil model return means the key was
// not handled here and should fall through to the active screen.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(key, msg)
	}

	switch m.screen {
	case ScreenLogin:
		return m.handleLoginKey(key)
	case ScreenSignup:
		return m.handleSignupKey(key)
	case ScreenReset:
		return m.handleResetKey(key)
	case ScreenChat:
		return m.handleChatKey(key)
	}
	return nil, nil
}

// handleModalKey drives whichever modal is showing.
func (m *Model) handleModalKey(key string, msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		if _, ok := m.modal.State.(*ui.TranslationErrorState); ok {
			m.errorDismissed = true
		}
		if _, ok := m.modal.State.(*ui.WelcomeState); ok {
			m.markWelcomeShown()
		}
		m.modal.Hide()
		return m, nil

	case keys.Enter:
		switch state := m.modal.State.(type) {
		case *ui.TranslationErrorState:
			m.modal.Hide()
			if state.ShouldRetry() {
				return m, m.retryFailedTranslations()
			}
			m.errorDismissed = true
			return m, nil

		case *ui.SettingsState:
			m.applySettings(state)
			m.modal.Hide()
			return m, nil

		case *ui.WelcomeState:
			m.markWelcomeShown()
			m.modal.Hide()
			return m, nil
		}
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleLoginKey handles shortcuts on the login screen.
func (m *Model) handleLoginKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Enter:
		user, err := m.authSvc.Login(context.Background(), m.login.Email(), m.login.Password())
		if err != nil {
			logger.Warn("App: login failed: %v", err)
			m.login.SetError(err.Error())
			return m, nil
		}
		m.enterChat(user)
		return m, nil
	case keys.CtrlN:
		m.signup = ui.NewSignupScreen()
		m.signup.SetSize(m.width, m.height)
		m.screen = ScreenSignup
		return m, nil
	case keys.CtrlP:
		m.reset = ui.NewResetScreen(m.login.Email())
		m.reset.SetSize(m.width, m.height)
		m.screen = ScreenReset
		return m, nil
	}
	return nil, nil
}

// handleSignupKey handles shortcuts on the signup screen.
func (m *Model) handleSignupKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Enter:
		user, err := m.authSvc.Signup(context.Background(), m.signup.Name(), m.signup.Email(), m.signup.Password())
		if err != nil {
			logger.Warn("App: signup failed: %v", err)
			m.signup.SetError(err.Error())
			return m, nil
		}
		// A fresh account starts from the language picked on the form.
		m.config.SetLanguage(m.signup.Language())
		m.enterChat(user)
		return m, nil
	case keys.Escape:
		m.screen = ScreenLogin
		return m, nil
	}
	return nil, nil
}

// handleResetKey handles shortcuts on the password-reset screen.
func (m *Model) handleResetKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Enter:
		if m.reset.Sent() {
			m.screen = ScreenLogin
			return m, nil
		}
		if err := m.authSvc.RequestPasswordReset(context.Background(), m.reset.Email()); err != nil {
			m.reset.SetError(err.Error())
			return m, nil
		}
		m.reset.MarkSent()
		return m, nil
	case keys.Escape:
		m.screen = ScreenLogin
		return m, nil
	}
	return nil, nil
}

// handleChatKey handles shortcuts on the chat screen.
func (m *Model) handleChatKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Enter:
		return m.handleSubmit()

	case keys.ShiftEnter, keys.AltEnter:
		m.chat.InsertNewline()
		return m, nil

	case keys.CtrlO:
		m.monitor.Toggle()
		return m, nil

	case keys.CtrlT:
		tone := m.chat.CycleTone()
		logger.Debug("App: tone switched to %s", tone)
		return m, nil

	case keys.CtrlR:
		return m, m.retryFailedTranslations()

	case keys.CtrlY:
		return m.handleCopy()

	case keys.CtrlS:
		m.modal.Show(ui.NewSettingsState(
			m.userLanguage(),
			m.chat.Tone(),
			m.config.GetTheme(),
			m.config.GetNotificationsEnabled(),
		))
		return m, nil
	}
	return nil, nil
}

// markWelcomeShown persists the welcome dismissal.
func (m *Model) markWelcomeShown() {
	m.config.SetWelcomeShown(true)
	if err := m.config.Save(); err != nil {
		logger.Warn("App: failed to save config: %v", err)
	}
}
