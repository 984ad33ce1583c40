package app

import (
	tea "charm.land/bubbletea/v2"
)

// Update handles messages. This is the core Bubble Tea update function that
// routes all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		if model, cmd := m.handleKeyPress(msg); model != nil {
			return model, cmd
		}
		// Key not handled, fall through to the active screen

	case translationDoneMsg:
		return m.handleTranslationDone(msg)

	case deliveryAdvanceMsg:
		return m.handleDeliveryAdvance(msg)

	case replyDueMsg:
		return m.handleReplyDue(msg)

	case connectivityChangedMsg:
		return m.handleConnectivityChanged(msg)

	case copiedMsg:
		return m.handleCopied(msg)
	}

	// Modal swallows everything else while visible
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	switch m.screen {
	case ScreenLogin:
		login, cmd := m.login.Update(msg)
		m.login = login
		cmds = append(cmds, cmd)
	case ScreenSignup:
		signup, cmd := m.signup.Update(msg)
		m.signup = signup
		cmds = append(cmds, cmd)
	case ScreenReset:
		reset, cmd := m.reset.Update(msg)
		m.reset = reset
		cmds = append(cmds, cmd)
	case ScreenChat:
		chat, cmd := m.chat.Update(msg)
		m.chat = chat
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
