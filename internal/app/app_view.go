package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/polyglotchat/polyglot/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string. Useful for tests.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var view string
	switch m.screen {
	case ScreenLogin:
		view = m.login.View()
	case ScreenSignup:
		view = m.signup.View()
	case ScreenReset:
		view = m.reset.View()
	case ScreenChat:
		m.updateFooterContext()
		view = lipgloss.JoinVertical(
			lipgloss.Left,
			m.header.View(),
			m.chat.View(),
			m.footer.View(),
		)
	}

	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}
	return view
}

// updateFooterContext updates the footer with current context for
// conditional bindings.
func (m *Model) updateFooterContext() {
	m.footer.SetContext(
		m.pipeline.InFlight(),
		len(m.store.FailedTranslations()) > 0,
		m.monitor.Online(),
	)
}

// updateSizes updates component sizes based on terminal dimensions.
func (m *Model) updateSizes() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.chat.SetSize(m.width, m.height-ui.HeaderHeight-ui.FooterHeight)
	m.login.SetSize(m.width, m.height)
	m.signup.SetSize(m.width, m.height)
	m.reset.SetSize(m.width, m.height)
}
