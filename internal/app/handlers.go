package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/polyglotchat/polyglot/internal/logger"
	"github.com/polyglotchat/polyglot/internal/message"
	"github.com/polyglotchat/polyglot/internal/ui"
)

// handleSubmit sends the composed message: optimistic insert, then the
// async translation for the contact's language.
func (m *Model) handleSubmit() (tea.Model, tea.Cmd) {
	if m.composer == nil {
		return m, nil
	}

	sent, ok := m.composer.Submit(
		m.chat.GetInput(),
		m.chat.Tone(),
		m.monitor.Online(),
		m.pipeline.InFlight(),
	)
	if !ok {
		// Gated: blank input, offline, or a translation in flight.
		return m, nil
	}

	m.chat.ClearInput()

	job, issued := m.pipeline.Translate(sent.ID, m.contact.Language)
	if !issued {
		return m, nil
	}
	return m, tea.Batch(runTranslation(job), m.chat.SpinnerTick())
}

// handleTranslationDone folds a finished translation into the store and, for
// outgoing messages, starts the delivery acknowledgement schedule.
func (m *Model) handleTranslationDone(msg translationDoneMsg) (tea.Model, tea.Cmd) {
	o := msg.outcome
	if !m.pipeline.Apply(o) {
		// Stale or unknown; a newer request owns this message now.
		return m, nil
	}

	if o.Err != nil {
		// A fresh failure re-arms the offline modal even if a previous one
		// was dismissed.
		m.errorDismissed = false
		m.syncErrorModal()
		return m, nil
	}

	stored, ok := m.store.Get(o.MessageID)
	if !ok {
		return m, nil
	}

	var cmds []tea.Cmd
	if m.user != nil && stored.IsOutgoingFrom(m.user.ID) && stored.DeliveryStatus == message.DeliverySending {
		m.store.Patch(o.MessageID, func(mm message.Message) message.Message {
			return mm.WithDeliveryStatus(message.DeliverySent)
		})
		cmds = append(cmds,
			scheduleDelivery(o.MessageID, message.DeliveryDelivered, m.peer.DeliveredDelay),
			scheduleDelivery(o.MessageID, message.DeliveryRead, m.peer.ReadDelay),
			scheduleReply(o.MessageID, m.peer.ReplyDelay),
		)
	}
	return m, tea.Batch(cmds...)
}

// handleDeliveryAdvance applies a scheduled delivery acknowledgement. The
// status machine drops any transition that would move backward.
func (m *Model) handleDeliveryAdvance(msg deliveryAdvanceMsg) (tea.Model, tea.Cmd) {
	m.store.Patch(msg.id, func(mm message.Message) message.Message {
		return mm.WithDeliveryStatus(msg.status)
	})
	return m, nil
}

// handleReplyDue appends the peer's reply and requests its translation into
// the user's language.
func (m *Model) handleReplyDue(msg replyDueMsg) (tea.Model, tea.Cmd) {
	original, ok := m.store.Get(msg.to)
	if !ok {
		return m, nil
	}

	reply := m.peer.Reply(original)
	m.store.Append(reply)

	var cmds []tea.Cmd
	if m.config.GetNotificationsEnabled() {
		cmds = append(cmds, notifyIncoming(m.contact.Name, reply.Content))
	}

	if job, issued := m.pipeline.Translate(reply.ID, m.userLanguage()); issued {
		cmds = append(cmds, runTranslation(job), m.chat.SpinnerTick())
	}
	return m, tea.Batch(cmds...)
}

// handleConnectivityChanged reflects the new network state everywhere it
// surfaces and re-arms the listener.
func (m *Model) handleConnectivityChanged(msg connectivityChangedMsg) (tea.Model, tea.Cmd) {
	logger.Info("App: connectivity changed, online=%v", msg.online)
	m.chat.SetConnected(msg.online)
	m.header.SetOnline(msg.online)
	m.syncErrorModal()
	return m, m.listenConnectivity()
}

// handleCopied logs clipboard failures; success needs no surface.
func (m *Model) handleCopied(msg copiedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logger.Warn("App: clipboard copy failed: %v", msg.err)
	}
	return m, nil
}

// handleCopy puts the most recent message's visible text on the clipboard,
// preferring the translation when one is shown.
func (m *Model) handleCopy() (tea.Model, tea.Cmd) {
	msgs := m.store.Messages()
	if len(msgs) == 0 {
		return m, nil
	}
	last := msgs[len(msgs)-1]
	text := last.Content
	if last.HasTranslation() {
		text = last.TranslatedContent
	}
	return m, copyToClipboard(text)
}

// retryFailedTranslations re-issues translation requests for every failed
// message. Each retry gets a fresh sequence, so a late original response can
// never overwrite the retried result.
func (m *Model) retryFailedTranslations() tea.Cmd {
	var cmds []tea.Cmd
	for _, id := range m.store.FailedTranslations() {
		stored, ok := m.store.Get(id)
		if !ok {
			continue
		}
		if job, issued := m.pipeline.Translate(id, m.targetFor(stored)); issued {
			cmds = append(cmds, runTranslation(job))
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	logger.Info("App: retrying %d failed translations", len(cmds))
	cmds = append(cmds, m.chat.SpinnerTick())
	return tea.Batch(cmds...)
}

// applySettings persists the settings form and pushes the new preferences
// into the running components.
func (m *Model) applySettings(state *ui.SettingsState) {
	lang := state.GetLanguage()
	tone := state.GetTone()

	m.config.SetLanguage(lang)
	m.config.SetTone(tone)
	m.config.SetTheme(state.GetSelectedTheme())
	m.config.SetNotificationsEnabled(state.GetNotificationsEnabled())
	if err := m.config.Save(); err != nil {
		logger.Warn("App: failed to save config: %v", err)
	}

	if state.ThemeChanged() {
		ui.SetThemeByName(state.GetSelectedTheme())
	}

	if m.user != nil {
		m.user.PreferredLanguage = m.config.GetLanguage()
		m.user.PreferredTone = m.config.GetTone()
	}
	if m.composer != nil {
		m.composer.SetLanguage(m.config.GetLanguage())
	}
	m.chat.SetTone(m.config.GetTone())

	logger.Info("App: settings saved (lang=%s tone=%s theme=%s)",
		lang, tone, state.GetSelectedTheme())
}
