package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/polyglotchat/polyglot/internal/clipboard"
	"github.com/polyglotchat/polyglot/internal/logger"
	"github.com/polyglotchat/polyglot/internal/message"
	"github.com/polyglotchat/polyglot/internal/notification"
	"github.com/polyglotchat/polyglot/internal/translation"
)

// translationDoneMsg carries a completed translation back into the update loop.
type translationDoneMsg struct {
	outcome translation.Outcome
}

// deliveryAdvanceMsg advances an outgoing message's delivery status.
type deliveryAdvanceMsg struct {
	id     string
	status message.DeliveryStatus
}

// replyDueMsg fires when the peer's simulated reply to a message is due.
type replyDueMsg struct {
	to string
}

// connectivityChangedMsg propagates monitor state changes.
type connectivityChangedMsg struct {
	online bool
}

// copiedMsg reports the result of a clipboard copy.
type copiedMsg struct {
	err error
}

// runTranslation executes a translation job off the update loop and feeds
// the outcome back as a message.
func runTranslation(job translation.Job) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), translationTimeout)
		defer cancel()
		return translationDoneMsg{outcome: job.Run(ctx)}
	}
}

// scheduleDelivery emits a delivery advance for id after d.
func scheduleDelivery(id string, status message.DeliveryStatus, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return deliveryAdvanceMsg{id: id, status: status}
	})
}

// scheduleReply emits the peer's reply trigger after d.
func scheduleReply(id string, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return replyDueMsg{to: id}
	})
}

// listenConnectivity waits for the next monitor state change. The handler
// re-arms it so changes keep flowing for the lifetime of the program.
func (m *Model) listenConnectivity() tea.Cmd {
	ch := m.connCh
	return func() tea.Msg {
		online, ok := <-ch
		if !ok {
			return nil
		}
		return connectivityChangedMsg{online: online}
	}
}

// notifyIncoming raises a desktop notification for an incoming message.
func notifyIncoming(contactName, body string) tea.Cmd {
	return func() tea.Msg {
		if err := notification.IncomingMessage(contactName, body); err != nil {
			logger.Warn("App: notification failed: %v", err)
		}
		return nil
	}
}

// copyToClipboard writes text to the system clipboard.
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteText(text)}
	}
}
