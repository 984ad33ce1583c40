package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/polyglotchat/polyglot/internal/errors"
	"github.com/polyglotchat/polyglot/internal/message"
	"github.com/polyglotchat/polyglot/internal/ui"
)

// TestHappyPathConversation walks a full exchange: send, translate, delivery
// acknowledgements, the peer's reply, and the reply's translation.
func TestHappyPathConversation(t *testing.T) {
	m := newTestModel(t)

	sent := submit(t, m, "Hello")

	// Translation lands; the message goes out.
	m.Update(successOutcome(sent.ID, 1, "Bonjour", message.LangFrench))
	got, _ := m.store.Get(sent.ID)
	if got.DeliveryStatus != message.DeliverySent || !got.HasTranslation() {
		t.Fatalf("After translation: status=%q translated=%v", got.DeliveryStatus, got.HasTranslation())
	}

	// Acks trickle in.
	m.Update(deliveryAdvanceMsg{id: sent.ID, status: message.DeliveryDelivered})
	m.Update(deliveryAdvanceMsg{id: sent.ID, status: message.DeliveryRead})
	got, _ = m.store.Get(sent.ID)
	if got.DeliveryStatus != message.DeliveryRead {
		t.Fatalf("After acks: status=%q", got.DeliveryStatus)
	}

	// The peer answers in their own language.
	m.Update(replyDueMsg{to: sent.ID})
	reply := lastMessage(t, m)
	if reply.SenderID != m.contact.ID {
		t.Fatalf("Reply sender = %q", reply.SenderID)
	}

	// Its translation arrives for the local reader.
	m.Update(successOutcome(reply.ID, 1, "Hi! How is your project going?", message.LangEnglish))
	got, _ = m.store.Get(reply.ID)
	if !got.HasTranslation() {
		t.Fatal("Reply should end up translated")
	}

	// Nothing in flight, nothing failed, no modal.
	if m.pipeline.InFlight() {
		t.Error("No translation should remain in flight")
	}
	if len(m.store.FailedTranslations()) != 0 {
		t.Error("No translation should be failed")
	}
	if m.modal.IsVisible() {
		t.Error("No modal should be showing")
	}
}

// TestOutageAndRecovery drops the connection mid-flight, sees the failure
// surface, then retries through the modal once sending works again.
func TestOutageAndRecovery(t *testing.T) {
	m := newTestModel(t)

	sent := submit(t, m, "Are you there?")

	// Connection drops before the translation answers.
	m.monitor.Set(false)
	m.Update(connectivityChangedMsg{online: false})
	m.Update(failureOutcome(sent.ID, 1, errors.TranslationUnavailable()))

	state, ok := m.modal.State.(*ui.TranslationErrorState)
	if !ok {
		t.Fatal("Offline failure should raise the error modal")
	}
	if !state.ShouldRetry() {
		t.Fatal("Retry should be the default choice")
	}

	// While the modal is up and the network down, the composer stays gated.
	if got := m.store.Len(); got != 3 {
		t.Fatalf("Unexpected store size %d", got)
	}

	// Connection returns, the modal clears on its own.
	m.monitor.Set(true)
	m.Update(connectivityChangedMsg{online: true})
	if m.modal.IsVisible() {
		t.Fatal("Modal should clear when back online")
	}

	// Manual retry succeeds this time.
	m.Update(tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	m.Update(successOutcome(sent.ID, 2, "Tu es là ?", message.LangFrench))

	got, _ := m.store.Get(sent.ID)
	if got.TranslatedContent != "Tu es là ?" {
		t.Fatalf("Retry translation not applied, got %q", got.TranslatedContent)
	}
	if got.DeliveryStatus != message.DeliverySent {
		t.Errorf("Message should have gone out after the retry, got %q", got.DeliveryStatus)
	}
	if len(m.store.FailedTranslations()) != 0 {
		t.Error("Failure set should be empty after recovery")
	}
}

// TestThreadRegroupsAfterEveryChange confirms the rendered grouping tracks
// the store through append and patch.
func TestThreadRegroupsAfterEveryChange(t *testing.T) {
	m := newTestModel(t)

	sent := submit(t, m, "Hello")
	if !m.chat.AnyTranslating() {
		t.Fatal("Thread should show the in-flight indicator right after send")
	}

	m.Update(successOutcome(sent.ID, 1, "Bonjour", message.LangFrench))
	if m.chat.AnyTranslating() {
		t.Error("Thread should drop the indicator once the translation lands")
	}
}
