// Package composer gates and constructs outgoing messages. Validation
// failures here are not errors: a gated submit is simply inert, modeling a
// disabled send affordance.
package composer

import (
	"strings"

	"github.com/polyglotchat/polyglot/internal/conversation"
	"github.com/polyglotchat/polyglot/internal/logger"
	"github.com/polyglotchat/polyglot/internal/message"
)

// CanSend reports whether a send is currently allowed: non-blank text, a
// live connection, and no translation in flight. Pure; re-evaluated on every
// keystroke and state change.
func CanSend(text string, connected, translating bool) bool {
	return strings.TrimSpace(text) != "" && connected && !translating
}

// Controller builds outgoing messages for one conversation.
type Controller struct {
	store      *conversation.Store
	senderID   string
	receiverID string
	language   message.Language
}

// NewController creates a controller for the given participants. language is
// the sender's composing language.
func NewController(store *conversation.Store, senderID, receiverID string, language message.Language) *Controller {
	return &Controller{
		store:      store,
		senderID:   senderID,
		receiverID: receiverID,
		language:   language,
	}
}

// SetLanguage updates the composing language (settings change).
func (c *Controller) SetLanguage(lang message.Language) {
	c.language = lang
}

// Submit validates text against the gate and, when allowed, constructs the
// outgoing message and optimistically appends it to the store. The returned
// bool reports whether a message was sent; callers clear the input buffer
// and launch the translation pipeline only on true.
func (c *Controller) Submit(text string, tone message.Tone, connected, translating bool) (message.Message, bool) {
	if !CanSend(text, connected, translating) {
		logger.Debug("Composer: submit gated (connected=%v, translating=%v, blank=%v)",
			connected, translating, strings.TrimSpace(text) == "")
		return message.Message{}, false
	}

	if !tone.Valid() {
		tone = message.ToneStandard
	}

	msg := message.NewOutgoing(strings.TrimSpace(text), tone, c.senderID, c.receiverID, c.language)
	c.store.Append(msg)
	logger.Debug("Composer: sent %s (%d chars, tone=%s)", msg.ID, len(msg.Content), tone)
	return msg, true
}
