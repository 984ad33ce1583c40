// Package message defines the chat message entity and its two independent
// status axes: delivery and translation. Messages are values; every state
// change goes through a With* helper that returns an updated copy, so stale
// references can never mutate shared state.
package message

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus is the lifecycle stage of a message's transport to its
// recipient. It advances monotonically (sending → sent → delivered → read)
// with failed as the only backward escape.
type DeliveryStatus string

const (
	DeliverySending   DeliveryStatus = "sending"
	DeliverySent      DeliveryStatus = "sent"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryRead      DeliveryStatus = "read"
	DeliveryFailed    DeliveryStatus = "failed"
)

// deliveryRank orders the normal delivery progression for monotonicity checks.
var deliveryRank = map[DeliveryStatus]int{
	DeliverySending:   0,
	DeliverySent:      1,
	DeliveryDelivered: 2,
	DeliveryRead:      3,
}

// Valid reports whether s is a known delivery status.
func (s DeliveryStatus) Valid() bool {
	if s == DeliveryFailed {
		return true
	}
	_, ok := deliveryRank[s]
	return ok
}

// CanAdvanceTo reports whether moving from s to next is a legal transition.
// Any status may fail; otherwise transitions only move forward.
func (s DeliveryStatus) CanAdvanceTo(next DeliveryStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if next == DeliveryFailed {
		return true
	}
	if s == DeliveryFailed {
		return false
	}
	return deliveryRank[next] > deliveryRank[s]
}

// TranslationStatus is the lifecycle stage of the asynchronous translation of
// a message's content. The zero value means no translation was requested.
type TranslationStatus string

const (
	TranslationNone        TranslationStatus = ""
	TranslationTranslating TranslationStatus = "translating"
	TranslationTranslated  TranslationStatus = "translated"
	TranslationFailed      TranslationStatus = "failed"
)

// Message is one chat message in a two-party conversation. Identity fields
// (ID, participants, content, language, tone, timestamp) never change after
// creation; status fields change only through the With* helpers.
type Message struct {
	ID               string
	SenderID         string
	ReceiverID       string
	Content          string
	OriginalLanguage Language
	Tone             Tone
	Timestamp        time.Time
	Seq              uint64 // insertion-order tiebreak for equal timestamps

	DeliveryStatus DeliveryStatus

	TranslatedContent string
	TargetLanguage    Language
	TranslationStatus TranslationStatus
	Confidence        float64

	ReadAt time.Time
}

// TranslationResult is the success payload produced by a translation service.
type TranslationResult struct {
	TranslatedText string
	Source         Language
	Target         Language
	Confidence     float64
}

// NewOutgoing constructs an outgoing message in the sending state with a
// fresh client-generated id. Input validation (empty content, gating) is the
// composer's job, not this package's.
func NewOutgoing(content string, tone Tone, senderID, receiverID string, lang Language) Message {
	return Message{
		ID:               uuid.NewString(),
		SenderID:         senderID,
		ReceiverID:       receiverID,
		Content:          content,
		OriginalLanguage: lang,
		Tone:             tone,
		Timestamp:        time.Now(),
		DeliveryStatus:   DeliverySending,
	}
}

// NewIncoming constructs a message received from the remote party. Inbound
// messages arrive already delivered.
func NewIncoming(content string, senderID, receiverID string, lang Language) Message {
	return Message{
		ID:               uuid.NewString(),
		SenderID:         senderID,
		ReceiverID:       receiverID,
		Content:          content,
		OriginalLanguage: lang,
		Tone:             ToneStandard,
		Timestamp:        time.Now(),
		DeliveryStatus:   DeliveryDelivered,
	}
}

// WithDeliveryStatus returns a copy of m with the delivery status updated.
// Illegal transitions (going backward) leave the message unchanged.
func (m Message) WithDeliveryStatus(status DeliveryStatus) Message {
	if !m.DeliveryStatus.CanAdvanceTo(status) {
		return m
	}
	m.DeliveryStatus = status
	if status == DeliveryRead && m.ReadAt.IsZero() {
		m.ReadAt = time.Now()
	}
	return m
}

// WithTranslation returns a copy of m carrying a successful translation
// result. Applying the same result twice is idempotent.
func (m Message) WithTranslation(res TranslationResult) Message {
	m.TranslatedContent = res.TranslatedText
	m.TargetLanguage = res.Target
	m.TranslationStatus = TranslationTranslated
	m.Confidence = res.Confidence
	return m
}

// WithTranslationStatus returns a copy of m with only the translation status
// changed. Used to mark a message translating before the async call, or
// failed after it.
func (m Message) WithTranslationStatus(status TranslationStatus) Message {
	m.TranslationStatus = status
	return m
}

// HasTranslation reports whether a translation affordance should be shown:
// the translation succeeded and actually differs from the original text.
// Identity translations (same language) render as plain messages.
func (m Message) HasTranslation() bool {
	return m.TranslationStatus == TranslationTranslated &&
		m.TranslatedContent != "" &&
		m.TranslatedContent != m.Content
}

// IsOutgoingFrom reports whether m was sent by the given user.
func (m Message) IsOutgoingFrom(userID string) bool {
	return m.SenderID == userID
}
