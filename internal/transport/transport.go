// Package transport simulates the delivery side of the conversation: the
// acknowledgement schedule for outgoing messages and a canned remote peer
// who replies in their own language. It stands in for the real-time
// transport the production backend provides; everything it does flows back
// into the conversation store through Patch/Append, never through retained
// message copies.
package transport

import (
	"math/rand"
	"time"

	"github.com/polyglotchat/polyglot/internal/message"
)

// Ack schedule defaults. Delivered and read trail the sent transition the
// way a remote device would report them.
const (
	DefaultDeliveredDelay = 900 * time.Millisecond
	DefaultReadDelay      = 2200 * time.Millisecond
	DefaultReplyDelay     = 3 * time.Second
)

// Contact describes the remote participant of the conversation.
type Contact struct {
	ID       string
	Name     string
	Language message.Language
	Online   bool
}

// DefaultContact is the demo conversation partner.
var DefaultContact = Contact{
	ID:       "elena",
	Name:     "Elena",
	Language: message.LangFrench,
	Online:   true,
}

// replies are the peer's canned responses, cycled pseudo-randomly.
var replies = []string{
	"Salut ! Comment se passe ton projet ?",
	"Oui, ça marche parfaitement !",
	"Cela semble incroyable !",
	"Je travaille sur l'application",
	"Qu'est-ce que tu fais ce week-end ?",
	"À bientôt !",
}

// Peer simulates the remote party and the delivery acknowledgement timings.
type Peer struct {
	Contact        Contact
	DeliveredDelay time.Duration
	ReadDelay      time.Duration
	ReplyDelay     time.Duration

	rng *rand.Rand
}

// NewPeer creates a peer for the given contact with default timings.
func NewPeer(contact Contact) *Peer {
	return &Peer{
		Contact:        contact,
		DeliveredDelay: DefaultDeliveredDelay,
		ReadDelay:      DefaultReadDelay,
		ReplyDelay:     DefaultReplyDelay,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Reply produces the peer's incoming response to an outgoing message,
// already marked delivered the way the inbound collaborator hands messages
// over.
func (p *Peer) Reply(to message.Message) message.Message {
	text := replies[p.rng.Intn(len(replies))]
	return message.NewIncoming(text, p.Contact.ID, to.SenderID, p.Contact.Language)
}
