package transport

import (
	"testing"

	"github.com/polyglotchat/polyglot/internal/message"
)

func TestReplyIsIncomingAndDelivered(t *testing.T) {
	p := NewPeer(DefaultContact)
	out := message.NewOutgoing("Hello", message.ToneStandard, "alice", DefaultContact.ID, message.LangEnglish)

	reply := p.Reply(out)

	if reply.SenderID != DefaultContact.ID {
		t.Errorf("reply sender = %q, want %q", reply.SenderID, DefaultContact.ID)
	}
	if reply.ReceiverID != "alice" {
		t.Errorf("reply receiver = %q, want alice", reply.ReceiverID)
	}
	if reply.DeliveryStatus != message.DeliveryDelivered {
		t.Errorf("reply status = %q, want delivered", reply.DeliveryStatus)
	}
	if reply.OriginalLanguage != DefaultContact.Language {
		t.Errorf("reply language = %q, want %q", reply.OriginalLanguage, DefaultContact.Language)
	}
	if reply.Content == "" {
		t.Error("reply has empty content")
	}
}

func TestReplyAssignsFreshIDs(t *testing.T) {
	p := NewPeer(DefaultContact)
	out := message.NewOutgoing("Hello", message.ToneStandard, "alice", DefaultContact.ID, message.LangEnglish)

	a := p.Reply(out)
	b := p.Reply(out)
	if a.ID == b.ID {
		t.Errorf("two replies share id %q", a.ID)
	}
}

func TestDefaultTimings(t *testing.T) {
	p := NewPeer(DefaultContact)
	if p.DeliveredDelay <= 0 || p.ReadDelay <= p.DeliveredDelay || p.ReplyDelay <= 0 {
		t.Errorf("implausible timings: delivered=%v read=%v reply=%v",
			p.DeliveredDelay, p.ReadDelay, p.ReplyDelay)
	}
}
