package composer

import (
	"testing"

	"github.com/polyglotchat/polyglot/internal/conversation"
	"github.com/polyglotchat/polyglot/internal/message"
)

func TestCanSend(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		connected   bool
		translating bool
		want        bool
	}{
		{"empty text", "", true, false, false},
		{"whitespace only", "   \n\t", true, false, false},
		{"disconnected", "hi", false, false, false},
		{"mid translation", "hi", true, true, false},
		{"all clear", "hi", true, false, true},
		{"disconnected and translating", "hi", false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanSend(tt.text, tt.connected, tt.translating); got != tt.want {
				t.Errorf("CanSend(%q, %v, %v) = %v, want %v",
					tt.text, tt.connected, tt.translating, got, tt.want)
			}
		})
	}
}

func TestSubmitAppendsOptimistically(t *testing.T) {
	store := conversation.NewStore()
	c := NewController(store, "alice", "bob", message.LangEnglish)

	msg, ok := c.Submit("Hello", message.ToneStandard, true, false)
	if !ok {
		t.Fatal("Submit refused a valid send")
	}
	if store.Len() != 1 {
		t.Fatalf("store has %d messages, want 1", store.Len())
	}
	got, found := store.Get(msg.ID)
	if !found {
		t.Fatal("sent message not in store")
	}
	if got.DeliveryStatus != message.DeliverySending {
		t.Errorf("status = %q, want sending (optimistic insert)", got.DeliveryStatus)
	}
	if got.SenderID != "alice" || got.ReceiverID != "bob" {
		t.Errorf("participants = %s/%s", got.SenderID, got.ReceiverID)
	}
	if got.OriginalLanguage != message.LangEnglish {
		t.Errorf("language = %q", got.OriginalLanguage)
	}
}

func TestSubmitTrimsContent(t *testing.T) {
	store := conversation.NewStore()
	c := NewController(store, "alice", "bob", message.LangEnglish)

	msg, ok := c.Submit("  Hello \n", message.ToneCasual, true, false)
	if !ok {
		t.Fatal("Submit refused")
	}
	if msg.Content != "Hello" {
		t.Errorf("content = %q, want trimmed", msg.Content)
	}
}

func TestSubmitGatedIsSilentNoop(t *testing.T) {
	store := conversation.NewStore()
	c := NewController(store, "alice", "bob", message.LangEnglish)

	cases := []struct {
		name        string
		text        string
		connected   bool
		translating bool
	}{
		{"blank", "  ", true, false},
		{"offline", "hi", false, false},
		{"translating", "hi", true, true},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := c.Submit(tt.text, message.ToneStandard, tt.connected, tt.translating); ok {
				t.Error("gated Submit reported success")
			}
		})
	}
	if store.Len() != 0 {
		t.Errorf("store gained %d messages from gated submits", store.Len())
	}
}

func TestSubmitInvalidToneFallsBackToStandard(t *testing.T) {
	store := conversation.NewStore()
	c := NewController(store, "alice", "bob", message.LangEnglish)

	msg, ok := c.Submit("hi", message.Tone("sarcastic"), true, false)
	if !ok {
		t.Fatal("Submit refused")
	}
	if msg.Tone != message.ToneStandard {
		t.Errorf("tone = %q, want standard fallback", msg.Tone)
	}
}
