package translation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/polyglotchat/polyglot/internal/message"
)

func instant() *Simulated {
	s := NewSimulated()
	s.Latency = 0
	return s
}

func TestSimulatedPhrasebookHit(t *testing.T) {
	res, err := instant().Translate(context.Background(), Request{
		Text:   "Hello",
		Source: message.LangEnglish,
		Target: message.LangFrench,
		Tone:   message.ToneStandard,
	})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if res.TranslatedText != "Bonjour" {
		t.Errorf("translated = %q, want Bonjour", res.TranslatedText)
	}
	if res.Confidence != 0.95 {
		t.Errorf("confidence = %v, want 0.95", res.Confidence)
	}
}

func TestSimulatedSameLanguageIdentity(t *testing.T) {
	res, err := instant().Translate(context.Background(), Request{
		Text:   "Hello",
		Source: message.LangEnglish,
		Target: message.LangEnglish,
	})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if res.TranslatedText != "Hello" || res.Confidence != 1.0 {
		t.Errorf("identity translation = %q conf=%v", res.TranslatedText, res.Confidence)
	}
}

func TestSimulatedFallbackTagsLanguage(t *testing.T) {
	res, err := instant().Translate(context.Background(), Request{
		Text:   "completely novel sentence",
		Source: message.LangEnglish,
		Target: message.LangFrench,
	})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if !strings.HasPrefix(res.TranslatedText, "[fr] ") {
		t.Errorf("fallback = %q, want [fr] prefix", res.TranslatedText)
	}
}

func TestSimulatedFailureInjection(t *testing.T) {
	s := instant()
	s.Fail = errors.New("offline")

	_, err := s.Translate(context.Background(), Request{
		Text: "Hello", Source: message.LangEnglish, Target: message.LangFrench,
	})
	if err == nil {
		t.Fatal("expected injected failure")
	}
}

func TestSimulatedContextCancellation(t *testing.T) {
	s := NewSimulated()
	s.Latency = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Translate(ctx, Request{
		Text: "Hello", Source: message.LangEnglish, Target: message.LangFrench,
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
