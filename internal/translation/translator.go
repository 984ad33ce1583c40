// Package translation turns message content into translated content in a
// target language, honoring the message tone. The Translator interface is
// the boundary with the translation service; the Pipeline owns the
// translation state machine and the last-writer-wins ordering guard.
package translation

import (
	"context"

	"github.com/polyglotchat/polyglot/internal/message"
)

// Request carries one translation call to the service.
type Request struct {
	Text   string
	Source message.Language
	Target message.Language
	Tone   message.Tone
}

// Translator is the translation service collaborator. Latency and failure
// modes are opaque to the pipeline; a real network-backed service can be
// substituted without touching the state machine.
type Translator interface {
	Translate(ctx context.Context, req Request) (message.TranslationResult, error)
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(ctx context.Context, req Request) (message.TranslationResult, error)

func (f TranslatorFunc) Translate(ctx context.Context, req Request) (message.TranslationResult, error) {
	return f(ctx, req)
}
