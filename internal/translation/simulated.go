package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/polyglotchat/polyglot/internal/message"
)

// DefaultLatency is the simulated network/compute delay per translation call.
const DefaultLatency = 600 * time.Millisecond

// googleConfidence mirrors the fixed confidence reported when the backing
// translator does not provide real scores.
const googleConfidence = 0.95

// phrasebook holds canned translations for the demo conversation, keyed by
// target language then lowercased source text.
var phrasebook = map[message.Language]map[string]string{
	message.LangFrench: {
		"hello":                  "Bonjour",
		"hi":                     "Salut",
		"how are you?":           "Comment ça va ?",
		"that sounds amazing!":   "Cela semble incroyable !",
		"yes, it works great!":   "Oui, ça marche parfaitement !",
		"see you soon":           "À bientôt",
		"thank you":              "Merci",
		"good morning":           "Bonjour",
		"what are you up to?":    "Qu'est-ce que tu fais ?",
		"i'm working on the app": "Je travaille sur l'application",
	},
	message.LangEnglish: {
		"salut":                             "Hi",
		"bonjour":                           "Hello",
		"comment ça va ?":                   "How are you?",
		"merci":                             "Thank you",
		"à bientôt":                         "See you soon",
		"oui, ça marche parfaitement !":     "Yes, it works great!",
		"comment se passe ton projet ?":     "How is your project going?",
		"je travaille sur l'application":    "I'm working on the app",
		"cela semble incroyable !":          "That sounds amazing!",
		"qu'est-ce que tu fais ce week-end": "What are you doing this weekend",
	},
	message.LangSpanish: {
		"hello":        "Hola",
		"thank you":    "Gracias",
		"see you soon": "Hasta pronto",
	},
}

// tonePrefixes is the hook for tone-aware phrasing adjustments. All entries
// are currently empty; tone shaping happens upstream of the phrasebook.
var tonePrefixes = map[message.Tone]string{
	message.ToneCasual:   "",
	message.ToneStandard: "",
	message.ToneFormal:   "",
}

// Simulated is a Translator that answers from a small phrasebook after a
// fixed delay. It stands in for a real MT service; the pipeline cannot tell
// the difference.
type Simulated struct {
	Latency time.Duration

	// Fail, when set, makes every call report the given error. Used by
	// tests and the connectivity-outage demo path.
	Fail error
}

// NewSimulated returns a Simulated translator with the default latency.
func NewSimulated() *Simulated {
	return &Simulated{Latency: DefaultLatency}
}

// Translate implements Translator. Same-language requests return the input
// unchanged with full confidence; unknown phrases get a tagged fallback so
// the UI still has something to render.
func (s *Simulated) Translate(ctx context.Context, req Request) (message.TranslationResult, error) {
	delay := s.Latency
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return message.TranslationResult{}, ctx.Err()
		}
	}

	if s.Fail != nil {
		return message.TranslationResult{}, s.Fail
	}

	if req.Source == req.Target {
		return message.TranslationResult{
			TranslatedText: req.Text,
			Source:         req.Source,
			Target:         req.Target,
			Confidence:     1.0,
		}, nil
	}

	translated := s.lookup(req)
	return message.TranslationResult{
		TranslatedText: translated,
		Source:         req.Source,
		Target:         req.Target,
		Confidence:     googleConfidence,
	}, nil
}

func (s *Simulated) lookup(req Request) string {
	if byPhrase, ok := phrasebook[req.Target]; ok {
		if hit, ok := byPhrase[strings.ToLower(strings.TrimSpace(req.Text))]; ok {
			return tonePrefixes[req.Tone] + hit
		}
	}
	// Fallback keeps the original text visible with a language tag, the way
	// the source app rendered untranslatable content.
	return fmt.Sprintf("[%s] %s", req.Target, req.Text)
}
