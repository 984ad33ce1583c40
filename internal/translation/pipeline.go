package translation

import (
	"context"

	"github.com/polyglotchat/polyglot/internal/conversation"
	"github.com/polyglotchat/polyglot/internal/logger"
	"github.com/polyglotchat/polyglot/internal/message"
)

// Pipeline drives the per-message translation state machine:
//
//	(none) --Translate--> translating --success--> translated
//	                      translating --failure--> failed
//	                      failed --Translate (retry)--> translating
//
// Translate is the synchronous half: it marks the message translating in the
// store and hands back a Job. The caller runs the Job off the critical path
// (in this app, inside a Bubble Tea command) and feeds the Outcome to Apply.
//
// All Pipeline methods must be called from the single update-loop goroutine;
// only Job.Run happens concurrently, and it touches nothing but its own
// fields and the Translator.
type Pipeline struct {
	store      *conversation.Store
	translator Translator

	// Latest issued request sequence per message id. Apply discards any
	// outcome whose sequence is not the latest, so a slow early request can
	// never clobber the result of a later one.
	seqs map[string]uint64
}

// NewPipeline creates a pipeline over the given store and service.
func NewPipeline(store *conversation.Store, translator Translator) *Pipeline {
	return &Pipeline{
		store:      store,
		translator: translator,
		seqs:       make(map[string]uint64),
	}
}

// Job is one issued translation request, bound to a message id and sequence.
type Job struct {
	MessageID  string
	Seq        uint64
	Request    Request
	translator Translator
}

// Outcome is the completion of a Job, successful or not.
type Outcome struct {
	MessageID string
	Seq       uint64
	Result    message.TranslationResult
	Err       error
}

// Translate requests a translation of the stored message into target.
// It returns false (and no Job) when the message is unknown or a translation
// for it is already in flight; calling Translate on a translating message is
// a deliberate no-op so at most one request per message runs at a time.
// Retrying a failed message is allowed and yields a fresh sequence number.
func (p *Pipeline) Translate(id string, target message.Language) (Job, bool) {
	msg, ok := p.store.Get(id)
	if !ok {
		logger.Debug("Pipeline: translate requested for unknown message %s", id)
		return Job{}, false
	}
	if msg.TranslationStatus == message.TranslationTranslating {
		logger.Debug("Pipeline: translation already in flight for %s", id)
		return Job{}, false
	}

	p.seqs[id]++
	seq := p.seqs[id]

	// Mark translating synchronously so the UI can show the in-flight
	// indicator before the async work starts.
	p.store.Patch(id, func(m message.Message) message.Message {
		m = m.WithTranslationStatus(message.TranslationTranslating)
		m.TargetLanguage = target
		return m
	})

	logger.Debug("Pipeline: issued translation seq=%d for %s -> %s", seq, id, target)
	return Job{
		MessageID: id,
		Seq:       seq,
		Request: Request{
			Text:   msg.Content,
			Source: msg.OriginalLanguage,
			Target: target,
			Tone:   msg.Tone,
		},
		translator: p.translator,
	}, true
}

// Run executes the translation call. Safe to invoke from a worker goroutine.
func (j Job) Run(ctx context.Context) Outcome {
	res, err := j.translator.Translate(ctx, j.Request)
	return Outcome{MessageID: j.MessageID, Seq: j.Seq, Result: res, Err: err}
}

// Apply folds a completed Job back into the store. Stale outcomes (a newer
// request was issued since) are discarded and Apply returns false; the
// latest writer always wins. Unknown message ids are ignored.
func (p *Pipeline) Apply(o Outcome) bool {
	if p.seqs[o.MessageID] != o.Seq {
		logger.Debug("Pipeline: discarding stale outcome seq=%d for %s (latest=%d)",
			o.Seq, o.MessageID, p.seqs[o.MessageID])
		return false
	}

	if o.Err != nil {
		logger.Warn("Pipeline: translation failed for %s: %v", o.MessageID, o.Err)
		return p.store.Patch(o.MessageID, func(m message.Message) message.Message {
			return m.WithTranslationStatus(message.TranslationFailed)
		})
	}

	return p.store.Patch(o.MessageID, func(m message.Message) message.Message {
		return m.WithTranslation(o.Result)
	})
}

// InFlight reports whether any message currently has a translation running.
// The composer uses this as its mid-translation send gate.
func (p *Pipeline) InFlight() bool {
	return p.store.AnyTranslating()
}
