// Package conversation holds the authoritative ordered message list for one
// two-party thread and derives the date-grouped view used for rendering.
//
// The store is the single mutable shared resource of the core. All calls
// must come from the one update-loop goroutine (async completions re-enter
// through it), so the store carries no lock; the correctness requirement is
// the logical one: always re-read through Patch rather than holding a stale
// copy of a message across a suspension point.
package conversation

import (
	"sort"
	"time"

	"github.com/polyglotchat/polyglot/internal/logger"
	"github.com/polyglotchat/polyglot/internal/message"
)

// EventKind discriminates store change events.
type EventKind int

const (
	// EventAppend fires after a message is inserted.
	EventAppend EventKind = iota
	// EventPatch fires after a message is updated in place.
	EventPatch
)

// Event describes one store mutation.
type Event struct {
	Kind      EventKind
	MessageID string
}

// Store is the ordered collection of messages for one conversation.
type Store struct {
	messages []message.Message
	index    map[string]int // id -> position in messages
	nextSeq  uint64
	subs     []func(Event)
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Subscribe registers fn to be called after every successful mutation.
// Consumers recompute derived views on notification instead of caching a
// grouping across a patch.
func (s *Store) Subscribe(fn func(Event)) {
	s.subs = append(s.subs, fn)
}

func (s *Store) publish(ev Event) {
	for _, fn := range s.subs {
		fn(ev)
	}
}

// Append inserts the message preserving timestamp order, with insertion
// order breaking ties. For outgoing messages this is the optimistic insert
// performed before any acknowledgement.
func (s *Store) Append(msg message.Message) {
	msg.Seq = s.nextSeq
	s.nextSeq++

	// Most appends arrive in order; walk back from the tail only when the
	// new timestamp is older than the last message.
	pos := len(s.messages)
	for pos > 0 && s.messages[pos-1].Timestamp.After(msg.Timestamp) {
		pos--
	}

	s.messages = append(s.messages, message.Message{})
	copy(s.messages[pos+1:], s.messages[pos:])
	s.messages[pos] = msg
	s.reindex(pos)

	logger.Debug("Store: appended %s at %d (status=%s)", msg.ID, pos, msg.DeliveryStatus)
	s.publish(Event{Kind: EventAppend, MessageID: msg.ID})
}

func (s *Store) reindex(from int) {
	for i := from; i < len(s.messages); i++ {
		s.index[s.messages[i].ID] = i
	}
}

// Get returns the current copy of the message with the given id.
func (s *Store) Get(id string) (message.Message, bool) {
	i, ok := s.index[id]
	if !ok {
		return message.Message{}, false
	}
	return s.messages[i], true
}

// Patch applies updater to the message with the given id and stores the
// result. Unknown ids are a silent no-op (the message may have been evicted
// by a retention policy outside this core); Patch reports whether it
// applied.
func (s *Store) Patch(id string, updater func(message.Message) message.Message) bool {
	i, ok := s.index[id]
	if !ok {
		logger.Debug("Store: patch for unknown message %s ignored", id)
		return false
	}

	updated := updater(s.messages[i])
	// Identity and ordering fields are not patchable.
	updated.ID = s.messages[i].ID
	updated.Timestamp = s.messages[i].Timestamp
	updated.Seq = s.messages[i].Seq
	s.messages[i] = updated

	s.publish(Event{Kind: EventPatch, MessageID: id})
	return true
}

// Len returns the number of messages in the store.
func (s *Store) Len() int {
	return len(s.messages)
}

// Messages returns the ordered messages. The returned slice is a copy;
// callers cannot mutate store state through it.
func (s *Store) Messages() []message.Message {
	out := make([]message.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// AnyTranslating reports whether any message has a translation in flight.
func (s *Store) AnyTranslating() bool {
	for _, m := range s.messages {
		if m.TranslationStatus == message.TranslationTranslating {
			return true
		}
	}
	return false
}

// FailedTranslations returns the ids of messages whose translation failed,
// in conversation order. Feeds the error-surfacing correlation and the
// retry-all action.
func (s *Store) FailedTranslations() []string {
	var ids []string
	for _, m := range s.messages {
		if m.TranslationStatus == message.TranslationFailed {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

// DayGroup is one calendar date's worth of messages, in timestamp order.
type DayGroup struct {
	Date     time.Time // midnight in the grouping location
	Messages []message.Message
}

// GroupByDate buckets the conversation by calendar date in loc, preserving
// global timestamp order within each bucket. The grouping is recomputed on
// every call; it is never cached inside the store.
func (s *Store) GroupByDate(loc *time.Location) []DayGroup {
	if loc == nil {
		loc = time.Local
	}

	byDay := make(map[time.Time][]message.Message)
	for _, m := range s.messages {
		y, mo, d := m.Timestamp.In(loc).Date()
		day := time.Date(y, mo, d, 0, 0, 0, 0, loc)
		byDay[day] = append(byDay[day], m)
	}

	groups := make([]DayGroup, 0, len(byDay))
	for day, msgs := range byDay {
		groups = append(groups, DayGroup{Date: day, Messages: msgs})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date.Before(groups[j].Date)
	})
	return groups
}

// Days returns an iterator over the date groups, restartable by calling
// Days again after any mutation.
func (s *Store) Days(loc *time.Location) func(yield func(DayGroup) bool) {
	groups := s.GroupByDate(loc)
	return func(yield func(DayGroup) bool) {
		for _, g := range groups {
			if !yield(g) {
				return
			}
		}
	}
}
