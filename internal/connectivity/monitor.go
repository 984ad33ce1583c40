// Package connectivity exposes the transport-availability signal consumed by
// the composer's send gate and the error-surfacing logic.
package connectivity

import (
	"sync"

	"github.com/polyglotchat/polyglot/internal/logger"
)

// Monitor holds the current boolean connectivity state and fans out change
// notifications. Set may be called from any goroutine (a probe ticker, a
// demo toggle); subscribers receive changes on their channels without
// blocking the setter.
type Monitor struct {
	mu     sync.Mutex
	online bool
	subs   []chan bool
}

// NewMonitor creates a monitor with the given initial state.
func NewMonitor(online bool) *Monitor {
	return &Monitor{online: online}
}

// Online returns the current connectivity state.
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Set updates the state and notifies subscribers on change. Setting the
// current value is a no-op.
func (m *Monitor) Set(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	subs := make([]chan bool, len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	logger.Info("Connectivity: %v", online)
	for _, ch := range subs {
		// Non-blocking: a slow subscriber misses intermediate flips but
		// re-reads Online() when it catches up.
		select {
		case ch <- online:
		default:
		}
	}
}

// Toggle flips the state and returns the new value.
func (m *Monitor) Toggle() bool {
	next := !m.Online()
	m.Set(next)
	return next
}

// Subscribe returns a channel receiving each state change. The channel is
// buffered by one so the latest transition is never lost.
func (m *Monitor) Subscribe() <-chan bool {
	ch := make(chan bool, 1)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch
}
