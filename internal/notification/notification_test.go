package notification

import (
	"errors"
	"strings"
	"testing"
)

// mockNotify records calls to the notification function
type mockNotify struct {
	calls []struct {
		title   string
		message string
	}
	err error
}

func (m *mockNotify) fn(title, message string, icon any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
	}{title, message})
	return m.err
}

func withMock(t *testing.T, m *mockNotify) {
	t.Helper()
	orig := notify
	notify = m.fn
	t.Cleanup(func() { notify = orig })
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{
			name:        "successful notification",
			title:       "Test Title",
			message:     "Test Message",
			mockErr:     nil,
			expectError: false,
		},
		{
			name:        "notification error",
			title:       "Test Title",
			message:     "Test Message",
			mockErr:     errors.New("notification failed"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockNotify{err: tt.mockErr}
			withMock(t, m)

			err := Send(tt.title, tt.message)
			if (err != nil) != tt.expectError {
				t.Errorf("Send err = %v, expectError %v", err, tt.expectError)
			}
			if len(m.calls) != 1 {
				t.Fatalf("notify called %d times, want 1", len(m.calls))
			}
			if m.calls[0].title != tt.title || m.calls[0].message != tt.message {
				t.Errorf("notify called with %+v", m.calls[0])
			}
		})
	}
}

func TestIncomingMessage(t *testing.T) {
	m := &mockNotify{}
	withMock(t, m)

	if err := IncomingMessage("Elena", "Salut !"); err != nil {
		t.Fatalf("IncomingMessage: %v", err)
	}
	if !strings.Contains(m.calls[0].title, "Elena") {
		t.Errorf("title = %q, want contact name", m.calls[0].title)
	}
}

func TestIncomingMessageTruncatesBody(t *testing.T) {
	m := &mockNotify{}
	withMock(t, m)

	long := strings.Repeat("a", 500)
	if err := IncomingMessage("Elena", long); err != nil {
		t.Fatalf("IncomingMessage: %v", err)
	}
	if len(m.calls[0].message) > 100 {
		t.Errorf("body not truncated: %d bytes", len(m.calls[0].message))
	}
}
