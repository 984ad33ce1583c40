package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/polyglotchat/polyglot/internal/auth"
	"github.com/polyglotchat/polyglot/internal/composer"
	"github.com/polyglotchat/polyglot/internal/config"
	"github.com/polyglotchat/polyglot/internal/connectivity"
	"github.com/polyglotchat/polyglot/internal/conversation"
	"github.com/polyglotchat/polyglot/internal/errors"
	"github.com/polyglotchat/polyglot/internal/logger"
	"github.com/polyglotchat/polyglot/internal/message"
	"github.com/polyglotchat/polyglot/internal/translation"
	"github.com/polyglotchat/polyglot/internal/transport"
	"github.com/polyglotchat/polyglot/internal/ui"
)

// Screen identifies which top-level screen is showing.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenSignup
	ScreenReset
	ScreenChat
)

// String returns a human-readable name for the screen
func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "Login"
	case ScreenSignup:
		return "Signup"
	case ScreenReset:
		return "Reset"
	case ScreenChat:
		return "Chat"
	default:
		return "Unknown"
	}
}

// translationTimeout bounds a single translation call.
const translationTimeout = 10 * time.Second

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)

	header *ui.Header
	footer *ui.Footer
	chat   *ui.Chat
	modal  *ui.Modal
	login  *ui.LoginScreen
	signup *ui.SignupScreen
	reset  *ui.ResetScreen

	width  int
	height int
	screen Screen

	authSvc auth.Service
	user    *auth.User
	contact transport.Contact
	peer    *transport.Peer

	store    *conversation.Store
	pipeline *translation.Pipeline
	composer *composer.Controller
	monitor  *connectivity.Monitor
	connCh   <-chan bool

	// errorDismissed suppresses the offline-failure modal until the next
	// failed translation arrives.
	errorDismissed bool
}

// New creates a new app model
func New(cfg *config.Config, version string) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	contact := transport.DefaultContact
	store := conversation.NewStore()
	monitor := connectivity.NewMonitor(true)

	m := &Model{
		config:  cfg,
		version: version,
		header:  ui.NewHeader(),
		footer:  ui.NewFooter(),
		chat:    ui.NewChat(),
		modal:   ui.NewModal(),
		login:   ui.NewLoginScreen(cfg.GetLastEmail()),
		signup:  ui.NewSignupScreen(),
		reset:   ui.NewResetScreen(cfg.GetLastEmail()),
		screen:  ScreenLogin,
		authSvc: auth.NewStub(),
		contact: contact,
		peer:    transport.NewPeer(contact),
		store:   store,
		monitor: monitor,
		connCh:  monitor.Subscribe(),
	}

	// The translator refuses work while the connection is down; everything
	// else is the canned service.
	simulated := translation.NewSimulated()
	m.pipeline = translation.NewPipeline(store, translation.TranslatorFunc(
		func(ctx context.Context, req translation.Request) (message.TranslationResult, error) {
			if !monitor.Online() {
				return message.TranslationResult{}, errors.TranslationUnavailable()
			}
			return simulated.Translate(ctx, req)
		}))

	store.Subscribe(func(conversation.Event) {
		m.refreshThread()
	})

	m.header.SetContact(contact.Name)
	m.header.SetOnline(contact.Online)
	m.chat.SetContactName(contact.Name)
	m.chat.SetTone(cfg.GetTone())

	return m
}

// Init kicks off the connectivity listener.
func (m *Model) Init() tea.Cmd {
	return m.listenConnectivity()
}

// userLanguage is the language incoming messages are translated into.
func (m *Model) userLanguage() message.Language {
	if m.user != nil && m.user.PreferredLanguage.Valid() {
		return m.user.PreferredLanguage
	}
	return m.config.GetLanguage()
}

// targetFor picks the translation target for a message: outgoing messages
// are translated for the contact, incoming ones for the local user.
func (m *Model) targetFor(msg message.Message) message.Language {
	if m.user != nil && msg.IsOutgoingFrom(m.user.ID) {
		return m.contact.Language
	}
	return m.userLanguage()
}

// enterChat switches to the chat screen after a successful login or signup.
func (m *Model) enterChat(user auth.User) {
	// Persisted preferences win over the service's defaults.
	user.PreferredLanguage = m.config.GetLanguage()
	user.PreferredTone = m.config.GetTone()
	m.user = &user

	m.composer = composer.NewController(m.store, user.ID, m.contact.ID, user.PreferredLanguage)
	m.chat.SetUser(user.ID)
	m.chat.SetTone(user.PreferredTone)
	m.chat.SetFocused(true)
	m.screen = ScreenChat

	m.config.SetLastEmail(user.Email)
	if err := m.config.Save(); err != nil {
		logger.Warn("App: failed to save config: %v", err)
	}

	if m.store.Len() == 0 {
		m.seedConversation()
	}
	m.refreshThread()

	if !m.config.GetWelcomeShown() {
		m.modal.Show(ui.NewWelcomeState())
	}

	logger.Info("App: %s signed in, chatting with %s", user.Email, m.contact.Name)
}

// seedConversation loads the demo history so the thread opens with context:
// an exchange from the previous day, already translated and acknowledged.
func (m *Model) seedConversation() {
	yesterday := time.Now().AddDate(0, 0, -1).Add(-2 * time.Hour)

	greeting := message.NewIncoming("Salut !", m.contact.ID, m.user.ID, m.contact.Language)
	greeting.Timestamp = yesterday
	greeting = greeting.WithTranslation(message.TranslationResult{
		TranslatedText: "Hi!",
		Source:         m.contact.Language,
		Target:         m.userLanguage(),
		Confidence:     0.95,
	})
	m.store.Append(greeting)

	reply := message.NewOutgoing("How are you?", message.ToneStandard, m.user.ID, m.contact.ID, m.userLanguage())
	reply.Timestamp = yesterday.Add(3 * time.Minute)
	reply.DeliveryStatus = message.DeliveryRead
	reply.ReadAt = yesterday.Add(4 * time.Minute)
	reply = reply.WithTranslation(message.TranslationResult{
		TranslatedText: "Comment ça va ?",
		Source:         m.userLanguage(),
		Target:         m.contact.Language,
		Confidence:     0.95,
	})
	m.store.Append(reply)
}

// refreshThread recomputes the date-grouped view from the store. Runs on
// every store event; the thread never renders from a stale grouping.
func (m *Model) refreshThread() {
	m.chat.SetGroups(m.store.GroupByDate(time.Local))
}

// syncErrorModal enforces the offline-failure surface: the modal shows
// exactly while at least one translation has failed, the connection is down,
// and the user has not dismissed it since the last failure.
func (m *Model) syncErrorModal() {
	failed := m.store.FailedTranslations()
	conditions := len(failed) > 0 && !m.monitor.Online()

	_, showing := m.modal.State.(*ui.TranslationErrorState)
	switch {
	case conditions && !m.errorDismissed && !m.modal.IsVisible():
		m.modal.Show(ui.NewTranslationErrorState(len(failed)))
	case showing && !conditions:
		m.modal.Hide()
	}
}
