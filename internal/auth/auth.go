// Package auth provides the login, signup, and password-reset callbacks
// behind the auth screens. The stub service validates input shape and then
// succeeds unconditionally; no network or credential store is involved.
package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/polyglotchat/polyglot/internal/errors"
	"github.com/polyglotchat/polyglot/internal/logger"
	"github.com/polyglotchat/polyglot/internal/message"
)

// User is the authenticated local participant.
type User struct {
	ID                string
	Name              string
	Email             string
	PreferredLanguage message.Language
	PreferredTone     message.Tone
}

// Service is the authentication collaborator consumed by the auth screens.
type Service interface {
	Login(ctx context.Context, email, password string) (User, error)
	Signup(ctx context.Context, name, email, password string) (User, error)
	RequestPasswordReset(ctx context.Context, email string) error
}

// Stub implements Service without any backend. Any well-formed credentials
// are accepted.
type Stub struct {
	// DefaultLanguage and DefaultTone seed new users' preferences.
	DefaultLanguage message.Language
	DefaultTone     message.Tone
}

// NewStub returns a stub service with English/standard defaults.
func NewStub() *Stub {
	return &Stub{
		DefaultLanguage: message.LangEnglish,
		DefaultTone:     message.ToneStandard,
	}
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t\n")
}

// Login implements Service.
func (s *Stub) Login(_ context.Context, email, password string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return User{}, errors.AuthMissingField("email")
	}
	if !validEmail(email) {
		return User{}, errors.AuthInvalidCredentials()
	}
	if password == "" {
		return User{}, errors.AuthMissingField("password")
	}

	name := email[:strings.Index(email, "@")]
	logger.Info("Auth: login as %s", email)
	return User{
		ID:                uuid.NewString(),
		Name:              name,
		Email:             email,
		PreferredLanguage: s.DefaultLanguage,
		PreferredTone:     s.DefaultTone,
	}, nil
}

// Signup implements Service.
func (s *Stub) Signup(_ context.Context, name, email, password string) (User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return User{}, errors.AuthMissingField("name")
	}
	if !validEmail(email) {
		return User{}, errors.AuthInvalidCredentials()
	}
	if len(password) < 8 {
		return User{}, errors.E(errors.Op("auth.Signup"), errors.KindInvalid,
			"password must be at least 8 characters")
	}

	logger.Info("Auth: signup %s <%s>", name, email)
	return User{
		ID:                uuid.NewString(),
		Name:              name,
		Email:             email,
		PreferredLanguage: s.DefaultLanguage,
		PreferredTone:     s.DefaultTone,
	}, nil
}

// RequestPasswordReset implements Service.
func (s *Stub) RequestPasswordReset(_ context.Context, email string) error {
	if !validEmail(strings.TrimSpace(email)) {
		return errors.AuthMissingField("email")
	}
	logger.Info("Auth: password reset requested for %s", email)
	return nil
}
