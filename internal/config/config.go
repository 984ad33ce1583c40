// Package config persists user settings to ~/.polyglot/config.json.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/polyglotchat/polyglot/internal/errors"
	"github.com/polyglotchat/polyglot/internal/message"
)

// Config holds the application configuration.
type Config struct {
	PreferredLanguage    message.Language `json:"preferred_language,omitempty"`
	PreferredTone        message.Tone     `json:"preferred_tone,omitempty"`
	Theme                string           `json:"theme,omitempty"`
	NotificationsEnabled bool             `json:"notifications_enabled,omitempty"`
	LastEmail            string           `json:"last_email,omitempty"` // Pre-fills the login form
	WelcomeShown         bool             `json:"welcome_shown,omitempty"`

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".polyglot"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path. Used by tests.
func LoadFrom(path string) (*Config, error) {
	cfg := defaultConfig()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	// Unknown values in a hand-edited file fall back to defaults rather
	// than failing the boot.
	cfg.normalize()
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		PreferredLanguage:    message.LangEnglish,
		PreferredTone:        message.ToneStandard,
		Theme:                "dark-purple",
		NotificationsEnabled: true,
	}
}

func (c *Config) normalize() {
	if !c.PreferredLanguage.Valid() {
		c.PreferredLanguage = message.LangEnglish
	}
	if !c.PreferredTone.Valid() {
		c.PreferredTone = message.ToneStandard
	}
	if c.Theme == "" {
		c.Theme = "dark-purple"
	}
}

// Validate checks the config for inconsistencies.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.PreferredLanguage.Valid() {
		return errors.ConfigInvalid("unknown preferred language")
	}
	if !c.PreferredTone.Valid() {
		return errors.ConfigInvalid("unknown preferred tone")
	}
	return nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// GetLanguage returns the preferred language.
func (c *Config) GetLanguage() message.Language {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.PreferredLanguage
}

// SetLanguage updates the preferred language.
func (c *Config) SetLanguage(lang message.Language) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if lang.Valid() {
		c.PreferredLanguage = lang
	}
}

// GetTone returns the preferred tone.
func (c *Config) GetTone() message.Tone {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.PreferredTone
}

// SetTone updates the preferred tone.
func (c *Config) SetTone(tone message.Tone) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if tone.Valid() {
		c.PreferredTone = tone
	}
}

// GetTheme returns the UI theme name.
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme updates the UI theme name.
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled reports whether desktop notifications are on.
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled toggles desktop notifications.
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetLastEmail returns the last email used to log in.
func (c *Config) GetLastEmail() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LastEmail
}

// SetLastEmail records the last email used to log in.
func (c *Config) SetLastEmail(email string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LastEmail = email
}

// GetWelcomeShown reports whether the first-run welcome was dismissed.
func (c *Config) GetWelcomeShown() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.WelcomeShown
}

// SetWelcomeShown records that the first-run welcome was dismissed.
func (c *Config) SetWelcomeShown(shown bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.WelcomeShown = shown
}

// Path returns the on-disk location of this config.
func (c *Config) Path() string {
	return c.filePath
}

// Clear resets the config to defaults, preserving the file path.
func (c *Config) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	path := c.filePath
	*c = *defaultConfig()
	c.filePath = path
}
