package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/polyglotchat/polyglot/internal/message"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.GetLanguage() != message.LangEnglish {
		t.Errorf("default language = %q", cfg.GetLanguage())
	}
	if cfg.GetTone() != message.ToneStandard {
		t.Errorf("default tone = %q", cfg.GetTone())
	}
	if cfg.GetTheme() != "dark-purple" {
		t.Errorf("default theme = %q", cfg.GetTheme())
	}
	if !cfg.GetNotificationsEnabled() {
		t.Error("notifications default off, want on")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	cfg.SetLanguage(message.LangFrench)
	cfg.SetTone(message.ToneFormal)
	cfg.SetTheme("nord")
	cfg.SetNotificationsEnabled(false)
	cfg.SetLastEmail("alice@example.com")

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.GetLanguage() != message.LangFrench {
		t.Errorf("language = %q", reloaded.GetLanguage())
	}
	if reloaded.GetTone() != message.ToneFormal {
		t.Errorf("tone = %q", reloaded.GetTone())
	}
	if reloaded.GetTheme() != "nord" {
		t.Errorf("theme = %q", reloaded.GetTheme())
	}
	if reloaded.GetNotificationsEnabled() {
		t.Error("notifications = true after saving false")
	}
	if reloaded.GetLastEmail() != "alice@example.com" {
		t.Errorf("last email = %q", reloaded.GetLastEmail())
	}
}

func TestLoadFromCorruptJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom accepted corrupt JSON")
	}
}

func TestLoadNormalizesUnknownValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"preferred_language":"xx","preferred_tone":"shouty","theme":""}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.GetLanguage() != message.LangEnglish || cfg.GetTone() != message.ToneStandard {
		t.Errorf("normalization failed: %q/%q", cfg.GetLanguage(), cfg.GetTone())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate after normalize: %v", err)
	}
}

func TestSettersIgnoreInvalidValues(t *testing.T) {
	cfg, _ := LoadFrom(filepath.Join(t.TempDir(), "config.json"))

	cfg.SetLanguage(message.Language("xx"))
	if cfg.GetLanguage() != message.LangEnglish {
		t.Error("invalid language accepted")
	}
	cfg.SetTone(message.Tone("shouty"))
	if cfg.GetTone() != message.ToneStandard {
		t.Error("invalid tone accepted")
	}
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, _ := LoadFrom(path)
	cfg.SetLanguage(message.LangJapanese)
	cfg.SetLastEmail("x@y.z")

	cfg.Clear()

	if cfg.GetLanguage() != message.LangEnglish || cfg.GetLastEmail() != "" {
		t.Error("Clear did not reset settings")
	}
	if cfg.Path() != path {
		t.Error("Clear lost the file path")
	}
}
