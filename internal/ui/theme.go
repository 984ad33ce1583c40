// Package ui provides theme management for the application.
// Themes define the color palette used throughout the UI, allowing users
// to customize the visual appearance of Polyglot.
package ui

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (used for incoming messages, info)
	Secondary string

	// Background color
	Bg string

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	Outgoing    string // Own message labels
	Incoming    string // Contact message labels
	Translation string // Translated content lines
	Warning     string // Warnings
	Error       string // Errors, failure badges
	Success     string // Online badge, delivered/read ticks

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDarkPurple ThemeName = "dark-purple"
	ThemeNord       ThemeName = "nord"
	ThemeDracula    ThemeName = "dracula"
)

// DefaultTheme is the theme used when none is configured
const DefaultTheme = ThemeDarkPurple

// BuiltinThemes maps theme names to their palettes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkPurple: {
		Name:        "Dark Purple",
		Primary:     "#7C3AED",
		Secondary:   "#06B6D4",
		Bg:          "#1F2937",
		Text:        "#F9FAFB",
		TextMuted:   "#B0B8C4",
		TextInverse: "#1F2937",
		Outgoing:    "#A78BFA",
		Incoming:    "#22D3EE",
		Translation: "#C4B5FD",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Success:     "#10B981",
		Border:      "#374151",
	},
	ThemeNord: {
		Name:        "Nord",
		Primary:     "#88C0D0",
		Secondary:   "#81A1C1",
		Bg:          "#2E3440",
		Text:        "#ECEFF4",
		TextMuted:   "#D8DEE9",
		TextInverse: "#2E3440",
		Outgoing:    "#B48EAD",
		Incoming:    "#88C0D0",
		Translation: "#81A1C1",
		Warning:     "#EBCB8B",
		Error:       "#BF616A",
		Success:     "#A3BE8C",
		Border:      "#4C566A",
	},
	ThemeDracula: {
		Name:        "Dracula",
		Primary:     "#BD93F9",
		Secondary:   "#8BE9FD",
		Bg:          "#282A36",
		Text:        "#F8F8F2",
		TextMuted:   "#6272A4",
		TextInverse: "#282A36",
		Outgoing:    "#FF79C6",
		Incoming:    "#8BE9FD",
		Translation: "#BD93F9",
		Warning:     "#F1FA8C",
		Error:       "#FF5555",
		Success:     "#50FA7B",
		Border:      "#44475A",
	},
}

// ThemeNames lists the builtin themes in display order.
var ThemeNames = []ThemeName{ThemeDarkPurple, ThemeNord, ThemeDracula}

var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the active theme.
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme activates the given theme and regenerates all styles.
func SetTheme(t Theme) {
	currentTheme = t
	regenerateStyles()
}

// SetThemeByName activates a builtin theme by name. Unknown names fall back
// to the default theme.
func SetThemeByName(name string) {
	if t, ok := BuiltinThemes[ThemeName(name)]; ok {
		SetTheme(t)
		return
	}
	SetTheme(BuiltinThemes[DefaultTheme])
}
