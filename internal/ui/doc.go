// Package ui provides the user interface components for the Polyglot TUI.
//
// # Overview
//
// The ui package implements the visual components of Polyglot using the
// Bubble Tea framework and Lipgloss styling library. It follows the
// Model-Update-View pattern established by Bubble Tea.
//
// # Layout System
//
// The chat screen is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────────────────────────────────────────┤
//	│                                                     │
//	│   Conversation thread (viewport)                    │
//	│                                                     │
//	├─────────────────────────────────────────────────────┤
//	│ Composer (3-line textarea)                          │
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// Header: Displays the application title, contact name, and presence badge.
// Uses a gradient background with the primary color.
//
// Footer: Shows context-aware keyboard shortcuts. The displayed shortcuts
// change with connectivity, in-flight translations, and failed translations.
//
// Chat: The conversation panel. Messages are rendered grouped by calendar
// day with a centered date badge per group, each bubble carrying sender,
// time, delivery ticks, and its translation line when one exists.
//
// Modal: Popup dialogs implemented through the ModalState interface:
//   - TranslationErrorState: failed translation while offline, with retry
//   - SettingsState: preferences form (language, tone, theme, notifications)
//   - WelcomeState: first-run introduction
//
// LoginScreen, SignupScreen, ResetScreen: full-screen account forms shown
// before the chat opens.
//
// # Styles
//
// All styles live in styles.go and are regenerated from the active theme
// (theme.go) whenever it changes.
package ui
