package ui

import "charm.land/lipgloss/v2"

// Color palette - populated from the active theme via regenerateStyles
var (
	ColorPrimary     = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary   = lipgloss.Color("#06B6D4") // Cyan
	ColorMuted       = lipgloss.Color("#6B7280") // Gray
	ColorBorder      = lipgloss.Color("#374151") // Dark gray
	ColorBorderFocus = lipgloss.Color("#7C3AED") // Purple when focused
	ColorBg          = lipgloss.Color("#1F2937") // Dark background
	ColorText        = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted   = lipgloss.Color("#B0B8C4") // Muted text
	ColorTextInverse = lipgloss.Color("#1F2937") // Dark text for light backgrounds
	ColorOutgoing    = lipgloss.Color("#A78BFA") // Light purple for own messages
	ColorIncoming    = lipgloss.Color("#22D3EE") // Bright cyan for contact messages
	ColorTranslation = lipgloss.Color("#C4B5FD") // Violet for translated lines
	ColorWarning     = lipgloss.Color("#F59E0B") // Amber
	ColorError       = lipgloss.Color("#EF4444") // Red for errors
	ColorSuccess     = lipgloss.Color("#10B981") // Green for success
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)

	HeaderOnlineStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	HeaderOfflineStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Thread styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus)

	DateBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorTextInverse).
			Background(ColorTextMuted).
			Bold(true).
			Padding(0, 1)

	SenderOutgoingStyle = lipgloss.NewStyle().
				Foreground(ColorOutgoing).
				Bold(true)

	SenderIncomingStyle = lipgloss.NewStyle().
				Foreground(ColorIncoming).
				Bold(true)

	MessageStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MessageMetaStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	TranslationStyle = lipgloss.NewStyle().
				Foreground(ColorTranslation).
				Italic(true)

	TranslatingStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true)

	FailureBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StatusSendingStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	StatusSentStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	StatusReadStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	ComposerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ComposerFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus).
				Padding(0, 1)

	ToneBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorTextInverse).
			Background(ColorSecondary).
			Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ModalTextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	ModalHelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError)

	ListItemStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	ListSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorTextInverse).
				Background(ColorPrimary).
				Bold(true)
)

// regenerateStyles rebuilds every package-level style from the active theme.
// Called by SetTheme/SetThemeByName.
func regenerateStyles() {
	t := CurrentTheme()

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorOutgoing = lipgloss.Color(t.Outgoing)
	ColorIncoming = lipgloss.Color(t.Incoming)
	ColorTranslation = lipgloss.Color(t.Translation)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	HeaderStyle = HeaderStyle.Foreground(ColorText).Background(ColorPrimary)
	HeaderOnlineStyle = HeaderOnlineStyle.Foreground(ColorSuccess)
	HeaderOfflineStyle = HeaderOfflineStyle.Foreground(ColorError)
	FooterStyle = FooterStyle.Foreground(ColorTextMuted)
	FooterKeyStyle = FooterKeyStyle.Foreground(ColorSecondary)
	FooterDescStyle = FooterDescStyle.Foreground(ColorTextMuted)
	PanelStyle = PanelStyle.BorderForeground(ColorBorder)
	PanelFocusedStyle = PanelFocusedStyle.BorderForeground(ColorBorderFocus)
	DateBadgeStyle = DateBadgeStyle.Foreground(ColorTextInverse).Background(ColorTextMuted)
	SenderOutgoingStyle = SenderOutgoingStyle.Foreground(ColorOutgoing)
	SenderIncomingStyle = SenderIncomingStyle.Foreground(ColorIncoming)
	MessageStyle = MessageStyle.Foreground(ColorText)
	MessageMetaStyle = MessageMetaStyle.Foreground(ColorTextMuted)
	TranslationStyle = TranslationStyle.Foreground(ColorTranslation)
	TranslatingStyle = TranslatingStyle.Foreground(ColorTextMuted)
	FailureBadgeStyle = FailureBadgeStyle.Foreground(ColorError)
	StatusSendingStyle = StatusSendingStyle.Foreground(ColorTextMuted)
	StatusSentStyle = StatusSentStyle.Foreground(ColorTextMuted)
	StatusReadStyle = StatusReadStyle.Foreground(ColorSecondary)
	ComposerStyle = ComposerStyle.BorderForeground(ColorBorder)
	ComposerFocusedStyle = ComposerFocusedStyle.BorderForeground(ColorBorderFocus)
	ToneBadgeStyle = ToneBadgeStyle.Foreground(ColorTextInverse).Background(ColorSecondary)
	ModalStyle = ModalStyle.BorderForeground(ColorPrimary)
	ModalTitleStyle = ModalTitleStyle.Foreground(ColorPrimary)
	ModalTextStyle = ModalTextStyle.Foreground(ColorText)
	ModalHelpStyle = ModalHelpStyle.Foreground(ColorTextMuted)
	StatusErrorStyle = StatusErrorStyle.Foreground(ColorError)
	ListItemStyle = ListItemStyle.Foreground(ColorText)
	ListSelectedStyle = ListSelectedStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
}
