package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Header is the top bar: app title on the left, contact name and presence
// on the right.
type Header struct {
	width       int
	contactName string
	online      bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{online: true}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetContact sets the contact name shown on the right
func (h *Header) SetContact(name string) {
	h.contactName = name
}

// SetOnline sets the presence state shown next to the contact name
func (h *Header) SetOnline(online bool) {
	h.online = online
}

// View renders the header
func (h *Header) View() string {
	titleText := " polyglot"

	var rightText string
	if h.contactName != "" {
		badge := "● online"
		if !h.online {
			badge = "○ offline"
		}
		rightText = h.contactName + " " + badge + " "
	}

	paddingLen := h.width - len(titleText) - len([]rune(rightText))
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText

	return h.renderGradient(fullContent)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// The presence badge gets the success or error color depending on state.
func (h *Header) renderGradient(content string) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	presenceColor := lipgloss.Color(theme.Success)
	if !h.online {
		presenceColor = lipgloss.Color(theme.Error)
	}

	badgeStart := strings.IndexAny(content, "●○")

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < len(" polyglot"))

		if badgeStart >= 0 && len(string(runes[:i])) >= badgeStart {
			style = style.Foreground(presenceColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
