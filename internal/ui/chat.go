package ui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/rivo/uniseg"

	"github.com/polyglotchat/polyglot/internal/conversation"
	"github.com/polyglotchat/polyglot/internal/message"
)

// Chat is the conversation thread plus the composer input.
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	spin     spinner.Model

	width  int
	height int

	focused     bool
	userID      string
	contactName string
	connected   bool
	tone        message.Tone

	groups []conversation.DayGroup

	// now is injectable so date-divider tests are deterministic
	now func() time.Time
}

// NewChat creates the chat panel.
func NewChat() *Chat {
	ti := textarea.New()
	ti.Placeholder = "Votre message"
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = TranslatingStyle

	c := &Chat{
		viewport: vp,
		input:    ti,
		spin:     sp,
		tone:     message.ToneStandard,
		now:      time.Now,
	}
	c.updateContent()
	return c
}

// SetSize sets the chat panel dimensions.
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	threadHeight := height - InputTotalHeight
	innerWidth := width - BorderSize
	viewportHeight := threadHeight - BorderSize
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	c.viewport.SetWidth(innerWidth)
	c.viewport.SetHeight(viewportHeight)
	c.input.SetWidth(innerWidth - InputPaddingWidth)
	c.updateContent()
}

// SetFocused sets the focus state.
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state.
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetUser sets the local participant id, used to tell own bubbles apart.
func (c *Chat) SetUser(userID string) {
	c.userID = userID
}

// SetContactName sets the remote participant's display name.
func (c *Chat) SetContactName(name string) {
	c.contactName = name
}

// SetConnected updates the connectivity flag shown on the thread.
func (c *Chat) SetConnected(connected bool) {
	c.connected = connected
	c.updateContent()
}

// SetGroups replaces the rendered date groups. Called on every store change
// notification; the chat never caches a grouping across a patch.
func (c *Chat) SetGroups(groups []conversation.DayGroup) {
	c.groups = groups
	c.updateContent()
	c.viewport.GotoBottom()
}

// Tone returns the tone applied to the next outgoing message.
func (c *Chat) Tone() message.Tone {
	return c.tone
}

// SetTone sets the composing tone.
func (c *Chat) SetTone(tone message.Tone) {
	if tone.Valid() {
		c.tone = tone
	}
}

// CycleTone advances to the next tone option and returns it.
func (c *Chat) CycleTone() message.Tone {
	for i, opt := range message.ToneOptions {
		if opt.Tone == c.tone {
			c.tone = message.ToneOptions[(i+1)%len(message.ToneOptions)].Tone
			return c.tone
		}
	}
	c.tone = message.ToneStandard
	return c.tone
}

// GetInput returns the current composer text.
func (c *Chat) GetInput() string {
	return c.input.Value()
}

// SetInput replaces the composer text, used when restoring a draft.
func (c *Chat) SetInput(text string) {
	c.input.SetValue(text)
}

// ClearInput clears the composer.
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// InsertNewline inserts a literal line break at the cursor (shift+enter).
func (c *Chat) InsertNewline() {
	c.input.InsertString("\n")
}

// AnyTranslating reports whether any rendered message shows the in-flight
// indicator, which drives the spinner tick loop.
func (c *Chat) AnyTranslating() bool {
	for _, g := range c.groups {
		for _, m := range g.Messages {
			if m.TranslationStatus == message.TranslationTranslating {
				return true
			}
		}
	}
	return false
}

// SpinnerTick returns the command that keeps the translating spinner moving.
func (c *Chat) SpinnerTick() tea.Cmd {
	return c.spin.Tick
}

// Update routes messages to the composer, viewport, and spinner.
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if _, ok := msg.(spinner.TickMsg); ok {
		c.spin, cmd = c.spin.Update(msg)
		if c.AnyTranslating() {
			c.updateContent()
			cmds = append(cmds, cmd)
		}
		return c, tea.Batch(cmds...)
	}

	if c.focused {
		c.input, cmd = c.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

// View renders the thread panel and the composer.
func (c *Chat) View() string {
	panel := PanelStyle
	composer := ComposerStyle
	if c.focused {
		panel = PanelFocusedStyle
		composer = ComposerFocusedStyle
	}

	thread := panel.
		Width(c.width - BorderSize).
		Height(c.height - InputTotalHeight - BorderSize).
		Render(c.viewport.View())

	toneTag := ToneBadgeStyle.Render(string(c.tone))
	inputView := composer.Width(c.width - BorderSize).Render(c.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, thread, toneTag, inputView)
}

// updateContent rebuilds the viewport from the current groups.
func (c *Chat) updateContent() {
	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	if len(c.groups) == 0 {
		c.viewport.SetContent(TranslatingStyle.Render("No messages yet. Say hello!"))
		return
	}

	var sb strings.Builder
	for _, g := range c.groups {
		sb.WriteString(c.renderDivider(g.Date, wrapWidth))
		sb.WriteString("\n")
		for _, m := range g.Messages {
			sb.WriteString(c.renderBubble(m, wrapWidth))
			sb.WriteString("\n")
		}
	}
	c.viewport.SetContent(strings.TrimRight(sb.String(), "\n"))
}

// renderDivider renders a centered date badge. Today gets a distinct label;
// past dates show the formatted date.
func (c *Chat) renderDivider(date time.Time, width int) string {
	label := strings.ToUpper(date.Format("Mon Jan 2 2006"))
	ny, nm, nd := c.now().Date()
	dy, dm, dd := date.Date()
	if ny == dy && nm == dm && nd == dd {
		label = "TODAY"
	}
	badge := DateBadgeStyle.Render(label)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, badge)
}

// renderBubble renders one message: sender line, wrapped content, then the
// translation line (translated text, in-flight spinner, or failure badge).
func (c *Chat) renderBubble(m message.Message, width int) string {
	own := m.IsOutgoingFrom(c.userID)
	bubbleWidth := width * BubbleWidthNum / BubbleWidthDen
	if bubbleWidth < 16 {
		bubbleWidth = width
	}

	var sb strings.Builder

	name := c.contactName
	senderStyle := SenderIncomingStyle
	if own {
		name = "You"
		senderStyle = SenderOutgoingStyle
	}
	sb.WriteString(senderStyle.Render(truncate(name, bubbleWidth/2)))
	sb.WriteString(MessageMetaStyle.Render("  " + m.Timestamp.Format("15:04")))
	if own {
		sb.WriteString("  ")
		sb.WriteString(deliveryIcon(m.DeliveryStatus))
	}
	sb.WriteString("\n")

	sb.WriteString(MessageStyle.Render(wordwrap.String(m.Content, bubbleWidth)))

	switch {
	case m.HasTranslation():
		sb.WriteString("\n")
		sb.WriteString(TranslationStyle.Render(wordwrap.String("⤷ "+m.TranslatedContent, bubbleWidth)))
	case m.TranslationStatus == message.TranslationTranslating:
		sb.WriteString("\n")
		sb.WriteString(c.spin.View())
		sb.WriteString(TranslatingStyle.Render(" Translating…"))
	case m.TranslationStatus == message.TranslationFailed:
		sb.WriteString("\n")
		sb.WriteString(FailureBadgeStyle.Render("⚠ Translation failed"))
		sb.WriteString(MessageMetaStyle.Render(" — ctrl+r to retry"))
	}

	block := sb.String()
	if own {
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, block)
	}
	return block
}

// deliveryIcon maps a delivery status to its tick marks.
func deliveryIcon(s message.DeliveryStatus) string {
	switch s {
	case message.DeliverySending:
		return StatusSendingStyle.Render("○")
	case message.DeliverySent:
		return StatusSentStyle.Render("✓")
	case message.DeliveryDelivered:
		return StatusSentStyle.Render("✓✓")
	case message.DeliveryRead:
		return StatusReadStyle.Render("✓✓")
	case message.DeliveryFailed:
		return FailureBadgeStyle.Render("!")
	default:
		return ""
	}
}

// truncate shortens s to at most width cells, grapheme-aware, appending an
// ellipsis when anything was cut.
func truncate(s string, width int) string {
	if width <= 1 || runewidth.StringWidth(s) <= width {
		return s
	}

	var out strings.Builder
	used := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		w := runewidth.StringWidth(cluster)
		if used+w > width-1 {
			break
		}
		out.WriteString(cluster)
		used += w
	}
	return out.String() + "…"
}
