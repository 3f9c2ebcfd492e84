package chat

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/adamavenir/mentions/internal/mention"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

type sentMessage struct {
	ID       string
	From     string
	Body     string
	At       time.Time
	Mentions []string
}

// now is swapped out in tests.
var now = time.Now

func (m *Model) appendMessage(body string) {
	msg := sentMessage{
		ID:       uuid.NewString(),
		From:     m.username,
		Body:     body,
		At:       now(),
		Mentions: mention.Extract(body, m.mentions.Candidates()),
	}
	m.messages = append(m.messages, msg)
	m.log.Info("message sent", "id", msg.ID, "mentions", len(msg.Mentions))

	if len(msg.Mentions) > 0 {
		m.status = "notified " + formatMentionList(msg.Mentions)
	} else {
		m.status = m.hintLine()
	}
	m.refreshViewport(true)
}

func formatMentionList(names []string) string {
	formatted := make([]string, 0, len(names))
	for _, name := range names {
		formatted = append(formatted, "@"+name)
	}
	return strings.Join(formatted, ", ")
}

func (m *Model) renderMessages() string {
	if len(m.messages) == 0 {
		return lipgloss.NewStyle().Foreground(metaColor).Italic(true).Render("No messages yet. Type @ to mention someone.")
	}
	authorStyle := lipgloss.NewStyle().Foreground(userColor).Bold(true)
	metaStyle := lipgloss.NewStyle().Foreground(metaColor)

	blocks := make([]string, 0, len(m.messages))
	for _, msg := range m.messages {
		header := fmt.Sprintf("%s %s", authorStyle.Render(msg.From), metaStyle.Render(humanize.Time(msg.At)))
		body := highlightCodeBlocks(highlightMentions(msg.Body, msg.Mentions))
		if width := m.mainWidth(); width > 0 {
			body = lipgloss.NewStyle().Width(width).Render(body)
		}
		blocks = append(blocks, header+"\n"+body)
	}
	return strings.Join(blocks, "\n\n")
}

// highlightMentions styles every "@name" for the given names. Longer names
// go first so "@ann" does not eat the front of "@annabel".
func highlightMentions(body string, names []string) string {
	if len(names) == 0 {
		return body
	}
	style := lipgloss.NewStyle().Foreground(mentionColor).Background(mentionBg)
	ordered := slices.Clone(names)
	slices.SortStableFunc(ordered, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	pairs := make([]string, 0, 2*len(ordered))
	for _, name := range ordered {
		token := "@" + name
		pairs = append(pairs, token, style.Render(token))
	}
	return strings.NewReplacer(pairs...).Replace(body)
}

func (m *Model) refreshViewport(scrollToBottom bool) {
	content := m.renderMessages()
	m.viewport.SetContent(content)
	if scrollToBottom {
		m.viewport.GotoBottom()
		return
	}
	if m.viewport.Height <= 0 {
		return
	}
	maxOffset := max(lipgloss.Height(content)-m.viewport.Height, 0)
	if m.viewport.YOffset > maxOffset {
		m.viewport.SetYOffset(maxOffset)
	}
}
