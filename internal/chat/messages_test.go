package chat

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestFormatMentionList(t *testing.T) {
	tests := []struct {
		names []string
		want  string
	}{
		{nil, ""},
		{[]string{"johnsmith"}, "@johnsmith"},
		{[]string{"johnsmith", "maryjones"}, "@johnsmith, @maryjones"},
	}

	for _, tt := range tests {
		if got := formatMentionList(tt.names); got != tt.want {
			t.Errorf("formatMentionList(%v) = %q, want %q", tt.names, got, tt.want)
		}
	}
}

func TestHighlightMentionsKeepsText(t *testing.T) {
	body := "ping @ann and @annabel"
	got := ansi.Strip(highlightMentions(body, []string{"ann", "annabel"}))
	if got != body {
		t.Fatalf("stripped output = %q, want %q", got, body)
	}
	if highlightMentions(body, nil) != body {
		t.Fatal("expected body unchanged without mentions")
	}
}

func TestAppendMessage(t *testing.T) {
	orig := now
	now = func() time.Time { return time.Now().Add(-3 * time.Minute) }
	t.Cleanup(func() { now = orig })

	m := newTestModel(t)
	m.appendMessage("hi @johnsmith and @johnsmith, also @nobody")

	if len(m.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(m.messages))
	}
	msg := m.messages[0]
	if msg.ID == "" {
		t.Fatal("expected message id")
	}
	if msg.From != "tester" {
		t.Fatalf("from = %q, want tester", msg.From)
	}
	if len(msg.Mentions) != 1 || msg.Mentions[0] != "johnsmith" {
		t.Fatalf("mentions = %v, want [johnsmith]", msg.Mentions)
	}
	if m.status != "notified @johnsmith" {
		t.Fatalf("status = %q", m.status)
	}

	rendered := ansi.Strip(m.renderMessages())
	if !strings.Contains(rendered, "3 minutes ago") {
		t.Fatalf("expected relative time in %q", rendered)
	}
}

func TestRenderMessagesEmpty(t *testing.T) {
	m := newTestModel(t)
	if got := ansi.Strip(m.renderMessages()); !strings.Contains(got, "No messages yet") {
		t.Fatalf("unexpected empty render %q", got)
	}
}
