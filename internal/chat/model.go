package chat

import (
	"fmt"

	"github.com/adamavenir/mentions/internal/logger"
	"github.com/adamavenir/mentions/internal/mention"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"
)

// Options configure chat.
type Options struct {
	Users           []string
	Username        string
	Placeholder     string
	Multiline       bool
	MaxRows         int
	CaseInsensitive bool
	Logger          *log.Logger
}

// Run starts the chat UI.
func Run(opts Options) error {
	model := NewModel(opts)
	defer model.Close()

	// Set window title (ANSI OSC sequence)
	fmt.Printf("\033]0;%s\007", "mentions")

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := program.Run()
	return err
}

// Model implements the chat UI.
type Model struct {
	username    string
	multiline   bool
	maxRows     int
	input       textarea.Model
	field       *inputField
	mentions    *mention.Mentions
	rows        [mention.MaxVisible]*menuRow
	menu        []menuEntry
	hoverIndex  int // row under the pointer, -1 when none
	viewport    viewport.Model
	messages    []sentMessage
	status      string
	width       int
	height      int
	zoneManager *zone.Manager // bubblezone manager for click tracking
	log         *log.Logger
}

// NewModel creates a chat model with an empty message log.
func NewModel(opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.MaxRows < 1 {
		opts.MaxRows = inputMaxHeight
	}
	if opts.Username == "" {
		opts.Username = "me"
	}

	input := newInputModel(opts.Placeholder, opts.MaxRows)
	m := &Model{
		username:    opts.Username,
		multiline:   opts.Multiline,
		maxRows:     opts.MaxRows,
		input:       input,
		hoverIndex:  -1,
		viewport:    viewport.New(0, 0),
		zoneManager: zone.New(),
		log:         opts.Logger,
		mentions: mention.New(opts.Users,
			mention.WithIgnoreCase(opts.CaseInsensitive),
			mention.WithLogger(opts.Logger.WithPrefix("mention")),
		),
	}
	for i := range m.rows {
		m.rows[i] = &menuRow{}
	}
	m.field = &inputField{input: &m.input}
	m.mentions.RegisterField(m.field)
	m.focusInput()
	m.status = m.hintLine()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *Model) Close() {
	if m.zoneManager != nil {
		m.zoneManager.Close()
	}
}

func (m *Model) focusInput() tea.Cmd {
	if m.input.Focused() {
		return nil
	}
	cmd := m.input.Focus()
	m.mentions.OnFocus()
	return cmd
}

func (m *Model) blurInput() {
	if !m.input.Focused() {
		return
	}
	m.input.Blur()
	m.mentions.OnBlur()
}
