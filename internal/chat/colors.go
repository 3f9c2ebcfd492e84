package chat

import "github.com/charmbracelet/lipgloss"

var (
	textColor    = lipgloss.Color("#DBDEE1")
	blurText     = lipgloss.Color("#80848E")
	caretColor   = lipgloss.Color("#F2F3F5")
	metaColor    = lipgloss.Color("#949BA4")
	statusColor  = lipgloss.Color("244")
	userColor    = lipgloss.Color("111")
	mentionColor = lipgloss.Color("#C9CDFB")
	mentionBg    = lipgloss.Color("#3C4270")
	inputBg      = lipgloss.Color("#383A40")
	menuBg       = lipgloss.Color("#2B2D31")
	menuActiveBg = lipgloss.Color("#35373C")
)
