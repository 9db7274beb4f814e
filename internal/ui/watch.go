package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// EventMsg is sent when a decoded token event arrives during watching.
type EventMsg struct {
	Kind     string // "transfer", "approval", "role", "pause"
	From     string // truncated
	To       string // truncated
	Detail   string // formatted amount, role name, or state
	TxHash   string
	BlockNum uint64
}

// EventStatusMsg updates the polling status line.
type EventStatusMsg struct {
	BlockNum uint64
	ErrMsg   string
}

// EventModel is the Bubble Tea model for a live token event stream.
type EventModel struct {
	Token    string
	Symbol   string
	Mode     string
	Rows     []EventMsg
	cursor   int
	Status   EventStatusMsg
	Frame    int
	Quitting bool
}

type eventTickMsg struct{}

func eventSpinTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return eventTickMsg{}
	})
}

func (m EventModel) Init() tea.Cmd { return eventSpinTick() }

func (m EventModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.Rows)-1 {
				m.cursor++
			}
		}

	case eventTickMsg:
		m.Frame = (m.Frame + 1) % len(spinnerFrames)
		return m, eventSpinTick()

	case EventMsg:
		m.Rows = append(m.Rows, msg)
		if m.cursor == len(m.Rows)-2 {
			m.cursor++ // follow the tail
		}

	case EventStatusMsg:
		m.Status = msg
	}
	return m, nil
}

func (m EventModel) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Watching %s · %s (%s)", m.Symbol, TruncateAddr(m.Token), m.Mode)))
	b.WriteString("\n\n")

	if len(m.Rows) == 0 {
		b.WriteString(Meta("waiting for events…"))
	}
	for i, row := range m.Rows {
		line := fmt.Sprintf("%-9s %-12s → %-12s %s  %s",
			row.Kind, row.From, row.To, StyleValue.Render(row.Detail),
			Meta(fmt.Sprintf("#%d %s", row.BlockNum, TruncateAddr(row.TxHash))))
		if i == m.cursor {
			line = StyleSelected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	frame := StyleToken.Render(spinnerFrames[m.Frame])
	status := fmt.Sprintf("%s block %d", frame, m.Status.BlockNum)
	if m.Status.ErrMsg != "" {
		status += "  " + StyleError.Render(m.Status.ErrMsg)
	}
	b.WriteString(status)
	b.WriteString(Meta("   ↑↓/jk navigate · q quit"))
	return b.String()
}
