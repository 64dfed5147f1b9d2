package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mythosclient/internal/game/session"
	"mythosclient/internal/game/state"
	"mythosclient/internal/game/status"
	"mythosclient/internal/transport"
)

func (m Model) View() string {
	inputHeight := 3
	statusHeight := 1
	chatHeight := m.height - inputHeight - statusHeight

	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7"))

	playerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	combatStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9"))

	timeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("13"))

	statusLineStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1).
		Width(m.width - 4)

	chatPanel := lipgloss.NewStyle().
		Width(m.width).
		Height(chatHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1)

	st := m.session.State()

	var chatContent strings.Builder

	visibleMessages := st.Messages
	maxMessages := chatHeight - 2
	if maxMessages < 1 {
		maxMessages = 1
	}
	if len(visibleMessages) > maxMessages {
		visibleMessages = visibleMessages[len(visibleMessages)-maxMessages:]
	}

	contentWidth := m.width - 4

	for _, message := range visibleMessages {
		wrappedText := wrapAndIndent(message.Text, contentWidth, " ")
		switch {
		case message.Type == "player":
			chatContent.WriteString(playerStyle.Render(wrappedText) + "\n")
		case message.Channel == session.ChannelCombat:
			chatContent.WriteString(combatStyle.Render(wrappedText) + "\n")
		case message.Channel == session.ChannelTime:
			chatContent.WriteString(timeStyle.Render(wrappedText) + "\n")
		default:
			chatContent.WriteString(messageStyle.Render(wrappedText) + "\n")
		}
	}

	chat := chatPanel.Render(chatContent.String())
	statusLine := statusLineStyle.Render(m.statusLine(st))
	input := inputStyle.Render(m.input + "│")

	return chat + "\n" + statusLine + "\n" + input
}

func (m Model) statusLine(st state.ClientState) string {
	var parts []string

	if st.Room != nil && st.Room.Name != "" {
		parts = append(parts, st.Room.Name)
	}
	if st.Lucidity != nil {
		parts = append(parts, meter("LCD", *st.Lucidity))
	}
	if st.Health != nil {
		parts = append(parts, meter("DP", *st.Health))
	}
	if st.MythosTime != nil {
		clock := st.MythosTime.Clock
		if st.MythosTime.FormattedDate != "" {
			clock = fmt.Sprintf("%s, %s", st.MythosTime.FormattedDate, clock)
		}
		parts = append(parts, clock)
	}
	if st.Delirious {
		parts = append(parts, "DELIRIUM")
	}
	if m.transport.State() != transport.StateConnected {
		parts = append(parts, fmt.Sprintf("reconnecting (%d)", m.transport.ReconnectAttempts()))
	}

	if len(parts) == 0 {
		return " connecting to the dream..."
	}
	return " " + strings.Join(parts, " · ")
}

func meter(label string, s status.Status) string {
	out := fmt.Sprintf("%s %g/%g [%s]", label, s.Current, s.Max, s.Tier)
	if s.LastChange.Delta > 0 {
		out += fmt.Sprintf(" +%g", s.LastChange.Delta)
	} else if s.LastChange.Delta < 0 {
		out += fmt.Sprintf(" %g", s.LastChange.Delta)
	}
	return out
}

func wrapAndIndent(text string, width int, indent string) string {
	if len(text) <= width {
		return indent + text
	}

	var result strings.Builder
	words := strings.Fields(text)
	if len(words) == 0 {
		return indent + text
	}

	currentLine := indent + words[0]

	for _, word := range words[1:] {
		if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result.WriteString(currentLine + "\n")
			currentLine = indent + word
		}
	}

	result.WriteString(currentLine)
	return result.String()
}
