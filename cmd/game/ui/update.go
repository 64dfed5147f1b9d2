package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"mythosclient/internal/game/session"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case gameEventMsg:
		return m.handleGameEvent(msg)
	case eventsClosedMsg:
		return m, tea.Quit
	case clockSeededMsg:
		return m.handleClockSeeded(msg)
	case commandSentMsg:
		return m.handleCommandSent(msg)
	case deferredMsg:
		return m.handleDeferred(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleGameEvent(msg gameEventMsg) (tea.Model, tea.Cmd) {
	deferred := m.session.HandleEvent(msg.event)

	cmds := []tea.Cmd{waitForEvent(m.transport)}
	for _, d := range deferred {
		cmds = append(cmds, runDeferred(d))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleClockSeeded(msg clockSeededMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.debugLog.Printf("world clock bootstrap failed, starting unseeded: %v", msg.err)
		return m, nil
	}
	m.session.SeedClock(*msg.clock)
	return m, nil
}

func (m Model) handleCommandSent(msg commandSentMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.debugLog.Printf("failed to send command: %v", msg.err)
	}
	return m, nil
}

func (m Model) handleDeferred(msg deferredMsg) (tea.Model, tea.Cmd) {
	if msg.action == session.ActionLogout {
		m.debugLog.Printf("executing deferred logout")
		m.transport.Close()
		return m, tea.Quit
	}
	m.debugLog.Printf("ignoring unknown deferred action %q", msg.action)
	return m, nil
}

func (m Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		input := strings.TrimSpace(m.input)
		if input == "" {
			return m, nil
		}
		m.input = ""

		if m.debugLog.IsEnabled() && strings.HasPrefix(input, "/") {
			return m.handleDebugCommand(input)
		}

		m.session.EchoCommand(input)
		return m, sendCommand(m.transport, input)

	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil

	default:
		if len(msg.String()) == 1 {
			m.input += msg.String()
		}
		return m, nil
	}
}

func (m Model) handleDebugCommand(input string) (tea.Model, tea.Cmd) {
	st := m.session.State()
	switch strings.ToLower(input) {
	case "/state":
		if st.Player != nil {
			m.debugLog.Printf("player: %s stats=%v", st.Player.Name, st.Player.Stats)
		}
		m.debugLog.Printf("messages: %d, delirious: %v, connection: %v attempts=%d",
			len(st.Messages), st.Delirious, m.transport.State(), m.transport.ReconnectAttempts())
	case "/room":
		if st.Room != nil {
			m.debugLog.Printf("room %s (%s): players=%v npcs=%v count=%d",
				st.Room.Name, st.Room.ID, st.Room.Players, st.Room.NPCs, st.Room.OccupantCount)
		} else {
			m.debugLog.Printf("no room known yet")
		}
	case "/help":
		m.debugLog.Printf("debug commands: /state /room /help")
	default:
		m.debugLog.Printf("unknown debug command %q, try /help", input)
	}
	return m, nil
}
