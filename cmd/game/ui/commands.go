package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mythosclient/internal/game/session"
	"mythosclient/internal/transport"
	"mythosclient/internal/worldclock"
)

// waitForEvent blocks on the transport's ordered event stream. The Update
// loop re-issues it after each event, so events are processed strictly one
// at a time.
func waitForEvent(client *transport.Client) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-client.Events()
		if !ok {
			return eventsClosedMsg{}
		}
		return gameEventMsg{event: ev}
	}
}

func fetchClock(ctx context.Context, baseURL, token string) tea.Cmd {
	return func() tea.Msg {
		clock, err := worldclock.Fetch(ctx, baseURL, token)
		return clockSeededMsg{clock: clock, err: err}
	}
}

func sendCommand(client *transport.Client, cmd string) tea.Cmd {
	return func() tea.Msg {
		return commandSentMsg{err: client.SendCommand(cmd)}
	}
}

// runDeferred executes a handler's deferred side-effect request after its
// delay. Once scheduled it is not cancelled; a deferred logout assumes
// disconnection is already imminent.
func runDeferred(d session.Deferred) tea.Cmd {
	return tea.Tick(time.Duration(d.AfterMS)*time.Millisecond, func(time.Time) tea.Msg {
		return deferredMsg{action: d.Action}
	})
}
