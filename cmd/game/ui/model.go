package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"mythosclient/internal/debug"
	"mythosclient/internal/game/events"
	"mythosclient/internal/game/mythostime"
	"mythosclient/internal/game/session"
	"mythosclient/internal/transport"
)

// Model is the bubbletea shell around the session. It renders whatever
// snapshot the session exposes and forwards typed commands; all game
// semantics live below it.
type Model struct {
	session   *session.Session
	transport *transport.Client
	debugLog  *debug.Logger

	apiBaseURL string
	authToken  string

	// bootstrapCtx scopes the world-clock fetch to the session's lifetime;
	// Cleanup cancels it so a late response is discarded.
	bootstrapCtx    context.Context
	bootstrapCancel context.CancelFunc

	input  string
	width  int
	height int
}

func NewModel(sess *session.Session, client *transport.Client, debugLog *debug.Logger, apiBaseURL, authToken string) Model {
	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		session:         sess,
		transport:       client,
		debugLog:        debugLog,
		apiBaseURL:      apiBaseURL,
		authToken:       authToken,
		bootstrapCtx:    ctx,
		bootstrapCancel: cancel,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForEvent(m.transport),
		fetchClock(m.bootstrapCtx, m.apiBaseURL, m.authToken),
	)
}

// Cleanup tears down the session's external resources.
func (m Model) Cleanup() {
	m.bootstrapCancel()
	m.transport.Close()
}

type gameEventMsg struct {
	event events.GameEvent
}

type eventsClosedMsg struct{}

type clockSeededMsg struct {
	clock *mythostime.State
	err   error
}

type commandSentMsg struct {
	err error
}

type deferredMsg struct {
	action session.Action
}
