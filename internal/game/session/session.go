package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"mythosclient/internal/debug"
	"mythosclient/internal/game/events"
	"mythosclient/internal/game/mythostime"
	"mythosclient/internal/game/state"
	"mythosclient/internal/logging"
)

const defaultHistoryLimit = 500

// Config wires a session's collaborators. Transcript and Tracer are
// optional.
type Config struct {
	HistoryLimit int
	HasLogout    bool
	Log          *debug.Logger
	Transcript   *logging.TranscriptLogger
	Tracer       trace.Tracer
}

// Session owns one connection's projected state: it routes each incoming
// event to its handler and is the sole writer of the state snapshot. All
// processing is synchronous and event-at-a-time; the transport's ordering
// guarantee is the only concurrency contract.
type Session struct {
	id         string
	st         state.ClientState
	router     *Router
	ctx        *Context
	log        *debug.Logger
	transcript *logging.TranscriptLogger
	tracer     trace.Tracer
	historyCap int
}

func New(cfg Config) *Session {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}
	return &Session{
		id:         uuid.NewString(),
		router:     NewRouter(cfg.Log),
		ctx:        &Context{HasLogout: cfg.HasLogout, Log: cfg.Log},
		log:        cfg.Log,
		transcript: cfg.Transcript,
		tracer:     cfg.Tracer,
		historyCap: cfg.HistoryLimit,
	}
}

// ID identifies this session in traces and transcript rows.
func (s *Session) ID() string {
	return s.id
}

// State returns the current immutable snapshot for rendering.
func (s *Session) State() state.ClientState {
	return s.st
}

// HandleEvent processes one event fully: route, handle, merge. It returns
// any deferred side-effect requests for the driver to execute.
func (s *Session) HandleEvent(ev events.GameEvent) []Deferred {
	if s.tracer != nil {
		_, span := s.tracer.Start(context.Background(), "session.dispatch",
			trace.WithAttributes(
				attribute.String("event.type", ev.Type),
				attribute.Int64("event.seq", ev.SequenceNumber),
				attribute.String("session.id", s.id),
			))
		defer span.End()
	}

	res := s.router.Dispatch(ev, s.ctx)

	emitted := 0
	if res != nil {
		s.st = s.st.Apply(&res.Update, s.historyCap)
		emitted = len(res.Messages)
		s.refreshContext()
	}

	if s.transcript != nil {
		if err := s.transcript.LogEvent(s.id, ev, emitted); err != nil {
			s.log.Printf("failed to record event in transcript: %v", err)
		}
	}

	if res == nil {
		return nil
	}
	return res.Deferred
}

// SeedClock applies the bootstrap world-clock fetch. A clock already set by
// a streamed event wins; the seed only fills the gap before the first
// mythos_time_update arrives.
func (s *Session) SeedClock(clock mythostime.State) {
	if s.st.MythosTime != nil {
		return
	}
	s.st.MythosTime = &clock
}

// EchoCommand appends the player's typed command to the history before the
// server's response event arrives.
func (s *Session) EchoCommand(cmd string) {
	msg := newMessage("> "+cmd, events.GameEvent{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, "player", ChannelChat, false)
	s.st = s.st.Apply(&state.Update{Messages: []state.ChatMessage{msg}}, s.historyCap)
	s.refreshContext()
}

func (s *Session) refreshContext() {
	s.ctx.Player = s.st.Player
	s.ctx.Room = s.st.Room
	s.ctx.Messages = s.st.Messages
	s.ctx.Lucidity = s.st.Lucidity
	s.ctx.Health = s.st.Health
}
