package session

import (
	"github.com/google/uuid"

	"mythosclient/internal/debug"
	"mythosclient/internal/game/events"
	"mythosclient/internal/game/sanitize"
	"mythosclient/internal/game/state"
	"mythosclient/internal/game/status"
)

// Message channels the client renders into separate streams.
const (
	ChannelChat    = "chat"
	ChannelSystem  = "system"
	ChannelCombat  = "combat"
	ChannelStatus  = "status"
	ChannelGameLog = "game_log"
	ChannelTime    = "time"
)

// Context is the read-only view handlers get of the world, plus the only
// cross-event mutable memory in the pipeline: the last-seen hour and daypart
// trackers used to detect clock transitions. One session owns one Context;
// tests construct a fresh one per case.
type Context struct {
	Player   *state.Player
	Room     *state.Room
	Messages []state.ChatMessage
	Lucidity *status.Status
	Health   *status.Status

	// Hour/daypart transition trackers. HourRecorded distinguishes "no hour
	// seen yet this session" from hour zero.
	LastHour     int
	HourRecorded bool
	LastDaypart  string

	// HasLogout records whether the surrounding driver can execute a logout
	// when an intentional disconnect asks for one.
	HasLogout bool

	Log *debug.Logger
}

// Action names a side effect a handler requests but never executes itself.
type Action string

// ActionLogout asks the driver to log the player out.
const ActionLogout Action = "logout"

// Deferred is a side-effect request executed by the session driver after a
// delay. The driver owns cancellation on teardown.
type Deferred struct {
	AfterMS int
	Action  Action
}

// Result is what a handler returns: state deltas plus any deferred
// side-effect requests. A nil Result leaves the state untouched.
type Result struct {
	state.Update
	Deferred []Deferred
}

// newMessage builds and sanitizes one chat/log entry from event data. Every
// message a handler emits goes through here, so nothing reaches the history
// unsanitized.
func newMessage(text string, ev events.GameEvent, msgType, channel string, isHTML bool) state.ChatMessage {
	return sanitize.Message(state.ChatMessage{
		ID:         uuid.NewString(),
		RawText:    text,
		Timestamp:  ev.Timestamp,
		IsHTML:     isHTML,
		Type:       msgType,
		Channel:    channel,
		AliasChain: ev.AliasChain,
	})
}
