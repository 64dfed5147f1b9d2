package state

import (
	"mythosclient/internal/game/events"
	"mythosclient/internal/game/mythostime"
	"mythosclient/internal/game/status"
)

// Stats is a sparse record of numeric player attributes. A missing key means
// "unknown", not zero; handlers fold partial server updates over a copy and
// the merger replaces the map wholesale.
type Stats map[string]float64

// Well-known stat keys, matching the server's payload field names.
const (
	StatHealth         = "health"
	StatMaxHealth      = "max_health"
	StatLucidity       = "lucidity"
	StatMaxLucidity    = "max_lucidity"
	StatMagicPoints    = "magic_points"
	StatMaxMagicPoints = "max_magic_points"
)

// Clone copies the stat map so a patched player never shares storage with
// the snapshot it was derived from.
func (s Stats) Clone() Stats {
	out := make(Stats, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Player is the client's view of the controlled character.
type Player struct {
	Name       string
	Profession string
	Posture    string
	InCombat   bool
	Stats      Stats
}

// ChatMessage is one entry of the bounded chat/log history. It is created by
// a handler, normalized by the sanitizer, appended once, and never mutated.
type ChatMessage struct {
	ID          string
	Text        string
	RawText     string
	Timestamp   string
	IsHTML      bool
	Type        string
	Channel     string
	MessageType string
	AliasChain  []events.AliasStep
}

// ClientState is the authoritative renderable snapshot. The merger is its
// only writer; every update produces a new value.
type ClientState struct {
	Player     *Player
	Room       *Room
	Messages   []ChatMessage
	Lucidity   *status.Status
	Health     *status.Status
	Rescue     *status.RescueState
	MythosTime *mythostime.State
	Delirious  bool
}

// Update is the set of deltas one handler may return. Nil fields leave the
// corresponding part of the state untouched.
type Update struct {
	Player     *Player
	Room       *RoomUpdate
	Messages   []ChatMessage
	Lucidity   *status.Status
	Health     *status.Status
	Rescue     *status.RescueState
	MythosTime *mythostime.State
	Delirious  *bool
}

// Empty reports whether applying the update would change nothing.
func (u *Update) Empty() bool {
	if u == nil {
		return true
	}
	return u.Player == nil && u.Room == nil && len(u.Messages) == 0 &&
		u.Lucidity == nil && u.Health == nil && u.Rescue == nil &&
		u.MythosTime == nil && u.Delirious == nil
}

// Apply folds a handler's deltas into the state, producing the next
// snapshot. The player reference is replaced outright (handlers construct
// complete merged players), the room goes through MergeRoom, and messages
// are appended in order to the history, trimmed to historyCap from the
// front once it overflows.
func (s ClientState) Apply(u *Update, historyCap int) ClientState {
	if u.Empty() {
		return s
	}

	next := s
	if u.Player != nil {
		next.Player = u.Player
	}
	if u.Room != nil {
		next.Room = MergeRoom(u.Room, s.Room)
	}
	if u.Lucidity != nil {
		next.Lucidity = u.Lucidity
	}
	if u.Health != nil {
		next.Health = u.Health
	}
	if u.Rescue != nil {
		next.Rescue = u.Rescue
	}
	if u.MythosTime != nil {
		next.MythosTime = u.MythosTime
	}
	if u.Delirious != nil {
		next.Delirious = *u.Delirious
	}

	if len(u.Messages) > 0 {
		merged := make([]ChatMessage, 0, len(s.Messages)+len(u.Messages))
		merged = append(merged, s.Messages...)
		merged = append(merged, u.Messages...)
		if historyCap > 0 && len(merged) > historyCap {
			merged = merged[len(merged)-historyCap:]
		}
		next.Messages = merged
	}

	return next
}
