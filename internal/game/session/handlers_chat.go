package session

import (
	"strings"

	"mythosclient/internal/game/events"
	"mythosclient/internal/game/state"
)

// roomEchoMaxLen bounds the room-name echo heuristic below. Preserved
// exactly for compatibility with the server's known duplicate echo;
// revisit if the duplication is ever fixed upstream.
const roomEchoMaxLen = 80

// isRoomNameEcho reports whether a command response is nothing but the
// current room's bare name — a noisy server echo the client suppresses. A
// real room description always carries more than the name: length, a
// newline, or an "Exits:"/"Description:" section.
func isRoomNameEcho(text string, room *state.Room) bool {
	if room == nil || room.Name == "" {
		return false
	}
	if text != room.Name {
		return false
	}
	if len(text) >= roomEchoMaxLen {
		return false
	}
	if strings.Contains(text, "\n") {
		return false
	}
	if strings.Contains(text, "Exits:") || strings.Contains(text, "Description:") {
		return false
	}
	return true
}

func handleCommandResponse(ev events.GameEvent, ctx *Context) *Result {
	res := &Result{}
	isHTML := events.Bool(ev.Data, "is_html")

	text, fromGameLog := events.StringOK(ev.Data, "game_log_message")
	channel := ChannelChat
	if fromGameLog {
		if events.Bool(ev.Data, "suppress_chat") {
			channel = events.String(ev.Data, "game_log_channel", ChannelGameLog)
		}
	} else {
		text = events.String(ev.Data, "result", "")
		if isRoomNameEcho(text, ctx.Room) {
			text = ""
		}
	}
	if text != "" {
		res.Messages = append(res.Messages, newMessage(text, ev, ChannelChat, channel, isHTML))
	}

	if patch, ok := events.Map(ev.Data, "player_update"); ok && ctx.Player != nil {
		res.Player = patchPlayer(ctx.Player, patch)
	}

	if res.Empty() {
		return nil
	}
	return res
}

func handleChatMessage(ev events.GameEvent, ctx *Context) *Result {
	text, ok := events.StringOK(ev.Data, "message")
	if !ok {
		return nil
	}
	msgType := events.String(ev.Data, "type", ChannelChat)
	channel := events.String(ev.Data, "channel", ChannelChat)
	isHTML := events.Bool(ev.Data, "is_html")

	return &Result{Update: state.Update{
		Messages: []state.ChatMessage{newMessage(text, ev, msgType, channel, isHTML)},
	}}
}

func handleSystemMessage(ev events.GameEvent, ctx *Context) *Result {
	text, ok := events.StringOK(ev.Data, "message")
	if !ok {
		return nil
	}
	return &Result{Update: state.Update{
		Messages: []state.ChatMessage{newMessage(text, ev, ChannelSystem, ChannelSystem, events.Bool(ev.Data, "is_html"))},
	}}
}

// patchPlayer folds a partial stats payload over the known player. Numeric
// fields the server omitted stay at their known values; required fields it
// has never supplied default to zero rather than staying unknown.
func patchPlayer(prev *state.Player, patch map[string]any) *state.Player {
	next := *prev
	next.Stats = prev.Stats.Clone()
	if next.Stats == nil {
		next.Stats = state.Stats{}
	}

	for key := range patch {
		if n, ok := events.NumberOK(patch, key); ok {
			next.Stats[key] = n
		}
	}
	if posture, ok := events.StringOK(patch, "position"); ok {
		next.Posture = posture
	}
	if _, ok := next.Stats[state.StatHealth]; !ok {
		next.Stats[state.StatHealth] = 0
	}

	return &next
}
