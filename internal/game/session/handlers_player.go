package session

import (
	"fmt"

	"mythosclient/internal/game/events"
	"mythosclient/internal/game/state"
	"mythosclient/internal/game/status"
)

func handlePlayerEntered(ev events.GameEvent, ctx *Context) *Result {
	name, ok := events.StringOK(ev.Data, "player_name")
	if !ok {
		name, ok = events.StringOK(ev.Data, "name")
	}
	if !ok {
		return nil
	}

	res := &Result{Update: state.Update{
		Messages: []state.ChatMessage{newMessage(fmt.Sprintf("%s has entered the dream.", name), ev, ChannelSystem, ChannelSystem, false)},
	}}

	if ctx.Room != nil && !contains(ctx.Room.Players, name) {
		players := append(append([]string{}, ctx.Room.Players...), name)
		res.Room = state.OccupancyUpdate(ctx.Room, players, nil)
	}
	return res
}

func handlePlayerLeft(ev events.GameEvent, ctx *Context) *Result {
	name, ok := events.StringOK(ev.Data, "player_name")
	if !ok {
		name, ok = events.StringOK(ev.Data, "name")
	}
	if !ok {
		return nil
	}

	res := &Result{Update: state.Update{
		Messages: []state.ChatMessage{newMessage(fmt.Sprintf("%s has left the dream.", name), ev, ChannelSystem, ChannelSystem, false)},
	}}

	if ctx.Room != nil && contains(ctx.Room.Players, name) {
		res.Room = state.OccupancyUpdate(ctx.Room, remove(ctx.Room.Players, name), nil)
	}
	return res
}

func handlePlayerDied(ev events.GameEvent, ctx *Context) *Result {
	name := events.String(ev.Data, "player_name", "A dreamer")
	text := events.String(ev.Data, "message", fmt.Sprintf("%s has succumbed to the Mythos.", name))

	res := &Result{Update: state.Update{
		Messages: []state.ChatMessage{newMessage(text, ev, ChannelCombat, ChannelCombat, false)},
	}}

	if ctx.Player != nil && name == ctx.Player.Name {
		res.Player = patchPlayer(ctx.Player, map[string]any{state.StatHealth: float64(0)})
	}
	return res
}

func handlePlayerRespawned(ev events.GameEvent, ctx *Context) *Result {
	name := events.String(ev.Data, "player_name", "A dreamer")
	text := events.String(ev.Data, "message", fmt.Sprintf("%s stirs awake once more.", name))

	res := &Result{Update: state.Update{
		Messages: []state.ChatMessage{newMessage(text, ev, ChannelSystem, ChannelSystem, false)},
	}}

	// Any respawn variant clears an outstanding delirium episode.
	if ctx.Player == nil || name == ctx.Player.Name {
		clear := false
		res.Delirious = &clear
	}
	return res
}

// handlePlayerDPUpdated rebuilds the determination (health) status and
// mirrors the new current value into the player's stats.
func handlePlayerDPUpdated(ev events.GameEvent, ctx *Context) *Result {
	var fallbackMax float64
	if ctx.Player != nil {
		fallbackMax = ctx.Player.Stats[state.StatMaxHealth]
	}

	health := status.BuildHealth(ctx.Health, ev.Data, ev.Timestamp, fallbackMax)
	res := &Result{Update: state.Update{Health: &health}}

	if health.LastChange.Delta != 0 {
		text := status.ChangeMessage("Determination", health, health.LastChange.Delta)
		res.Messages = append(res.Messages, newMessage(text, ev, ChannelStatus, ChannelStatus, false))
	}

	if ctx.Player != nil {
		res.Player = patchPlayer(ctx.Player, map[string]any{
			state.StatHealth:    health.Current,
			state.StatMaxHealth: health.Max,
		})
	}
	return res
}

func handlePlayerUpdate(ev events.GameEvent, ctx *Context) *Result {
	patch := ev.Data
	if nested, ok := events.Map(ev.Data, "player_update"); ok {
		patch = nested
	}
	if len(patch) == 0 {
		return nil
	}

	if ctx.Player == nil {
		return &Result{Update: state.Update{Player: playerFromPayload(patch)}}
	}
	return &Result{Update: state.Update{Player: patchPlayer(ctx.Player, patch)}}
}

func contains(entries []string, needle string) bool {
	for _, entry := range entries {
		if entry == needle {
			return true
		}
	}
	return false
}

func remove(entries []string, needle string) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry != needle {
			out = append(out, entry)
		}
	}
	return out
}
