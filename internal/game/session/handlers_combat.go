package session

import (
	"fmt"

	"mythosclient/internal/game/events"
	"mythosclient/internal/game/state"
)

// handleAttack covers npc_attacked and player_attacked: both render a combat
// line, and an attack on the known player folds any supplied health fields
// into their stats.
func handleAttack(ev events.GameEvent, ctx *Context) *Result {
	res := &Result{}

	text, ok := events.StringOK(ev.Data, "message")
	if !ok {
		attacker := events.String(ev.Data, "attacker_name", "Something")
		target := events.String(ev.Data, "target_name", "something")
		if damage, supplied := events.NumberOK(ev.Data, "damage"); supplied {
			text = fmt.Sprintf("%s strikes %s for %g.", attacker, target, damage)
		} else {
			text = fmt.Sprintf("%s strikes %s.", attacker, target)
		}
	}
	res.Messages = append(res.Messages, newMessage(text, ev, ChannelCombat, ChannelCombat, false))

	if ev.Type == events.TypePlayerAttacked && ctx.Player != nil {
		patch := map[string]any{}
		if health, ok := events.NumberOK(ev.Data, "current_dp"); ok {
			patch[state.StatHealth] = health
		}
		if max, ok := events.NumberOK(ev.Data, "max_dp"); ok {
			patch[state.StatMaxHealth] = max
		}
		if len(patch) > 0 {
			res.Player = patchPlayer(ctx.Player, patch)
		}
	}
	return res
}

func handleCombatStarted(ev events.GameEvent, ctx *Context) *Result {
	res := &Result{Update: state.Update{
		Messages: []state.ChatMessage{newMessage(events.String(ev.Data, "message", "Combat begins."), ev, ChannelCombat, ChannelCombat, false)},
	}}
	if ctx.Player != nil {
		player := *ctx.Player
		player.Stats = ctx.Player.Stats.Clone()
		player.InCombat = true
		res.Player = &player
	}
	return res
}

func handleCombatEnded(ev events.GameEvent, ctx *Context) *Result {
	res := &Result{Update: state.Update{
		Messages: []state.ChatMessage{newMessage(events.String(ev.Data, "message", "Combat ends."), ev, ChannelCombat, ChannelCombat, false)},
	}}
	if ctx.Player != nil {
		player := *ctx.Player
		player.Stats = ctx.Player.Stats.Clone()
		player.InCombat = false
		res.Player = &player
	}
	return res
}

func handleCombatDeath(ev events.GameEvent, ctx *Context) *Result {
	name := events.String(ev.Data, "npc_name", "The creature")
	text := events.String(ev.Data, "message", fmt.Sprintf("%s collapses, unmoving.", name))

	res := &Result{Update: state.Update{
		Messages: []state.ChatMessage{newMessage(text, ev, ChannelCombat, ChannelCombat, false)},
	}}

	// The fallen NPC leaves the occupant list once the server confirms it by
	// name and it is still listed here.
	if npcName, ok := events.StringOK(ev.Data, "npc_name"); ok && ctx.Room != nil && contains(ctx.Room.NPCs, npcName) {
		res.Room = state.OccupancyUpdate(ctx.Room, nil, remove(ctx.Room.NPCs, npcName))
	}
	return res
}
