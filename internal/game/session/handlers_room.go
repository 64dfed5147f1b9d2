package session

import (
	"mythosclient/internal/game/events"
	"mythosclient/internal/game/state"
)

// handleGameState projects a full game-state push: player identity/stats
// plus the current room, as one authoritative update.
func handleGameState(ev events.GameEvent, ctx *Context) *Result {
	res := &Result{}

	if playerData, ok := events.Map(ev.Data, "player"); ok {
		res.Player = playerFromPayload(playerData)
	}
	if roomData, ok := events.Map(ev.Data, "room"); ok {
		res.Room = state.RoomFromPayload(roomData)
	}

	if res.Empty() {
		return nil
	}
	return res
}

// handleRoomUpdate covers room_update and room_state: metadata-authoritative
// events whose occupancy silence must not clear lists supplied elsewhere.
// That preservation lives in the merge reducer; the handler only decodes.
func handleRoomUpdate(ev events.GameEvent, ctx *Context) *Result {
	roomData := ev.Data
	if nested, ok := events.Map(ev.Data, "room"); ok {
		roomData = nested
	}
	upd := state.RoomFromPayload(roomData)
	if upd == nil {
		return nil
	}
	return &Result{Update: state.Update{Room: upd}}
}

// handleRoomOccupants covers the occupant-authoritative event: it changes
// who is present and nothing else, so the previous room's metadata is
// carried through the full-replace merge.
func handleRoomOccupants(ev events.GameEvent, ctx *Context) *Result {
	if ctx.Room == nil {
		return nil
	}

	players, hasPlayers := events.StringSlice(ev.Data, "players")
	npcs, hasNPCs := events.StringSlice(ev.Data, "npcs")
	if !hasPlayers && !hasNPCs {
		return nil
	}

	upd := &state.RoomUpdate{Room: *ctx.Room}
	if hasPlayers {
		upd.Players = players
		upd.HasPlayers = true
	}
	if hasNPCs {
		upd.NPCs = npcs
		upd.HasNPCs = true
	}
	if count, ok := events.NumberOK(ev.Data, "occupant_count"); ok {
		upd.OccupantCount = int(count)
		upd.HasOccupantCount = true
	}

	return &Result{Update: state.Update{Room: upd}}
}

func playerFromPayload(data map[string]any) *state.Player {
	player := &state.Player{
		Name:       events.String(data, "name", ""),
		Profession: events.String(data, "profession", ""),
		Posture:    events.String(data, "posture", ""),
		InCombat:   events.Bool(data, "in_combat"),
		Stats:      state.Stats{},
	}
	if stats, ok := events.Map(data, "stats"); ok {
		for key := range stats {
			if n, ok := events.NumberOK(stats, key); ok {
				player.Stats[key] = n
			}
		}
	}
	return player
}
