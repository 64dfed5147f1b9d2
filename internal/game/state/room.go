package state

import (
	"mythosclient/internal/game/events"
)

// Room is the client's view of the player's current location. Occupancy is
// tracked in two authoritative lists (Players, NPCs); Occupants is always
// their concatenation and exists for legacy display code.
type Room struct {
	ID            string
	Name          string
	Description   string
	Zone          string
	SubZone       string
	Plane         string
	Environment   string
	Exits         map[string]string
	Occupants     []string
	Players       []string
	NPCs          []string
	OccupantCount int
}

// RoomUpdate is an incoming room delta. The Has* flags record whether the
// payload actually carried each occupancy field as an array, which the merge
// reducer needs to tell "omitted" apart from "explicitly empty".
type RoomUpdate struct {
	Room
	HasPlayers       bool
	HasNPCs          bool
	HasOccupantCount bool
}

// RoomFromPayload decodes a room object out of an event payload. Missing or
// mistyped occupancy arrays leave the Has* flags unset so the merge reducer
// preserves prior state for them.
func RoomFromPayload(data map[string]any) *RoomUpdate {
	if data == nil {
		return nil
	}
	id, ok := events.StringOK(data, "id")
	if !ok {
		return nil
	}

	upd := &RoomUpdate{
		Room: Room{
			ID:          id,
			Name:        events.String(data, "name", ""),
			Description: events.String(data, "description", ""),
			Zone:        events.String(data, "zone", ""),
			SubZone:     events.String(data, "sub_zone", ""),
			Plane:       events.String(data, "plane", ""),
			Environment: events.String(data, "environment", ""),
			Exits:       exitsFromPayload(data),
		},
	}

	if players, ok := events.StringSlice(data, "players"); ok {
		upd.Players = players
		upd.HasPlayers = true
	}
	if npcs, ok := events.StringSlice(data, "npcs"); ok {
		upd.NPCs = npcs
		upd.HasNPCs = true
	}
	if count, ok := events.NumberOK(data, "occupant_count"); ok {
		upd.OccupantCount = int(count)
		upd.HasOccupantCount = true
	}

	return upd
}

func exitsFromPayload(data map[string]any) map[string]string {
	raw, ok := events.Map(data, "exits")
	if !ok {
		return nil
	}
	exits := make(map[string]string, len(raw))
	for direction, dest := range raw {
		// A null destination is a visible but unmapped exit.
		if s, ok := dest.(string); ok {
			exits[direction] = s
		} else {
			exits[direction] = ""
		}
	}
	return exits
}

// OccupancyUpdate builds a RoomUpdate that changes only who is present,
// carrying the previous room's metadata through the full-replace merge.
// Handlers use it for occupant-list events and entered/left patches.
func OccupancyUpdate(prev *Room, players, npcs []string) *RoomUpdate {
	if prev == nil {
		return nil
	}
	upd := &RoomUpdate{Room: *prev}
	if players != nil {
		upd.Players = players
		upd.HasPlayers = true
	}
	if npcs != nil {
		upd.NPCs = npcs
		upd.HasNPCs = true
	}
	return upd
}

// MergeRoom combines an incoming room update with the previously known room.
//
// Room metadata (one event category) and occupant lists (another) arrive
// independently, so an update silent about occupancy must never erase lists
// a different event supplied. Occupancy rules, applied to Players and NPCs
// separately: when the room id changed, the update's list wins whenever the
// payload carried it, even empty — entering a genuinely empty room is real
// information; when the id is unchanged, the update's list wins only when it
// was carried and is non-empty. Everything else is replaced wholesale from
// the update.
func MergeRoom(updates *RoomUpdate, prev *Room) *Room {
	if updates == nil && prev == nil {
		return nil
	}
	if updates == nil {
		return prev
	}
	if prev == nil {
		merged := updates.Room
		finishOccupancy(&merged, updates)
		return &merged
	}

	roomIDChanged := updates.ID != prev.ID

	merged := updates.Room
	merged.Players = mergeOccupants(updates.Players, updates.HasPlayers, prev.Players, roomIDChanged)
	merged.NPCs = mergeOccupants(updates.NPCs, updates.HasNPCs, prev.NPCs, roomIDChanged)
	finishOccupancy(&merged, updates)
	return &merged
}

func mergeOccupants(updated []string, supplied bool, prev []string, roomIDChanged bool) []string {
	if roomIDChanged {
		if supplied {
			return updated
		}
		return prev
	}
	if supplied && len(updated) > 0 {
		return updated
	}
	return prev
}

func finishOccupancy(merged *Room, updates *RoomUpdate) {
	occupants := make([]string, 0, len(merged.Players)+len(merged.NPCs))
	occupants = append(occupants, merged.Players...)
	occupants = append(occupants, merged.NPCs...)
	merged.Occupants = occupants

	if updates.HasOccupantCount {
		merged.OccupantCount = updates.OccupantCount
	} else {
		merged.OccupantCount = len(occupants)
	}
}
