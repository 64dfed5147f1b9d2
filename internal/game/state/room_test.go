package state

import (
	"reflect"
	"testing"
)

func baseRoom() *Room {
	return &Room{
		ID:            "room-1",
		Name:          "Sanitarium Ward",
		Description:   "Rows of empty cots under flickering light.",
		Players:       []string{"armitage", "carter"},
		NPCs:          []string{"orderly"},
		Occupants:     []string{"armitage", "carter", "orderly"},
		OccupantCount: 3,
	}
}

func TestMergeRoomPreservesOccupantsOnSilentUpdate(t *testing.T) {
	prev := baseRoom()
	updates := &RoomUpdate{Room: Room{ID: "room-1", Name: "Sanitarium Ward", Description: "New lighting."}}

	merged := MergeRoom(updates, prev)

	if !reflect.DeepEqual(merged.Players, prev.Players) {
		t.Fatalf("players = %v, want preserved %v", merged.Players, prev.Players)
	}
	if !reflect.DeepEqual(merged.NPCs, prev.NPCs) {
		t.Fatalf("npcs = %v, want preserved %v", merged.NPCs, prev.NPCs)
	}
	if merged.Description != "New lighting." {
		t.Fatalf("metadata should be replaced, got %q", merged.Description)
	}
}

func TestMergeRoomEmptyListSameRoomIsIgnored(t *testing.T) {
	prev := baseRoom()
	updates := &RoomUpdate{
		Room:       Room{ID: "room-1", Name: "Sanitarium Ward", Players: []string{}},
		HasPlayers: true,
	}

	merged := MergeRoom(updates, prev)

	if !reflect.DeepEqual(merged.Players, prev.Players) {
		t.Fatalf("empty list from an unrelated event must not clear players, got %v", merged.Players)
	}
}

func TestMergeRoomEmptyListOnMoveIsHonored(t *testing.T) {
	prev := baseRoom()
	updates := &RoomUpdate{
		Room:       Room{ID: "room-2", Name: "Empty Cellar", Players: []string{}},
		HasPlayers: true,
	}

	merged := MergeRoom(updates, prev)

	if len(merged.Players) != 0 {
		t.Fatalf("explicit empty room on move should be honored, got %v", merged.Players)
	}
	// NPCs were not supplied at all, so the previous list carries over even
	// across a move.
	if !reflect.DeepEqual(merged.NPCs, prev.NPCs) {
		t.Fatalf("npcs = %v, want %v", merged.NPCs, prev.NPCs)
	}
}

func TestMergeRoomPopulatedListWins(t *testing.T) {
	prev := baseRoom()
	updates := &RoomUpdate{
		Room:    Room{ID: "room-1", Name: "Sanitarium Ward", NPCs: []string{"nightgaunt"}},
		HasNPCs: true,
	}

	merged := MergeRoom(updates, prev)

	if !reflect.DeepEqual(merged.NPCs, []string{"nightgaunt"}) {
		t.Fatalf("npcs = %v, want [nightgaunt]", merged.NPCs)
	}
}

func TestMergeRoomOccupantsInvariant(t *testing.T) {
	tests := []struct {
		name    string
		updates *RoomUpdate
	}{
		{"silent update", &RoomUpdate{Room: Room{ID: "room-1"}}},
		{"players replaced", &RoomUpdate{Room: Room{ID: "room-1", Players: []string{"whateley"}}, HasPlayers: true}},
		{"move", &RoomUpdate{Room: Room{ID: "room-9", Players: []string{"pickman"}, NPCs: []string{"ghoul"}}, HasPlayers: true, HasNPCs: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := MergeRoom(tt.updates, baseRoom())

			want := append(append([]string{}, merged.Players...), merged.NPCs...)
			if !reflect.DeepEqual(merged.Occupants, want) {
				t.Fatalf("occupants = %v, want players++npcs = %v", merged.Occupants, want)
			}
			if merged.OccupantCount != len(merged.Occupants) {
				t.Fatalf("occupant_count = %d, want %d", merged.OccupantCount, len(merged.Occupants))
			}
		})
	}
}

func TestMergeRoomExplicitCountWins(t *testing.T) {
	updates := &RoomUpdate{
		Room:             Room{ID: "room-1", OccupantCount: 12},
		HasOccupantCount: true,
	}

	merged := MergeRoom(updates, baseRoom())
	if merged.OccupantCount != 12 {
		t.Fatalf("occupant_count = %d, want explicit 12", merged.OccupantCount)
	}
}

func TestMergeRoomNilSides(t *testing.T) {
	if got := MergeRoom(nil, nil); got != nil {
		t.Fatalf("nil/nil should be nil, got %+v", got)
	}

	prev := baseRoom()
	if got := MergeRoom(nil, prev); got != prev {
		t.Fatal("nil update should return prev verbatim")
	}

	updates := &RoomUpdate{Room: Room{ID: "room-3", Players: []string{"danforth"}}, HasPlayers: true}
	got := MergeRoom(updates, nil)
	if got == nil || got.ID != "room-3" {
		t.Fatalf("nil prev should take the update, got %+v", got)
	}
	if got.OccupantCount != 1 {
		t.Fatalf("occupant_count = %d, want 1", got.OccupantCount)
	}
}

func TestRoomFromPayload(t *testing.T) {
	data := map[string]any{
		"id":          "room-7",
		"name":        "Witch House Attic",
		"description": "The angles are wrong.",
		"zone":        "arkham",
		"exits":       map[string]any{"down": "room-6", "beyond": nil},
		"players":     []any{"gilman"},
		"npcs":        "not-an-array",
	}

	upd := RoomFromPayload(data)
	if upd == nil {
		t.Fatal("expected a room update")
	}
	if !upd.HasPlayers || !reflect.DeepEqual(upd.Players, []string{"gilman"}) {
		t.Fatalf("players = %v (has=%v)", upd.Players, upd.HasPlayers)
	}
	if upd.HasNPCs {
		t.Fatal("mistyped npcs field must not count as supplied")
	}
	if upd.Exits["down"] != "room-6" {
		t.Fatalf("exits[down] = %q", upd.Exits["down"])
	}
	if dest, ok := upd.Exits["beyond"]; !ok || dest != "" {
		t.Fatalf("null destination should map to empty string, got %q ok=%v", dest, ok)
	}

	if RoomFromPayload(map[string]any{"name": "no id"}) != nil {
		t.Fatal("payload without id should not decode")
	}
}
