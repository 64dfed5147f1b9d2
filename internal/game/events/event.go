package events

// GameEvent is a single server-pushed event as delivered by the transport.
// Data carries the event-type-specific payload; its shape is only known once
// the type tag has been inspected, so handlers narrow it defensively through
// the accessors in payload.go.
type GameEvent struct {
	Type           string         `json:"event_type"`
	Timestamp      string         `json:"timestamp"`
	SequenceNumber int64          `json:"sequence_number"`
	PlayerID       string         `json:"player_id,omitempty"`
	RoomID         string         `json:"room_id,omitempty"`
	Data           map[string]any `json:"data"`
	AliasChain     []AliasStep    `json:"alias_chain,omitempty"`
}

// AliasStep records one step of command-alias expansion. It is carried
// through to display untouched.
type AliasStep struct {
	Original  string `json:"original"`
	Expanded  string `json:"expanded"`
	AliasName string `json:"alias_name"`
}

// Room and game-state events.
const (
	TypeGameState     = "game_state"
	TypeRoomUpdate    = "room_update"
	TypeRoomState     = "room_state"
	TypeRoomOccupants = "room_occupants"
)

// Player events.
const (
	TypePlayerEnteredGame       = "player_entered_game"
	TypePlayerEntered           = "player_entered"
	TypePlayerLeftGame          = "player_left_game"
	TypePlayerLeft              = "player_left"
	TypePlayerDied              = "player_died"
	TypePlayerRespawned         = "player_respawned"
	TypePlayerDeliriumRespawned = "player_delirium_respawned"
	TypePlayerDPUpdated         = "player_dp_updated"
	TypePlayerUpdate            = "player_update"
)

// Combat events.
const (
	TypeNPCAttacked    = "npc_attacked"
	TypePlayerAttacked = "player_attacked"
	TypeCombatStarted  = "combat_started"
	TypeCombatEnded    = "combat_ended"
	TypeNPCDied        = "npc_died"
	TypeCombatDeath    = "combat_death"
)

// Messaging events.
const (
	TypeCommandResponse = "command_response"
	TypeChatMessage     = "chat_message"
	TypeRoomMessage     = "room_message"
	TypeSystem          = "system"
)

// World and system events.
const (
	TypeLucidityChange        = "lucidity_change"
	TypeRescueUpdate          = "rescue_update"
	TypeMythosTimeUpdate      = "mythos_time_update"
	TypeGameTick              = "game_tick"
	TypeIntentionalDisconnect = "intentional_disconnect"
)
