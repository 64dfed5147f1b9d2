package session

import (
	"mythosclient/internal/debug"
	"mythosclient/internal/game/events"
)

// Handler projects one event category onto state deltas. Handlers read the
// context, never write state, and must not block.
type Handler func(ev events.GameEvent, ctx *Context) *Result

// Router maps event type tags to handlers and dispatches events strictly in
// arrival order. Unrecognized types are ignored so the client keeps working
// when the server grows new event kinds.
type Router struct {
	handlers map[string]Handler
	log      *debug.Logger
	lastSeq  int64
}

// NewRouter builds the routing table.
func NewRouter(log *debug.Logger) *Router {
	return &Router{
		log: log,
		handlers: map[string]Handler{
			events.TypeGameState:     handleGameState,
			events.TypeRoomUpdate:    handleRoomUpdate,
			events.TypeRoomState:     handleRoomUpdate,
			events.TypeRoomOccupants: handleRoomOccupants,

			events.TypePlayerEnteredGame:       handlePlayerEntered,
			events.TypePlayerEntered:           handlePlayerEntered,
			events.TypePlayerLeftGame:          handlePlayerLeft,
			events.TypePlayerLeft:              handlePlayerLeft,
			events.TypePlayerDied:              handlePlayerDied,
			events.TypePlayerRespawned:         handlePlayerRespawned,
			events.TypePlayerDeliriumRespawned: handlePlayerRespawned,
			events.TypePlayerDPUpdated:         handlePlayerDPUpdated,
			events.TypePlayerUpdate:            handlePlayerUpdate,

			events.TypeNPCAttacked:    handleAttack,
			events.TypePlayerAttacked: handleAttack,
			events.TypeCombatStarted:  handleCombatStarted,
			events.TypeCombatEnded:    handleCombatEnded,
			events.TypeNPCDied:        handleCombatDeath,
			events.TypeCombatDeath:    handleCombatDeath,

			events.TypeCommandResponse: handleCommandResponse,
			events.TypeChatMessage:     handleChatMessage,
			events.TypeRoomMessage:     handleChatMessage,
			events.TypeSystem:          handleSystemMessage,

			events.TypeLucidityChange:        handleLucidityChange,
			events.TypeRescueUpdate:          handleRescueUpdate,
			events.TypeMythosTimeUpdate:      handleMythosTimeUpdate,
			events.TypeGameTick:              handleGameTick,
			events.TypeIntentionalDisconnect: handleIntentionalDisconnect,
		},
	}
}

// Dispatch routes one event to its handler. Sequence numbers are tracked for
// diagnostics only; the transport already guarantees ordering.
func (r *Router) Dispatch(ev events.GameEvent, ctx *Context) *Result {
	if ev.SequenceNumber > 0 {
		if r.lastSeq > 0 && ev.SequenceNumber <= r.lastSeq {
			r.log.Printf("event sequence regressed: got %d after %d (type %s)", ev.SequenceNumber, r.lastSeq, ev.Type)
		}
		r.lastSeq = ev.SequenceNumber
	}

	handler, ok := r.handlers[ev.Type]
	if !ok {
		r.log.Printf("ignoring unrecognized event type %q (seq %d)", ev.Type, ev.SequenceNumber)
		return nil
	}
	return handler(ev, ctx)
}
