package session

import (
	"fmt"

	"mythosclient/internal/game/events"
	"mythosclient/internal/game/mythostime"
	"mythosclient/internal/game/state"
	"mythosclient/internal/game/status"
)

// tickCadence is how many game ticks pass between heartbeat lines.
const tickCadence = 100

// logoutDelayMS gives the disconnect message one render before the driver
// logs the player out.
const logoutDelayMS = 500

const defaultDisconnectMessage = "The connection to the dream dissolves. Farewell."

func handleLucidityChange(ev events.GameEvent, ctx *Context) *Result {
	var fallbackMax float64
	if ctx.Player != nil {
		fallbackMax = ctx.Player.Stats[state.StatMaxLucidity]
	}

	lucidity := status.BuildLucidity(ctx.Lucidity, ev.Data, ev.Timestamp, fallbackMax)
	res := &Result{Update: state.Update{Lucidity: &lucidity}}

	text := status.ChangeMessage("Lucidity", lucidity, lucidity.LastChange.Delta)
	res.Messages = append(res.Messages, newMessage(text, ev, ChannelStatus, ChannelStatus, false))

	if ctx.Player != nil {
		res.Player = patchPlayer(ctx.Player, map[string]any{
			state.StatLucidity:    lucidity.Current,
			state.StatMaxLucidity: lucidity.Max,
		})
	}
	return res
}

// handleRescueUpdate surfaces rescue progress. Only the delirium edge is
// message-worthy here; every other status is rendered from the rescue state
// itself, with no notification.
func handleRescueUpdate(ev events.GameEvent, ctx *Context) *Result {
	rescue := status.BuildRescue(ev.Data)
	res := &Result{Update: state.Update{Rescue: &rescue}}

	if events.String(ev.Data, "status", "") == "delirium" {
		delirious := true
		res.Delirious = &delirious
		if text, ok := events.StringOK(ev.Data, "message"); ok {
			res.Messages = append(res.Messages, newMessage(text, ev, ChannelSystem, ChannelSystem, false))
		}
	}
	return res
}

func handleMythosTimeUpdate(ev events.GameEvent, ctx *Context) *Result {
	if _, ok := events.StringOK(ev.Data, "mythos_clock"); !ok {
		return nil
	}

	clock := mythostime.Build(ev.Data)
	res := &Result{Update: state.Update{MythosTime: &clock}}

	hour, hourKnown := 0, false
	if raw, ok := events.StringOK(ev.Data, "mythos_datetime"); ok {
		parsed, err := mythostime.HourFromDatetime(raw)
		if err != nil {
			ctx.Log.Printf("unparsable mythos_datetime %q: %v", raw, err)
		} else {
			hour, hourKnown = parsed, true
		}
	}

	// Never chime on the first observation of a session; there is no known
	// prior hour to have transitioned from.
	if hourKnown && ctx.HourRecorded && hour != ctx.LastHour {
		text := fmt.Sprintf("The clock of the Mythos tolls %d.", hour)
		res.Messages = append(res.Messages, newMessage(text, ev, ChannelTime, ChannelTime, false))
	}
	if clock.Daypart != "" && ctx.LastDaypart != "" && clock.Daypart != ctx.LastDaypart {
		res.Messages = append(res.Messages, newMessage(mythostime.DaypartFlavor(clock.Daypart), ev, ChannelTime, ChannelTime, false))
	}

	// Trackers are seeded even when the transition above was skipped, so the
	// second observation can compare against something.
	if hourKnown {
		ctx.LastHour = hour
		ctx.HourRecorded = true
	}
	if clock.Daypart != "" {
		ctx.LastDaypart = clock.Daypart
	}

	return res
}

func handleGameTick(ev events.GameEvent, ctx *Context) *Result {
	tick := int64(events.Number(ev.Data, "tick_number", 0))
	if tick < 0 || tick%tickCadence != 0 {
		return nil
	}
	text := fmt.Sprintf("The dream pulses. Tick %d.", tick)
	return &Result{Update: state.Update{
		Messages: []state.ChatMessage{newMessage(text, ev, ChannelSystem, ChannelSystem, false)},
	}}
}

func handleIntentionalDisconnect(ev events.GameEvent, ctx *Context) *Result {
	text := events.String(ev.Data, "message", defaultDisconnectMessage)
	res := &Result{Update: state.Update{
		Messages: []state.ChatMessage{newMessage(text, ev, ChannelSystem, ChannelSystem, false)},
	}}

	if ctx.HasLogout {
		ctx.Log.Printf("intentional disconnect: scheduling logout in %dms", logoutDelayMS)
		res.Deferred = append(res.Deferred, Deferred{AfterMS: logoutDelayMS, Action: ActionLogout})
	} else {
		ctx.Log.Printf("intentional disconnect received but no logout callback is configured")
	}
	return res
}
