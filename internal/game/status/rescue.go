package status

import (
	"mythosclient/internal/game/events"
)

// RescueStatus is the closed set of rescue-ritual phases the client renders.
type RescueStatus string

const (
	RescueIdle       RescueStatus = "idle"
	RescueCatatonic  RescueStatus = "catatonic"
	RescueChanneling RescueStatus = "channeling"
	RescueSuccess    RescueStatus = "success"
	RescueFailed     RescueStatus = "failed"
	RescueSanitarium RescueStatus = "sanitarium"
)

var validRescueStatuses = map[RescueStatus]bool{
	RescueIdle:       true,
	RescueCatatonic:  true,
	RescueChanneling: true,
	RescueSuccess:    true,
	RescueFailed:     true,
	RescueSanitarium: true,
}

// RescueState is the projected view of a rescue_update payload.
type RescueState struct {
	Status      RescueStatus
	TargetName  string
	RescuerName string
	Message     string
	Progress    float64
	ETASeconds  float64
	HasETA      bool
}

// BuildRescue normalizes a rescue_update payload. Unrecognized statuses fall
// back to idle, progress is clamped to 0-100, and a non-finite ETA is
// treated as absent.
func BuildRescue(data map[string]any) RescueState {
	st := RescueState{
		Status:      RescueIdle,
		TargetName:  events.String(data, "target_name", ""),
		RescuerName: events.String(data, "rescuer_name", ""),
		Message:     events.String(data, "message", ""),
	}

	if raw, ok := events.StringOK(data, "status"); ok {
		if candidate := RescueStatus(raw); validRescueStatuses[candidate] {
			st.Status = candidate
		}
	}

	progress := events.Number(data, "progress", 0)
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	st.Progress = progress

	if eta, ok := events.NumberOK(data, "eta_seconds"); ok {
		if eta < 0 {
			eta = 0
		}
		st.ETASeconds = eta
		st.HasETA = true
	}

	return st
}
