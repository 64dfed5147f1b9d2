package status

import "testing"

func TestBuildRescueStatusValidation(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want RescueStatus
	}{
		{"known status", "channeling", RescueChanneling},
		{"sanitarium", "sanitarium", RescueSanitarium},
		{"unknown falls back to idle", "abducted", RescueIdle},
		{"missing falls back to idle", nil, RescueIdle},
		{"wrong type falls back to idle", float64(3), RescueIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := map[string]any{}
			if tt.raw != nil {
				data["status"] = tt.raw
			}
			got := BuildRescue(data)
			if got.Status != tt.want {
				t.Fatalf("status = %v, want %v", got.Status, tt.want)
			}
		})
	}
}

func TestBuildRescueProgressClamped(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-5, 0},
		{0, 0},
		{42, 42},
		{250, 100},
	}

	for _, tt := range tests {
		got := BuildRescue(map[string]any{"progress": tt.in})
		if got.Progress != tt.want {
			t.Fatalf("progress(%v) = %v, want %v", tt.in, got.Progress, tt.want)
		}
	}
}

func TestBuildRescueETA(t *testing.T) {
	got := BuildRescue(map[string]any{"eta_seconds": float64(30)})
	if !got.HasETA || got.ETASeconds != 30 {
		t.Fatalf("eta = %v has=%v, want 30/true", got.ETASeconds, got.HasETA)
	}

	got = BuildRescue(map[string]any{"eta_seconds": float64(-4)})
	if !got.HasETA || got.ETASeconds != 0 {
		t.Fatalf("negative eta should clamp to 0, got %v", got.ETASeconds)
	}

	got = BuildRescue(map[string]any{"eta_seconds": "soon"})
	if got.HasETA {
		t.Fatal("non-numeric eta should be absent")
	}

	got = BuildRescue(map[string]any{})
	if got.HasETA {
		t.Fatal("missing eta should be absent")
	}
}

func TestBuildRescueNames(t *testing.T) {
	got := BuildRescue(map[string]any{
		"status":       "channeling",
		"target_name":  "carter",
		"rescuer_name": "armitage",
		"message":      "The ritual begins.",
	})

	if got.TargetName != "carter" || got.RescuerName != "armitage" || got.Message != "The ritual begins." {
		t.Fatalf("names not carried: %+v", got)
	}
}
