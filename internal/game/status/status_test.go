package status

import (
	"reflect"
	"testing"
)

func TestBuildLucidityAppliesDelta(t *testing.T) {
	prev := &Status{Current: 90, Max: 100, Tier: TierLucid}
	data := map[string]any{"delta": float64(-10), "tier": "uneasy"}

	got := BuildLucidity(prev, data, "2026-08-30T12:00:00Z", 0)

	if got.Current != 80 {
		t.Fatalf("current = %v, want 80", got.Current)
	}
	if got.Tier != TierUneasy {
		t.Fatalf("tier = %v, want uneasy", got.Tier)
	}
	if got.LastChange.Delta != -10 {
		t.Fatalf("lastChange.delta = %v, want -10", got.LastChange.Delta)
	}
	if got.LastChange.Timestamp != "2026-08-30T12:00:00Z" {
		t.Fatalf("lastChange.timestamp = %q", got.LastChange.Timestamp)
	}
}

func TestBuildLuciditySuppliedZeroWins(t *testing.T) {
	data := map[string]any{"current_lcd": float64(0), "max_lcd": float64(100)}

	got := BuildLucidity(nil, data, "", 0)

	if got.Current != 0 {
		t.Fatalf("current = %v, want supplied 0", got.Current)
	}
	if got.Max != 100 {
		t.Fatalf("max = %v, want 100", got.Max)
	}
}

func TestBuildLucidityMaxResolution(t *testing.T) {
	tests := []struct {
		name        string
		prev        *Status
		data        map[string]any
		fallbackMax float64
		want        float64
	}{
		{"explicit max", nil, map[string]any{"max_lcd": float64(120)}, 0, 120},
		{"non-positive max ignored", &Status{Max: 80}, map[string]any{"max_lcd": float64(0)}, 0, 80},
		{"previous max", &Status{Max: 80}, map[string]any{}, 0, 80},
		{"caller fallback", nil, map[string]any{}, 150, 150},
		{"fixed default", nil, map[string]any{}, 0, DefaultMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildLucidity(tt.prev, tt.data, "", tt.fallbackMax)
			if got.Max != tt.want {
				t.Fatalf("max = %v, want %v", got.Max, tt.want)
			}
		})
	}
}

func TestBuildLucidityStringNumbers(t *testing.T) {
	data := map[string]any{"current_lcd": "55", "max_lcd": "bogus"}

	got := BuildLucidity(&Status{Current: 10, Max: 70}, data, "", 0)

	if got.Current != 55 {
		t.Fatalf("current = %v, want parsed 55", got.Current)
	}
	if got.Max != 70 {
		t.Fatalf("max = %v, want previous 70 after bad parse", got.Max)
	}
}

func TestBuildLucidityTierValidation(t *testing.T) {
	tests := []struct {
		name string
		prev *Status
		data map[string]any
		want Tier
	}{
		{"case insensitive", nil, map[string]any{"tier": "FRACTURED"}, TierFractured},
		{"invalid keeps previous", &Status{Tier: TierDeranged}, map[string]any{"tier": "sparkling"}, TierDeranged},
		{"invalid without previous", nil, map[string]any{"tier": "sparkling"}, TierLucid},
		{"missing without previous", nil, map[string]any{}, TierLucid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildLucidity(tt.prev, tt.data, "", 0)
			if got.Tier != tt.want {
				t.Fatalf("tier = %v, want %v", got.Tier, tt.want)
			}
		})
	}
}

func TestBuildLucidityLiabilities(t *testing.T) {
	data := map[string]any{"liabilities": []any{"night_terrors", "", float64(7), "tremors"}}
	got := BuildLucidity(nil, data, "", 0)
	if want := []string{"night_terrors", "tremors"}; !reflect.DeepEqual(got.Liabilities, want) {
		t.Fatalf("liabilities = %v, want %v", got.Liabilities, want)
	}

	prev := &Status{Liabilities: []string{"tremors"}}
	got = BuildLucidity(prev, map[string]any{}, "", 0)
	if !reflect.DeepEqual(got.Liabilities, []string{"tremors"}) {
		t.Fatalf("liabilities = %v, want previous carried", got.Liabilities)
	}

	got = BuildLucidity(nil, map[string]any{}, "", 0)
	if got.Liabilities == nil || len(got.Liabilities) != 0 {
		t.Fatalf("liabilities = %v, want empty list", got.Liabilities)
	}
}

func TestChangeMessage(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		delta  float64
		want   string
	}{
		{
			"loss with reason and source",
			Status{Current: 80, Max: 100, Tier: TierUneasy, LastChange: Change{Delta: -10, Reason: "eldritch_insight", Source: "the Deep Ones"}},
			-10,
			"Lucidity loses 10 (eldritch insight) due to the Deep Ones → 80/100 (Uneasy)",
		},
		{
			"gain without extras",
			Status{Current: 95, Max: 100, Tier: TierLucid, LastChange: Change{Delta: 5}},
			5,
			"Lucidity gains 5 → 95/100 (Lucid)",
		},
		{
			"zero delta reads as gains",
			Status{Current: 50, Max: 100, Tier: TierFractured, LastChange: Change{}},
			0,
			"Lucidity gains 0 → 50/100 (Fractured)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChangeMessage("Lucidity", tt.status, tt.delta)
			if got != tt.want {
				t.Fatalf("ChangeMessage = %q, want %q", got, tt.want)
			}
		})
	}
}
