package status

import (
	"fmt"
	"strings"

	"mythosclient/internal/game/events"
)

// Tier classifies a current/max ratio band for UI styling and copy.
type Tier string

const (
	TierLucid     Tier = "lucid"
	TierUneasy    Tier = "uneasy"
	TierFractured Tier = "fractured"
	TierDeranged  Tier = "deranged"
	TierCatatonic Tier = "catatonic"
)

// DefaultMax is used when neither the event nor any prior status supplies a
// maximum.
const DefaultMax = 100

var validTiers = map[Tier]bool{
	TierLucid:     true,
	TierUneasy:    true,
	TierFractured: true,
	TierDeranged:  true,
	TierCatatonic: true,
}

// Change records the most recent delta applied to a status, driving the
// transient "+N / -N" indicator.
type Change struct {
	Delta     float64
	Reason    string
	Source    string
	Timestamp string
}

// Status is a rebuilt-on-every-event snapshot of lucidity or health.
type Status struct {
	Current     float64
	Max         float64
	Tier        Tier
	Liabilities []string
	LastChange  Change
}

// fieldSet names the payload fields one status attribute reads.
type fieldSet struct {
	current string
	max     string
}

var (
	lucidityFields = fieldSet{current: "current_lcd", max: "max_lcd"}
	healthFields   = fieldSet{current: "current_dp", max: "max_dp"}
)

// BuildLucidity folds a lucidity_change payload over the previous status.
func BuildLucidity(prev *Status, data map[string]any, timestamp string, fallbackMax float64) Status {
	return build(prev, data, timestamp, fallbackMax, lucidityFields)
}

// BuildHealth folds a determination-point payload over the previous status.
func BuildHealth(prev *Status, data map[string]any, timestamp string, fallbackMax float64) Status {
	return build(prev, data, timestamp, fallbackMax, healthFields)
}

func build(prev *Status, data map[string]any, timestamp string, fallbackMax float64, fields fieldSet) Status {
	delta := events.Number(data, "delta", 0)

	// The explicit current field wins even when it is zero; only a genuinely
	// absent field falls through to prior-plus-delta.
	current, supplied := events.NumberOK(data, fields.current)
	if !supplied {
		if prev != nil {
			current = prev.Current + delta
		} else {
			current = delta
		}
	}

	max := resolveMax(prev, data, fields.max, fallbackMax)

	tier := resolveTier(prev, data)
	liabilities := resolveLiabilities(prev, data)

	return Status{
		Current:     current,
		Max:         max,
		Tier:        tier,
		Liabilities: liabilities,
		LastChange: Change{
			Delta:     delta,
			Reason:    events.String(data, "reason", ""),
			Source:    events.String(data, "source", ""),
			Timestamp: timestamp,
		},
	}
}

func resolveMax(prev *Status, data map[string]any, key string, fallbackMax float64) float64 {
	if max, ok := events.NumberOK(data, key); ok && max > 0 {
		return max
	}
	if prev != nil && prev.Max > 0 {
		return prev.Max
	}
	if fallbackMax > 0 {
		return fallbackMax
	}
	return DefaultMax
}

func resolveTier(prev *Status, data map[string]any) Tier {
	if raw, ok := events.StringOK(data, "tier"); ok {
		tier := Tier(strings.ToLower(raw))
		if validTiers[tier] {
			return tier
		}
	}
	if prev != nil && validTiers[prev.Tier] {
		return prev.Tier
	}
	return TierLucid
}

func resolveLiabilities(prev *Status, data map[string]any) []string {
	if entries, ok := events.StringSlice(data, "liabilities"); ok {
		return entries
	}
	if prev != nil && prev.Liabilities != nil {
		return prev.Liabilities
	}
	return []string{}
}

// ChangeMessage composes the human-readable sentence shown when a status
// shifts, e.g. "Lucidity loses 10 (eldritch insight) due to the Deep Ones
// → 80/100 (Uneasy)".
func ChangeMessage(attribute string, s Status, delta float64) string {
	var b strings.Builder

	verb := "gains"
	if delta < 0 {
		verb = "loses"
	}
	fmt.Fprintf(&b, "%s %s %s", attribute, verb, trimNumber(abs(delta)))

	if s.LastChange.Reason != "" {
		fmt.Fprintf(&b, " (%s)", strings.ReplaceAll(s.LastChange.Reason, "_", " "))
	}
	if s.LastChange.Source != "" {
		fmt.Fprintf(&b, " due to %s", s.LastChange.Source)
	}

	fmt.Fprintf(&b, " → %s/%s (%s)", trimNumber(s.Current), trimNumber(s.Max), capitalize(string(s.Tier)))
	return b.String()
}

func abs(n float64) float64 {
	if n < 0 {
		return -n
	}
	return n
}

func trimNumber(n float64) string {
	if n == float64(int64(n)) {
		return fmt.Sprintf("%d", int64(n))
	}
	return fmt.Sprintf("%.1f", n)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
