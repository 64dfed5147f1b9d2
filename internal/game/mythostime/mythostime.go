package mythostime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"mythosclient/internal/game/events"
)

// State is the derived world-clock snapshot. It carries no transition
// tracking; the session context owns the last-hour and last-daypart memory
// used for chime and flavor notifications.
type State struct {
	Clock          string
	Daypart        string
	MonthName      string
	DayOfMonth     int
	ActiveHolidays []string
	FormattedDate  string
}

// Dayparts in in-fiction order.
const (
	DaypartDawn     = "dawn"
	DaypartMorning  = "morning"
	DaypartMidday   = "midday"
	DaypartDusk     = "dusk"
	DaypartEvening  = "evening"
	DaypartNight    = "night"
	DaypartWitching = "witching_hour"
)

var validDayparts = map[string]bool{
	DaypartDawn:     true,
	DaypartMorning:  true,
	DaypartMidday:   true,
	DaypartDusk:     true,
	DaypartEvening:  true,
	DaypartNight:    true,
	DaypartWitching: true,
}

// daypartFlavor is the copy shown when the world slides into a new daypart.
var daypartFlavor = map[string]string{
	DaypartDawn:     "A sickly dawn seeps over the rooftops.",
	DaypartMorning:  "Morning light settles uneasily over the streets.",
	DaypartMidday:   "The sun hangs at its indifferent zenith.",
	DaypartDusk:     "Dusk gathers, and the shadows lean closer.",
	DaypartEvening:  "Evening falls across the waking world.",
	DaypartNight:    "Night closes in. Things unseen begin to stir.",
	DaypartWitching: "The witching hour arrives. The veil is thin.",
}

// Build derives a State from a mythos_time_update payload (or the bootstrap
// clock response, which shares its shape). Callers gate on the presence of
// mythos_clock before invoking.
func Build(data map[string]any) State {
	st := State{
		Clock:      events.String(data, "mythos_clock", ""),
		MonthName:  events.String(data, "month_name", ""),
		DayOfMonth: int(events.Number(data, "day_of_month", 0)),
	}

	if raw, ok := events.StringOK(data, "daypart"); ok {
		daypart := strings.ToLower(raw)
		if validDayparts[daypart] {
			st.Daypart = daypart
		}
	}

	if holidays, ok := events.StringSlice(data, "active_holidays"); ok {
		st.ActiveHolidays = holidays
	} else {
		st.ActiveHolidays = []string{}
	}

	st.FormattedDate = formatDate(st)
	return st
}

func formatDate(st State) string {
	if st.MonthName == "" {
		return ""
	}
	date := st.MonthName
	if st.DayOfMonth > 0 {
		date = fmt.Sprintf("%s %d", st.MonthName, st.DayOfMonth)
	}
	if len(st.ActiveHolidays) > 0 {
		date = fmt.Sprintf("%s (%s)", date, strings.Join(st.ActiveHolidays, ", "))
	}
	return date
}

// DaypartFlavor returns the notification copy for a daypart transition, with
// a generic sentence for dayparts the table does not know.
func DaypartFlavor(daypart string) string {
	if flavor, ok := daypartFlavor[daypart]; ok {
		return flavor
	}
	return fmt.Sprintf("The world shifts into %s.", strings.ReplaceAll(daypart, "_", " "))
}

var hourPattern = regexp.MustCompile(`(\d{1,2}):(\d{2})`)

// HourFromDatetime extracts the hour number from a mythos_datetime string,
// e.g. "Month of Deep Cold, Day 12, 14:23". The format is server-defined
// prose around an HH:MM clock, so anything without a recognizable clock
// segment is an error the caller logs and treats as an unknown hour.
func HourFromDatetime(raw string) (int, error) {
	match := hourPattern.FindStringSubmatch(raw)
	if match == nil {
		return 0, fmt.Errorf("no clock segment in %q", raw)
	}
	hour, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, fmt.Errorf("parse hour in %q: %w", raw, err)
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour %d out of range in %q", hour, raw)
	}
	return hour, nil
}
