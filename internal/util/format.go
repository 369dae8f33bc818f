package util //nolint:revive // package name util hosts shared formatting helpers used across view templates

import (
	"fmt"
	"time"

	"github.com/target/eventshell/internal/domain/model"
)

// FormatEventDateTime formats an event's date and time for display.
// Returns "Date TBD" when either field is empty and "Invalid date"
// when they do not parse.
func FormatEventDateTime(e model.Event) string {
	if e.Date == "" || e.Time == "" {
		return "Date TBD"
	}
	start, err := e.StartsAt()
	if err != nil {
		return "Invalid date"
	}
	return start.Format("January 2, 2006, 15:04")
}

// RelativeTime returns a coarse day-granularity description of when an
// event starts, relative to now ("Today", "Tomorrow", "In 3 days",
// "Yesterday", "4 days ago"). Empty when the event has no usable date.
func RelativeTime(e model.Event, now time.Time) string {
	if e.Date == "" || e.Time == "" {
		return ""
	}
	start, err := e.StartsAt()
	if err != nil {
		return ""
	}

	days := daysUntil(now, start)
	switch {
	case days < -1:
		return fmt.Sprintf("%d days ago", -days)
	case days == -1:
		return "Yesterday"
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("In %d days", days)
	}
}

// daysUntil counts whole-day boundaries between now and start,
// rounding up so any future remainder lands on the next day.
func daysUntil(now, start time.Time) int {
	diff := start.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}
