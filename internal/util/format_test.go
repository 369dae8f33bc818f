package util

import (
	"testing"
	"time"

	"github.com/target/eventshell/internal/domain/model"
)

func TestFormatEventDateTime(t *testing.T) {
	tests := []struct {
		name  string
		event model.Event
		want  string
	}{
		{"complete", model.Event{Date: "2030-05-20", Time: "18:30"}, "May 20, 2030, 18:30"},
		{"missing time", model.Event{Date: "2030-05-20"}, "Date TBD"},
		{"missing date", model.Event{Time: "18:30"}, "Date TBD"},
		{"malformed", model.Event{Date: "someday", Time: "18:30"}, "Invalid date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatEventDateTime(tt.event); got != tt.want {
				t.Fatalf("FormatEventDateTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		date string
		tm   string
		want string
	}{
		{"starts now", "2026-03-10", "12:00", "Today"},
		{"later today rounds forward", "2026-03-10", "18:00", "Tomorrow"},
		{"in three days", "2026-03-13", "12:00", "In 3 days"},
		{"yesterday", "2026-03-09", "12:00", "Yesterday"},
		{"long past", "2026-03-05", "12:00", "5 days ago"},
		{"no date", "", "12:00", ""},
		{"malformed", "soon", "12:00", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeTime(model.Event{Date: tt.date, Time: tt.tm}, now)
			if got != tt.want {
				t.Fatalf("RelativeTime() = %q, want %q", got, tt.want)
			}
		})
	}
}
