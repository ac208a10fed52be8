package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Times are rendered as 12-hour labels ("7:30 PM") but compared as
// minutes-since-midnight (0-1439). Both 12 AM and 12 PM are special-cased
// explicitly: 12 AM is hour 0, 12 PM is hour 12.

// ParseClock converts a "H:MM AM/PM" label to minutes since midnight.
func ParseClock(label string) (int, error) {
	s := strings.ToUpper(strings.TrimSpace(label))

	var meridiem string
	switch {
	case strings.HasSuffix(s, "AM"):
		meridiem = "AM"
	case strings.HasSuffix(s, "PM"):
		meridiem = "PM"
	default:
		return 0, fmt.Errorf("invalid time %q: missing AM/PM", label)
	}
	s = strings.TrimSpace(s[:len(s)-2])

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", label)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("invalid hour in %q", label)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", label)
	}

	if hour == 12 {
		hour = 0
	}
	if meridiem == "PM" {
		hour += 12
	}

	return hour*60 + minute, nil
}

// FormatClock converts minutes since midnight to a "H:MM AM/PM" label.
func FormatClock(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440

	hour := minutes / 60
	minute := minutes % 60

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}

	display := hour % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:%02d %s", display, minute, meridiem)
}
