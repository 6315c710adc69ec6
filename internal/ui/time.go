package ui

import (
	"fmt"
	"time"
)

// DateDisplayLayout is the short date form shown in lists and cards.
const DateDisplayLayout = "01/02/06"

// DateInputLayout is the form dates are typed and stored in flags.
const DateInputLayout = "2006-01-02"

// FormatDate returns a date as MM/DD/YY, or "-" for nil.
func FormatDate(value *time.Time) string {
	if value == nil {
		return "-"
	}
	return value.Format(DateDisplayLayout)
}

// ParseDate parses a YYYY-MM-DD date at local midnight.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateInputLayout, value, time.Local)
}

// FormatTimeAgo returns a compact age string like "2m ago".
func FormatTimeAgo(then time.Time, now time.Time) string {
	if then.IsZero() || now.Before(then) {
		return "-"
	}
	return FormatDurationShort(now.Sub(then)) + " ago"
}

// FormatDurationShort formats a duration using short units (s/m/h/d).
func FormatDurationShort(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}

	duration = duration.Truncate(time.Second)
	seconds := int64(duration.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}

	days := hours / 24
	return fmt.Sprintf("%dd", days)
}
