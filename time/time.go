package time

import (
	"context"
	"fmt"
	"time"
)

const (
	// dateTimeFormat is the ISO-8601 date-time emitted by query protocol
	// services, always in UTC with millisecond precision.
	dateTimeFormat = "2006-01-02T15:04:05.999Z"

	// httpDateFormat is a date time defined by RFC3339 section 5.6 with no UTC offset.
	httpDateFormat = "Mon, 02 Jan 2006 15:04:05 GMT"
)

// dateTimeParseFormats are attempted in order by ParseDateTime. Services
// are not consistent about fractional seconds or zone offsets.
var dateTimeParseFormats = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// FormatDateTime formats value as an ISO-8601 date-time in UTC.
func FormatDateTime(value time.Time) string {
	return value.UTC().Format(dateTimeFormat)
}

// ParseDateTime parses an ISO-8601 date-time. Fractional seconds and zone
// offsets are optional. Values without an offset are treated as UTC.
func ParseDateTime(value string) (time.Time, error) {
	for _, layout := range dateTimeParseFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse %q as an ISO-8601 date-time", value)
}

// FormatHTTPDate format value as a http-date
func FormatHTTPDate(value time.Time) string {
	return value.UTC().Format(httpDateFormat)
}

// ParseHTTPDate parse a string as a http-date
func ParseHTTPDate(value string) (time.Time, error) {
	return time.Parse(httpDateFormat, value)
}

// DurationMin returns the smaller of the two durations.
func DurationMin(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}

// SleepWithContext will wait for the timer duration to expire, or the context
// is canceled. Which ever happens first. If the context is canceled the
// Context's error will be returned.
func SleepWithContext(ctx context.Context, dur time.Duration) error {
	t := time.NewTimer(dur)
	defer t.Stop()

	select {
	case <-t.C:
		break
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}
