package shared

import "time"

const DateLayout = "2006-01-02"

// ParseDate accepts YYYY-MM-DD or RFC3339.
func ParseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse(DateLayout, value); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}

// FormatDate renders a date the way the wire contract expects it.
func FormatDate(value time.Time) string {
	return value.Format(DateLayout)
}
