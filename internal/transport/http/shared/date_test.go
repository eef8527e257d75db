package shared

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-07-01")
	if err != nil {
		t.Fatalf("parse plain date: %v", err)
	}
	if parsed.Year() != 2025 || parsed.Month() != time.July || parsed.Day() != 1 {
		t.Fatalf("unexpected date: %v", parsed)
	}

	parsed, err = ParseDate("2025-07-01T00:00:00Z")
	if err != nil {
		t.Fatalf("parse rfc3339: %v", err)
	}
	if FormatDate(parsed) != "2025-07-01" {
		t.Fatalf("unexpected formatted date: %s", FormatDate(parsed))
	}

	if _, err := ParseDate("01.07.2025"); err == nil {
		t.Fatal("expected error for unsupported layout")
	}
	if _, err := ParseDate(""); err == nil {
		t.Fatal("expected error for empty value")
	}
}
