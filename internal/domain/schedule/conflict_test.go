package schedule

import (
	"testing"
	"time"
)

func date(value string) time.Time {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestCloseDate(t *testing.T) {
	got := closeDate(date("2025-07-01"))
	if got.Format(dateLayout) != "2025-06-30" {
		t.Fatalf("expected 2025-06-30, got %s", got.Format(dateLayout))
	}

	// month and year boundaries
	if closeDate(date("2025-01-01")).Format(dateLayout) != "2024-12-31" {
		t.Fatal("year boundary not handled")
	}
	if closeDate(date("2025-03-01")).Format(dateLayout) != "2025-02-28" {
		t.Fatal("month boundary not handled")
	}
}

func TestBackdated(t *testing.T) {
	open := date("2025-06-15")

	if backdated(open, date("2025-07-01")) {
		t.Fatal("forward reassignment must not be backdated")
	}
	if !backdated(open, date("2025-06-15")) {
		t.Fatal("same-day reassignment is backdated")
	}
	if !backdated(open, date("2025-06-01")) {
		t.Fatal("earlier start is backdated")
	}
}

func TestDeriveStatus(t *testing.T) {
	today := date("2025-07-10")

	if got := deriveStatus(nil, today); got != "active" {
		t.Fatalf("open row must be active, got %s", got)
	}

	past := date("2025-06-30")
	if got := deriveStatus(&past, today); got != "completed" {
		t.Fatalf("past end date must be completed, got %s", got)
	}

	future := date("2025-08-01")
	if got := deriveStatus(&future, today); got != "active" {
		t.Fatalf("future end date is still active, got %s", got)
	}

	sameDay := date("2025-07-10")
	if got := deriveStatus(&sameDay, today); got != "active" {
		t.Fatalf("end date today is still active, got %s", got)
	}

	// end dates are midnight DATE values but the clock rarely is
	afternoon := time.Date(2025, 7, 10, 15, 0, 0, 0, time.UTC)
	if got := deriveStatus(&sameDay, afternoon); got != "active" {
		t.Fatalf("end date today must stay active all day, got %s", got)
	}
	yesterday := date("2025-07-09")
	if got := deriveStatus(&yesterday, afternoon); got != "completed" {
		t.Fatalf("past end date must be completed, got %s", got)
	}
}

func TestReduceOutcomes(t *testing.T) {
	outcomes := []Outcome{
		{EmployeeID: 1, Assigned: true},
		{EmployeeID: 2, Reason: SkipNotFound},
		{EmployeeID: 3, Assigned: true},
		{EmployeeID: 3, Reason: SkipBackdated},
	}

	assigned, skipped := reduceOutcomes(outcomes)
	if assigned != 2 || skipped != 2 {
		t.Fatalf("expected 2/2, got %d/%d", assigned, skipped)
	}
}

func TestAssignMessage(t *testing.T) {
	msg := assignMessage("Тестовый график", 2, 0)
	if msg != "График \"Тестовый график\" назначен 2 сотрудникам" {
		t.Fatalf("unexpected message: %s", msg)
	}

	msg = assignMessage("Тестовый график", 1, 1)
	if msg != "График \"Тестовый график\" назначен 1 сотрудникам, пропущено 1 сотрудников" {
		t.Fatalf("unexpected message: %s", msg)
	}
}

func TestCalendarStatistics(t *testing.T) {
	days := []ScheduleDay{
		{WorkHours: 11},
		{WorkHours: 11},
		{WorkHours: 0},
		{WorkHours: 8},
	}

	stats := calendarStatistics(days)
	if stats.TotalRecords != 4 {
		t.Fatalf("expected 4 records, got %d", stats.TotalRecords)
	}
	if stats.TotalWorkDays != 3 {
		t.Fatalf("expected 3 work days, got %d", stats.TotalWorkDays)
	}
	if stats.TotalHours != 30 {
		t.Fatalf("expected 30 hours, got %d", stats.TotalHours)
	}
	if stats.AvgHours != 10 {
		t.Fatalf("expected avg 10, got %v", stats.AvgHours)
	}

	empty := calendarStatistics(nil)
	if empty.AvgHours != 0 || empty.TotalRecords != 0 {
		t.Fatalf("expected zeroed statistics, got %+v", empty)
	}
}
