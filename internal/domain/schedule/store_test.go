package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func newMockStore(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return NewStore(mock), mock
}

func TestGetTemplateNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT id, name").
		WithArgs(int64(99999)).
		WillReturnError(pgx.ErrNoRows)

	_, err := store.GetTemplate(context.Background(), 99999)
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetTemplate(t *testing.T) {
	store, mock := newMockStore(t)

	rows := pgxmock.NewRows([]string{"id", "name", "description", "check_in", "check_out", "is_active"}).
		AddRow(int64(7), "Тестовый график", "", "09:00", "18:00", true)
	mock.ExpectQuery("SELECT id, name").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	tpl, err := store.GetTemplate(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetTemplate: %v", err)
	}
	if tpl.Name != "Тестовый график" || tpl.CheckInTime != "09:00" {
		t.Fatalf("unexpected template: %+v", tpl)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestScheduleNameNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT schedule_name").
		WithArgs("missing-code").
		WillReturnError(pgx.ErrNoRows)

	_, err := store.ScheduleName(context.Background(), "missing-code")
	if !errors.Is(err, ErrScheduleNotFound) {
		t.Fatalf("expected ErrScheduleNotFound, got %v", err)
	}
}

func TestCurrentAssignmentNone(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("FROM employee_schedule_assignments").
		WithArgs("АП00-00358").
		WillReturnError(pgx.ErrNoRows)

	_, err := store.CurrentAssignment(context.Background(), "АП00-00358")
	if !errors.Is(err, ErrNoActiveSchedule) {
		t.Fatalf("expected ErrNoActiveSchedule, got %v", err)
	}
}

func TestListScheduleSummaries(t *testing.T) {
	store, mock := newMockStore(t)

	rows := pgxmock.NewRows([]string{"schedule_name", "schedule_code", "count", "start", "end", "avg"}).
		AddRow("05:00-17:00/MG 1 смена", "76c06530", 22, "2025-07-01", "2025-07-31", 11.0)
	mock.ExpectQuery("FROM work_schedules_1c").
		WillReturnRows(rows)

	summaries, err := store.ListScheduleSummaries(context.Background())
	if err != nil {
		t.Fatalf("ListScheduleSummaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	if summaries[0].WorkDaysCount != 22 || summaries[0].AvgHours != 11.0 {
		t.Fatalf("unexpected summary: %+v", summaries[0])
	}
}
