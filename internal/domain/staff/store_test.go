package staff

import (
	"context"
	"testing"
	"time"

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

func TestListEmployees(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{
		"id", "object_code", "staff_position_code", "table_number", "full_name",
		"status", "object_bin", "department_name", "position_name", "created_at",
	}).AddRow(
		int64(1), "DEPT_001", "POS_001", "АП00-00358", "Иванов Иван Иванович",
		1, "123456789012", "Отдел продаж", "Менеджер", created,
	)
	mock.ExpectQuery("FROM employees e").WillReturnRows(rows)

	employees, err := store.ListEmployees(context.Background())
	if err != nil {
		t.Fatalf("ListEmployees: %v", err)
	}
	if len(employees) != 1 {
		t.Fatalf("expected 1 employee, got %d", len(employees))
	}
	if employees[0].DepartmentName != "Отдел продаж" || employees[0].PositionName != "Менеджер" {
		t.Fatalf("unexpected joined names: %+v", employees[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListOrganizations(t *testing.T) {
	store, mock := newMockStore(t)

	rows := pgxmock.NewRows([]string{"object_bin", "object_company"}).
		AddRow("123456789012", "Тестовая компания")
	mock.ExpectQuery("SELECT DISTINCT object_bin").WillReturnRows(rows)

	orgs, err := store.ListOrganizations(context.Background())
	if err != nil {
		t.Fatalf("ListOrganizations: %v", err)
	}
	if len(orgs) != 1 || orgs[0].ObjectCompany != "Тестовая компания" {
		t.Fatalf("unexpected organizations: %+v", orgs)
	}
}
