package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"hrtracker/internal/platform/db"
)

type Store struct {
	DB db.Pool
}

func NewStore(pool db.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) GetTemplate(ctx context.Context, templateID int64) (*Template, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, name,
           COALESCE(description, ''),
           to_char(check_in_time, 'HH24:MI'),
           to_char(check_out_time, 'HH24:MI'),
           is_active
    FROM work_schedule_templates
    WHERE id = $1
  `, templateID)

	var t Template
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &t.CheckInTime, &t.CheckOutTime, &t.IsActive); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (s *Store) ListTemplates(ctx context.Context) ([]Template, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name,
           COALESCE(description, ''),
           to_char(check_in_time, 'HH24:MI'),
           to_char(check_out_time, 'HH24:MI'),
           is_active
    FROM work_schedule_templates
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Template, 0)
	for rows.Next() {
		var t Template
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.CheckInTime, &t.CheckOutTime, &t.IsActive); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) ListAvailableEmployees(ctx context.Context) ([]AvailableEmployee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT e.id, e.table_number, e.full_name,
           COALESCE(d.object_name, ''),
           COALESCE(p.staff_position_name, '')
    FROM employees e
    LEFT JOIN departments d ON e.object_code = d.object_code
    LEFT JOIN positions p ON e.staff_position_code = p.staff_position_code
    WHERE e.status = 1
    ORDER BY e.full_name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AvailableEmployee, 0)
	for rows.Next() {
		var emp AvailableEmployee
		if err := rows.Scan(&emp.ID, &emp.TableNumber, &emp.FullName, &emp.DepartmentName, &emp.PositionName); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) ListScheduleSummaries(ctx context.Context) ([]ScheduleSummary, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT schedule_name, schedule_code,
           COUNT(1),
           to_char(MIN(work_date), 'YYYY-MM-DD'),
           to_char(MAX(work_date), 'YYYY-MM-DD'),
           ROUND(AVG(work_hours), 2)
    FROM work_schedules_1c
    GROUP BY schedule_name, schedule_code
    ORDER BY schedule_name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ScheduleSummary, 0)
	for rows.Next() {
		var sum ScheduleSummary
		if err := rows.Scan(&sum.ScheduleName, &sum.ScheduleCode, &sum.WorkDaysCount, &sum.StartDate, &sum.EndDate, &sum.AvgHours); err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *Store) ListScheduleDays(ctx context.Context, scheduleCode string) ([]ScheduleDay, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT schedule_name, schedule_code,
           to_char(work_date, 'YYYY-MM-DD'),
           COALESCE(to_char(work_month, 'YYYY-MM-DD'), ''),
           COALESCE(time_type, ''), work_hours
    FROM work_schedules_1c
    WHERE schedule_code = $1
    ORDER BY work_date
  `, scheduleCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ScheduleDay, 0)
	for rows.Next() {
		var day ScheduleDay
		if err := rows.Scan(&day.ScheduleName, &day.ScheduleCode, &day.WorkDate, &day.WorkMonth, &day.TimeType, &day.WorkHours); err != nil {
			return nil, err
		}
		out = append(out, day)
	}
	return out, rows.Err()
}

// ScheduleName resolves a 1C schedule code to its display name.
func (s *Store) ScheduleName(ctx context.Context, scheduleCode string) (string, error) {
	var name string
	err := s.DB.QueryRow(ctx, `
    SELECT schedule_name
    FROM work_schedules_1c
    WHERE schedule_code = $1
    LIMIT 1
  `, scheduleCode).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrScheduleNotFound
	}
	if err != nil {
		return "", err
	}
	return name, nil
}

// FindEmployeeByNumber resolves a personnel number to the internal id and name.
func (s *Store) FindEmployeeByNumber(ctx context.Context, tableNumber string) (int64, string, error) {
	var id int64
	var fullName string
	err := s.DB.QueryRow(ctx, `
    SELECT id, full_name
    FROM employees
    WHERE table_number = $1
  `, tableNumber).Scan(&id, &fullName)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, "", ErrEmployeeNotFound
	}
	if err != nil {
		return 0, "", err
	}
	return id, fullName, nil
}

func (s *Store) CurrentAssignment(ctx context.Context, tableNumber string) (*Assignment, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT a.id, a.employee_number,
           COALESCE(e.full_name, ''),
           a.schedule_code,
           COALESCE((SELECT w.schedule_name FROM work_schedules_1c w WHERE w.schedule_code = a.schedule_code LIMIT 1), ''),
           to_char(a.start_date, 'YYYY-MM-DD'),
           a.assigned_by
    FROM employee_schedule_assignments a
    LEFT JOIN employees e ON e.id = a.employee_id
    WHERE a.employee_number = $1 AND a.end_date IS NULL
  `, tableNumber)

	var a Assignment
	if err := row.Scan(&a.ID, &a.EmployeeNumber, &a.EmployeeName, &a.ScheduleCode, &a.ScheduleName, &a.StartDate, &a.AssignedBy); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoActiveSchedule
		}
		return nil, err
	}
	return &a, nil
}

func (s *Store) AssignmentHistory(ctx context.Context, tableNumber string, today time.Time) ([]HistoryItem, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT a.id, a.employee_number,
           COALESCE(e.full_name, ''),
           a.schedule_code,
           COALESCE((SELECT w.schedule_name FROM work_schedules_1c w WHERE w.schedule_code = a.schedule_code LIMIT 1), ''),
           to_char(a.start_date, 'YYYY-MM-DD'),
           a.end_date,
           a.assigned_by
    FROM employee_schedule_assignments a
    LEFT JOIN employees e ON e.id = a.employee_id
    WHERE a.employee_number = $1
    ORDER BY a.start_date
  `, tableNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]HistoryItem, 0)
	for rows.Next() {
		var item HistoryItem
		var endDate *time.Time
		if err := rows.Scan(&item.ID, &item.EmployeeNumber, &item.EmployeeName, &item.ScheduleCode, &item.ScheduleName, &item.StartDate, &endDate, &item.AssignedBy); err != nil {
			return nil, err
		}
		if endDate != nil {
			formatted := endDate.Format(dateLayout)
			item.EndDate = &formatted
		}
		item.Status = deriveStatus(endDate, today)
		out = append(out, item)
	}
	return out, rows.Err()
}
