package schedule

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
)

type Service struct {
	Store             *Store
	DefaultAssignedBy string
}

func NewService(store *Store, defaultAssignedBy string) *Service {
	return &Service{Store: store, DefaultAssignedBy: defaultAssignedBy}
}

// Assign applies one bulk assignment request. The template must exist before
// anything is written; after that every employee id is processed in its own
// transaction, so a skipped id never rolls back already assigned ones.
func (s *Service) Assign(ctx context.Context, req AssignRequest) (*AssignResult, error) {
	tpl, err := s.Store.GetTemplate(ctx, req.TemplateID)
	if err != nil {
		return nil, err
	}

	assignedBy := req.AssignedBy
	if assignedBy == "" {
		assignedBy = s.DefaultAssignedBy
	}

	outcomes := make([]Outcome, 0, len(req.EmployeeIDs))
	for _, employeeID := range req.EmployeeIDs {
		outcome, err := s.assignOne(ctx, employeeID, tpl.ID, req.StartDate, assignedBy)
		if err != nil {
			return nil, err
		}
		if !outcome.Assigned {
			slog.Info("schedule assignment skipped", "employeeId", employeeID, "reason", outcome.Reason)
		}
		outcomes = append(outcomes, outcome)
	}

	assigned, skipped := reduceOutcomes(outcomes)
	return &AssignResult{
		AssignedCount: assigned,
		SkippedCount:  skipped,
		Message:       assignMessage(tpl.Name, assigned, skipped),
		Outcomes:      outcomes,
	}, nil
}

// assignOne runs the read-close-insert sequence for a single employee inside
// one transaction. The FOR UPDATE on the open row serializes concurrent
// assignments for the same employee.
func (s *Service) assignOne(ctx context.Context, employeeID, templateID int64, startDate time.Time, assignedBy string) (Outcome, error) {
	tx, err := s.Store.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Outcome{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists int
	if err := tx.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE id = $1", employeeID).Scan(&exists); err != nil {
		return Outcome{}, err
	}
	if exists == 0 {
		return Outcome{EmployeeID: employeeID, Reason: SkipNotFound}, nil
	}

	var openID int64
	var openStart time.Time
	err = tx.QueryRow(ctx, `
    SELECT id, start_date
    FROM employee_schedule_history
    WHERE employee_id = $1 AND end_date IS NULL
    FOR UPDATE
  `, employeeID).Scan(&openID, &openStart)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		// nothing to close
	case err != nil:
		return Outcome{}, err
	default:
		if backdated(openStart, startDate) {
			return Outcome{EmployeeID: employeeID, Reason: SkipBackdated}, nil
		}
		if _, err := tx.Exec(ctx, `
      UPDATE employee_schedule_history
      SET end_date = $1, updated_at = now()
      WHERE id = $2
    `, closeDate(startDate), openID); err != nil {
			return Outcome{}, err
		}
	}

	if _, err := tx.Exec(ctx, `
    INSERT INTO employee_schedule_history (employee_id, template_id, start_date, end_date, assigned_by)
    VALUES ($1, $2, $3, NULL, $4)
  `, employeeID, templateID, startDate, assignedBy); err != nil {
		return Outcome{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Outcome{}, err
	}
	return Outcome{EmployeeID: employeeID, Assigned: true}, nil
}

// AssignByNumber assigns a 1C schedule to a single employee identified by
// personnel number, with the same conflict-resolution contract.
func (s *Service) AssignByNumber(ctx context.Context, req NumberAssignRequest) (*Assignment, error) {
	employeeID, fullName, err := s.Store.FindEmployeeByNumber(ctx, req.EmployeeNumber)
	if err != nil {
		return nil, err
	}
	scheduleName, err := s.Store.ScheduleName(ctx, req.ScheduleCode)
	if err != nil {
		return nil, err
	}

	assignedBy := req.AssignedBy
	if assignedBy == "" {
		assignedBy = s.DefaultAssignedBy
	}

	tx, err := s.Store.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var openID int64
	var openStart time.Time
	err = tx.QueryRow(ctx, `
    SELECT id, start_date
    FROM employee_schedule_assignments
    WHERE employee_number = $1 AND end_date IS NULL
    FOR UPDATE
  `, req.EmployeeNumber).Scan(&openID, &openStart)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		return nil, err
	default:
		if backdated(openStart, req.StartDate) {
			return nil, ErrBackdated
		}
		if _, err := tx.Exec(ctx, `
      UPDATE employee_schedule_assignments
      SET end_date = $1, updated_at = now()
      WHERE id = $2
    `, closeDate(req.StartDate), openID); err != nil {
			return nil, err
		}
	}

	var id int64
	if err := tx.QueryRow(ctx, `
    INSERT INTO employee_schedule_assignments (employee_id, employee_number, schedule_code, start_date, end_date, assigned_by)
    VALUES ($1, $2, $3, $4, NULL, $5)
    RETURNING id
  `, employeeID, req.EmployeeNumber, req.ScheduleCode, req.StartDate, assignedBy).Scan(&id); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &Assignment{
		ID:             id,
		EmployeeNumber: req.EmployeeNumber,
		EmployeeName:   fullName,
		ScheduleCode:   req.ScheduleCode,
		ScheduleName:   scheduleName,
		StartDate:      req.StartDate.Format(dateLayout),
		AssignedBy:     assignedBy,
	}, nil
}

func (s *Service) ListTemplates(ctx context.Context) ([]Template, error) {
	return s.Store.ListTemplates(ctx)
}

func (s *Service) ListAvailableEmployees(ctx context.Context) ([]AvailableEmployee, error) {
	return s.Store.ListAvailableEmployees(ctx)
}

func (s *Service) ListScheduleSummaries(ctx context.Context) ([]ScheduleSummary, error) {
	return s.Store.ListScheduleSummaries(ctx)
}

// ScheduleCalendar returns the per-day breakdown of one 1C schedule together
// with its statistics. An unknown code yields an empty calendar.
func (s *Service) ScheduleCalendar(ctx context.Context, scheduleCode string) ([]ScheduleDay, DayStatistics, error) {
	days, err := s.Store.ListScheduleDays(ctx, scheduleCode)
	if err != nil {
		return nil, DayStatistics{}, err
	}
	return days, calendarStatistics(days), nil
}

func (s *Service) CurrentSchedule(ctx context.Context, employeeNumber string) (*Assignment, error) {
	if _, _, err := s.Store.FindEmployeeByNumber(ctx, employeeNumber); err != nil {
		return nil, err
	}
	return s.Store.CurrentAssignment(ctx, employeeNumber)
}

func (s *Service) ScheduleHistory(ctx context.Context, employeeNumber string) ([]HistoryItem, error) {
	if _, _, err := s.Store.FindEmployeeByNumber(ctx, employeeNumber); err != nil {
		return nil, err
	}
	return s.Store.AssignmentHistory(ctx, employeeNumber, time.Now())
}

func calendarStatistics(days []ScheduleDay) DayStatistics {
	stats := DayStatistics{TotalRecords: len(days)}
	for _, day := range days {
		if day.WorkHours > 0 {
			stats.TotalWorkDays++
			stats.TotalHours += day.WorkHours
		}
	}
	if stats.TotalWorkDays > 0 {
		stats.AvgHours = math.Round(float64(stats.TotalHours)/float64(stats.TotalWorkDays)*100) / 100
	}
	return stats
}
