package schedule

import "time"

// Template is a named work schedule with fixed check-in/check-out times.
type Template struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time"`
	IsActive     bool   `json:"is_active"`
}

// AvailableEmployee is an active employee eligible for schedule assignment.
type AvailableEmployee struct {
	ID             int64  `json:"id"`
	TableNumber    string `json:"table_number"`
	FullName       string `json:"full_name"`
	DepartmentName string `json:"department_name"`
	PositionName   string `json:"position_name"`
}

// ScheduleSummary aggregates one 1C schedule calendar per code.
type ScheduleSummary struct {
	ScheduleName  string  `json:"schedule_name"`
	ScheduleCode  string  `json:"schedule_code"`
	WorkDaysCount int     `json:"work_days_count"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	AvgHours      float64 `json:"avg_hours"`
}

// ScheduleDay is a single day of a 1C schedule calendar.
type ScheduleDay struct {
	ScheduleName string `json:"schedule_name"`
	ScheduleCode string `json:"schedule_code"`
	WorkDate     string `json:"work_date"`
	WorkMonth    string `json:"work_month"`
	TimeType     string `json:"time_type"`
	WorkHours    int    `json:"work_hours"`
}

// DayStatistics summarizes a 1C schedule calendar.
type DayStatistics struct {
	TotalRecords  int     `json:"total_records"`
	TotalWorkDays int     `json:"total_work_days"`
	TotalHours    int     `json:"total_hours"`
	AvgHours      float64 `json:"avg_hours"`
}

// Assignment is one period of an employee's 1C schedule assignment.
type Assignment struct {
	ID             int64   `json:"id"`
	EmployeeNumber string  `json:"employee_number"`
	EmployeeName   string  `json:"employee_name"`
	ScheduleCode   string  `json:"schedule_code"`
	ScheduleName   string  `json:"schedule_name"`
	StartDate      string  `json:"start_date"`
	EndDate        *string `json:"end_date"`
	AssignedBy     string  `json:"assigned_by"`
}

// HistoryItem is an Assignment annotated with its derived status.
type HistoryItem struct {
	Assignment
	Status string `json:"status"`
}

// AssignRequest is the validated bulk assignment input.
type AssignRequest struct {
	TemplateID  int64
	EmployeeIDs []int64
	StartDate   time.Time
	AssignedBy  string
}

// Skip reasons for per-employee outcomes.
const (
	SkipNotFound  = "not_found"
	SkipBackdated = "backdated"
)

// Outcome is the tagged per-employee result of a bulk assignment.
type Outcome struct {
	EmployeeID int64
	Assigned   bool
	Reason     string
}

// AssignResult aggregates per-employee outcomes.
type AssignResult struct {
	AssignedCount int
	SkippedCount  int
	Message       string
	Outcomes      []Outcome
}

// NumberAssignRequest assigns a 1C schedule to an employee by number.
type NumberAssignRequest struct {
	EmployeeNumber string
	ScheduleCode   string
	StartDate      time.Time
	AssignedBy     string
}
