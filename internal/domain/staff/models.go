package staff

import "time"

// Employee is the admin directory projection of one employee with the
// resolved department and position names.
type Employee struct {
	ID                int64     `json:"id"`
	ObjectCode        string    `json:"object_code"`
	StaffPositionCode string    `json:"staff_position_code"`
	TableNumber       string    `json:"table_number"`
	FullName          string    `json:"full_name"`
	Status            int       `json:"status"`
	ObjectBIN         string    `json:"object_bin"`
	DepartmentName    string    `json:"department_name"`
	PositionName      string    `json:"position_name"`
	CreatedAt         time.Time `json:"created_at"`
}

type Department struct {
	ID            int64  `json:"id"`
	ObjectCode    string `json:"object_code"`
	ObjectName    string `json:"object_name"`
	ObjectCompany string `json:"object_company"`
	ObjectBIN     string `json:"object_bin"`
}

type Position struct {
	ID                int64  `json:"id"`
	StaffPositionCode string `json:"staff_position_code"`
	StaffPositionName string `json:"staff_position_name"`
	ObjectBIN         string `json:"object_bin"`
}

// Organization is a distinct company entry derived from departments.
type Organization struct {
	ObjectBIN     string `json:"object_bin"`
	ObjectCompany string `json:"object_company"`
}
