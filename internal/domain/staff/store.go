package staff

import (
	"context"

	"hrtracker/internal/platform/db"
)

type Store struct {
	DB db.Pool
}

func NewStore(pool db.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT e.id,
           COALESCE(e.object_code, ''),
           COALESCE(e.staff_position_code, ''),
           e.table_number, e.full_name, e.status,
           COALESCE(e.object_bin, ''),
           COALESCE(d.object_name, ''),
           COALESCE(p.staff_position_name, ''),
           e.created_at
    FROM employees e
    LEFT JOIN departments d ON e.object_code = d.object_code
    LEFT JOIN positions p ON e.staff_position_code = p.staff_position_code
    ORDER BY e.full_name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Employee, 0)
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(
			&emp.ID, &emp.ObjectCode, &emp.StaffPositionCode, &emp.TableNumber, &emp.FullName,
			&emp.Status, &emp.ObjectBIN, &emp.DepartmentName, &emp.PositionName, &emp.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) ListDepartments(ctx context.Context) ([]Department, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, object_code, object_name,
           COALESCE(object_company, ''),
           COALESCE(object_bin, '')
    FROM departments
    ORDER BY object_name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Department, 0)
	for rows.Next() {
		var dep Department
		if err := rows.Scan(&dep.ID, &dep.ObjectCode, &dep.ObjectName, &dep.ObjectCompany, &dep.ObjectBIN); err != nil {
			return nil, err
		}
		out = append(out, dep)
	}
	return out, rows.Err()
}

func (s *Store) ListPositions(ctx context.Context) ([]Position, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, staff_position_code, staff_position_name,
           COALESCE(object_bin, '')
    FROM positions
    ORDER BY staff_position_name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Position, 0)
	for rows.Next() {
		var pos Position
		if err := rows.Scan(&pos.ID, &pos.StaffPositionCode, &pos.StaffPositionName, &pos.ObjectBIN); err != nil {
			return nil, err
		}
		out = append(out, pos)
	}
	return out, rows.Err()
}

func (s *Store) ListOrganizations(ctx context.Context) ([]Organization, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT DISTINCT object_bin, object_company
    FROM departments
    WHERE object_company IS NOT NULL
    ORDER BY object_company
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Organization, 0)
	for rows.Next() {
		var org Organization
		if err := rows.Scan(&org.ObjectBIN, &org.ObjectCompany); err != nil {
			return nil, err
		}
		out = append(out, org)
	}
	return out, rows.Err()
}
