package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"karyawan/common"
	"karyawan/condb"
	"karyawan/models"
)

type EmployeeRepository struct {
	db condb.DBTX
}

func NewEmployeeRepository(db condb.DBTX) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(s rowScanner) (models.Employee, error) {
	var (
		emp     models.Employee
		address sql.NullString
		salary  sql.NullFloat64
		title   sql.NullString
	)
	if err := s.Scan(&emp.ID, &emp.Name, &address, &salary, &title); err != nil {
		return emp, err
	}
	emp.Address = address.String
	emp.Salary = floatPtr(salary)
	emp.Title = title.String
	return emp, nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, address, salary, title
		 FROM employees
		 ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return employees, nil
}

func (r *EmployeeRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, emp *models.Employee) (*models.Employee, error) {
	query :=
		`INSERT INTO employees (name, address, salary, title)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		emp.Name, emp.Address, nullFloat(emp.Salary), emp.Title).Scan(&emp.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return emp, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*models.Employee, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, address, salary, title
		 FROM employees
		 WHERE id = $1`, id)

	emp, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &emp, nil
}

// Update overwrites every column of the row with emp's values.
func (r *EmployeeRepository) Update(ctx context.Context, emp *models.Employee) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE employees SET name = $1, address = $2, salary = $3, title = $4
		 WHERE id = $5`,
		emp.Name, emp.Address, nullFloat(emp.Salary), emp.Title, emp.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireAffected(res)
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
