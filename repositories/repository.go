// Package repositories holds the SQL-backed stores for users and employees.
// Queries use $N placeholders, which both PostgreSQL and SQLite accept.
package repositories

import (
	"context"
	"database/sql"

	"karyawan/models"
)

type Users interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type Employees interface {
	List(ctx context.Context) ([]models.Employee, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, emp *models.Employee) (*models.Employee, error)
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	Update(ctx context.Context, emp *models.Employee) error
	Delete(ctx context.Context, id int64) error
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
