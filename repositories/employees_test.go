package repositories

import (
	"context"
	"testing"

	"karyawan/common"
	"karyawan/condb"
	"karyawan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *condb.DB {
	t.Helper()
	db, err := condb.OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Migrate(context.Background())
	require.NoError(t, err)
	return db
}

func salary(v float64) *float64 { return &v }

func TestEmployees_CreateThenList(t *testing.T) {
	r := NewEmployeeRepository(setupDB(t))
	ctx := context.Background()

	created, err := r.Create(ctx, &models.Employee{Name: "Jane", Address: "1 Main St", Salary: salary(50000), Title: "Engineer"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, *created, list[0])
}

func TestEmployees_ListEmpty(t *testing.T) {
	r := NewEmployeeRepository(setupDB(t))

	list, err := r.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestEmployees_IDsAreUnique(t *testing.T) {
	r := NewEmployeeRepository(setupDB(t))
	ctx := context.Background()

	a, err := r.Create(ctx, &models.Employee{Name: "A"})
	require.NoError(t, err)
	b, err := r.Create(ctx, &models.Employee{Name: "B"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestEmployees_UpdateOverwritesEveryField(t *testing.T) {
	r := NewEmployeeRepository(setupDB(t))
	ctx := context.Background()

	emp, err := r.Create(ctx, &models.Employee{Name: "Jane", Address: "1 Main St", Salary: salary(50000), Title: "Engineer"})
	require.NoError(t, err)

	require.NoError(t, r.Update(ctx, &models.Employee{ID: emp.ID, Name: "Jane2"}))

	got, err := r.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Employee{ID: emp.ID, Name: "Jane2"}, *got)
}

func TestEmployees_UpdateSameValuesStillFound(t *testing.T) {
	r := NewEmployeeRepository(setupDB(t))
	ctx := context.Background()

	emp, err := r.Create(ctx, &models.Employee{Name: "Same"})
	require.NoError(t, err)
	require.NoError(t, r.Update(ctx, emp))
}

func TestEmployees_MissingIDIsNotFound(t *testing.T) {
	r := NewEmployeeRepository(setupDB(t))
	ctx := context.Background()

	_, err := r.GetByID(ctx, 404)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	err = r.Update(ctx, &models.Employee{ID: 404, Name: "ghost"})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	err = r.Delete(ctx, 404)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestEmployees_DeleteIsPermanent(t *testing.T) {
	r := NewEmployeeRepository(setupDB(t))
	ctx := context.Background()

	emp, err := r.Create(ctx, &models.Employee{Name: "Temp"})
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, emp.ID))

	_, err = r.GetByID(ctx, emp.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, r.Delete(ctx, emp.ID), common.ErrorNotFound)
}
