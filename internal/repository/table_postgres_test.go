package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordhub/recordhub/internal/domain"
	"github.com/recordhub/recordhub/internal/repository/testutil"
)

func TestTableRepository_CreateTable(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewTableRepository(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		table := &domain.Table{
			Name:   "orders",
			Fields: []domain.TableField{{Name: "amount", Type: domain.FieldTypeFloat}},
		}

		mock.ExpectExec(`INSERT INTO tables \(id, name, description, fields, created_at, updated_at\)`).
			WithArgs(sqlmock.AnyArg(), "orders", "", []byte(`[{"name":"amount","type":"float","required":false}]`), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.CreateTable(ctx, table))
		assert.NotEmpty(t, table.ID)
		assert.Equal(t, table.CreatedAt, table.UpdatedAt)
	})

	t.Run("nil fields stored as empty array", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO tables`).
			WithArgs(sqlmock.AnyArg(), "empty", "", []byte(`[]`), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.CreateTable(ctx, &domain.Table{Name: "empty"}))
	})

	t.Run("duplicate name", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO tables`).WillReturnError(&pq.Error{Code: "23505"})

		err := repo.CreateTable(ctx, &domain.Table{Name: "orders"})
		var conflict *domain.ErrConflict
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, "table with this name already exists: orders", conflict.Message)
	})
}

func TestTableRepository_Get(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewTableRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("by id", func(t *testing.T) {
		rows := sqlmock.NewRows(testutil.TableColumns).
			AddRow("t1", "orders", "order rows", []byte(`[{"name":"sku","type":"string","required":true}]`), now, now)
		mock.ExpectQuery(`SELECT (.+) FROM tables WHERE id = \$1`).WithArgs("t1").WillReturnRows(rows)

		table, err := repo.GetTableByID(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, "orders", table.Name)
		require.Len(t, table.Fields, 1)
		assert.Equal(t, domain.FieldTypeString, table.Fields[0].Type)
		assert.True(t, table.Fields[0].Required)
	})

	t.Run("by id not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM tables WHERE id = \$1`).WithArgs("nope").
			WillReturnRows(sqlmock.NewRows(testutil.TableColumns))

		_, err := repo.GetTableByID(ctx, "nope")
		var notFound *domain.ErrNotFound
		require.True(t, errors.As(err, &notFound))
	})

	t.Run("by name", func(t *testing.T) {
		rows := sqlmock.NewRows(testutil.TableColumns).AddRow("t1", "orders", "", nil, now, now)
		mock.ExpectQuery(`SELECT (.+) FROM tables WHERE name = \$1`).WithArgs("orders").WillReturnRows(rows)

		table, err := repo.GetTableByName(ctx, "orders")
		require.NoError(t, err)
		assert.Equal(t, "t1", table.ID)
		assert.NotNil(t, table.Fields)
		assert.Empty(t, table.Fields)
	})

	t.Run("by name not registered", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM tables WHERE name = \$1`).WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows(testutil.TableColumns))

		_, err := repo.GetTableByName(ctx, "ghost")
		require.Error(t, err)
		assert.Equal(t, "table ghost is not registered", err.Error())
	})

	t.Run("corrupt fields", func(t *testing.T) {
		rows := sqlmock.NewRows(testutil.TableColumns).AddRow("t2", "bad", "", []byte(`{`), now, now)
		mock.ExpectQuery(`SELECT (.+) FROM tables WHERE id = \$1`).WithArgs("t2").WillReturnRows(rows)

		_, err := repo.GetTableByID(ctx, "t2")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode fields of table bad")
	})
}

func TestTableRepository_ListTables(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewTableRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tables`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT (.+) FROM tables ORDER BY name LIMIT \$1 OFFSET \$2`).
		WithArgs(2, 2).
		WillReturnRows(sqlmock.NewRows(testutil.TableColumns).AddRow("t3", "products", "", []byte(`[]`), now, now))

	tables, total, err := repo.ListTables(ctx, domain.PageParams{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, tables, 1)
	assert.Equal(t, "products", tables[0].Name)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tables`).WillReturnError(errors.New("boom"))
	_, _, err = repo.ListTables(ctx, domain.PageParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count tables")
}

func TestTableRepository_UpdateDelete(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewTableRepository(db)
	ctx := context.Background()
	table := &domain.Table{ID: "t1", Name: "orders", Description: "renamed"}

	mock.ExpectExec(`UPDATE tables SET name = \$1, description = \$2, fields = \$3, updated_at = \$4 WHERE id = \$5`).
		WithArgs("orders", "renamed", []byte(`[]`), sqlmock.AnyArg(), "t1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateTable(ctx, table))
	assert.False(t, table.UpdatedAt.IsZero())

	mock.ExpectExec(`UPDATE tables`).WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.UpdateTable(ctx, table)
	var notFound *domain.ErrNotFound
	assert.True(t, errors.As(err, &notFound))

	mock.ExpectExec(`UPDATE tables`).WillReturnError(&pq.Error{Code: "23505"})
	err = repo.UpdateTable(ctx, table)
	var conflict *domain.ErrConflict
	assert.True(t, errors.As(err, &conflict))

	mock.ExpectExec(`DELETE FROM tables WHERE id = \$1`).WithArgs("t1").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteTable(ctx, "t1"))

	mock.ExpectExec(`DELETE FROM tables WHERE id = \$1`).WithArgs("t1").WillReturnResult(sqlmock.NewResult(0, 0))
	err = repo.DeleteTable(ctx, "t1")
	assert.True(t, errors.As(err, &notFound))
}
