package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordhub/recordhub/config"
	"github.com/recordhub/recordhub/internal/database/schema"
	"github.com/recordhub/recordhub/pkg/crypto"
)

func expectSchema(mock sqlmock.Sqlmock) {
	for range schema.TableDefinitions {
		mock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
	}
}

func TestInitializeDatabase(t *testing.T) {
	root := config.RootUserConfig{Username: "admin", Email: "admin@example.com", Password: "rootpassword"}

	original := crypto.PasswordCost
	crypto.PasswordCost = 4
	defer func() { crypto.PasswordCost = original }()

	t.Run("creates tables without root user", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectSchema(mock)

		err = InitializeDatabase(db, config.RootUserConfig{})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("creates root user if not exists", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectSchema(mock)
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("admin").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("INSERT INTO users").
			WithArgs(sqlmock.AnyArg(), "admin", "admin@example.com", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err = InitializeDatabase(db, root)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skips root user creation if exists", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectSchema(mock)
		mock.ExpectQuery("SELECT EXISTS").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		err = InitializeDatabase(db, root)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("handles table creation error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("CREATE").WillReturnError(assert.AnError)

		err = InitializeDatabase(db, root)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create table")
	})

	t.Run("handles root user check error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectSchema(mock)
		mock.ExpectQuery("SELECT EXISTS").WillReturnError(assert.AnError)

		err = InitializeDatabase(db, root)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to check root user existence")
	})

	t.Run("handles root user insert error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectSchema(mock)
		mock.ExpectQuery("SELECT EXISTS").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("INSERT INTO users").WillReturnError(assert.AnError)

		err = InitializeDatabase(db, root)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create root user")
	})
}

func TestCleanDatabase(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for i := len(schema.TableNames) - 1; i >= 0; i-- {
		mock.ExpectExec("DROP TABLE IF EXISTS " + schema.TableNames[i]).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, CleanDatabase(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
