package testutil

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// UserColumns matches the column order of user queries
var UserColumns = []string{"id", "username", "email", "password_hash", "first_name", "last_name", "is_superuser", "is_active", "date_joined", "last_login"}

// TableColumns matches the column order of table queries
var TableColumns = []string{"id", "name", "description", "fields", "created_at", "updated_at"}

// SetupMockDB creates a mock database connection for testing.
// The returned cleanup closes the connection and fails the test on unmet expectations.
func SetupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	cleanup := func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	}

	return db, mock, cleanup
}
