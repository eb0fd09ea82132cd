package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupMockDB(t *testing.T) {
	db, mock, cleanup := SetupMockDB(t)
	assert.NotNil(t, mock)
	assert.NoError(t, db.Ping())

	cleanup()
	assert.Error(t, db.Ping())
}
