package domain

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("s3cret-pass", "jane"))

	err := ValidatePassword("short", "jane")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 8")

	err = ValidatePassword(strings.Repeat("a", 129), "jane")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most 128")

	err = ValidatePassword("JaneDoe123", "janedoe123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "same as the username")
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", MaskEmail("jane@example.com"))
	assert.Equal(t, "a***@b.io", MaskEmail("a@b.io"))
	assert.Equal(t, "***", MaskEmail("invalid"))
	assert.Equal(t, "***", MaskEmail("@example.com"))
}

func TestCreateUserInput_Validate(t *testing.T) {
	valid := CreateUserInput{Username: "jane", Email: "jane@example.com", Password: "password123"}
	assert.NoError(t, valid.Validate())

	noUser := valid
	noUser.Username = ""
	assert.Error(t, noUser.Validate())

	badUser := valid
	badUser.Username = "jane doe"
	assert.Error(t, badUser.Validate())

	badEmail := valid
	badEmail.Email = "nope"
	assert.Error(t, badEmail.Validate())

	badPassword := valid
	badPassword.Password = "jane"
	assert.Error(t, badPassword.Validate())
}

func TestUpdateUserInput_Apply(t *testing.T) {
	base := func() *User {
		return &User{ID: "u1", Username: "jane", Email: "jane@example.com", FirstName: "Jane", LastName: "Doe", IsActive: true}
	}

	t.Run("partial", func(t *testing.T) {
		user := base()
		first := "J"
		require.NoError(t, (&UpdateUserInput{FirstName: &first}).Apply(user, true))
		assert.Equal(t, "J", user.FirstName)
		assert.Equal(t, "Doe", user.LastName)
	})

	t.Run("full requires username and email", func(t *testing.T) {
		assert.Error(t, (&UpdateUserInput{}).Apply(base(), false))
	})

	t.Run("full clears names", func(t *testing.T) {
		user := base()
		username, email := "jane", "jane@example.org"
		require.NoError(t, (&UpdateUserInput{Username: &username, Email: &email}).Apply(user, false))
		assert.Equal(t, "jane@example.org", user.Email)
		assert.Empty(t, user.FirstName)
		assert.Empty(t, user.LastName)
	})

	t.Run("invalid email", func(t *testing.T) {
		email := "broken"
		assert.Error(t, (&UpdateUserInput{Email: &email}).Apply(base(), true))
	})

	t.Run("privileges", func(t *testing.T) {
		yes := true
		assert.True(t, (&UpdateUserInput{IsSuperuser: &yes}).TouchesPrivileges())
		assert.True(t, (&UpdateUserInput{IsActive: &yes}).TouchesPrivileges())
		assert.False(t, (&UpdateUserInput{}).TouchesPrivileges())
	})
}

func TestUserContext(t *testing.T) {
	_, ok := UserFromContext(context.Background())
	assert.False(t, ok)

	user := &User{ID: "u1"}
	got, ok := UserFromContext(WithUser(context.Background(), user))
	assert.True(t, ok)
	assert.Same(t, user, got)
}
